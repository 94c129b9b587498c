// Package metrics exposes the service's prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RPCsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "routeguide_rpcs_total",
		Help: "Total RPCs handled, by full method and status code",
	}, []string{"method", "code"})
	RPCDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "routeguide_rpc_duration_seconds",
		Help:    "RPC handling duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30, 120},
	}, []string{"method"})
	FeaturesStreamedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "routeguide_features_streamed_total",
		Help: "Total features emitted by ListFeatures",
	})
	NotesAppendedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "routeguide_notes_appended_total",
		Help: "Total notes appended to the note log by RouteChat",
	})
	RoutePointsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "routeguide_route_points_total",
		Help: "Total points received by RecordRoute",
	})
)

func init() {
	prometheus.MustRegister(
		RPCsTotal,
		RPCDurationSeconds,
		FeaturesStreamedTotal,
		NotesAppendedTotal,
		RoutePointsTotal,
	)
}

// Handler returns the HTTP handler serving the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
