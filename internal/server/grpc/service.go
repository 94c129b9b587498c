package grpc

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/inovacc/routeguide/internal/geo"
	"github.com/inovacc/routeguide/internal/metrics"
	"github.com/inovacc/routeguide/internal/notelog"
	"github.com/inovacc/routeguide/internal/store"
	v1 "github.com/inovacc/routeguide/pkg/api/v1"
	"google.golang.org/grpc"
)

// Service implements the RouteGuideServer interface. The feature store is
// read-only; the note log is the only shared mutable state, and each call
// keeps its accumulator state private.
type Service struct {
	v1.UnimplementedRouteGuideServer

	features *store.FeatureStore
	notes    *notelog.Log
	log      *slog.Logger
}

// NewService creates the RouteGuide service over the given feature store.
func NewService(features *store.FeatureStore, logger *slog.Logger) *Service {
	return &Service{
		features: features,
		notes:    notelog.New(),
		log:      logger,
	}
}

// GetFeature returns the feature at the requested point. If nothing is
// known at that location, an unnamed feature carrying the point is
// returned; that is a normal result, not an error.
func (s *Service) GetFeature(ctx context.Context, req *v1.Point) (*v1.Feature, error) {
	return FeatureToProto(s.features.LookupAt(PointFromProto(req))), nil
}

// ListFeatures streams every named feature inside the requested rectangle,
// in store order. The rectangle's corners may arrive in any orientation.
func (s *Service) ListFeatures(req *v1.Rectangle, stream grpc.ServerStreamingServer[v1.Feature]) error {
	for f := range s.features.ScanWithin(RectangleFromProto(req)) {
		if err := stream.Send(FeatureToProto(f)); err != nil {
			return err
		}
		metrics.FeaturesStreamedTotal.Inc()
	}

	return nil
}

// RecordRoute consumes a stream of points and replies with aggregate route
// statistics once the client closes its side cleanly. If the input stream
// fails mid-route, the failure is logged and the call ends with no summary,
// partial or otherwise.
func (s *Service) RecordRoute(stream grpc.ClientStreamingServer[v1.Point, v1.RouteSummary]) error {
	var (
		pointCount   int
		featureCount int
		distance     int
		previous     *geo.Point
	)
	startTime := time.Now()

	for {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return stream.SendAndClose(RouteSummaryToProto(geo.RouteSummary{
				PointCount:   pointCount,
				FeatureCount: featureCount,
				Distance:     distance,
				ElapsedTime:  int(time.Since(startTime).Seconds()),
			}))
		}
		if err != nil {
			s.log.Warn("record route input stream aborted", "error", err)
			return err
		}

		point := PointFromProto(req)
		pointCount++
		metrics.RoutePointsTotal.Inc()

		if s.features.LookupAt(point).Exists() {
			featureCount++
		}

		if previous != nil {
			distance += geo.Distance(*previous, point)
		}
		previous = &point
	}
}

// RouteChat relays, for every incoming note, all notes previously recorded
// at that note's location back to the caller, then records the incoming
// note. A clean end of input closes the outbound stream; an input error is
// logged and ends the call, leaving already-recorded notes visible to other
// callers.
func (s *Service) RouteChat(stream grpc.BidiStreamingServer[v1.RouteNote, v1.RouteNote]) error {
	for {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			s.log.Warn("route chat input stream aborted", "error", err)
			return err
		}

		snapshot := s.notes.SnapshotAndAppend(RouteNoteFromProto(req))
		metrics.NotesAppendedTotal.Inc()

		for _, note := range snapshot {
			if err := stream.Send(RouteNoteToProto(note)); err != nil {
				return err
			}
		}
	}
}
