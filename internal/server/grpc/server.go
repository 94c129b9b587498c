package grpc

import (
	"log/slog"
	"time"

	"github.com/inovacc/routeguide/internal/store"
	v1 "github.com/inovacc/routeguide/pkg/api/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
)

// ServerWithHealth wraps the gRPC server, health service, and idle tracker
// for lifecycle management.
type ServerWithHealth struct {
	GRPCServer   *grpc.Server
	HealthServer *health.Server
	IdleTracker  *IdleTracker
}

// NewServer creates a gRPC server with interceptors, the health service,
// and the RouteGuide service registered. If idleTimeout is > 0 the server
// tracks activity and signals shutdown after being idle that long.
func NewServer(features *store.FeatureStore, logger *slog.Logger, idleTimeout time.Duration) *ServerWithHealth {
	idleTracker := NewIdleTracker(idleTimeout)

	unary := []grpc.UnaryServerInterceptor{
		recoveryInterceptor(logger),
		loggingInterceptor(logger),
		metricsInterceptor(),
		timeoutInterceptor(30 * time.Second),
	}

	// No timeout interceptor on streams: clients may keep a route or chat
	// stream open for as long as they send.
	stream := []grpc.StreamServerInterceptor{
		streamRecoveryInterceptor(logger),
		streamLoggingInterceptor(logger),
		streamMetricsInterceptor(),
	}

	if idleTracker.IsEnabled() {
		unary = append([]grpc.UnaryServerInterceptor{activityInterceptor(idleTracker)}, unary...)
		stream = append([]grpc.StreamServerInterceptor{streamActivityInterceptor(idleTracker)}, stream...)
	}

	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(unary...),
		grpc.ChainStreamInterceptor(stream...),
		grpc.ConnectionTimeout(10 * time.Second),
		grpc.KeepaliveParams(keepalive.ServerParameters{
			MaxConnectionIdle: 15 * time.Minute,
			Time:              5 * time.Minute,
			Timeout:           20 * time.Second,
		}),
		grpc.MaxRecvMsgSize(4 * 1024 * 1024),
		grpc.MaxSendMsgSize(4 * 1024 * 1024),
	}

	srv := grpc.NewServer(opts...)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	v1.RegisterRouteGuideServer(srv, NewService(features, logger))

	return &ServerWithHealth{
		GRPCServer:   srv,
		HealthServer: healthServer,
		IdleTracker:  idleTracker,
	}
}
