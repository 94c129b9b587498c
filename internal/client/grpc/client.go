// Package grpc provides the RouteGuide client used by the CLI commands.
package grpc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/inovacc/routeguide/internal/geo"
	v1 "github.com/inovacc/routeguide/pkg/api/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Client wraps the RouteGuide gRPC client with domain-typed helpers.
type Client struct {
	conn    *grpc.ClientConn
	service v1.RouteGuideClient
	timeout time.Duration
}

// New connects to addr and verifies the server is healthy. An empty addr
// triggers discovery (env var, then server info file, then the default).
func New(addr string) (*Client, error) {
	if addr == "" {
		addr = discoverServerAddress()
	}

	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC client: %w", err)
	}

	healthClient := healthpb.NewHealthClient(conn)

	healthCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := healthClient.Check(healthCtx, &healthpb.HealthCheckRequest{})
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("server not reachable at %s: %w", addr, err)
	}

	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		_ = conn.Close()
		return nil, fmt.Errorf("server at %s is not serving", addr)
	}

	return &Client{
		conn:    conn,
		service: v1.NewRouteGuideClient(conn),
		timeout: 30 * time.Second,
	}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}

	return nil
}

// GetFeature looks up the feature at p. An unnamed result means nothing is
// known at that location.
func (c *Client) GetFeature(ctx context.Context, p geo.Point) (geo.Feature, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	f, err := c.service.GetFeature(ctx, pointToProto(p))
	if err != nil {
		return geo.Feature{}, err
	}

	return featureFromProto(f), nil
}

// ListFeatures invokes fn for every named feature inside rect, in the order
// the server streams them. Iteration stops on the first fn error.
func (c *Client) ListFeatures(ctx context.Context, rect geo.Rectangle, fn func(geo.Feature) error) error {
	stream, err := c.service.ListFeatures(ctx, &v1.Rectangle{
		Lo: pointToProto(rect.Lo),
		Hi: pointToProto(rect.Hi),
	})
	if err != nil {
		return err
	}

	for {
		f, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := fn(featureFromProto(f)); err != nil {
			return err
		}
	}
}

// RecordRoute streams the given points to the server and returns the
// route summary.
func (c *Client) RecordRoute(ctx context.Context, points []geo.Point) (geo.RouteSummary, error) {
	stream, err := c.service.RecordRoute(ctx)
	if err != nil {
		return geo.RouteSummary{}, err
	}

	for _, p := range points {
		if err := stream.Send(pointToProto(p)); err != nil {
			return geo.RouteSummary{}, err
		}
	}

	summary, err := stream.CloseAndRecv()
	if err != nil {
		return geo.RouteSummary{}, err
	}

	return geo.RouteSummary{
		PointCount:   int(summary.GetPointCount()),
		FeatureCount: int(summary.GetFeatureCount()),
		Distance:     int(summary.GetDistance()),
		ElapsedTime:  int(summary.GetElapsedTime()),
	}, nil
}

// RouteChat sends the given notes and returns every note the server streams
// back, in arrival order.
func (c *Client) RouteChat(ctx context.Context, notes []geo.RouteNote) ([]geo.RouteNote, error) {
	stream, err := c.service.RouteChat(ctx)
	if err != nil {
		return nil, err
	}

	var (
		received []geo.RouteNote
		recvErr  = make(chan error, 1)
	)

	go func() {
		for {
			note, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				recvErr <- nil
				return
			}
			if err != nil {
				recvErr <- err
				return
			}

			received = append(received, geo.RouteNote{
				Location: pointFromProto(note.GetLocation()),
				Message:  note.GetMessage(),
			})
		}
	}()

	for _, n := range notes {
		if err := stream.Send(&v1.RouteNote{
			Location: pointToProto(n.Location),
			Message:  n.Message,
		}); err != nil {
			return nil, err
		}
	}

	if err := stream.CloseSend(); err != nil {
		return nil, err
	}

	if err := <-recvErr; err != nil {
		return nil, err
	}

	return received, nil
}

func pointToProto(p geo.Point) *v1.Point {
	return &v1.Point{Latitude: p.Latitude, Longitude: p.Longitude}
}

func pointFromProto(p *v1.Point) geo.Point {
	return geo.Point{Latitude: p.GetLatitude(), Longitude: p.GetLongitude()}
}

func featureFromProto(f *v1.Feature) geo.Feature {
	return geo.Feature{Name: f.GetName(), Location: pointFromProto(f.GetLocation())}
}
