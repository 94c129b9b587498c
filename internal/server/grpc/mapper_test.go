package grpc

import (
	"testing"

	"github.com/inovacc/routeguide/internal/geo"
	v1 "github.com/inovacc/routeguide/pkg/api/v1"
)

func TestPointFromProtoNil(t *testing.T) {
	if got := PointFromProto(nil); got != (geo.Point{}) {
		t.Errorf("PointFromProto(nil) = %+v, want zero point", got)
	}
}

func TestRectangleFromProto(t *testing.T) {
	rect := RectangleFromProto(&v1.Rectangle{
		Lo: &v1.Point{Latitude: 1, Longitude: 2},
		Hi: &v1.Point{Latitude: 3, Longitude: 4},
	})

	want := geo.Rectangle{
		Lo: geo.Point{Latitude: 1, Longitude: 2},
		Hi: geo.Point{Latitude: 3, Longitude: 4},
	}
	if rect != want {
		t.Errorf("RectangleFromProto = %+v, want %+v", rect, want)
	}
}

func TestFeatureToProto(t *testing.T) {
	f := FeatureToProto(geo.Feature{
		Name:     "Patriots Path",
		Location: geo.Point{Latitude: 407838351, Longitude: -746143763},
	})

	if f.GetName() != "Patriots Path" {
		t.Errorf("Name = %q", f.GetName())
	}
	if f.GetLocation().GetLatitude() != 407838351 || f.GetLocation().GetLongitude() != -746143763 {
		t.Errorf("Location = %v", f.GetLocation())
	}
}

func TestRouteSummaryToProto(t *testing.T) {
	s := RouteSummaryToProto(geo.RouteSummary{
		PointCount:   5,
		FeatureCount: 2,
		Distance:     111194,
		ElapsedTime:  7,
	})

	if s.GetPointCount() != 5 || s.GetFeatureCount() != 2 || s.GetDistance() != 111194 || s.GetElapsedTime() != 7 {
		t.Errorf("RouteSummaryToProto = %+v", s)
	}
}
