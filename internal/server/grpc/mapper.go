package grpc

import (
	"github.com/inovacc/routeguide/internal/geo"
	v1 "github.com/inovacc/routeguide/pkg/api/v1"
)

// PointFromProto converts a proto Point to a geo.Point. A nil point maps to
// the zero point.
func PointFromProto(p *v1.Point) geo.Point {
	return geo.Point{Latitude: p.GetLatitude(), Longitude: p.GetLongitude()}
}

// PointToProto converts a geo.Point to its proto form.
func PointToProto(p geo.Point) *v1.Point {
	return &v1.Point{Latitude: p.Latitude, Longitude: p.Longitude}
}

// RectangleFromProto converts a proto Rectangle to a geo.Rectangle.
func RectangleFromProto(r *v1.Rectangle) geo.Rectangle {
	return geo.Rectangle{Lo: PointFromProto(r.GetLo()), Hi: PointFromProto(r.GetHi())}
}

// FeatureToProto converts a geo.Feature to its proto form.
func FeatureToProto(f geo.Feature) *v1.Feature {
	return &v1.Feature{Name: f.Name, Location: PointToProto(f.Location)}
}

// RouteNoteFromProto converts a proto RouteNote to a geo.RouteNote.
func RouteNoteFromProto(n *v1.RouteNote) geo.RouteNote {
	return geo.RouteNote{Location: PointFromProto(n.GetLocation()), Message: n.GetMessage()}
}

// RouteNoteToProto converts a geo.RouteNote to its proto form.
func RouteNoteToProto(n geo.RouteNote) *v1.RouteNote {
	return &v1.RouteNote{Location: PointToProto(n.Location), Message: n.Message}
}

// RouteSummaryToProto converts a geo.RouteSummary to its proto form.
func RouteSummaryToProto(s geo.RouteSummary) *v1.RouteSummary {
	return &v1.RouteSummary{
		PointCount:   int32(s.PointCount),
		FeatureCount: int32(s.FeatureCount),
		Distance:     int32(s.Distance),
		ElapsedTime:  int32(s.ElapsedTime),
	}
}
