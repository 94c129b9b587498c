// Package geo holds the domain types for the route guide: fixed-point
// coordinates, named features, bounding rectangles, and route statistics.
package geo

// CoordFactor converts between E7 integer coordinates and decimal degrees.
const CoordFactor = 1e7

// Point is a latitude/longitude pair in E7 representation (degrees
// multiplied by 1e7, stored as signed integers). Points compare by exact
// integer equality and are usable as map keys; two points one E7 unit
// apart are distinct.
type Point struct {
	Latitude  int32
	Longitude int32
}

// LatitudeDegrees returns the latitude in decimal degrees.
func (p Point) LatitudeDegrees() float64 {
	return float64(p.Latitude) / CoordFactor
}

// LongitudeDegrees returns the longitude in decimal degrees.
func (p Point) LongitudeDegrees() float64 {
	return float64(p.Longitude) / CoordFactor
}

// Feature is a named location. A feature exists iff its name is non-empty;
// an unnamed feature means "nothing known here" and still carries a valid
// location.
type Feature struct {
	Name     string
	Location Point
}

// Exists reports whether the feature denotes a real catalog entry.
func (f Feature) Exists() bool {
	return f.Name != ""
}

// Rectangle is a bounding box given by two corner points. The corners may
// arrive in any orientation; Bounds normalizes them.
type Rectangle struct {
	Lo Point
	Hi Point
}

// Bounds are normalized, inclusive rectangle edges.
type Bounds struct {
	MinLatitude  int32
	MaxLatitude  int32
	MinLongitude int32
	MaxLongitude int32
}

// Bounds returns the normalized bounds of the rectangle.
func (r Rectangle) Bounds() Bounds {
	return Bounds{
		MinLatitude:  min(r.Lo.Latitude, r.Hi.Latitude),
		MaxLatitude:  max(r.Lo.Latitude, r.Hi.Latitude),
		MinLongitude: min(r.Lo.Longitude, r.Hi.Longitude),
		MaxLongitude: max(r.Lo.Longitude, r.Hi.Longitude),
	}
}

// Contains reports whether p falls inside the bounds, edges included.
func (b Bounds) Contains(p Point) bool {
	return p.Latitude >= b.MinLatitude && p.Latitude <= b.MaxLatitude &&
		p.Longitude >= b.MinLongitude && p.Longitude <= b.MaxLongitude
}

// RouteNote is a chat message attached to a location. The location acts as
// the room key; notes at the same point are ordered by receipt.
type RouteNote struct {
	Location Point
	Message  string
}

// RouteSummary aggregates a client-streamed sequence of points.
type RouteSummary struct {
	PointCount   int
	FeatureCount int
	Distance     int // meters
	ElapsedTime  int // seconds
}
