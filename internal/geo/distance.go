package geo

import "math"

// earthRadiusMeters is the mean Earth radius used by the haversine formula.
const earthRadiusMeters = 6371000

// Distance returns the great-circle distance between two points in meters,
// computed with the haversine formula and truncated toward zero.
func Distance(a, b Point) int {
	lat1 := toRadians(a.LatitudeDegrees())
	lat2 := toRadians(b.LatitudeDegrees())
	lon1 := toRadians(a.LongitudeDegrees())
	lon2 := toRadians(b.LongitudeDegrees())

	deltaLat := lat2 - lat1
	deltaLon := lon2 - lon1

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return int(earthRadiusMeters * c)
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
