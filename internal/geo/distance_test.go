package geo

import "testing"

func TestDistanceSamePoint(t *testing.T) {
	p := Point{Latitude: 409146138, Longitude: -746188906}

	if d := Distance(p, p); d != 0 {
		t.Errorf("Distance(p, p) = %d, want 0", d)
	}
}

func TestDistanceOneDegreeLatitude(t *testing.T) {
	// One degree of latitude along a meridian is R * pi/180, about
	// 111194.93 m with R = 6371 km. The result truncates toward zero.
	a := Point{Latitude: 0, Longitude: 0}
	b := Point{Latitude: 10000000, Longitude: 0}

	if d := Distance(a, b); d != 111194 {
		t.Errorf("Distance(a, b) = %d, want 111194", d)
	}
}

func TestDistanceHalfCircumference(t *testing.T) {
	// Antipodal points on the equator are half the great circle apart,
	// R * pi = 20015086.79... m.
	a := Point{Latitude: 0, Longitude: 0}
	b := Point{Latitude: 0, Longitude: 1800000000}

	if d := Distance(a, b); d != 20015086 {
		t.Errorf("Distance(a, b) = %d, want 20015086", d)
	}
}

func TestDistanceSymmetric(t *testing.T) {
	a := Point{Latitude: 407838351, Longitude: -746143763}
	b := Point{Latitude: 413628156, Longitude: -749015468}

	if d1, d2 := Distance(a, b), Distance(b, a); d1 != d2 {
		t.Errorf("Distance not symmetric: %d vs %d", d1, d2)
	}
	if d := Distance(a, b); d <= 0 {
		t.Errorf("Distance between distinct points = %d, want > 0", d)
	}
}
