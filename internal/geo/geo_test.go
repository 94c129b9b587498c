package geo

import "testing"

func TestPointDegrees(t *testing.T) {
	p := Point{Latitude: 409146138, Longitude: -746188906}

	if got, want := p.LatitudeDegrees(), 40.9146138; got != want {
		t.Errorf("LatitudeDegrees() = %v, want %v", got, want)
	}
	if got, want := p.LongitudeDegrees(), -74.6188906; got != want {
		t.Errorf("LongitudeDegrees() = %v, want %v", got, want)
	}
}

func TestPointEquality(t *testing.T) {
	a := Point{Latitude: 400000000, Longitude: -740000000}
	b := Point{Latitude: 400000000, Longitude: -740000000}
	c := Point{Latitude: 400000001, Longitude: -740000000}

	if a != b {
		t.Error("identical points should compare equal")
	}
	if a == c {
		t.Error("points one E7 unit apart should compare unequal")
	}

	// Points must be usable as map keys.
	m := map[Point]int{a: 1}
	if m[b] != 1 {
		t.Error("equal point should hit the same map key")
	}
}

func TestFeatureExists(t *testing.T) {
	named := Feature{Name: "Patriots Path", Location: Point{Latitude: 407838351, Longitude: -746143763}}
	unnamed := Feature{Location: Point{Latitude: 1, Longitude: 2}}

	if !named.Exists() {
		t.Error("named feature should exist")
	}
	if unnamed.Exists() {
		t.Error("unnamed feature should not exist")
	}
}

func TestRectangleBounds(t *testing.T) {
	tests := []struct {
		name string
		rect Rectangle
		want Bounds
	}{
		{
			name: "already normalized",
			rect: Rectangle{
				Lo: Point{Latitude: 400000000, Longitude: -750000000},
				Hi: Point{Latitude: 420000000, Longitude: -730000000},
			},
			want: Bounds{
				MinLatitude:  400000000,
				MaxLatitude:  420000000,
				MinLongitude: -750000000,
				MaxLongitude: -730000000,
			},
		},
		{
			name: "swapped corners",
			rect: Rectangle{
				Lo: Point{Latitude: 420000000, Longitude: -730000000},
				Hi: Point{Latitude: 400000000, Longitude: -750000000},
			},
			want: Bounds{
				MinLatitude:  400000000,
				MaxLatitude:  420000000,
				MinLongitude: -750000000,
				MaxLongitude: -730000000,
			},
		},
		{
			name: "mixed orientation",
			rect: Rectangle{
				Lo: Point{Latitude: 400000000, Longitude: -730000000},
				Hi: Point{Latitude: 420000000, Longitude: -750000000},
			},
			want: Bounds{
				MinLatitude:  400000000,
				MaxLatitude:  420000000,
				MinLongitude: -750000000,
				MaxLongitude: -730000000,
			},
		},
		{
			name: "degenerate rectangle is a single point",
			rect: Rectangle{
				Lo: Point{Latitude: 410000000, Longitude: -740000000},
				Hi: Point{Latitude: 410000000, Longitude: -740000000},
			},
			want: Bounds{
				MinLatitude:  410000000,
				MaxLatitude:  410000000,
				MinLongitude: -740000000,
				MaxLongitude: -740000000,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Bounds(); got != tt.want {
				t.Errorf("Bounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{
		MinLatitude:  400000000,
		MaxLatitude:  420000000,
		MinLongitude: -750000000,
		MaxLongitude: -730000000,
	}

	tests := []struct {
		name  string
		point Point
		want  bool
	}{
		{"interior", Point{Latitude: 410000000, Longitude: -740000000}, true},
		{"on min edge", Point{Latitude: 400000000, Longitude: -740000000}, true},
		{"on max edge", Point{Latitude: 420000000, Longitude: -730000000}, true},
		{"corner", Point{Latitude: 400000000, Longitude: -750000000}, true},
		{"just below min latitude", Point{Latitude: 399999999, Longitude: -740000000}, false},
		{"just above max longitude", Point{Latitude: 410000000, Longitude: -729999999}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.point); got != tt.want {
				t.Errorf("Contains(%+v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}
