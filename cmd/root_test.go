package cmd

import (
	"testing"

	"github.com/inovacc/routeguide/internal/geo"
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		name    string
		lat     string
		lon     string
		want    geo.Point
		wantErr bool
	}{
		{
			name: "valid pair",
			lat:  "409146138",
			lon:  "-746188906",
			want: geo.Point{Latitude: 409146138, Longitude: -746188906},
		},
		{
			name: "zero",
			lat:  "0",
			lon:  "0",
			want: geo.Point{},
		},
		{
			name:    "non-numeric latitude",
			lat:     "north",
			lon:     "0",
			wantErr: true,
		},
		{
			name:    "non-numeric longitude",
			lat:     "0",
			lon:     "west",
			wantErr: true,
		},
		{
			name:    "decimal degrees are rejected",
			lat:     "40.9146138",
			lon:     "-74.6188906",
			wantErr: true,
		},
		{
			name:    "overflows int32",
			lat:     "4000000000",
			lon:     "0",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePoint(tt.lat, tt.lon)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parsePoint(%q, %q) error = %v, wantErr %v", tt.lat, tt.lon, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parsePoint(%q, %q) = %+v, want %+v", tt.lat, tt.lon, got, tt.want)
			}
		})
	}
}
