package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/inovacc/routeguide/internal/geo"
)

func testStore() *FeatureStore {
	return New([]geo.Feature{
		{Name: "A", Location: geo.Point{Latitude: 400000000, Longitude: -740000000}},
		{Name: "B", Location: geo.Point{Latitude: 410000000, Longitude: -745000000}},
		{Location: geo.Point{Latitude: 405000000, Longitude: -742000000}}, // unnamed
		{Name: "C", Location: geo.Point{Latitude: 500000000, Longitude: -700000000}},
	})
}

func TestLookupAt(t *testing.T) {
	s := testStore()

	t.Run("known point", func(t *testing.T) {
		f := s.LookupAt(geo.Point{Latitude: 400000000, Longitude: -740000000})
		if f.Name != "A" {
			t.Errorf("LookupAt returned %q, want %q", f.Name, "A")
		}
		if !f.Exists() {
			t.Error("feature at known point should exist")
		}
	})

	t.Run("unknown point", func(t *testing.T) {
		p := geo.Point{Latitude: 1, Longitude: 2}
		f := s.LookupAt(p)
		if f.Exists() {
			t.Errorf("LookupAt(%+v) = %+v, want non-existing feature", p, f)
		}
		if f.Location != p {
			t.Errorf("miss should echo the queried location, got %+v", f.Location)
		}
	})

	t.Run("near miss one unit away", func(t *testing.T) {
		f := s.LookupAt(geo.Point{Latitude: 400000001, Longitude: -740000000})
		if f.Exists() {
			t.Error("lookup requires exact coordinate equality")
		}
	})
}

func TestScanWithin(t *testing.T) {
	s := testStore()

	collect := func(rect geo.Rectangle) []string {
		var names []string
		for f := range s.ScanWithin(rect) {
			names = append(names, f.Name)
		}
		return names
	}

	t.Run("normalized rectangle", func(t *testing.T) {
		got := collect(geo.Rectangle{
			Lo: geo.Point{Latitude: 400000000, Longitude: -750000000},
			Hi: geo.Point{Latitude: 420000000, Longitude: -730000000},
		})
		want := []string{"A", "B"}
		if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
			t.Errorf("ScanWithin = %v, want %v", got, want)
		}
	})

	t.Run("swapped corners find the same features", func(t *testing.T) {
		got := collect(geo.Rectangle{
			Lo: geo.Point{Latitude: 420000000, Longitude: -730000000},
			Hi: geo.Point{Latitude: 400000000, Longitude: -750000000},
		})
		if len(got) != 2 {
			t.Errorf("ScanWithin with swapped corners = %v, want 2 features", got)
		}
	})

	t.Run("unnamed entries are never yielded", func(t *testing.T) {
		got := collect(geo.Rectangle{
			Lo: geo.Point{Latitude: -900000000, Longitude: -1800000000},
			Hi: geo.Point{Latitude: 900000000, Longitude: 1800000000},
		})
		for _, name := range got {
			if name == "" {
				t.Fatal("scan yielded an unnamed feature")
			}
		}
		if len(got) != 3 {
			t.Errorf("whole-world scan = %v, want the 3 named features", got)
		}
	})

	t.Run("empty region", func(t *testing.T) {
		got := collect(geo.Rectangle{
			Lo: geo.Point{Latitude: -100000000, Longitude: 100000000},
			Hi: geo.Point{Latitude: -200000000, Longitude: 200000000},
		})
		if len(got) != 0 {
			t.Errorf("ScanWithin over empty region = %v, want none", got)
		}
	})
}

func TestNewCopiesInput(t *testing.T) {
	features := []geo.Feature{
		{Name: "A", Location: geo.Point{Latitude: 1, Longitude: 1}},
	}
	s := New(features)

	features[0].Name = "mutated"

	if f := s.LookupAt(geo.Point{Latitude: 1, Longitude: 1}); f.Name != "A" {
		t.Errorf("store observed caller mutation, got %q", f.Name)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "db.json")

	data := `{
		"feature": [
			{"name": "Patriots Path", "location": {"latitude": 407838351, "longitude": -746143763}},
			{"name": "", "location": {"latitude": 409146138, "longitude": -746188906}}
		]
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}

	f := s.LookupAt(geo.Point{Latitude: 407838351, Longitude: -746143763})
	if f.Name != "Patriots Path" {
		t.Errorf("LookupAt after Load = %q, want %q", f.Name, "Patriots Path")
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
			t.Error("Load of missing file should fail")
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		if err := os.WriteFile(path, []byte(`{"feature": [{`), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("Load of malformed file should fail")
		}
	})
}
