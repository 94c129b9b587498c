// Package store provides the immutable feature catalog the server reads.
package store

import (
	"fmt"
	"iter"
	"os"

	"github.com/inovacc/routeguide/internal/geo"
	v1 "github.com/inovacc/routeguide/pkg/api/v1"
	"google.golang.org/protobuf/encoding/protojson"
)

// FeatureStore is a read-only, ordered collection of features built once at
// startup. It is never mutated afterwards, so any number of calls may read
// it concurrently without synchronization.
type FeatureStore struct {
	features []geo.Feature
}

// New builds a store from an ordered sequence of features. The slice is
// copied; later changes to the argument do not affect the store.
func New(features []geo.Feature) *FeatureStore {
	fs := make([]geo.Feature, len(features))
	copy(fs, features)
	return &FeatureStore{features: fs}
}

// Load reads a feature database file (a routeguide.v1.FeatureDatabase
// message in protobuf JSON form) and builds a store from it. A malformed or
// unreadable file is a startup failure.
func Load(path string) (*FeatureStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read feature database: %w", err)
	}

	var db v1.FeatureDatabase
	if err := protojson.Unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("failed to parse feature database %s: %w", path, err)
	}

	features := make([]geo.Feature, 0, len(db.GetFeature()))
	for _, f := range db.GetFeature() {
		features = append(features, geo.Feature{
			Name: f.GetName(),
			Location: geo.Point{
				Latitude:  f.GetLocation().GetLatitude(),
				Longitude: f.GetLocation().GetLongitude(),
			},
		})
	}

	return New(features), nil
}

// Len returns the number of catalog entries, named or not.
func (s *FeatureStore) Len() int {
	return len(s.features)
}

// LookupAt returns the first feature located exactly at p, in store order.
// If no entry matches, an unnamed feature at p is returned; absence is a
// normal result, not an error.
func (s *FeatureStore) LookupAt(p geo.Point) geo.Feature {
	for _, f := range s.features {
		if f.Location == p {
			return f
		}
	}

	return geo.Feature{Location: p}
}

// ScanWithin yields, in store order, every named feature whose location
// falls inside the normalized bounds of rect, edges inclusive. Every call
// starts a fresh scan.
func (s *FeatureStore) ScanWithin(rect geo.Rectangle) iter.Seq[geo.Feature] {
	bounds := rect.Bounds()

	return func(yield func(geo.Feature) bool) {
		for _, f := range s.features {
			if !f.Exists() || !bounds.Contains(f.Location) {
				continue
			}

			if !yield(f) {
				return
			}
		}
	}
}
