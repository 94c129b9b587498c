package notelog

import (
	"fmt"
	"sync"
	"testing"

	"github.com/inovacc/routeguide/internal/geo"
)

func TestSnapshotAndAppendOrdering(t *testing.T) {
	l := New()
	p := geo.Point{Latitude: 400000000, Longitude: -740000000}

	n1 := geo.RouteNote{Location: p, Message: "first"}
	n2 := geo.RouteNote{Location: p, Message: "second"}
	n3 := geo.RouteNote{Location: p, Message: "third"}

	if snap := l.SnapshotAndAppend(n1); len(snap) != 0 {
		t.Errorf("first snapshot = %v, want empty", snap)
	}

	snap := l.SnapshotAndAppend(n2)
	if len(snap) != 1 || snap[0].Message != "first" {
		t.Errorf("second snapshot = %v, want [first]", snap)
	}

	snap = l.SnapshotAndAppend(n3)
	if len(snap) != 2 || snap[0].Message != "first" || snap[1].Message != "second" {
		t.Errorf("third snapshot = %v, want [first second]", snap)
	}

	all := l.Notes(p)
	if len(all) != 3 {
		t.Fatalf("Notes() returned %d notes, want 3", len(all))
	}
	for i, want := range []string{"first", "second", "third"} {
		if all[i].Message != want {
			t.Errorf("Notes()[%d] = %q, want %q", i, all[i].Message, want)
		}
	}
}

func TestPointsAreIndependent(t *testing.T) {
	l := New()
	p := geo.Point{Latitude: 1, Longitude: 1}
	q := geo.Point{Latitude: 1, Longitude: 2}

	l.SnapshotAndAppend(geo.RouteNote{Location: p, Message: "at p"})

	if snap := l.SnapshotAndAppend(geo.RouteNote{Location: q, Message: "at q"}); len(snap) != 0 {
		t.Errorf("note at a different point leaked into snapshot: %v", snap)
	}

	if notes := l.Notes(p); len(notes) != 1 {
		t.Errorf("Notes(p) = %v, want 1 note", notes)
	}
	if notes := l.Notes(q); len(notes) != 1 {
		t.Errorf("Notes(q) = %v, want 1 note", notes)
	}
}

func TestNotesUnknownPoint(t *testing.T) {
	l := New()

	if notes := l.Notes(geo.Point{Latitude: 9, Longitude: 9}); notes != nil {
		t.Errorf("Notes at untouched point = %v, want nil", notes)
	}
}

func TestNotesReturnsCopy(t *testing.T) {
	l := New()
	p := geo.Point{Latitude: 1, Longitude: 1}
	l.SnapshotAndAppend(geo.RouteNote{Location: p, Message: "original"})

	notes := l.Notes(p)
	notes[0].Message = "mutated"

	if got := l.Notes(p)[0].Message; got != "original" {
		t.Errorf("caller mutation leaked into log: %q", got)
	}
}

func TestConcurrentAppendsSamePoint(t *testing.T) {
	const writers = 64

	l := New()
	p := geo.Point{Latitude: 400000000, Longitude: -740000000}

	lengths := make(chan int, writers)

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			snap := l.SnapshotAndAppend(geo.RouteNote{
				Location: p,
				Message:  fmt.Sprintf("note-%d", i),
			})
			lengths <- len(snap)
		}(i)
	}
	wg.Wait()
	close(lengths)

	// No append may be lost.
	if got := len(l.Notes(p)); got != writers {
		t.Fatalf("Notes() has %d entries, want %d", got, writers)
	}

	// Snapshot and append are atomic per point, so each writer observes a
	// distinct prefix length: the lengths are a permutation of 0..writers-1.
	seen := make(map[int]bool, writers)
	for n := range lengths {
		if n < 0 || n >= writers {
			t.Fatalf("snapshot length %d out of range", n)
		}
		if seen[n] {
			t.Fatalf("two writers observed the same snapshot length %d", n)
		}
		seen[n] = true
	}
}
