// Package notelog implements the shared, concurrent per-location note log
// backing the RouteChat handler.
package notelog

import (
	"sync"

	"github.com/inovacc/routeguide/internal/geo"
)

// Log maps points to append-only note sequences. Per-point logs are created
// on first write; concurrent first writers always observe the same
// underlying log. Appends are serialized per point, so writers to distinct
// points never contend with each other.
type Log struct {
	entries sync.Map // geo.Point -> *entry
}

type entry struct {
	mu    sync.Mutex
	notes []geo.RouteNote
}

// New returns an empty log.
func New() *Log {
	return &Log{}
}

// SnapshotAndAppend takes a snapshot of the notes already recorded at the
// note's location, appends the note, and returns the snapshot. The snapshot
// never contains the note just appended. Snapshot and append happen under
// one per-point lock, so no append is ever lost; two writers racing on the
// same point may each get a snapshot missing the other's note.
func (l *Log) SnapshotAndAppend(note geo.RouteNote) []geo.RouteNote {
	e := l.entry(note.Location)

	e.mu.Lock()
	defer e.mu.Unlock()

	snapshot := make([]geo.RouteNote, len(e.notes))
	copy(snapshot, e.notes)
	e.notes = append(e.notes, note)

	return snapshot
}

// Notes returns a copy of all notes recorded at p so far, in receipt order.
func (l *Log) Notes(p geo.Point) []geo.RouteNote {
	v, ok := l.entries.Load(p)
	if !ok {
		return nil
	}

	e := v.(*entry)

	e.mu.Lock()
	defer e.mu.Unlock()

	snapshot := make([]geo.RouteNote, len(e.notes))
	copy(snapshot, e.notes)

	return snapshot
}

// entry returns the log for p, creating it if absent. LoadOrStore keeps
// creation race-free: losers of the race adopt the winner's entry.
func (l *Log) entry(p geo.Point) *entry {
	if v, ok := l.entries.Load(p); ok {
		return v.(*entry)
	}

	v, _ := l.entries.LoadOrStore(p, &entry{})

	return v.(*entry)
}
