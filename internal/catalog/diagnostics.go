package catalog

import (
	"fmt"
	"sync"
)

// Feed names the sheet a row came from.
type Feed string

const (
	FeedSongs   Feed = "songs"
	FeedArtists Feed = "artists"
)

// DroppedRow records a row the mapper skipped.
type DroppedRow struct {
	Feed Feed
	// Index is the zero-based data row index, not counting the header.
	Index  int
	Reason string
}

// String returns a one-line description such as "songs row 4: missing artist".
func (d DroppedRow) String() string {
	return fmt.Sprintf("%s row %d: %s", d.Feed, d.Index, d.Reason)
}

// Diagnostics collects dropped rows. It is safe for concurrent use, and a nil
// *Diagnostics ignores everything.
type Diagnostics struct {
	mu   sync.Mutex
	rows []DroppedRow
}

// NewDiagnostics returns an empty collector.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{}
}

func (d *Diagnostics) record(feed Feed, index int, reason string) {
	if d == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rows = append(d.rows, DroppedRow{Feed: feed, Index: index, Reason: reason})
}

// Rows returns a copy of the recorded rows in the order they were dropped.
func (d *Diagnostics) Rows() []DroppedRow {
	if d == nil {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]DroppedRow, len(d.rows))
	copy(out, d.rows)
	return out
}

// Len returns the number of recorded rows.
func (d *Diagnostics) Len() int {
	if d == nil {
		return 0
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.rows)
}

// Reset discards recorded rows.
func (d *Diagnostics) Reset() {
	if d == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rows = nil
}
