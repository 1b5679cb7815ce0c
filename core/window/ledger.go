// File: core/window/ledger.go
// Author: momentics <momentics@gmail.com>
//
// Ledger tracks every outstanding loan window of one manipulator and
// applies cursor and cache events to all of them in one place.

package window

// Ledger owns the windows of all outstanding loans. The zero Ledger is
// ready to use.
type Ledger struct {
	windows []*Window
	revoked uint64
}

// Grant registers and returns a new window over positions [lo, hi].
func (l *Ledger) Grant(lo, hi int64) *Window {
	w := New(lo, hi)
	l.windows = append(l.windows, w)
	return w
}

// MoveRight applies one rightward cursor step to every live window.
func (l *Ledger) MoveRight() {
	for _, w := range l.windows {
		w.ShiftRight()
	}
	l.prune()
}

// MoveLeft applies one leftward cursor step to every live window.
func (l *Ledger) MoveLeft() {
	for _, w := range l.windows {
		w.ShiftLeft()
	}
	l.prune()
}

// Invalidate collapses every window that still covers any position in
// [lo, hi]; used when cells are flushed, slurped or evicted.
func (l *Ledger) Invalidate(lo, hi int64) {
	for _, w := range l.windows {
		if w.Overlaps(lo, hi) {
			w.Collapse()
		}
	}
	l.prune()
}

// InvalidateAll collapses every outstanding window.
func (l *Ledger) InvalidateAll() {
	for _, w := range l.windows {
		w.Collapse()
	}
	l.prune()
}

// Outstanding reports how many loans still have a usable window.
func (l *Ledger) Outstanding() int { return len(l.windows) }

// Revoked reports how many windows have died since the ledger was
// created, by shrinking to nothing or by collapse.
func (l *Ledger) Revoked() uint64 { return l.revoked }

// prune drops windows with no remaining valid position. The loan guard
// keeps its own pointer to the window, so dropping it here only stops
// further shifting work; expiry checks still see the collapsed state.
func (l *Ledger) prune() {
	live := l.windows[:0]
	for _, w := range l.windows {
		if w.Empty() {
			l.revoked++
			continue
		}
		live = append(live, w)
	}
	l.windows = live
}
