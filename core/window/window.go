// File: core/window/window.go
// Author: momentics <momentics@gmail.com>
//
// Shrink-only validity windows for lent references.
//
// A window starts as the full lent span of tape positions. Every
// rightward cursor step excludes the lowest remaining position, every
// leftward step the highest, and flushing, slurping or evicting any
// covered cell collapses the window entirely. A position that has left
// the window never re-enters it, whatever the cursor does afterwards.

package window

// Window is the currently valid range of tape positions for one loan.
// Not safe for concurrent use; the owning manipulator is single-owner
// by contract.
type Window struct {
	lo, hi    int64 // inclusive; meaningful only while !collapsed
	collapsed bool
}

// New returns a window covering positions [lo, hi]. lo must not exceed
// hi; a reversed range yields an already-collapsed window.
func New(lo, hi int64) *Window {
	return &Window{lo: lo, hi: hi, collapsed: lo > hi}
}

// Contains reports whether pos is still valid under this window.
func (w *Window) Contains(pos int64) bool {
	return !w.collapsed && pos >= w.lo && pos <= w.hi
}

// Empty reports whether no position remains valid.
func (w *Window) Empty() bool {
	return w.collapsed || w.lo > w.hi
}

// Bounds returns the remaining valid range [lo, hi]. Meaningless when
// Empty reports true.
func (w *Window) Bounds() (lo, hi int64) { return w.lo, w.hi }

// ShiftRight records one rightward cursor step: the lowest remaining
// position leaves the window permanently.
func (w *Window) ShiftRight() {
	if w.collapsed {
		return
	}
	w.lo++
	if w.lo > w.hi {
		w.collapsed = true
	}
}

// ShiftLeft records one leftward cursor step: the highest remaining
// position leaves the window permanently.
func (w *Window) ShiftLeft() {
	if w.collapsed {
		return
	}
	w.hi--
	if w.lo > w.hi {
		w.collapsed = true
	}
}

// Collapse invalidates every remaining position at once.
func (w *Window) Collapse() { w.collapsed = true }

// Overlaps reports whether any still-valid position lies in [lo, hi].
func (w *Window) Overlaps(lo, hi int64) bool {
	return !w.collapsed && w.lo <= hi && lo <= w.hi
}
