// File: fake/slicetape.go
// Author: momentics <momentics@gmail.com>
//
// SliceTape is the in-memory api.Tape used by most buffered-core tests.

package fake

import "github.com/momentics/hioload-seq/api"

// SliceTape realizes cells [0, len) in a plain slice. It grows on
// stores past the end, up to an optional cell limit. Fault injection
// fields let tests fail the next Load or Store.
type SliceTape[T any] struct {
	cells []api.Cell[T]

	// Limit caps growth in cells; zero means unbounded.
	Limit int

	// FailLoad and FailStore, when non-nil, fail the next matching
	// call with the given error and reset to nil.
	FailLoad  error
	FailStore error

	stopReadReasons  []any
	stopWriteReasons []any
}

// NewSliceTape builds a tape over the given cells; the slice is owned
// by the tape afterwards.
func NewSliceTape[T any](cells []api.Cell[T]) *SliceTape[T] {
	return &SliceTape[T]{cells: cells}
}

// FullCells is a convenience constructor: every item becomes one
// occupied cell.
func FullCells[T any](items ...T) []api.Cell[T] {
	cells := make([]api.Cell[T], len(items))
	for i, it := range items {
		cells[i] = api.Cell[T]{Item: it, Full: true}
	}
	return cells
}

// Load implements api.Tape.
func (t *SliceTape[T]) Load(pos int64, dst []api.Cell[T]) (int, error) {
	if err := t.FailLoad; err != nil {
		t.FailLoad = nil
		return 0, err
	}
	if pos < 0 {
		return 0, api.Errf(api.CodeOutOfRange, "load at negative position %d", pos)
	}
	if pos >= int64(len(t.cells)) {
		return 0, nil
	}
	n := copy(dst, t.cells[pos:])
	return n, nil
}

// Store implements api.Tape, growing the realized extent when the
// write lands at or past it.
func (t *SliceTape[T]) Store(pos int64, src []api.Cell[T]) error {
	if err := t.FailStore; err != nil {
		t.FailStore = nil
		return err
	}
	if pos < 0 {
		return api.Errf(api.CodeOutOfRange, "store at negative position %d", pos)
	}
	end := pos + int64(len(src))
	if t.Limit > 0 && end > int64(t.Limit) {
		return api.Errf(api.CodeOutOfRange, "store past cell limit %d", t.Limit)
	}
	for int64(len(t.cells)) < end {
		t.cells = append(t.cells, api.Cell[T]{})
	}
	copy(t.cells[pos:end], src)
	return nil
}

// Extent implements api.Tape.
func (t *SliceTape[T]) Extent() (lo, hi int64) {
	return 0, int64(len(t.cells))
}

// StopRead implements api.TapeStopper, recording the reason.
func (t *SliceTape[T]) StopRead(reason any) error {
	t.stopReadReasons = append(t.stopReadReasons, reason)
	return nil
}

// StopWrite implements api.TapeStopper, recording the reason.
func (t *SliceTape[T]) StopWrite(reason any) error {
	t.stopWriteReasons = append(t.stopWriteReasons, reason)
	return nil
}

// Cell returns a copy of the cell at pos, empty when unrealized.
func (t *SliceTape[T]) Cell(pos int64) api.Cell[T] {
	if pos < 0 || pos >= int64(len(t.cells)) {
		return api.Cell[T]{}
	}
	return t.cells[pos]
}

// Snapshot copies out the realized cells for assertions.
func (t *SliceTape[T]) Snapshot() []api.Cell[T] {
	out := make([]api.Cell[T], len(t.cells))
	copy(out, t.cells)
	return out
}

// StopReadReasons returns the reasons passed to StopRead so far.
func (t *SliceTape[T]) StopReadReasons() []any { return t.stopReadReasons }

// StopWriteReasons returns the reasons passed to StopWrite so far.
func (t *SliceTape[T]) StopWriteReasons() []any { return t.stopWriteReasons }

var _ api.Tape[int] = (*SliceTape[int])(nil)
var _ api.TapeStopper = (*SliceTape[int])(nil)
