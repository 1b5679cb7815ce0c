// Package api
// Author: momentics <momentics@gmail.com>
//
// The tape seam between a buffered manipulator and its physical store.

package api

// Cell is one tape cell: empty, or holding exactly one item.
type Cell[T any] struct {
	Item T
	Full bool
}

// Tape is the synchronous physical store a buffered manipulator caches.
//
// Positions are absolute cell indices. A tape realizes the cell range
// [lo, hi) reported by Extent; everything outside it is conceptually
// empty. Load and Store must complete before returning (the model has
// no deferred I/O).
type Tape[T any] interface {
	// Load copies cells starting at pos into dst and returns how many
	// of them lie inside the realized extent. Cells past the extent are
	// not touched; a pos at or beyond the extent yields (0, nil).
	Load(pos int64, dst []Cell[T]) (int, error)

	// Store writes len(src) cells starting at pos. Storing at or past
	// the current extent extends it when the tape supports growth and
	// fails with CodeOutOfRange otherwise.
	Store(pos int64, src []Cell[T]) error

	// Extent reports the realized cell range [lo, hi).
	Extent() (lo, hi int64)
}

// TapeStopper is implemented by tapes that want teardown notifications
// forwarded from the manipulator (closing a file, releasing a
// connection). Reasons are opaque to the core.
type TapeStopper interface {
	StopRead(reason any) error
	StopWrite(reason any) error
}
