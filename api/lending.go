// Package api
// Author: momentics <momentics@gmail.com>
//
// Reference-lending capabilities: transfer item contents through
// borrowed storage instead of moving ownership.
//
// In-bound lending copies through a caller-owned pointer and carries
// the same cursor-advance effect as the owning transfer it mirrors.
// Out-bound lending parks the cursor on the cell and hands out a view
// of it; the view's validity is governed by a shrink-only window that
// loses cells as the cursor moves and collapses when an affected cell
// is flushed or slurped.

package api

// Loan is a scoped read view of one lent cell.
//
// Each use is checked against the loan's validity window; once the
// window has excluded the cell, every further use fails with
// CodeLoanExpired. A window never re-admits an excluded cell.
type Loan[T any] interface {
	// Value copies the loaned item out.
	Value() (T, error)

	// Valid reports whether the loan may still be used.
	Valid() bool
}

// MutLoan is a scoped write slot for one lent empty cell.
type MutLoan[T any] interface {
	// Set stores item into the loaned cell. The first successful Set
	// marks the cell occupied; further Sets overwrite in place while
	// the loan remains valid.
	Set(item T) error

	// Valid reports whether the loan may still be used.
	Valid() bool
}

// RefInWriter fills the current cell from a caller-owned value.
type RefInWriter[T any] interface {
	// WriteRefIn copies *item into the current empty cell and advances
	// the cursor, without taking ownership of item. The pointer must
	// not be retained by the manipulator past the call.
	WriteRefIn(item *T) error
}

// RefInWriterLong is the variant of RefInWriter for pointers known to
// outlive the manipulator. Implementations may retain the pointer
// until teardown, enabling zero-copy backends; for copying backends
// the two variants behave identically.
type RefInWriterLong[T any] interface {
	WriteRefInLong(item *T) error
}

// RefInReader drains the current cell into a caller-owned value.
type RefInReader[T any] interface {
	// ReadRefIn moves the current cell's item into *item, leaves the
	// cell empty and advances the cursor. The pointer must not be
	// retained by the manipulator past the call.
	ReadRefIn(item *T) error
}

// RefInReaderLong is the long-lived-pointer variant of RefInReader;
// see RefInWriterLong for the retention contract.
type RefInReaderLong[T any] interface {
	ReadRefInLong(item *T) error
}

// RefOutWriter lends out the current empty cell as a write slot.
type RefOutWriter[T any] interface {
	// WriteRefOut returns a write slot for the current cell. Fails with
	// CodeCellOccupied when the cell already holds an item. The cursor
	// does not move.
	WriteRefOut() (MutLoan[T], error)
}

// RefOutWriterLong is offered only by backends whose cell storage is
// stable for the manipulator's whole lifetime; the returned pointer
// may be held arbitrarily long.
type RefOutWriterLong[T any] interface {
	WriteRefOutLong() (*T, error)
}

// RefOutReader lends out the current occupied cell as a read view.
type RefOutReader[T any] interface {
	// ReadRefOut returns a read view of the current cell. Fails with
	// CodeCellEmpty when the cell holds nothing. The cursor does not
	// move and the cell keeps its item.
	ReadRefOut() (Loan[T], error)
}

// RefOutReaderLong is the stable-storage variant of RefOutReader; see
// RefOutWriterLong.
type RefOutReaderLong[T any] interface {
	ReadRefOutLong() (*T, error)
}
