// Package api
// Author: momentics <momentics@gmail.com>
//
// Bulk-transfer windowing: lending capabilities lifted from one cell to
// a loaf (nonempty contiguous span) of cells.
//
// Direction decides who controls the count. For input-direction
// operations the caller supplies the loaf and the manipulator reports
// how many leading items it consumed. For output-direction operations
// the manipulator returns a span loan and the caller decides how many
// of its cells to use; the validity window decides which of them remain
// safe as the cursor moves or flush/slurp occurs.

package api

import "github.com/momentics/hioload-seq/loaf"

// SpanLoan is a scoped read view of a lent run of cells.
//
// Indices are span-relative: 0 addresses the cell the cursor stood on
// when the loan was granted. The window shrinks as the cursor moves
// (one cell off the low end per rightward step, one off the high end
// per leftward step) and collapses when any covered cell is flushed,
// slurped or evicted. An index that has left the window is permanently
// invalid.
type SpanLoan[T any] interface {
	// Len reports how many cells the span covered when lent.
	Len() int

	// At copies out the item at span index i. Fails with
	// CodeLoanExpired when i is outside the current window.
	At(i int) (T, error)

	// Valid reports whether any index of the span is still usable.
	Valid() bool
}

// MutSpanLoan is a scoped write view over a lent run of empty cells.
type MutSpanLoan[T any] interface {
	// Len reports how many cells the span covered when lent.
	Len() int

	// Set stores item into span index i, marking that cell occupied.
	// Fails with CodeLoanExpired when i is outside the current window.
	Set(i int, item T) error

	// Valid reports whether any index of the span is still usable.
	Valid() bool
}

// RefInWriterBulk consumes a leading run of a caller-supplied loaf.
type RefInWriterBulk[T any] interface {
	RefInWriter[T]

	// WriteRefInMany copies leading items of the loaf into consecutive
	// cells, advancing the cursor per item, and reports how many items
	// it consumed. Bulk prefix semantics: at least one on success,
	// never more than the loaf's length.
	WriteRefInMany(items loaf.Loaf[T]) (int, error)
}

// RefInWriterLongBulk is the long-lived-reference variant of
// RefInWriterBulk; see RefInWriterLong for the retention contract.
type RefInWriterLongBulk[T any] interface {
	RefInWriterLong[T]

	WriteRefInLongMany(items loaf.Loaf[T]) (int, error)
}

// RefInReaderBulk fills a leading run of a caller-supplied loaf.
type RefInReaderBulk[T any] interface {
	RefInReader[T]

	// ReadRefInMany moves items from consecutive cells into leading
	// slots of the loaf, advancing the cursor per item, and reports
	// how many slots it filled. Bulk prefix semantics.
	ReadRefInMany(items loaf.Loaf[T]) (int, error)
}

// RefInReaderLongBulk is the long-lived-reference variant of
// RefInReaderBulk.
type RefInReaderLongBulk[T any] interface {
	RefInReaderLong[T]

	ReadRefInLongMany(items loaf.Loaf[T]) (int, error)
}

// RefOutWriterBulk lends out the run of empty cells at the cursor.
type RefOutWriterBulk[T any] interface {
	RefOutWriter[T]

	// WriteRefOutMany returns a write loan over the nonempty run of
	// empty cells at and right of the cursor. Fails with
	// CodeCellOccupied when the current cell holds an item. The cursor
	// does not move.
	WriteRefOutMany() (MutSpanLoan[T], error)
}

// RefOutReaderBulk lends out the run of occupied cells at the cursor.
type RefOutReaderBulk[T any] interface {
	RefOutReader[T]

	// ReadRefOutMany returns a read loan over the nonempty run of
	// occupied cells at and right of the cursor. Fails with
	// CodeCellEmpty when the current cell holds nothing. The cursor
	// does not move.
	ReadRefOutMany() (SpanLoan[T], error)
}
