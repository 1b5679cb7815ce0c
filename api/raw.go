// Package api
// Author: momentics <momentics@gmail.com>
//
// Raw-pointer transfer capabilities: the unsafe, zero-copy counterpart
// of ownership transfer, operating through untyped addresses.
//
// Every operation in this group performs (or licenses) exactly one
// logical move per cell. The caller is responsible for the supplied
// address being valid for that single move: readable or writable as
// required, properly aligned for the item type, and not aliased by a
// concurrent writer. Violating that is undefined behavior attributable
// to the caller. A normal error return, by contrast, is always safe to
// request and always leaves defined, unchanged state.

package api

import "unsafe"

// RawInWriter fills the current cell from an untyped address.
type RawInWriter interface {
	// WriteIn moves one item from src (which must point at a valid item
	// of the manipulator's type) into the current empty cell and
	// advances the cursor.
	WriteIn(src unsafe.Pointer) error
}

// RawInReader drains the current cell to an untyped address.
type RawInReader interface {
	// ReadIn moves the current cell's item to dst (which must point at
	// writable storage for one item), leaves the cell empty and
	// advances the cursor.
	ReadIn(dst unsafe.Pointer) error
}

// RawOutWriter lends out the current empty cell's storage.
type RawOutWriter interface {
	// WriteOut marks the current empty cell occupied, advances the
	// cursor and returns the address of the cell's item storage. The
	// caller must store exactly one item through the pointer before
	// the next call on the manipulator; the pointer is invalid the
	// instant a further call is made, and using it after that is
	// undefined behavior.
	WriteOut() (unsafe.Pointer, error)
}

// RawOutReader lends out the current occupied cell's storage.
type RawOutReader interface {
	// ReadOut marks the current cell empty, advances the cursor and
	// returns the address of the item left in the cell's storage. The
	// caller must move the item out before the next call on the
	// manipulator, under the same single-use contract as WriteOut.
	ReadOut() (unsafe.Pointer, error)
}

// RawInWriterBulk transfers a contiguous run of items from memory.
type RawInWriterBulk interface {
	RawInWriter

	// WriteInMany moves up to n items from the array starting at src
	// into consecutive cells, with the prefix semantics of all bulk
	// operations: it stops at the first cell that cannot accept an
	// item and reports how many moves completed. n must be positive;
	// on success the count is at least one.
	WriteInMany(src unsafe.Pointer, n int) (int, error)
}

// RawInReaderBulk transfers a contiguous run of items to memory.
type RawInReaderBulk interface {
	RawInReader

	// ReadInMany moves up to n items from consecutive cells into the
	// array starting at dst, with bulk prefix semantics.
	ReadInMany(dst unsafe.Pointer, n int) (int, error)
}

// RawOutWriterBulk lends out a contiguous run of empty cells.
type RawOutWriterBulk interface {
	RawOutWriter

	// WriteOutMany returns the base address and length of the storage
	// backing the run of empty cells at and right of the cursor. The
	// call itself changes no state: the caller stores up to that many
	// items through the span and then commits with DoWriteOut. The
	// span's safety is governed by the validity window; it dies with
	// the next flush, slurp or cache movement of an affected cell.
	WriteOutMany() (unsafe.Pointer, int, error)

	// DoWriteOut marks the first n cells of the most recent
	// WriteOutMany span occupied and advances the cursor past them.
	// n must be between 1 and the span length.
	DoWriteOut(n int) error
}

// RawOutReaderBulk lends out a contiguous run of occupied cells.
type RawOutReaderBulk interface {
	RawOutReader

	// ReadOutMany returns the base address and length of the storage
	// backing the run of occupied cells at and right of the cursor,
	// under the same no-state-change, commit-later contract as
	// WriteOutMany.
	ReadOutMany() (unsafe.Pointer, int, error)

	// DoReadOut marks the first n cells of the most recent ReadOutMany
	// span empty and advances the cursor past them. The caller must
	// have moved those items out already.
	DoReadOut(n int) error
}
