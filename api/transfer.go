// Package api
// Author: momentics <momentics@gmail.com>
//
// Ownership-transfer capabilities: move an item into or out of the
// current cell.

package api

// Reader moves items out of the sequence.
type Reader[T any] interface {
	// Read removes the item held by the current cell, leaves the cell
	// empty, advances the cursor one cell right and returns the item.
	// Fails with CodeCellEmpty (state unchanged) when the current cell
	// holds nothing.
	Read() (T, error)
}

// Writer moves items into the sequence.
type Writer[T any] interface {
	// Write moves item into the current cell and advances the cursor
	// one cell right. Fails with CodeCellOccupied (state unchanged)
	// when the current cell already holds an item.
	Write(item T) error
}
