// Package api
// Author: momentics <momentics@gmail.com>
//
// Movement capabilities: advance or retreat the cursor cell by cell.

package api

// Forward advances the cursor one cell to the right.
type Forward interface {
	// Next moves the cursor to the next cell. If the manipulator's
	// extent forbids the move, state is unchanged and an error with
	// CodeOutOfRange is returned.
	Next() error
}

// Backward retreats the cursor one cell to the left.
type Backward interface {
	// Prev moves the cursor to the previous cell. If the manipulator's
	// extent forbids the move, state is unchanged and an error with
	// CodeOutOfRange is returned.
	Prev() error
}

// ForwardBulk is the optional optimized counterpart of Forward.
//
// Backends implement it only when they can beat the naive loop of
// NextN; callers should reach for NextN, which dispatches here when
// available.
type ForwardBulk interface {
	Forward

	// NextMany attempts up to amount single forward moves and reports
	// how many fully succeeded. It stops at the first failing move:
	// the completed moves stay applied, the returned count (not the
	// requested amount) is authoritative. On success the count is at
	// least one; amount must be positive.
	NextMany(amount int) (int, error)
}

// BackwardBulk is the optional optimized counterpart of Backward.
type BackwardBulk interface {
	Backward

	// PrevMany attempts up to amount single backward moves with the
	// same prefix semantics as NextMany.
	PrevMany(amount int) (int, error)
}
