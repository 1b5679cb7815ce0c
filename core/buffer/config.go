// File: core/buffer/config.go
// Author: momentics <momentics@gmail.com>
//
// Construction options for buffered manipulators.

package buffer

import (
	"github.com/momentics/hioload-seq/api"
	"github.com/momentics/hioload-seq/pool"
)

// DefaultCapacity is the cell cache size used when Config leaves it zero.
const DefaultCapacity = 64

// Config tunes one buffered manipulator.
type Config[T any] struct {
	// Capacity is the number of cells the cache keeps resident around
	// the cursor. Zero selects DefaultCapacity; negative is rejected.
	Capacity int

	// Pool optionally shares cell scratch storage across manipulators
	// of the same item type. Nil allocates a private pool.
	Pool *pool.CellPool[T]
}

func (c Config[T]) normalize() (Config[T], error) {
	if c.Capacity < 0 {
		return c, api.Errf(api.CodeInvalidArgument, "cache capacity must not be negative, got %d", c.Capacity)
	}
	if c.Capacity == 0 {
		c.Capacity = DefaultCapacity
	}
	if c.Pool == nil {
		c.Pool = pool.NewCellPool[T]()
	}
	return c, nil
}
