// File: pool/arena.go
// Author: momentics <momentics@gmail.com>
//
// Page-aligned byte arenas for backends that stage fixed-size pages
// (file tapes, raw bulk transfer scratch). Allocation is
// platform-partitioned: Linux maps hugepages when available, all other
// platforms fall back to the Go heap.

package pool

// Arena is one contiguous byte region with a stable address for its
// whole lifetime. Release returns the region to the OS where it was
// mapped; the arena must not be used afterwards.
type Arena struct {
	raw    []byte // full mapping, kept for unmap
	size   int
	mapped bool
}

// NewArena allocates an arena of exactly size bytes.
func NewArena(size int) *Arena {
	if size <= 0 {
		size = 1
	}
	return newArena(size)
}

// Bytes returns the arena's region.
func (a *Arena) Bytes() []byte { return a.raw[:a.size] }

// Size reports the usable length in bytes.
func (a *Arena) Size() int { return a.size }

// Release returns mapped memory to the OS. Heap-backed arenas are left
// to the garbage collector.
func (a *Arena) Release() {
	if a.mapped {
		releaseArena(a)
		a.mapped = false
	}
	a.raw = nil
	a.size = 0
}
