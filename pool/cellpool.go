// File: pool/cellpool.go
// Package pool implements slab-style reuse of cell cache storage with
// size class support.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync"
	"sync/atomic"

	"github.com/momentics/hioload-seq/api"
)

// Predefined (power-of-four) cache size classes, in cells.
// This table can be tuned for deployment needs.
var cellClasses = [...]int{
	16,
	64,
	256,
	1024,
	4096,
}

// cellClassUpperBound returns the smallest class >= requested size.
func cellClassUpperBound(n int) int {
	for _, c := range cellClasses {
		if n <= c {
			return c
		}
	}
	return cellClasses[len(cellClasses)-1] // fallback: biggest class
}

// CellPool recycles the cell slices that back manipulator caches, one
// subpool per size class. Returned slices are always zeroed: a cache
// must never observe another manipulator's stale items.
type CellPool[T any] struct {
	mu      sync.Mutex
	classes map[int]*sync.Pool

	totalAlloc atomic.Int64
	totalFree  atomic.Int64
}

// NewCellPool creates an empty pool; subpools are allocated lazily on
// first use of each size class.
func NewCellPool[T any]() *CellPool[T] {
	return &CellPool[T]{classes: make(map[int]*sync.Pool)}
}

// Get returns a zeroed cell slice of length n, with capacity rounded up
// to the class bound.
func (p *CellPool[T]) Get(n int) []api.Cell[T] {
	if n <= 0 {
		return nil
	}
	class := cellClassUpperBound(n)
	if n > class {
		// Above the biggest class: allocate directly, never pooled.
		p.totalAlloc.Add(1)
		return make([]api.Cell[T], n)
	}
	sub := p.subpool(class)
	raw := sub.Get()
	if raw == nil {
		p.totalAlloc.Add(1)
		return make([]api.Cell[T], n, class)
	}
	cells := raw.([]api.Cell[T])[:class]
	var zero api.Cell[T]
	for i := range cells {
		cells[i] = zero
	}
	return cells[:n]
}

// Put returns a cell slice for reuse. Oversized or foreign slices are
// dropped on the floor.
func (p *CellPool[T]) Put(cells []api.Cell[T]) {
	class := cap(cells)
	if class == 0 {
		return
	}
	if sub := p.lookup(class); sub != nil {
		sub.Put(cells[:class])
		p.totalFree.Add(1)
	}
}

// Stats reports cumulative allocation accounting.
func (p *CellPool[T]) Stats() CellPoolStats {
	alloc := p.totalAlloc.Load()
	free := p.totalFree.Load()
	return CellPoolStats{TotalAlloc: alloc, TotalFree: free}
}

// CellPoolStats aggregates slab allocation/reuse counters.
type CellPoolStats struct {
	TotalAlloc int64
	TotalFree  int64
}

func (p *CellPool[T]) subpool(class int) *sync.Pool {
	p.mu.Lock()
	defer p.mu.Unlock()
	sub, ok := p.classes[class]
	if !ok {
		sub = &sync.Pool{}
		p.classes[class] = sub
	}
	return sub
}

func (p *CellPool[T]) lookup(class int) *sync.Pool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.classes[class]
}
