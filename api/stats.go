// Package api
// Author: momentics <momentics@gmail.com>
//
// Accounting counters exposed by buffered manipulators.

package api

// SeqStats aggregates cache and loan accounting for one manipulator.
// Counters are cumulative since creation. Single-owner model: no
// atomicity is provided or needed.
type SeqStats struct {
	CacheHits    uint64
	CacheMisses  uint64
	Flushes      uint64
	Slurps       uint64
	CellsFlushed uint64
	CellsSlurped uint64
	LoansIssued  uint64
	LoansRevoked uint64
}
