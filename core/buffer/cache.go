// File: core/buffer/cache.go
// Author: momentics <momentics@gmail.com>
//
// Cell cache residency: lookup, opportunistic read-ahead on miss,
// write-back of dirty runs. Cache movement never changes logical
// content, only which side of the tape seam currently holds it.

package buffer

import "github.com/momentics/hioload-seq/api"

// resident reports whether position p is currently cached.
func (s *Seq[T]) resident(p int64) bool {
	return s.winN > 0 && p >= s.winLo && p < s.winLo+int64(s.winN)
}

// idx maps a resident position to its array index.
func (s *Seq[T]) idx(p int64) int {
	return s.off + int(p-s.winLo)
}

// ensure makes position p resident and returns its array index.
func (s *Seq[T]) ensure(p int64) (int, error) {
	if s.resident(p) {
		s.stats.CacheHits++
		return s.idx(p), nil
	}
	s.stats.CacheMisses++
	back := s.winN > 0 && p < s.winLo
	if err := s.rewindow(p, back); err != nil {
		return 0, err
	}
	return s.idx(p), nil
}

// rewindow flushes and drops the whole cache, then re-populates it
// with a full window containing p: starting at p when moving forward,
// ending at p when moving backward. Every outstanding loan dies with
// the old window, because its cell storage is reused.
func (s *Seq[T]) rewindow(p int64, back bool) error {
	if s.winN > 0 {
		if err := s.flushRange(s.off, s.off+s.winN-1); err != nil {
			return err
		}
		s.ledger.Invalidate(s.winLo, s.winLo+int64(s.winN)-1)
		s.winN = 0
		s.off = 0
	}
	capn := s.cfg.Capacity
	newLo := p
	if back {
		newLo = p - int64(capn) + 1
		if newLo < s.lo {
			newLo = s.lo
		}
	}
	if _, err := s.loadInto(newLo, 0, capn); err != nil {
		return err
	}
	s.winLo = newLo
	s.off = 0
	s.winN = capn
	return nil
}

// loadInto populates array indices [startIdx, startIdx+n) from tape
// positions starting at startPos. Cells past the tape's realized extent
// come back empty. Returns how many cells the tape realized. On error
// nothing is scattered: cache content is exactly as before.
func (s *Seq[T]) loadInto(startPos int64, startIdx, n int) (int, error) {
	r, err := s.tape.Load(startPos, s.scratch[:n])
	if err != nil {
		return 0, backendErr("load", err)
	}
	if r > n {
		r = n
	}
	var zero T
	for k := 0; k < n; k++ {
		i := startIdx + k
		if k < r {
			s.items[i] = s.scratch[k].Item
			s.full[i] = s.scratch[k].Full
		} else {
			s.items[i] = zero
			s.full[i] = false
		}
		s.dirty[i] = false
	}
	// The tape may have grown behind our back; absorb it so movement
	// can reach the new cells.
	if _, hi := s.tape.Extent(); hi > s.extHi {
		s.extHi = hi
	}
	return r, nil
}

// flushRange writes back every dirty cell in array index range [a, b],
// coalescing consecutive dirty cells into single Store calls. Loan
// invalidation is the caller's job: eviction and explicit flush differ
// in which windows they kill.
func (s *Seq[T]) flushRange(a, b int) error {
	for i := a; i <= b; {
		if !s.dirty[i] {
			i++
			continue
		}
		j := i
		for j <= b && s.dirty[j] {
			j++
		}
		n := j - i
		for k := 0; k < n; k++ {
			s.scratch[k] = api.Cell[T]{Item: s.items[i+k], Full: s.full[i+k]}
		}
		pos := s.winLo + int64(i-s.off)
		if err := s.tape.Store(pos, s.scratch[:n]); err != nil {
			return backendErr("flush", err)
		}
		for k := i; k < j; k++ {
			s.dirty[k] = false
		}
		s.stats.CellsFlushed += uint64(n)
		i = j
	}
	return nil
}
