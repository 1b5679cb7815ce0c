// File: core/buffer/loan.go
// Author: momentics <momentics@gmail.com>
//
// Out-bound reference lending. Every loan is a guard over cached cell
// storage, checked against its validity window on each use. While a
// window is alive its cells are guaranteed resident: anything that
// would move or reuse their storage (rewindow, flush, slurp, teardown)
// collapses the window first.

package buffer

import (
	"github.com/momentics/hioload-seq/api"
	"github.com/momentics/hioload-seq/core/window"
)

// ReadRefOut lends a read view of the current occupied cell. The cursor
// does not move; the loan dies with the next cursor move or with a
// flush/slurp covering the cell.
func (s *Seq[T]) ReadRefOut() (api.Loan[T], error) {
	if s.stoppedR {
		return nil, errStopped("read-ref-out")
	}
	i, err := s.ensure(s.pos)
	if err != nil {
		return nil, err
	}
	if !s.full[i] {
		return nil, api.Errf(api.CodeCellEmpty, "cell %d holds no item", s.pos)
	}
	w := s.ledger.Grant(s.pos, s.pos)
	s.stats.LoansIssued++
	return &loan[T]{seq: s, w: w, base: s.pos}, nil
}

// WriteRefOut lends a write slot for the current empty cell, under the
// same validity rules as ReadRefOut.
func (s *Seq[T]) WriteRefOut() (api.MutLoan[T], error) {
	if s.stoppedW {
		return nil, errStopped("write-ref-out")
	}
	i, err := s.ensure(s.pos)
	if err != nil {
		return nil, err
	}
	if s.full[i] {
		return nil, api.Errf(api.CodeCellOccupied, "cell %d already holds an item", s.pos)
	}
	w := s.ledger.Grant(s.pos, s.pos)
	s.stats.LoansIssued++
	return &mutLoan[T]{seq: s, w: w, base: s.pos}, nil
}

// ReadRefOutMany lends a read view over the run of occupied cells at
// and right of the cursor, bounded by cache residency. Fails with
// CodeCellEmpty when the current cell holds nothing.
func (s *Seq[T]) ReadRefOutMany() (api.SpanLoan[T], error) {
	if s.stoppedR {
		return nil, errStopped("read-ref-out-many")
	}
	i, err := s.ensure(s.pos)
	if err != nil {
		return nil, err
	}
	if !s.full[i] {
		return nil, api.Errf(api.CodeCellEmpty, "cell %d holds no item", s.pos)
	}
	n := s.runLen(true)
	w := s.ledger.Grant(s.pos, s.pos+int64(n)-1)
	s.stats.LoansIssued++
	return &spanLoan[T]{seq: s, w: w, base: s.pos, n: n}, nil
}

// WriteRefOutMany lends a write view over the run of empty cells at and
// right of the cursor, bounded by cache residency. Fails with
// CodeCellOccupied when the current cell holds an item.
func (s *Seq[T]) WriteRefOutMany() (api.MutSpanLoan[T], error) {
	if s.stoppedW {
		return nil, errStopped("write-ref-out-many")
	}
	i, err := s.ensure(s.pos)
	if err != nil {
		return nil, err
	}
	if s.full[i] {
		return nil, api.Errf(api.CodeCellOccupied, "cell %d already holds an item", s.pos)
	}
	n := s.runLen(false)
	w := s.ledger.Grant(s.pos, s.pos+int64(n)-1)
	s.stats.LoansIssued++
	return &mutSpanLoan[T]{seq: s, w: w, base: s.pos, n: n}, nil
}

// runLen counts resident cells from the cursor rightward whose
// occupancy matches wantFull. The cursor cell is known to match.
func (s *Seq[T]) runLen(wantFull bool) int {
	rel := int(s.pos - s.winLo)
	n := 0
	for rel+n < s.winN && s.full[s.off+rel+n] == wantFull {
		n++
	}
	return n
}

// setCell stores item into the resident cell at position abs, marking
// it occupied and dirty, extending the frontier when needed.
func (s *Seq[T]) setCell(abs int64, item T) {
	i := s.idx(abs)
	s.items[i] = item
	s.full[i] = true
	s.dirty[i] = true
	if abs >= s.extHi {
		s.extHi = abs + 1
	}
}

type loan[T any] struct {
	seq  *Seq[T]
	w    *window.Window
	base int64
}

func (l *loan[T]) Valid() bool { return l.w.Contains(l.base) }

func (l *loan[T]) Value() (T, error) {
	var zero T
	if !l.w.Contains(l.base) {
		return zero, expiredErr(l.base)
	}
	return l.seq.items[l.seq.idx(l.base)], nil
}

type mutLoan[T any] struct {
	seq  *Seq[T]
	w    *window.Window
	base int64
}

func (m *mutLoan[T]) Valid() bool { return m.w.Contains(m.base) }

func (m *mutLoan[T]) Set(item T) error {
	if !m.w.Contains(m.base) {
		return expiredErr(m.base)
	}
	m.seq.setCell(m.base, item)
	return nil
}

type spanLoan[T any] struct {
	seq  *Seq[T]
	w    *window.Window
	base int64
	n    int
}

func (l *spanLoan[T]) Len() int    { return l.n }
func (l *spanLoan[T]) Valid() bool { return !l.w.Empty() }

func (l *spanLoan[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= l.n {
		return zero, api.Errf(api.CodeInvalidArgument, "span index %d outside lent span of %d", i, l.n)
	}
	abs := l.base + int64(i)
	if !l.w.Contains(abs) {
		return zero, expiredErr(abs)
	}
	return l.seq.items[l.seq.idx(abs)], nil
}

type mutSpanLoan[T any] struct {
	seq  *Seq[T]
	w    *window.Window
	base int64
	n    int
}

func (m *mutSpanLoan[T]) Len() int    { return m.n }
func (m *mutSpanLoan[T]) Valid() bool { return !m.w.Empty() }

func (m *mutSpanLoan[T]) Set(i int, item T) error {
	if i < 0 || i >= m.n {
		return api.Errf(api.CodeInvalidArgument, "span index %d outside lent span of %d", i, m.n)
	}
	abs := m.base + int64(i)
	if !m.w.Contains(abs) {
		return expiredErr(abs)
	}
	m.seq.setCell(abs, item)
	return nil
}

func expiredErr(pos int64) *api.Error {
	return api.Errf(api.CodeLoanExpired, "cell %d left the loan's validity window", pos)
}
