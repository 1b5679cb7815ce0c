// File: core/buffer/raw.go
// Author: momentics <momentics@gmail.com>
//
// Raw-pointer transfer: the unsafe capability group. The cache stores
// items in a contiguous []T precisely so these spans carry the natural
// element stride. Address validity is the caller's contract (see
// api.RawInWriter and friends); everything here is well-defined as long
// as that contract holds.

package buffer

import (
	"unsafe"

	"github.com/momentics/hioload-seq/api"
	"github.com/momentics/hioload-seq/core/window"
)

// WriteIn moves one item from src into the current empty cell and
// advances the cursor. src must point at a valid T.
func (s *Seq[T]) WriteIn(src unsafe.Pointer) error {
	if src == nil {
		return api.NewError(api.CodeInvalidArgument, "source address must not be nil")
	}
	return s.Write(*(*T)(src))
}

// ReadIn moves the current cell's item to dst, leaves the cell empty
// and advances the cursor. dst must point at writable storage for one T.
func (s *Seq[T]) ReadIn(dst unsafe.Pointer) error {
	if dst == nil {
		return api.NewError(api.CodeInvalidArgument, "destination address must not be nil")
	}
	item, err := s.Read()
	if err != nil {
		return err
	}
	*(*T)(dst) = item
	return nil
}

// WriteOut marks the current empty cell occupied, advances the cursor
// and returns the address of the cell's storage. The caller must store
// exactly one T through it before the next call on this manipulator.
func (s *Seq[T]) WriteOut() (unsafe.Pointer, error) {
	if s.stoppedW {
		return nil, errStopped("write-out")
	}
	i, err := s.ensure(s.pos)
	if err != nil {
		return nil, err
	}
	if s.full[i] {
		return nil, api.Errf(api.CodeCellOccupied, "cell %d already holds an item", s.pos)
	}
	s.full[i] = true
	s.dirty[i] = true
	p := unsafe.Pointer(&s.items[i])
	s.advancePastWrite()
	return p, nil
}

// ReadOut marks the current cell empty, advances the cursor and returns
// the address of the item left behind in the cell's storage. The caller
// must move it out before the next call on this manipulator.
func (s *Seq[T]) ReadOut() (unsafe.Pointer, error) {
	if s.stoppedR {
		return nil, errStopped("read-out")
	}
	i, err := s.ensure(s.pos)
	if err != nil {
		return nil, err
	}
	if !s.full[i] {
		return nil, api.Errf(api.CodeCellEmpty, "cell %d holds no item", s.pos)
	}
	s.full[i] = false
	s.dirty[i] = true
	p := unsafe.Pointer(&s.items[i])
	s.advancePastWrite()
	return p, nil
}

// WriteInMany moves up to n items from the array at src into
// consecutive cells, with bulk prefix semantics.
func (s *Seq[T]) WriteInMany(src unsafe.Pointer, n int) (int, error) {
	if src == nil {
		return 0, api.NewError(api.CodeInvalidArgument, "source address must not be nil")
	}
	if n <= 0 {
		return 0, api.Errf(api.CodeInvalidArgument, "bulk amount must be positive, got %d", n)
	}
	var zero T
	size := unsafe.Sizeof(zero)
	for i := 0; i < n; i++ {
		if err := s.WriteIn(unsafe.Add(src, uintptr(i)*size)); err != nil {
			if i == 0 {
				return 0, err
			}
			return i, nil
		}
	}
	return n, nil
}

// ReadInMany moves up to n items from consecutive cells into the array
// at dst, with bulk prefix semantics.
func (s *Seq[T]) ReadInMany(dst unsafe.Pointer, n int) (int, error) {
	if dst == nil {
		return 0, api.NewError(api.CodeInvalidArgument, "destination address must not be nil")
	}
	if n <= 0 {
		return 0, api.Errf(api.CodeInvalidArgument, "bulk amount must be positive, got %d", n)
	}
	var zero T
	size := unsafe.Sizeof(zero)
	for i := 0; i < n; i++ {
		if err := s.ReadIn(unsafe.Add(dst, uintptr(i)*size)); err != nil {
			if i == 0 {
				return 0, err
			}
			return i, nil
		}
	}
	return n, nil
}

// rawSpan remembers the most recent uncommitted raw out-bound span.
type rawSpan struct {
	w     *window.Window
	lo    int64
	n     int
	write bool
	armed bool
}

// WriteOutMany returns the storage backing the run of empty cells at
// and right of the cursor, bounded by cache residency. No state
// changes until DoWriteOut commits.
func (s *Seq[T]) WriteOutMany() (unsafe.Pointer, int, error) {
	if s.stoppedW {
		return nil, 0, errStopped("write-out-many")
	}
	i, err := s.ensure(s.pos)
	if err != nil {
		return nil, 0, err
	}
	if s.full[i] {
		return nil, 0, api.Errf(api.CodeCellOccupied, "cell %d already holds an item", s.pos)
	}
	n := s.runLen(false)
	w := s.ledger.Grant(s.pos, s.pos+int64(n)-1)
	s.stats.LoansIssued++
	s.raw = rawSpan{w: w, lo: s.pos, n: n, write: true, armed: true}
	return unsafe.Pointer(&s.items[i]), n, nil
}

// DoWriteOut commits n items stored through the span of the most recent
// WriteOutMany: the cells become occupied and the cursor advances past
// them. The cursor must not have moved since the span was lent.
func (s *Seq[T]) DoWriteOut(n int) error {
	if !s.raw.armed || !s.raw.write {
		return api.NewError(api.CodeInvalidArgument, "no write span to commit")
	}
	if err := s.checkRawCommit(n); err != nil {
		return err
	}
	s.raw.armed = false
	for k := 0; k < n; k++ {
		abs := s.raw.lo + int64(k)
		i := s.idx(abs)
		s.full[i] = true
		s.dirty[i] = true
		if abs >= s.extHi {
			s.extHi = abs + 1
		}
	}
	for k := 0; k < n; k++ {
		s.moveRight()
	}
	s.raw.w.Collapse()
	return nil
}

// ReadOutMany returns the storage backing the run of occupied cells at
// and right of the cursor, under the same commit-later contract as
// WriteOutMany.
func (s *Seq[T]) ReadOutMany() (unsafe.Pointer, int, error) {
	if s.stoppedR {
		return nil, 0, errStopped("read-out-many")
	}
	i, err := s.ensure(s.pos)
	if err != nil {
		return nil, 0, err
	}
	if !s.full[i] {
		return nil, 0, api.Errf(api.CodeCellEmpty, "cell %d holds no item", s.pos)
	}
	n := s.runLen(true)
	w := s.ledger.Grant(s.pos, s.pos+int64(n)-1)
	s.stats.LoansIssued++
	s.raw = rawSpan{w: w, lo: s.pos, n: n, write: false, armed: true}
	return unsafe.Pointer(&s.items[i]), n, nil
}

// DoReadOut commits n items moved out through the span of the most
// recent ReadOutMany: the cells become empty and the cursor advances
// past them. The caller must have copied the items out already.
func (s *Seq[T]) DoReadOut(n int) error {
	if !s.raw.armed || s.raw.write {
		return api.NewError(api.CodeInvalidArgument, "no read span to commit")
	}
	if err := s.checkRawCommit(n); err != nil {
		return err
	}
	s.raw.armed = false
	var zero T
	for k := 0; k < n; k++ {
		i := s.idx(s.raw.lo + int64(k))
		s.items[i] = zero
		s.full[i] = false
		s.dirty[i] = true
	}
	for k := 0; k < n; k++ {
		s.moveRight()
	}
	s.raw.w.Collapse()
	return nil
}

func (s *Seq[T]) checkRawCommit(n int) error {
	if n < 1 || n > s.raw.n {
		return api.Errf(api.CodeInvalidArgument, "commit count %d outside span of %d", n, s.raw.n)
	}
	if s.pos != s.raw.lo {
		return api.Errf(api.CodeInvalidArgument, "cursor moved to %d since span was lent at %d", s.pos, s.raw.lo)
	}
	for k := 0; k < n; k++ {
		if !s.raw.w.Contains(s.raw.lo + int64(k)) {
			return expiredErr(s.raw.lo + int64(k))
		}
	}
	return nil
}
