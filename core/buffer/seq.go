// File: core/buffer/seq.go
// Author: momentics <momentics@gmail.com>
//
// Seq is the buffered manipulator at the heart of the library: every
// capability group, implemented once over any api.Tape backend.
//
// Seq keeps a bounded contiguous cache of cells around the cursor.
// Reads pull ahead into the cache on a miss, writes accumulate in it
// and drain when the cache moves or on explicit flush. The cache is
// observably transparent: it changes when the tape sees an update,
// never what a caller of this manipulator reads back.
//
// Single-owner: a Seq must only ever be driven by one logical thread
// of control. Nothing here locks.

package buffer

import (
	"github.com/momentics/hioload-seq/api"
	"github.com/momentics/hioload-seq/core/window"
	"github.com/momentics/hioload-seq/pool"
)

// Seq is a buffered sequence manipulator over a Tape.
//
// Item storage inside the cache is a contiguous []T so that raw bulk
// spans can hand out pointers with the natural element stride; the
// occupancy and dirty flags live in parallel slices.
type Seq[T any] struct {
	tape api.Tape[T]
	cfg  Config[T]

	pos   int64 // cursor: current cell position
	lo    int64 // lowest legal cursor position
	extHi int64 // frontier: highest legal cursor position

	// Cache: positions [winLo, winLo+winN) resident at array indices
	// [off, off+winN). Evicting from the left advances off so that
	// surviving cell storage never moves.
	winLo int64
	winN  int
	off   int
	items []T
	full  []bool
	dirty []bool

	scratch []api.Cell[T] // pooled staging for tape Load/Store
	cells   *pool.CellPool[T]

	ledger window.Ledger
	raw    rawSpan

	stats    api.SeqStats
	stoppedR bool
	stoppedW bool
	released bool
}

// New creates a buffered manipulator over tape with the cursor parked
// on the tape's lowest realized cell (or the frontier of an empty tape).
func New[T any](tape api.Tape[T], cfg Config[T]) (*Seq[T], error) {
	if tape == nil {
		return nil, api.NewError(api.CodeInvalidArgument, "tape must not be nil")
	}
	cfg, err := cfg.normalize()
	if err != nil {
		return nil, err
	}
	lo, hi := tape.Extent()
	if lo > hi {
		return nil, api.Errf(api.CodeBackend, "tape reports reversed extent [%d, %d)", lo, hi)
	}
	s := &Seq[T]{
		tape:  tape,
		cfg:   cfg,
		pos:   lo,
		lo:    lo,
		extHi: hi,
		cells: cfg.Pool,
	}
	s.items = make([]T, cfg.Capacity)
	s.full = make([]bool, cfg.Capacity)
	s.dirty = make([]bool, cfg.Capacity)
	s.scratch = cfg.Pool.Get(cfg.Capacity)
	return s, nil
}

// Pos reports the cursor's current cell position.
func (s *Seq[T]) Pos() int64 { return s.pos }

// Extent reports the current legal cursor range [lo, hi]: hi is the
// frontier cell one past the last written position.
func (s *Seq[T]) Extent() (lo, hi int64) { return s.lo, s.extHi }

// Stats reports cumulative cache and loan accounting.
func (s *Seq[T]) Stats() api.SeqStats {
	out := s.stats
	out.LoansRevoked = s.ledger.Revoked()
	return out
}

// Next moves the cursor one cell right. Fails with CodeOutOfRange at
// the frontier, leaving state unchanged.
func (s *Seq[T]) Next() error {
	if s.pos >= s.extHi {
		return api.Errf(api.CodeOutOfRange, "cursor at frontier %d", s.pos)
	}
	s.moveRight()
	return nil
}

// Prev moves the cursor one cell left. Fails with CodeOutOfRange at the
// low end, leaving state unchanged.
func (s *Seq[T]) Prev() error {
	if s.pos <= s.lo {
		return api.Errf(api.CodeOutOfRange, "cursor at low end %d", s.pos)
	}
	s.moveLeft()
	return nil
}

// NextMany applies up to amount forward moves; see api.ForwardBulk for
// the prefix contract.
func (s *Seq[T]) NextMany(amount int) (int, error) {
	if amount <= 0 {
		return 0, api.Errf(api.CodeInvalidArgument, "bulk amount must be positive, got %d", amount)
	}
	room := s.extHi - s.pos
	moves := int64(amount)
	if moves > room {
		moves = room
	}
	if moves == 0 {
		return 0, api.Errf(api.CodeOutOfRange, "cursor at frontier %d", s.pos)
	}
	for i := int64(0); i < moves; i++ {
		s.moveRight()
	}
	return int(moves), nil
}

// PrevMany applies up to amount backward moves; see api.BackwardBulk.
func (s *Seq[T]) PrevMany(amount int) (int, error) {
	if amount <= 0 {
		return 0, api.Errf(api.CodeInvalidArgument, "bulk amount must be positive, got %d", amount)
	}
	room := s.pos - s.lo
	moves := int64(amount)
	if moves > room {
		moves = room
	}
	if moves == 0 {
		return 0, api.Errf(api.CodeOutOfRange, "cursor at low end %d", s.pos)
	}
	for i := int64(0); i < moves; i++ {
		s.moveLeft()
	}
	return int(moves), nil
}

// Read removes and returns the current cell's item, leaving the cell
// empty, and advances the cursor.
func (s *Seq[T]) Read() (T, error) {
	var zero T
	if s.stoppedR {
		return zero, errStopped("read")
	}
	i, err := s.ensure(s.pos)
	if err != nil {
		return zero, err
	}
	if !s.full[i] {
		return zero, api.Errf(api.CodeCellEmpty, "cell %d holds no item", s.pos)
	}
	item := s.items[i]
	s.items[i] = zero
	s.full[i] = false
	s.dirty[i] = true
	s.advancePastWrite()
	return item, nil
}

// Write moves item into the current empty cell and advances the cursor.
func (s *Seq[T]) Write(item T) error {
	if s.stoppedW {
		return errStopped("write")
	}
	i, err := s.ensure(s.pos)
	if err != nil {
		return err
	}
	if s.full[i] {
		return api.Errf(api.CodeCellOccupied, "cell %d already holds an item", s.pos)
	}
	s.items[i] = item
	s.full[i] = true
	s.dirty[i] = true
	s.advancePastWrite()
	return nil
}

// WriteRefIn copies *item into the current empty cell; the pointer is
// not retained. Cursor advance as Write.
func (s *Seq[T]) WriteRefIn(item *T) error {
	if item == nil {
		return api.NewError(api.CodeInvalidArgument, "item pointer must not be nil")
	}
	return s.Write(*item)
}

// WriteRefInLong is identical to WriteRefIn for this copying core; the
// long-retention license of the capability goes unused.
func (s *Seq[T]) WriteRefInLong(item *T) error { return s.WriteRefIn(item) }

// ReadRefIn moves the current cell's item into *item; the pointer is
// not retained. Cursor advance as Read.
func (s *Seq[T]) ReadRefIn(item *T) error {
	if item == nil {
		return api.NewError(api.CodeInvalidArgument, "item pointer must not be nil")
	}
	v, err := s.Read()
	if err != nil {
		return err
	}
	*item = v
	return nil
}

// ReadRefInLong is identical to ReadRefIn for this copying core.
func (s *Seq[T]) ReadRefInLong(item *T) error { return s.ReadRefIn(item) }

// StopRead promises that no further read capability will be invoked.
func (s *Seq[T]) StopRead(reason any) error {
	if s.stoppedR {
		return errStopped("stop-read")
	}
	if ts, ok := s.tape.(api.TapeStopper); ok {
		if err := ts.StopRead(reason); err != nil {
			return backendErr("stop-read", err)
		}
	}
	s.stoppedR = true
	s.maybeRelease()
	return nil
}

// StopWrite flushes every pending write, then promises that no further
// write capability will be invoked. The stop takes effect only when the
// flush succeeds, so a failed StopWrite may be retried.
func (s *Seq[T]) StopWrite(reason any) error {
	if s.stoppedW {
		return errStopped("stop-write")
	}
	if s.winN > 0 {
		if err := s.flushRange(s.off, s.off+s.winN-1); err != nil {
			return err
		}
		s.ledger.Invalidate(s.winLo, s.winLo+int64(s.winN)-1)
	}
	if ts, ok := s.tape.(api.TapeStopper); ok {
		if err := ts.StopWrite(reason); err != nil {
			return backendErr("stop-write", err)
		}
	}
	s.stoppedW = true
	s.maybeRelease()
	return nil
}

// moveRight advances the cursor, shrinking every loan window from the
// low side.
func (s *Seq[T]) moveRight() {
	s.pos++
	s.ledger.MoveRight()
}

// moveLeft retreats the cursor, shrinking every loan window from the
// high side.
func (s *Seq[T]) moveLeft() {
	s.pos--
	s.ledger.MoveLeft()
}

// advancePastWrite performs the mandatory cursor advance after a
// successful transfer at s.pos, extending the frontier when the
// transfer happened on it.
func (s *Seq[T]) advancePastWrite() {
	if s.pos == s.extHi {
		s.extHi = s.pos + 1
	}
	s.moveRight()
}

// maybeRelease returns cache storage once both sides are stopped.
func (s *Seq[T]) maybeRelease() {
	if s.released || !s.stoppedR || !s.stoppedW {
		return
	}
	s.ledger.InvalidateAll()
	s.cells.Put(s.scratch)
	s.scratch = nil
	s.items = nil
	s.full = nil
	s.dirty = nil
	s.winN = 0
	s.off = 0
	s.released = true
}

func errStopped(op string) *api.Error {
	return api.Errf(api.CodeStopped, "%s after stop notification", op)
}

func backendErr(op string, err error) *api.Error {
	return api.Errf(api.CodeBackend, "%s: tape failure", op).WithContext("cause", err)
}
