// File: fake/sliceseq.go
// Author: momentics <momentics@gmail.com>
//
// SliceSeq is an unbuffered manipulator directly over fixed cell
// storage. Because its cells never move for the manipulator's whole
// lifetime, it is the backend that offers the long out-bound lending
// variants the buffered core cannot.

package fake

import (
	"unsafe"

	"github.com/momentics/hioload-seq/api"
)

// SliceSeq manipulates a fixed run of cells [0, len). The frontier
// position len is a legal cursor position but holds no storage: writes
// there fail with CodeOutOfRange.
type SliceSeq[T any] struct {
	cells    []api.Cell[T]
	pos      int
	stoppedR bool
	stoppedW bool

	readReason  string
	writeReason string
}

// NewSliceSeq builds a manipulator over cells; the slice is owned by
// the manipulator afterwards.
func NewSliceSeq[T any](cells []api.Cell[T]) *SliceSeq[T] {
	return &SliceSeq[T]{cells: cells}
}

// Pos reports the cursor position.
func (s *SliceSeq[T]) Pos() int { return s.pos }

// Next implements api.Forward.
func (s *SliceSeq[T]) Next() error {
	if s.pos >= len(s.cells) {
		return api.Errf(api.CodeOutOfRange, "cursor at frontier %d", s.pos)
	}
	s.pos++
	return nil
}

// Prev implements api.Backward.
func (s *SliceSeq[T]) Prev() error {
	if s.pos <= 0 {
		return api.Errf(api.CodeOutOfRange, "cursor at low end")
	}
	s.pos--
	return nil
}

// Read implements api.Reader.
func (s *SliceSeq[T]) Read() (T, error) {
	var zero T
	if s.stoppedR {
		return zero, api.Errf(api.CodeStopped, "read after stop notification")
	}
	if s.pos >= len(s.cells) || !s.cells[s.pos].Full {
		return zero, api.Errf(api.CodeCellEmpty, "cell %d holds no item", s.pos)
	}
	item := s.cells[s.pos].Item
	s.cells[s.pos] = api.Cell[T]{}
	s.pos++
	return item, nil
}

// Write implements api.Writer.
func (s *SliceSeq[T]) Write(item T) error {
	if s.stoppedW {
		return api.Errf(api.CodeStopped, "write after stop notification")
	}
	if s.pos >= len(s.cells) {
		return api.Errf(api.CodeOutOfRange, "no storage at frontier %d", s.pos)
	}
	if s.cells[s.pos].Full {
		return api.Errf(api.CodeCellOccupied, "cell %d already holds an item", s.pos)
	}
	s.cells[s.pos] = api.Cell[T]{Item: item, Full: true}
	s.pos++
	return nil
}

// WriteRefIn implements api.RefInWriter.
func (s *SliceSeq[T]) WriteRefIn(item *T) error {
	if item == nil {
		return api.NewError(api.CodeInvalidArgument, "item pointer must not be nil")
	}
	return s.Write(*item)
}

// WriteRefInLong implements api.RefInWriterLong; this backend copies,
// so the retention license goes unused.
func (s *SliceSeq[T]) WriteRefInLong(item *T) error { return s.WriteRefIn(item) }

// ReadRefIn implements api.RefInReader.
func (s *SliceSeq[T]) ReadRefIn(item *T) error {
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

// ReadRefInLong implements api.RefInReaderLong.
func (s *SliceSeq[T]) ReadRefInLong(item *T) error { return s.ReadRefIn(item) }

// ReadRefOutLong implements api.RefOutReaderLong: the returned pointer
// stays valid for the manipulator's whole lifetime.
func (s *SliceSeq[T]) ReadRefOutLong() (*T, error) {
	if s.stoppedR {
		return nil, api.Errf(api.CodeStopped, "read-ref-out after stop notification")
	}
	if s.pos >= len(s.cells) || !s.cells[s.pos].Full {
		return nil, api.Errf(api.CodeCellEmpty, "cell %d holds no item", s.pos)
	}
	return &s.cells[s.pos].Item, nil
}

// WriteRefOutLong implements api.RefOutWriterLong. The cell is marked
// occupied at grant time; the caller fills it through the pointer.
func (s *SliceSeq[T]) WriteRefOutLong() (*T, error) {
	if s.stoppedW {
		return nil, api.Errf(api.CodeStopped, "write-ref-out after stop notification")
	}
	if s.pos >= len(s.cells) {
		return nil, api.Errf(api.CodeOutOfRange, "no storage at frontier %d", s.pos)
	}
	if s.cells[s.pos].Full {
		return nil, api.Errf(api.CodeCellOccupied, "cell %d already holds an item", s.pos)
	}
	s.cells[s.pos].Full = true
	return &s.cells[s.pos].Item, nil
}

// WriteIn implements api.RawInWriter.
func (s *SliceSeq[T]) WriteIn(src unsafe.Pointer) error {
	if src == nil {
		return api.NewError(api.CodeInvalidArgument, "source address must not be nil")
	}
	return s.Write(*(*T)(src))
}

// ReadIn implements api.RawInReader.
func (s *SliceSeq[T]) ReadIn(dst unsafe.Pointer) error {
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

// StopRead implements api.StopReader with a typed string reason.
func (s *SliceSeq[T]) StopRead(reason string) error {
	if s.stoppedR {
		return api.Errf(api.CodeStopped, "stop-read already notified")
	}
	s.stoppedR = true
	s.readReason = reason
	return nil
}

// StopWrite implements api.StopWriter with a typed string reason.
func (s *SliceSeq[T]) StopWrite(reason string) error {
	if s.stoppedW {
		return api.Errf(api.CodeStopped, "stop-write already notified")
	}
	s.stoppedW = true
	s.writeReason = reason
	return nil
}

// StopReasons reports the recorded teardown reasons.
func (s *SliceSeq[T]) StopReasons() (read, write string) {
	return s.readReason, s.writeReason
}

var (
	_ api.Forward               = (*SliceSeq[int])(nil)
	_ api.Backward              = (*SliceSeq[int])(nil)
	_ api.Reader[int]           = (*SliceSeq[int])(nil)
	_ api.Writer[int]           = (*SliceSeq[int])(nil)
	_ api.RefInWriter[int]      = (*SliceSeq[int])(nil)
	_ api.RefInReader[int]      = (*SliceSeq[int])(nil)
	_ api.RefOutReaderLong[int] = (*SliceSeq[int])(nil)
	_ api.RefOutWriterLong[int] = (*SliceSeq[int])(nil)
	_ api.RawInWriter           = (*SliceSeq[int])(nil)
	_ api.RawInReader           = (*SliceSeq[int])(nil)
	_ api.StopReader[string]    = (*SliceSeq[int])(nil)
	_ api.StopWriter[string]    = (*SliceSeq[int])(nil)
)
