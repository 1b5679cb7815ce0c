// File: fake/queueseq.go
// Author: momentics <momentics@gmail.com>
//
// QueueSeq is a forward-only manipulator over a bounded FIFO: the
// cursor is pinned to the queue head, writing appends at the tail,
// reading consumes the head. It implements only the movement, transfer
// and teardown capability groups, which is exactly the point: callers
// written against those capabilities cannot tell it from any other
// backend.

package fake

import (
	"github.com/eapache/queue"

	"github.com/momentics/hioload-seq/api"
)

// QueueSeq adapts eapache's FIFO to the capability surface.
type QueueSeq[T any] struct {
	q        *queue.Queue
	capacity int
	stoppedR bool
	stoppedW bool

	readReason  string
	writeReason string
}

// NewQueueSeq creates a queue-backed manipulator holding at most
// capacity items; capacity zero means unbounded.
func NewQueueSeq[T any](capacity int) *QueueSeq[T] {
	return &QueueSeq[T]{q: queue.New(), capacity: capacity}
}

// Len reports how many items are queued.
func (s *QueueSeq[T]) Len() int { return s.q.Length() }

// Next discards the head item: a forward move over a cell whose
// content this manipulator cannot revisit.
func (s *QueueSeq[T]) Next() error {
	if s.q.Length() == 0 {
		return api.NewError(api.CodeOutOfRange, "queue is drained")
	}
	s.q.Remove()
	return nil
}

// Read consumes and returns the head item.
func (s *QueueSeq[T]) Read() (T, error) {
	var zero T
	if s.stoppedR {
		return zero, api.Errf(api.CodeStopped, "read after stop notification")
	}
	if s.q.Length() == 0 {
		return zero, api.NewError(api.CodeCellEmpty, "queue is drained")
	}
	item := s.q.Peek().(T)
	s.q.Remove()
	return item, nil
}

// Write appends item at the tail. A full queue fails with
// CodeExhausted; the caller may drain and retry.
func (s *QueueSeq[T]) Write(item T) error {
	if s.stoppedW {
		return api.Errf(api.CodeStopped, "write after stop notification")
	}
	if s.capacity > 0 && s.q.Length() >= s.capacity {
		return api.Errf(api.CodeExhausted, "queue holds %d of %d items", s.q.Length(), s.capacity)
	}
	s.q.Add(item)
	return nil
}

// StopRead implements api.StopReader[string].
func (s *QueueSeq[T]) StopRead(reason string) error {
	if s.stoppedR {
		return api.Errf(api.CodeStopped, "stop-read already notified")
	}
	s.stoppedR = true
	s.readReason = reason
	return nil
}

// StopWrite implements api.StopWriter[string].
func (s *QueueSeq[T]) StopWrite(reason string) error {
	if s.stoppedW {
		return api.Errf(api.CodeStopped, "stop-write already notified")
	}
	s.stoppedW = true
	s.writeReason = reason
	return nil
}

// StopReasons reports the recorded teardown reasons.
func (s *QueueSeq[T]) StopReasons() (read, write string) {
	return s.readReason, s.writeReason
}

var (
	_ api.Forward            = (*QueueSeq[int])(nil)
	_ api.Reader[int]        = (*QueueSeq[int])(nil)
	_ api.Writer[int]        = (*QueueSeq[int])(nil)
	_ api.StopReader[string] = (*QueueSeq[int])(nil)
	_ api.StopWriter[string] = (*QueueSeq[int])(nil)
)
