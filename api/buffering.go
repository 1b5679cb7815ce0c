// Package api
// Author: momentics <momentics@gmail.com>
//
// Buffering control: explicit synchronization between a manipulator's
// internal cell cache and the tape it fronts.
//
// Buffers are transparent by default: writes accumulate and drain
// opportunistically, reads pull ahead on a miss. Flush and slurp only
// change when the tape and the cache agree, never what the caller
// observes through the manipulator itself (a different party reading
// the same tape directly is exactly who flush/slurp exists for).
// Flushing or slurping a cell that backs an outstanding loan collapses
// that loan's validity window.

package api

// Flusher forces buffered cells out to the tape.
type Flusher interface {
	// FlushPrev synchronizes the buffered cells at and left of the
	// cursor to the tape and evicts them from the buffer. Logical
	// content is unaffected.
	FlushPrev() error

	// FlushNext does the same for the buffered cells at and right of
	// the cursor.
	FlushNext() error
}

// Slurper forces the buffer to re-read from the tape.
type Slurper interface {
	// SlurpPrev re-populates the buffered cells at and left of the
	// cursor from the tape, discarding potentially stale cached
	// content. Pending writes in the affected range are flushed first
	// so that no logical content is lost.
	SlurpPrev() error

	// SlurpNext does the same for the buffered cells at and right of
	// the cursor.
	SlurpNext() error
}
