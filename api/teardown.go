// Package api
// Author: momentics <momentics@gmail.com>
//
// Teardown capabilities: one-shot promises that no further reads or
// writes will be issued, so backends can release resources early.

package api

// StopReader receives the promise that no further read-side calls will
// be made. R carries the reason handed to the backend.
type StopReader[R any] interface {
	// StopRead notifies the manipulator that no read capability will be
	// invoked again. It is one-shot: a second call fails with
	// CodeStopped. It guarantees no particular tape state.
	StopRead(reason R) error
}

// StopWriter receives the promise that no further write-side calls will
// be made. W carries the reason handed to the backend.
type StopWriter[W any] interface {
	// StopWrite notifies the manipulator that no write capability will
	// be invoked again. Buffered implementations flush pending writes
	// before releasing write-side resources. One-shot like StopRead.
	StopWrite(reason W) error
}
