// Package api
// Author: momentics <momentics@gmail.com>
//
// Structured error types shared by all sequence manipulators.

package api

import (
	"errors"
	"fmt"
)

// ErrorCode identifies why a capability operation could not be performed.
type ErrorCode int

const (
	CodeOK ErrorCode = iota
	// CodeCellEmpty: the operation requires the current cell to hold an item.
	CodeCellEmpty
	// CodeCellOccupied: the operation requires the current cell to be empty.
	CodeCellOccupied
	// CodeOutOfRange: the cursor would leave the manipulator's defined extent.
	CodeOutOfRange
	// CodeLoanExpired: a lent reference was used outside its validity window.
	CodeLoanExpired
	// CodeStopped: the corresponding stop notification was already issued.
	CodeStopped
	// CodeExhausted: a bounded backend has no room for further items.
	CodeExhausted
	// CodeCorrupted: backend storage failed an integrity check.
	CodeCorrupted
	// CodeInvalidArgument: a caller-supplied argument is out of contract.
	CodeInvalidArgument
	// CodeBackend: an underlying tape operation failed.
	CodeBackend
)

// Error is the internal-error value handed back by manipulators. It is
// diagnostic only: an Error return never carries a tape-state change.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// Errf creates a structured error with a formatted message.
func Errf(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// IsCode reports whether err, or any error it wraps, is a *Error
// carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
