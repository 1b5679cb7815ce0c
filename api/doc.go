// Package api
// Author: momentics <momentics@gmail.com>
//
// Capability contracts for lazy sequence manipulators.
//
// A manipulator owns a cursor into a conceptually unbounded tape of
// cells, each cell either empty or holding one item. Every orthogonal
// capability (movement, ownership transfer, reference lending, raw
// pointer transfer, buffering control, teardown) is its own interface;
// a concrete backend implements whichever subset it supports, and
// callers written against a capability work with any backend offering
// it.
//
// All calls are synchronous and sequential. A manipulator is owned by
// exactly one logical thread of control; concurrent calls on the same
// instance are out of contract and must be excluded by the caller.
//
// Failure contract: unless documented otherwise, an operation either
// fully performs its effect and returns nil, or performs no observable
// effect at all and returns a non-nil error. The documented exceptions
// are the bulk ("...Many") operations, which apply a best-effort prefix
// of the request and report how many single steps completed.
package api
