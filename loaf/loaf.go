// Package loaf
// Author: momentics <momentics@gmail.com>
//
// A loaf is a nonempty, contiguous, index-addressable span of same-typed
// items: the unit of bulk transfer between manipulators and callers and
// the unit over which lending validity windows are tracked.
//
// The package sits beneath the capability surface and therefore carries
// no dependencies.
package loaf

import "errors"

// ErrEmpty is returned when constructing a loaf over zero items.
var ErrEmpty = errors.New("loaf: span must hold at least one item")

// Loaf is a view over at least one item. The zero Loaf is invalid; use
// New or Of. Copying a Loaf copies the view, not the items.
type Loaf[T any] struct {
	items []T
}

// New wraps items in a Loaf. Fails with ErrEmpty for an empty slice.
// The loaf aliases the slice: writes through the loaf are visible to
// the slice's owner and vice versa.
func New[T any](items []T) (Loaf[T], error) {
	if len(items) == 0 {
		return Loaf[T]{}, ErrEmpty
	}
	return Loaf[T]{items: items}, nil
}

// Of builds a Loaf from one or more values; the signature makes the
// nonempty invariant hold by construction.
func Of[T any](first T, rest ...T) Loaf[T] {
	items := make([]T, 0, 1+len(rest))
	items = append(items, first)
	items = append(items, rest...)
	return Loaf[T]{items: items}
}

// Len reports the number of items; always at least one for a valid loaf.
func (l Loaf[T]) Len() int { return len(l.items) }

// At returns the item at index i. Index bounds follow slice rules.
func (l Loaf[T]) At(i int) T { return l.items[i] }

// Ptr returns the address of the item at index i.
func (l Loaf[T]) Ptr(i int) *T { return &l.items[i] }

// Set stores item at index i.
func (l Loaf[T]) Set(i int, item T) { l.items[i] = item }

// First returns the item at index 0.
func (l Loaf[T]) First() T { return l.items[0] }

// Last returns the item at the highest index.
func (l Loaf[T]) Last() T { return l.items[len(l.items)-1] }

// Slice exposes the underlying items. Mutations alias the loaf.
func (l Loaf[T]) Slice() []T { return l.items }

// Sub returns the sub-loaf [from, to). Fails with ErrEmpty when the
// range selects no items.
func (l Loaf[T]) Sub(from, to int) (Loaf[T], error) {
	if from < 0 || to > len(l.items) || from >= to {
		return Loaf[T]{}, ErrEmpty
	}
	return Loaf[T]{items: l.items[from:to]}, nil
}
