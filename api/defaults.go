// Package api
// Author: momentics <momentics@gmail.com>
//
// Default bulk behavior as free functions.
//
// Backends only implement the *Bulk interfaces when they can beat the
// naive loop; callers use these helpers, which dispatch to the backend
// override when present and otherwise repeat the single-step primitive
// with the standard prefix semantics.

package api

import (
	"unsafe"

	"github.com/momentics/hioload-seq/loaf"
)

// NextN performs up to amount forward moves and reports how many
// completed. amount must be positive. If at least one move succeeded,
// the error of the move that stopped the run is swallowed and the
// count is returned; only a first-move failure surfaces as an error.
func NextN(m Forward, amount int) (int, error) {
	if amount <= 0 {
		return 0, Errf(CodeInvalidArgument, "bulk amount must be positive, got %d", amount)
	}
	if bulk, ok := m.(ForwardBulk); ok {
		return bulk.NextMany(amount)
	}
	for i := 0; i < amount; i++ {
		if err := m.Next(); err != nil {
			if i == 0 {
				return 0, err
			}
			return i, nil
		}
	}
	return amount, nil
}

// PrevN is the backward counterpart of NextN.
func PrevN(m Backward, amount int) (int, error) {
	if amount <= 0 {
		return 0, Errf(CodeInvalidArgument, "bulk amount must be positive, got %d", amount)
	}
	if bulk, ok := m.(BackwardBulk); ok {
		return bulk.PrevMany(amount)
	}
	for i := 0; i < amount; i++ {
		if err := m.Prev(); err != nil {
			if i == 0 {
				return 0, err
			}
			return i, nil
		}
	}
	return amount, nil
}

// WriteRefInN copies leading items of the loaf into consecutive cells
// and reports how many were consumed, with bulk prefix semantics.
func WriteRefInN[T any](m RefInWriter[T], items loaf.Loaf[T]) (int, error) {
	if bulk, ok := m.(RefInWriterBulk[T]); ok {
		return bulk.WriteRefInMany(items)
	}
	for i := 0; i < items.Len(); i++ {
		if err := m.WriteRefIn(items.Ptr(i)); err != nil {
			if i == 0 {
				return 0, err
			}
			return i, nil
		}
	}
	return items.Len(), nil
}

// WriteRefInLongN is WriteRefInN for the long-lived-reference variant.
func WriteRefInLongN[T any](m RefInWriterLong[T], items loaf.Loaf[T]) (int, error) {
	if bulk, ok := m.(RefInWriterLongBulk[T]); ok {
		return bulk.WriteRefInLongMany(items)
	}
	for i := 0; i < items.Len(); i++ {
		if err := m.WriteRefInLong(items.Ptr(i)); err != nil {
			if i == 0 {
				return 0, err
			}
			return i, nil
		}
	}
	return items.Len(), nil
}

// ReadRefInN fills leading slots of the loaf from consecutive cells and
// reports how many were filled, with bulk prefix semantics.
func ReadRefInN[T any](m RefInReader[T], items loaf.Loaf[T]) (int, error) {
	if bulk, ok := m.(RefInReaderBulk[T]); ok {
		return bulk.ReadRefInMany(items)
	}
	for i := 0; i < items.Len(); i++ {
		if err := m.ReadRefIn(items.Ptr(i)); err != nil {
			if i == 0 {
				return 0, err
			}
			return i, nil
		}
	}
	return items.Len(), nil
}

// ReadRefInLongN is ReadRefInN for the long-lived-reference variant.
func ReadRefInLongN[T any](m RefInReaderLong[T], items loaf.Loaf[T]) (int, error) {
	if bulk, ok := m.(RefInReaderLongBulk[T]); ok {
		return bulk.ReadRefInLongMany(items)
	}
	for i := 0; i < items.Len(); i++ {
		if err := m.ReadRefInLong(items.Ptr(i)); err != nil {
			if i == 0 {
				return 0, err
			}
			return i, nil
		}
	}
	return items.Len(), nil
}

// WriteInN moves up to n items of type T from the array at src into
// consecutive cells. Same caller-side address contract as WriteIn,
// extended over n items.
func WriteInN[T any](m RawInWriter, src unsafe.Pointer, n int) (int, error) {
	if n <= 0 {
		return 0, Errf(CodeInvalidArgument, "bulk amount must be positive, got %d", n)
	}
	if bulk, ok := m.(RawInWriterBulk); ok {
		return bulk.WriteInMany(src, n)
	}
	var zero T
	size := unsafe.Sizeof(zero)
	for i := 0; i < n; i++ {
		if err := m.WriteIn(unsafe.Add(src, uintptr(i)*size)); err != nil {
			if i == 0 {
				return 0, err
			}
			return i, nil
		}
	}
	return n, nil
}

// ReadInN moves up to n items from consecutive cells into the array at
// dst. Same caller-side address contract as ReadIn, extended over n
// items.
func ReadInN[T any](m RawInReader, dst unsafe.Pointer, n int) (int, error) {
	if n <= 0 {
		return 0, Errf(CodeInvalidArgument, "bulk amount must be positive, got %d", n)
	}
	if bulk, ok := m.(RawInReaderBulk); ok {
		return bulk.ReadInMany(dst, n)
	}
	var zero T
	size := unsafe.Sizeof(zero)
	for i := 0; i < n; i++ {
		if err := m.ReadIn(unsafe.Add(dst, uintptr(i)*size)); err != nil {
			if i == 0 {
				return 0, err
			}
			return i, nil
		}
	}
	return n, nil
}

// SlurpRead forces a read-side buffer refresh and immediately reads.
// Backends whose Read already bypasses a stale cache gain nothing, but
// callers racing an external writer of the same tape use this to
// observe the freshest item.
func SlurpRead[T any, M interface {
	Slurper
	Reader[T]
}](m M) (T, error) {
	if err := m.SlurpNext(); err != nil {
		var zero T
		return zero, err
	}
	return m.Read()
}
