package api_test

import (
	"testing"
	"unsafe"

	"github.com/momentics/hioload-seq/api"
	"github.com/momentics/hioload-seq/core/buffer"
	"github.com/momentics/hioload-seq/fake"
	"github.com/momentics/hioload-seq/loaf"
)

func TestNextN_FallbackPrefixSemantics(t *testing.T) {
	s := fake.NewSliceSeq(fake.FullCells(1, 2, 3))

	n, err := api.NextN(s, 5)
	if err != nil {
		t.Fatalf("NextN: %v", err)
	}
	if n != 3 || s.Pos() != 3 {
		t.Errorf("NextN(5) = %d at pos %d, want 3 at 3", n, s.Pos())
	}

	if _, err := api.NextN(s, 1); !api.IsCode(err, api.CodeOutOfRange) {
		t.Errorf("NextN at frontier: got %v, want CodeOutOfRange", err)
	}
	if _, err := api.NextN(s, 0); !api.IsCode(err, api.CodeInvalidArgument) {
		t.Errorf("NextN(0): got %v, want CodeInvalidArgument", err)
	}

	n, err = api.PrevN(s, 9)
	if err != nil {
		t.Fatalf("PrevN: %v", err)
	}
	if n != 3 || s.Pos() != 0 {
		t.Errorf("PrevN(9) = %d at pos %d, want 3 at 0", n, s.Pos())
	}
}

func TestNextN_DispatchesToBulkBackend(t *testing.T) {
	tape := fake.NewSliceTape(fake.FullCells(1, 2, 3))
	s, err := buffer.New[int](tape, buffer.Config[int]{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	n, err := api.NextN(s, 5)
	if err != nil {
		t.Fatalf("NextN: %v", err)
	}
	if n != 3 || s.Pos() != 3 {
		t.Errorf("NextN(5) = %d at pos %d, want 3 at 3", n, s.Pos())
	}
}

func TestWriteRefInN_ConsumesLoafPrefix(t *testing.T) {
	s := fake.NewSliceSeq(make([]api.Cell[int], 2))

	items, err := loaf.New([]int{10, 20, 30})
	if err != nil {
		t.Fatalf("loaf.New: %v", err)
	}
	n, err := api.WriteRefInN(s, items)
	if err != nil {
		t.Fatalf("WriteRefInN: %v", err)
	}
	if n != 2 { // third write hits the frontier
		t.Errorf("WriteRefInN = %d, want 2", n)
	}

	// A first-write failure surfaces as an error, not a zero count.
	if _, err := api.WriteRefInN(s, items); !api.IsCode(err, api.CodeOutOfRange) {
		t.Errorf("WriteRefInN at frontier: got %v, want CodeOutOfRange", err)
	}
}

func TestReadRefInN_FillsLoaf(t *testing.T) {
	s := fake.NewSliceSeq(fake.FullCells(4, 5))

	dst := loaf.Of(0, 0, 0)
	n, err := api.ReadRefInN(s, dst)
	if err != nil {
		t.Fatalf("ReadRefInN: %v", err)
	}
	if n != 2 {
		t.Errorf("ReadRefInN = %d, want 2", n)
	}
	for i, want := range []int{4, 5} {
		if got := dst.At(i); got != want {
			t.Errorf("dst.At(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestWriteInN_ReadInN_RawRoundTrip(t *testing.T) {
	s := fake.NewSliceSeq(make([]api.Cell[int], 3))

	src := []int{7, 8, 9}
	n, err := api.WriteInN[int](s, unsafe.Pointer(&src[0]), len(src))
	if err != nil {
		t.Fatalf("WriteInN: %v", err)
	}
	if n != 3 {
		t.Fatalf("WriteInN = %d, want 3", n)
	}

	if _, err := api.PrevN(s, 3); err != nil {
		t.Fatalf("PrevN: %v", err)
	}
	dst := make([]int, 3)
	n, err = api.ReadInN[int](s, unsafe.Pointer(&dst[0]), len(dst))
	if err != nil {
		t.Fatalf("ReadInN: %v", err)
	}
	if n != 3 {
		t.Fatalf("ReadInN = %d, want 3", n)
	}
	for i := range src {
		if dst[i] != src[i] {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], src[i])
		}
	}
}

func TestSlurpRead_ObservesExternalWriter(t *testing.T) {
	tape := fake.NewSliceTape(fake.FullCells(1))
	s, err := buffer.New[int](tape, buffer.Config[int]{Capacity: 4})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Warm the cache, then rewrite the cell on the tape directly.
	ln, err := s.ReadRefOut()
	if err != nil {
		t.Fatalf("ReadRefOut: %v", err)
	}
	if got, err := ln.Value(); err != nil || got != 1 {
		t.Fatalf("cached value = %d, %v, want 1", got, err)
	}
	if err := tape.Store(0, fake.FullCells(99)); err != nil {
		t.Fatalf("Store: %v", err)
	}

	got, err := api.SlurpRead[int](s)
	if err != nil {
		t.Fatalf("SlurpRead: %v", err)
	}
	if got != 99 {
		t.Errorf("SlurpRead = %d, want 99", got)
	}
}
