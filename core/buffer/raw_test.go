package buffer

import (
	"testing"
	"unsafe"

	"github.com/momentics/hioload-seq/api"
	"github.com/momentics/hioload-seq/fake"
)

func TestRawIn_BulkRoundTrip(t *testing.T) {
	s, _ := newSeq(t)

	src := []int{10, 20, 30}
	n, err := s.WriteInMany(unsafe.Pointer(&src[0]), len(src))
	if err != nil {
		t.Fatalf("WriteInMany: %v", err)
	}
	if n != 3 || s.Pos() != 3 {
		t.Fatalf("WriteInMany = %d at pos %d, want 3 at 3", n, s.Pos())
	}

	if _, err := s.PrevMany(3); err != nil {
		t.Fatalf("PrevMany: %v", err)
	}
	dst := make([]int, 3)
	n, err = s.ReadInMany(unsafe.Pointer(&dst[0]), len(dst))
	if err != nil {
		t.Fatalf("ReadInMany: %v", err)
	}
	if n != 3 {
		t.Fatalf("ReadInMany = %d, want 3", n)
	}
	for i, want := range src {
		if dst[i] != want {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], want)
		}
	}
}

func TestRawIn_ArgumentChecks(t *testing.T) {
	s, _ := newSeq(t)

	if err := s.WriteIn(nil); !api.IsCode(err, api.CodeInvalidArgument) {
		t.Errorf("WriteIn(nil): got %v, want CodeInvalidArgument", err)
	}
	if err := s.ReadIn(nil); !api.IsCode(err, api.CodeInvalidArgument) {
		t.Errorf("ReadIn(nil): got %v, want CodeInvalidArgument", err)
	}
	v := 1
	if _, err := s.WriteInMany(unsafe.Pointer(&v), 0); !api.IsCode(err, api.CodeInvalidArgument) {
		t.Errorf("WriteInMany(.., 0): got %v, want CodeInvalidArgument", err)
	}
}

func TestRawIn_PrefixOnOccupiedCell(t *testing.T) {
	// Cell 1 is occupied, so a bulk write of 3 lands exactly 1.
	cells := make([]api.Cell[int], 2)
	cells[1] = api.Cell[int]{Item: 9, Full: true}
	s := mustSeq(t, cells)

	src := []int{10, 20, 30}
	n, err := s.WriteInMany(unsafe.Pointer(&src[0]), len(src))
	if err != nil {
		t.Fatalf("WriteInMany: %v", err)
	}
	if n != 1 || s.Pos() != 1 {
		t.Errorf("WriteInMany = %d at pos %d, want 1 at 1", n, s.Pos())
	}
}

func TestWriteOut_SingleCell(t *testing.T) {
	s, _ := newSeq(t)

	p, err := s.WriteOut()
	if err != nil {
		t.Fatalf("WriteOut: %v", err)
	}
	*(*int)(p) = 77
	if s.Pos() != 1 {
		t.Errorf("cursor at %d after WriteOut, want 1", s.Pos())
	}

	if err := s.Prev(); err != nil {
		t.Fatalf("Prev: %v", err)
	}
	if got, err := s.Read(); err != nil || got != 77 {
		t.Errorf("Read = %d, %v, want 77", got, err)
	}
}

func TestReadOut_SingleCell(t *testing.T) {
	s, _ := newSeq(t, 5)

	p, err := s.ReadOut()
	if err != nil {
		t.Fatalf("ReadOut: %v", err)
	}
	if got := *(*int)(p); got != 5 {
		t.Errorf("*ReadOut = %d, want 5", got)
	}

	if err := s.Prev(); err != nil {
		t.Fatalf("Prev: %v", err)
	}
	if _, err := s.Read(); !api.IsCode(err, api.CodeCellEmpty) {
		t.Errorf("cell after ReadOut: got %v, want CodeCellEmpty", err)
	}
}

func TestWriteOutMany_CommitPartial(t *testing.T) {
	s, tape := newSeq(t)

	p, n, err := s.WriteOutMany()
	if err != nil {
		t.Fatalf("WriteOutMany: %v", err)
	}
	if n != 4 { // whole resident window is empty
		t.Fatalf("span of %d, want 4", n)
	}

	size := unsafe.Sizeof(int(0))
	*(*int)(p) = 100
	*(*int)(unsafe.Add(p, size)) = 200

	if err := s.DoWriteOut(2); err != nil {
		t.Fatalf("DoWriteOut: %v", err)
	}
	if s.Pos() != 2 {
		t.Errorf("cursor at %d after commit, want 2", s.Pos())
	}

	if err := s.StopWrite(nil); err != nil {
		t.Fatalf("StopWrite: %v", err)
	}
	if c := tape.Cell(0); !c.Full || c.Item != 100 {
		t.Errorf("tape cell 0 = %+v, want full 100", c)
	}
	if c := tape.Cell(1); !c.Full || c.Item != 200 {
		t.Errorf("tape cell 1 = %+v, want full 200", c)
	}
	// Uncommitted span cells never reach the tape.
	if len(tape.Snapshot()) != 2 {
		t.Errorf("tape realized %d cells, want 2", len(tape.Snapshot()))
	}
}

func TestReadOutMany_CommitAll(t *testing.T) {
	s, _ := newSeq(t, 1, 2, 3)

	p, n, err := s.ReadOutMany()
	if err != nil {
		t.Fatalf("ReadOutMany: %v", err)
	}
	if n != 3 {
		t.Fatalf("span of %d, want 3", n)
	}
	size := unsafe.Sizeof(int(0))
	for k := 0; k < n; k++ {
		if got := *(*int)(unsafe.Add(p, uintptr(k)*size)); got != k+1 {
			t.Errorf("span[%d] = %d, want %d", k, got, k+1)
		}
	}

	if err := s.DoReadOut(3); err != nil {
		t.Fatalf("DoReadOut: %v", err)
	}
	if s.Pos() != 3 {
		t.Errorf("cursor at %d after commit, want 3", s.Pos())
	}
	if _, err := s.PrevMany(3); err != nil {
		t.Fatalf("PrevMany: %v", err)
	}
	if _, err := s.Read(); !api.IsCode(err, api.CodeCellEmpty) {
		t.Errorf("committed cell: got %v, want CodeCellEmpty", err)
	}
}

func TestRawCommit_Guards(t *testing.T) {
	s, _ := newSeq(t)

	if err := s.DoWriteOut(1); !api.IsCode(err, api.CodeInvalidArgument) {
		t.Errorf("commit with no span: got %v, want CodeInvalidArgument", err)
	}

	_, n, err := s.WriteOutMany()
	if err != nil {
		t.Fatalf("WriteOutMany: %v", err)
	}
	if err := s.DoReadOut(1); !api.IsCode(err, api.CodeInvalidArgument) {
		t.Errorf("DoReadOut against write span: got %v, want CodeInvalidArgument", err)
	}
	if err := s.DoWriteOut(0); !api.IsCode(err, api.CodeInvalidArgument) {
		t.Errorf("commit of 0: got %v, want CodeInvalidArgument", err)
	}
	if err := s.DoWriteOut(n + 1); !api.IsCode(err, api.CodeInvalidArgument) {
		t.Errorf("commit past span: got %v, want CodeInvalidArgument", err)
	}

	if err := s.DoWriteOut(1); err != nil {
		t.Fatalf("DoWriteOut: %v", err)
	}
	if err := s.DoWriteOut(1); !api.IsCode(err, api.CodeInvalidArgument) {
		t.Errorf("double commit: got %v, want CodeInvalidArgument", err)
	}
}

func TestRawCommit_FailsAfterCursorMove(t *testing.T) {
	cells := make([]api.Cell[int], 2)
	cells[1] = api.Cell[int]{Item: 9, Full: true}
	s := mustSeq(t, cells)

	if _, _, err := s.WriteOutMany(); err != nil {
		t.Fatalf("WriteOutMany: %v", err)
	}
	if err := s.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if err := s.DoWriteOut(1); !api.IsCode(err, api.CodeInvalidArgument) {
		t.Errorf("commit after move: got %v, want CodeInvalidArgument", err)
	}
}

func mustSeq(t *testing.T, cells []api.Cell[int]) *Seq[int] {
	t.Helper()
	s, err := New[int](fake.NewSliceTape(cells), Config[int]{Capacity: 4})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}
