package buffer

import (
	"testing"

	"github.com/momentics/hioload-seq/api"
)

func TestReadRefOut_DiesOnNextMove(t *testing.T) {
	s, _ := newSeq(t, 9)

	ln, err := s.ReadRefOut()
	if err != nil {
		t.Fatalf("ReadRefOut: %v", err)
	}
	if got, err := ln.Value(); err != nil || got != 9 {
		t.Errorf("Value = %d, %v, want 9", got, err)
	}
	if !ln.Valid() {
		t.Error("fresh loan reports invalid")
	}
	if s.Pos() != 0 {
		t.Errorf("lending moved the cursor to %d", s.Pos())
	}

	if err := s.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if ln.Valid() {
		t.Error("loan survived a cursor move")
	}
	if _, err := ln.Value(); !api.IsCode(err, api.CodeLoanExpired) {
		t.Errorf("Value after move: got %v, want CodeLoanExpired", err)
	}

	st := s.Stats()
	if st.LoansIssued != 1 || st.LoansRevoked != 1 {
		t.Errorf("loan accounting = issued %d revoked %d, want 1/1", st.LoansIssued, st.LoansRevoked)
	}
}

func TestWriteRefOut_SetThenReadBack(t *testing.T) {
	s, _ := newSeq(t)

	m, err := s.WriteRefOut()
	if err != nil {
		t.Fatalf("WriteRefOut: %v", err)
	}
	if err := m.Set(5); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if s.Pos() != 0 {
		t.Errorf("lending moved the cursor to %d", s.Pos())
	}

	got, err := s.Read()
	if err != nil || got != 5 {
		t.Fatalf("Read after Set = %d, %v, want 5", got, err)
	}
	// The read's cursor advance expired the slot.
	if err := m.Set(7); !api.IsCode(err, api.CodeLoanExpired) {
		t.Errorf("Set after expiry: got %v, want CodeLoanExpired", err)
	}
}

func TestRefOut_OccupancyChecks(t *testing.T) {
	occupied, _ := newSeq(t, 1)
	if _, err := occupied.WriteRefOut(); !api.IsCode(err, api.CodeCellOccupied) {
		t.Errorf("WriteRefOut on occupied cell: got %v, want CodeCellOccupied", err)
	}

	empty, _ := newSeq(t)
	if _, err := empty.ReadRefOut(); !api.IsCode(err, api.CodeCellEmpty) {
		t.Errorf("ReadRefOut on empty cell: got %v, want CodeCellEmpty", err)
	}
}

func TestSpanLoan_ShrinksWithMovement(t *testing.T) {
	s, _ := newSeq(t, 1, 2, 3)

	span, err := s.ReadRefOutMany()
	if err != nil {
		t.Fatalf("ReadRefOutMany: %v", err)
	}
	if span.Len() != 3 {
		t.Fatalf("span length = %d, want 3", span.Len())
	}

	// A rightward step drops the lowest lent cell, nothing else.
	if err := s.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if _, err := span.At(0); !api.IsCode(err, api.CodeLoanExpired) {
		t.Errorf("At(0) after Next: got %v, want CodeLoanExpired", err)
	}
	if got, err := span.At(1); err != nil || got != 2 {
		t.Errorf("At(1) = %d, %v, want 2", got, err)
	}
	if got, err := span.At(2); err != nil || got != 3 {
		t.Errorf("At(2) = %d, %v, want 3", got, err)
	}
	if !span.Valid() {
		t.Error("partially shrunk span reports invalid")
	}

	// A leftward step drops the highest lent cell.
	if err := s.Prev(); err != nil {
		t.Fatalf("Prev: %v", err)
	}
	if _, err := span.At(2); !api.IsCode(err, api.CodeLoanExpired) {
		t.Errorf("At(2) after Prev: got %v, want CodeLoanExpired", err)
	}
	if got, err := span.At(1); err != nil || got != 2 {
		t.Errorf("At(1) after Prev = %d, %v, want 2", got, err)
	}
}

func TestSpanLoan_CollapsesOnFlushOfAffectedCell(t *testing.T) {
	s, _ := newSeq(t, 1, 2, 3)

	span, err := s.ReadRefOutMany()
	if err != nil {
		t.Fatalf("ReadRefOutMany: %v", err)
	}
	if err := s.FlushNext(); err != nil {
		t.Fatalf("FlushNext: %v", err)
	}
	if span.Valid() {
		t.Error("span survived a flush over its cells")
	}
	if _, err := span.At(1); !api.IsCode(err, api.CodeLoanExpired) {
		t.Errorf("At after flush: got %v, want CodeLoanExpired", err)
	}
}

func TestSpanLoan_SurvivesUnaffectedFlush(t *testing.T) {
	s, tape := newSeq(t, 1, 2, 3, 4)

	if got, err := s.Read(); err != nil || got != 1 { // leaves cell 0 dirty-empty, cursor at 1
		t.Fatalf("Read = %d, %v, want 1", got, err)
	}
	if err := s.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	span, err := s.ReadRefOutMany() // lends cells 2 and 3
	if err != nil {
		t.Fatalf("ReadRefOutMany: %v", err)
	}
	if span.Len() != 2 {
		t.Fatalf("span length = %d, want 2", span.Len())
	}

	if err := s.Prev(); err != nil { // drops cell 3 from the window
		t.Fatalf("Prev: %v", err)
	}
	if err := s.FlushPrev(); err != nil { // writes back cells 0 and 1 only
		t.Fatalf("FlushPrev: %v", err)
	}
	if tape.Cell(0).Full {
		t.Error("drained cell 0 not written back by FlushPrev")
	}
	if got, err := span.At(0); err != nil || got != 3 {
		t.Errorf("At(0) after unrelated flush = %d, %v, want 3", got, err)
	}
}

func TestWriteRefOutMany_FillThenDrain(t *testing.T) {
	s, _ := newSeq(t)

	span, err := s.WriteRefOutMany()
	if err != nil {
		t.Fatalf("WriteRefOutMany: %v", err)
	}
	if span.Len() != 4 { // whole resident window is empty
		t.Fatalf("span length = %d, want 4", span.Len())
	}
	if err := span.Set(0, 10); err != nil {
		t.Fatalf("Set(0): %v", err)
	}
	if err := span.Set(1, 11); err != nil {
		t.Fatalf("Set(1): %v", err)
	}
	if err := span.Set(4, 12); !api.IsCode(err, api.CodeInvalidArgument) {
		t.Errorf("Set past span: got %v, want CodeInvalidArgument", err)
	}

	if got, err := s.Read(); err != nil || got != 10 {
		t.Errorf("first Read = %d, %v, want 10", got, err)
	}
	if got, err := s.Read(); err != nil || got != 11 {
		t.Errorf("second Read = %d, %v, want 11", got, err)
	}
}
