// File: core/buffer/bufferctl.go
// Author: momentics <momentics@gmail.com>
//
// Explicit buffering control. Flush forces buffered cells out to the
// tape and evicts them; slurp re-reads cells from the tape in place,
// flushing pending writes in the affected range first so no logical
// content is ever lost. Both invalidate loans over affected cells.

package buffer

// FlushPrev synchronizes the buffered cells at and left of the cursor
// to the tape and evicts them, leaving the buffer holding only what
// lies right of the cursor.
func (s *Seq[T]) FlushPrev() error {
	s.stats.Flushes++
	if s.winN == 0 || s.pos < s.winLo {
		return nil
	}
	endRel := int(s.pos - s.winLo)
	if endRel >= s.winN {
		endRel = s.winN - 1
	}
	if err := s.flushRange(s.off, s.off+endRel); err != nil {
		return err
	}
	s.ledger.Invalidate(s.winLo, s.winLo+int64(endRel))
	s.off += endRel + 1
	s.winLo += int64(endRel) + 1
	s.winN -= endRel + 1
	if s.winN == 0 {
		s.off = 0
	}
	return nil
}

// FlushNext synchronizes the buffered cells at and right of the cursor
// to the tape and evicts them.
func (s *Seq[T]) FlushNext() error {
	s.stats.Flushes++
	if s.winN == 0 {
		return nil
	}
	winHi := s.winLo + int64(s.winN) - 1
	if s.pos > winHi {
		return nil
	}
	startRel := 0
	if s.pos > s.winLo {
		startRel = int(s.pos - s.winLo)
	}
	if err := s.flushRange(s.off+startRel, s.off+s.winN-1); err != nil {
		return err
	}
	s.ledger.Invalidate(s.winLo+int64(startRel), winHi)
	s.winN = startRel
	if s.winN == 0 {
		s.off = 0
	}
	return nil
}

// SlurpPrev re-populates the buffered cells at and left of the cursor
// from the tape, keeping the window shape. With an empty cache it
// populates a window ending at the cursor.
func (s *Seq[T]) SlurpPrev() error {
	s.stats.Slurps++
	if s.winN == 0 {
		return s.rewindow(s.pos, true)
	}
	if s.pos < s.winLo {
		return nil
	}
	endRel := int(s.pos - s.winLo)
	if endRel >= s.winN {
		endRel = s.winN - 1
	}
	n := endRel + 1
	if err := s.flushRange(s.off, s.off+endRel); err != nil {
		return err
	}
	if _, err := s.loadInto(s.winLo, s.off, n); err != nil {
		return err
	}
	s.ledger.Invalidate(s.winLo, s.winLo+int64(endRel))
	s.stats.CellsSlurped += uint64(n)
	return nil
}

// SlurpNext re-populates the buffered cells at and right of the cursor
// from the tape. With an empty cache it populates a window starting at
// the cursor.
func (s *Seq[T]) SlurpNext() error {
	s.stats.Slurps++
	if s.winN == 0 {
		return s.rewindow(s.pos, false)
	}
	winHi := s.winLo + int64(s.winN) - 1
	if s.pos > winHi {
		return nil
	}
	startRel := 0
	if s.pos > s.winLo {
		startRel = int(s.pos - s.winLo)
	}
	n := s.winN - startRel
	if err := s.flushRange(s.off+startRel, s.off+s.winN-1); err != nil {
		return err
	}
	if _, err := s.loadInto(s.winLo+int64(startRel), s.off+startRel, n); err != nil {
		return err
	}
	s.ledger.Invalidate(s.winLo+int64(startRel), winHi)
	s.stats.CellsSlurped += uint64(n)
	return nil
}
