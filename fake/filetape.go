// File: fake/filetape.go
// Author: momentics <momentics@gmail.com>
//
// FileTape is an api.Tape[uint64] persisted in fixed-size pages, each
// framed as [cells payload][xxhash64 trailer]. The checksum is verified
// on every page read and recomputed on every page write, so a buffered
// manipulator flushing onto the tape and a direct reader of the same
// file agree on integrity. Page staging goes through a pool.Arena.

package fake

import (
	"encoding/binary"
	"os"

	"github.com/cespare/xxhash/v2"

	"github.com/momentics/hioload-seq/api"
	"github.com/momentics/hioload-seq/pool"
)

const (
	// PageCells is the number of cells per checksummed page.
	PageCells = 256

	cellSize     = 9 // 1 occupancy byte + 8-byte little-endian item
	pageDataSize = PageCells * cellSize
	pageSize     = pageDataSize + 8 // xxhash64 trailer
)

// FileTape realizes cells in whole-page granularity: storing past the
// extent grows the file page by page, so the extent can exceed the
// highest written cell; the padding cells are empty.
type FileTape struct {
	f     *os.File
	pages int64
	page  *pool.Arena

	stoppedR bool
	stoppedW bool
	closed   bool
}

// NewFileTape opens a tape over f, which the tape owns from now on.
// A file whose size is not page-aligned is rejected as corrupted.
func NewFileTape(f *os.File) (*FileTape, error) {
	st, err := f.Stat()
	if err != nil {
		return nil, api.Errf(api.CodeBackend, "stat tape file").WithContext("cause", err)
	}
	if st.Size()%pageSize != 0 {
		return nil, api.Errf(api.CodeCorrupted, "file size %d is not page aligned", st.Size())
	}
	return &FileTape{
		f:     f,
		pages: st.Size() / pageSize,
		page:  pool.NewArena(pageSize),
	}, nil
}

// Extent implements api.Tape.
func (t *FileTape) Extent() (lo, hi int64) { return 0, t.pages * PageCells }

// Load implements api.Tape, verifying every page it touches.
func (t *FileTape) Load(pos int64, dst []api.Cell[uint64]) (int, error) {
	if pos < 0 {
		return 0, api.Errf(api.CodeOutOfRange, "load at negative position %d", pos)
	}
	hi := t.pages * PageCells
	if pos >= hi {
		return 0, nil
	}
	n := int64(len(dst))
	if pos+n > hi {
		n = hi - pos
	}
	buf := t.page.Bytes()
	got := int64(0)
	for got < n {
		cell := pos + got
		pageIdx := cell / PageCells
		if err := t.readPage(pageIdx, buf); err != nil {
			return 0, err
		}
		for k := cell % PageCells; k < PageCells && got < n; k++ {
			off := k * cellSize
			dst[got] = api.Cell[uint64]{
				Full: buf[off] != 0,
				Item: binary.LittleEndian.Uint64(buf[off+1 : off+9]),
			}
			got++
		}
	}
	return int(n), nil
}

// Store implements api.Tape with read-modify-write page updates. Gap
// pages between the old extent and a far store are written out as
// all-empty so every realized page carries a valid checksum.
func (t *FileTape) Store(pos int64, src []api.Cell[uint64]) error {
	if pos < 0 {
		return api.Errf(api.CodeOutOfRange, "store at negative position %d", pos)
	}
	buf := t.page.Bytes()
	done := int64(0)
	n := int64(len(src))
	for done < n {
		cell := pos + done
		pageIdx := cell / PageCells
		for t.pages < pageIdx {
			zeroPage(buf)
			if err := t.writePage(t.pages, buf); err != nil {
				return err
			}
		}
		if pageIdx < t.pages {
			if err := t.readPage(pageIdx, buf); err != nil {
				return err
			}
		} else {
			zeroPage(buf)
		}
		for k := cell % PageCells; k < PageCells && done < n; k++ {
			off := k * cellSize
			if src[done].Full {
				buf[off] = 1
			} else {
				buf[off] = 0
			}
			binary.LittleEndian.PutUint64(buf[off+1:off+9], src[done].Item)
			done++
		}
		if err := t.writePage(pageIdx, buf); err != nil {
			return err
		}
	}
	return nil
}

// StopRead implements api.TapeStopper.
func (t *FileTape) StopRead(_ any) error {
	t.stoppedR = true
	return t.maybeClose()
}

// StopWrite implements api.TapeStopper, syncing written pages out.
func (t *FileTape) StopWrite(_ any) error {
	if !t.stoppedW {
		if err := t.f.Sync(); err != nil {
			return api.Errf(api.CodeBackend, "sync tape file").WithContext("cause", err)
		}
	}
	t.stoppedW = true
	return t.maybeClose()
}

func (t *FileTape) maybeClose() error {
	if t.closed || !t.stoppedR || !t.stoppedW {
		return nil
	}
	t.closed = true
	t.page.Release()
	if err := t.f.Close(); err != nil {
		return api.Errf(api.CodeBackend, "close tape file").WithContext("cause", err)
	}
	return nil
}

func (t *FileTape) readPage(idx int64, buf []byte) error {
	if _, err := t.f.ReadAt(buf, idx*pageSize); err != nil {
		return api.Errf(api.CodeBackend, "read page %d", idx).WithContext("cause", err)
	}
	sum := xxhash.Sum64(buf[:pageDataSize])
	if sum != binary.LittleEndian.Uint64(buf[pageDataSize:]) {
		return api.Errf(api.CodeCorrupted, "checksum mismatch on page %d", idx)
	}
	return nil
}

func (t *FileTape) writePage(idx int64, buf []byte) error {
	binary.LittleEndian.PutUint64(buf[pageDataSize:], xxhash.Sum64(buf[:pageDataSize]))
	if _, err := t.f.WriteAt(buf, idx*pageSize); err != nil {
		return api.Errf(api.CodeBackend, "write page %d", idx).WithContext("cause", err)
	}
	if idx >= t.pages {
		t.pages = idx + 1
	}
	return nil
}

func zeroPage(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}

var _ api.Tape[uint64] = (*FileTape)(nil)
var _ api.TapeStopper = (*FileTape)(nil)
