//go:build !linux

// File: pool/arena_stub.go
// Author: momentics <momentics@gmail.com>
//
// Heap-backed arena allocation for platforms without the mmap path.

package pool

func newArena(size int) *Arena {
	return &Arena{raw: make([]byte, size), size: size}
}

func releaseArena(_ *Arena) {}
