//go:build linux

// File: pool/arena_linux.go
//
// Package pool: Linux-specific arena allocation using hugepages.
//
// Arenas are allocated via mmap with MAP_HUGETLB for 2 MiB pages.
// Fallback to a regular anonymous mapping, then to the Go heap if both
// mappings fail.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "golang.org/x/sys/unix"

func newArena(size int) *Arena {
	// Round to hugepage (2 MiB) boundary
	const hugeSize = 2 << 20
	length := ((size + hugeSize - 1) / hugeSize) * hugeSize

	data, err := unix.Mmap(-1, 0, length,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANONYMOUS|unix.MAP_PRIVATE|unix.MAP_HUGETLB)
	if err != nil {
		data, err = unix.Mmap(-1, 0, size,
			unix.PROT_READ|unix.PROT_WRITE,
			unix.MAP_ANONYMOUS|unix.MAP_PRIVATE)
	}
	if err != nil {
		return &Arena{raw: make([]byte, size), size: size}
	}
	return &Arena{raw: data, size: size, mapped: true}
}

func releaseArena(a *Arena) {
	_ = unix.Munmap(a.raw)
}
