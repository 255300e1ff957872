//go:build unix

package buffer

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func osAlloc(n int) ([]byte, error) {
	b, err := unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("buffer: mmap %d bytes: %w", n, err)
	}
	return b, nil
}

func osFree(b []byte) error {
	return unix.Munmap(b)
}
