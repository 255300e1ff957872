// Package buffer allocates aligned I/O buffers outside the Go heap.
//
// Disk reads and writes through a Buffer hand its address straight to the
// native library without copying. The memory comes from the operating system
// (mmap on Unix, VirtualAlloc on Windows), so the garbage collector never
// moves or scans it and native code may keep the address for the lifetime of
// an asynchronous request. A Buffer must be released with Free; it is never
// reclaimed automatically.
package buffer

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"unsafe"
)

var (
	// ErrInvalidAlignment is returned for an alignment that is not a power of two.
	ErrInvalidAlignment = errors.New("buffer: alignment must be a power of two")
	// ErrInvalidSize is returned for a zero or negative size.
	ErrInvalidSize = errors.New("buffer: size must be positive")
	// ErrFreed is returned by operations on a released buffer.
	ErrFreed = errors.New("buffer: already freed")
	// ErrInUse is returned by Free while I/O still references the buffer.
	ErrInUse = errors.New("buffer: in use by pending I/O")
	// ErrUnsupported is returned on platforms without an allocator.
	ErrUnsupported = errors.New("buffer: aligned allocation not supported on this platform")
)

// Buffer is a fixed-size aligned region of native memory.
type Buffer struct {
	mu        sync.Mutex
	mapping   []byte
	data      []byte
	alignment int
	pins      int
	freed     bool
}

// Allocate returns a zeroed buffer of size bytes whose first byte is aligned
// to alignment, which must be a power of two.
func Allocate(size, alignment int) (*Buffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if alignment <= 0 || alignment&(alignment-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAlignment, alignment)
	}

	total := size
	if alignment > os.Getpagesize() {
		total += alignment
	}
	mapping, err := osAlloc(total)
	if err != nil {
		return nil, err
	}

	base := uintptr(unsafe.Pointer(&mapping[0]))
	off := int((uintptr(alignment) - base%uintptr(alignment)) % uintptr(alignment))
	return &Buffer{
		mapping:   mapping,
		data:      mapping[off : off+size : off+size],
		alignment: alignment,
	}, nil
}

// Bytes returns the buffer contents. The slice is invalid after Free.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.freed {
		return nil
	}
	return b.data
}

// Len returns the usable size in bytes.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.freed {
		return 0
	}
	return len(b.data)
}

// Alignment returns the alignment requested at allocation.
func (b *Buffer) Alignment() int {
	return b.alignment
}

// Pointer returns the address of the first byte, or nil after Free.
func (b *Buffer) Pointer() unsafe.Pointer {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.freed {
		return nil
	}
	return unsafe.Pointer(&b.data[0])
}

// Pin records that native code holds the address. Free fails until every
// Pin is matched by Unpin.
func (b *Buffer) Pin() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.freed {
		return ErrFreed
	}
	b.pins++
	return nil
}

// Unpin releases one Pin.
func (b *Buffer) Unpin() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.pins == 0 {
		panic("buffer: unpin without pin")
	}
	b.pins--
}

// Pinned reports whether any I/O still references the buffer.
func (b *Buffer) Pinned() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pins > 0
}

// Free returns the memory to the operating system.
func (b *Buffer) Free() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.freed {
		return ErrFreed
	}
	if b.pins > 0 {
		return fmt.Errorf("%w: %d outstanding", ErrInUse, b.pins)
	}
	if err := osFree(b.mapping); err != nil {
		return fmt.Errorf("buffer: free: %w", err)
	}
	b.freed = true
	b.mapping, b.data = nil, nil
	return nil
}
