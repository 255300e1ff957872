//go:build unix || windows

package buffer

import (
	"os"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateAlignment(t *testing.T) {
	page := os.Getpagesize()
	tests := []struct {
		name      string
		size      int
		alignment int
	}{
		{"sector", 512, 512},
		{"one byte aligned", 1, 1},
		{"page", 64 << 10, page},
		{"larger than page", 4096, page * 4},
		{"odd size", 1000, 4096},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Allocate(tt.size, tt.alignment)
			require.NoError(t, err)
			t.Cleanup(func() { _ = b.Free() })

			assert.Equal(t, tt.size, b.Len())
			assert.Len(t, b.Bytes(), tt.size)
			assert.Equal(t, tt.size, cap(b.Bytes()))
			assert.Equal(t, tt.alignment, b.Alignment())
			assert.Zero(t, uintptr(b.Pointer())%uintptr(tt.alignment))

			for _, v := range b.Bytes() {
				require.Zero(t, v)
			}
			b.Bytes()[tt.size-1] = 0xff
			assert.Equal(t, byte(0xff), *(*byte)(unsafe.Add(b.Pointer(), tt.size-1)))
		})
	}
}

func TestAllocateRejects(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		alignment int
		want      error
	}{
		{"zero size", 0, 512, ErrInvalidSize},
		{"negative size", -1, 512, ErrInvalidSize},
		{"zero alignment", 512, 0, ErrInvalidAlignment},
		{"not a power of two", 512, 768, ErrInvalidAlignment},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Allocate(tt.size, tt.alignment)
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, b)
		})
	}
}

func TestFreeLifecycle(t *testing.T) {
	b, err := Allocate(4096, 512)
	require.NoError(t, err)

	require.NoError(t, b.Pin())
	require.NoError(t, b.Pin())
	assert.True(t, b.Pinned())
	require.ErrorIs(t, b.Free(), ErrInUse)

	b.Unpin()
	require.ErrorIs(t, b.Free(), ErrInUse)
	b.Unpin()
	assert.False(t, b.Pinned())

	require.NoError(t, b.Free())
	require.ErrorIs(t, b.Free(), ErrFreed)
	require.ErrorIs(t, b.Pin(), ErrFreed)
	assert.Nil(t, b.Bytes())
	assert.True(t, b.Pointer() == nil, "freed buffer must report a null address")
	assert.Zero(t, b.Len())
}

func TestUnpinWithoutPinPanics(t *testing.T) {
	b, err := Allocate(512, 512)
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Free() })

	assert.Panics(t, b.Unpin)
}
