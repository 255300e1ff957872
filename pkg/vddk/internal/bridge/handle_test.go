package bridge

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

type nativeDisk struct{ _ [16]byte }

var (
	diskA nativeDisk
	diskB nativeDisk
)

func TestHandleRoundTripUintptr(t *testing.T) {
	tests := []struct {
		name string
		in   uintptr
	}{
		{name: "zero", in: 0},
		{name: "one", in: 1},
		{name: "page", in: 4096},
		{name: "high bit", in: uintptr(1) << (unsafe.Sizeof(uintptr(0))*8 - 1)},
		{name: "all ones", in: math.MaxUint32},
		{name: "max", in: ^uintptr(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := EncodeUintptr(tt.in)
			require.Equal(t, tt.in, h.Uintptr())
			require.Equal(t, tt.in, Decode[uintptr](h))
			require.Equal(t, h, Encode(tt.in))
		})
	}
}

func TestHandleRoundTripPointer(t *testing.T) {
	for _, p := range []*nativeDisk{nil, &diskA, &diskB} {
		h := Encode(p)
		require.Equal(t, p, Decode[*nativeDisk](h))
		require.Equal(t, p == nil, h.IsZero())
	}
	require.NotEqual(t, Encode(&diskA), Encode(&diskB))
}

func TestHandleRejectsNonWordTypes(t *testing.T) {
	require.Panics(t, func() { Encode(int8(1)) })
	require.Panics(t, func() { Decode[[2]uintptr](1) })
}

func TestHandleString(t *testing.T) {
	require.Equal(t, "0x0", Handle(0).String())
	require.Equal(t, "0xdeadbeef", Handle(0xdeadbeef).String())
}
