package bridge

import (
	"strconv"
	"unsafe"
)

// Handle is an opaque native resource reference (connection, disk, disk set,
// volume) widened to 64 bits so it fits any supported address width.
type Handle uint64

// Encode widens a pointer-sized native value into a Handle without altering
// its bit pattern. T must be pointer sized; anything else is a programming
// error and panics.
func Encode[T any](p T) Handle {
	mustBeWord[T]()
	return Handle(*(*uintptr)(unsafe.Pointer(&p)))
}

// Decode is the inverse of Encode. Decode[T](Encode(p)) == p for every
// pointer-sized p.
func Decode[T any](h Handle) T {
	mustBeWord[T]()
	u := uintptr(h)
	return *(*T)(unsafe.Pointer(&u))
}

// EncodeUintptr widens a raw address.
func EncodeUintptr(p uintptr) Handle {
	return Handle(p)
}

// Uintptr narrows h back to the platform word.
func (h Handle) Uintptr() uintptr {
	return uintptr(h)
}

// IsZero reports whether h is the null handle.
func (h Handle) IsZero() bool {
	return h == 0
}

func (h Handle) String() string {
	return "0x" + strconv.FormatUint(uint64(h), 16)
}

func mustBeWord[T any]() {
	var zero T
	if unsafe.Sizeof(zero) != unsafe.Sizeof(uintptr(0)) {
		panic("bridge: handle type is not pointer sized")
	}
}
