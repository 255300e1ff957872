package vddk

import (
	"errors"
	"fmt"

	"github.com/safekeeping/vddk-go/pkg/vddk/internal/backend"
	"github.com/safekeeping/vddk-go/pkg/vddk/internal/bridge"
)

var (
	// ErrNotBuilt reports that the binary was compiled without the native
	// library (no cgo, or not linux).
	ErrNotBuilt = errors.New("vddk: native library not built into this binary")

	// ErrLibraryClosed is returned by operations on a Library after Exit.
	ErrLibraryClosed = errors.New("vddk: library already exited")

	// ErrClosed is returned by operations on a disconnected Connection or a
	// closed Disk.
	ErrClosed = errors.New("vddk: handle already closed")

	// ErrAlreadyInitialized is returned by Init while another Library is live.
	ErrAlreadyInitialized = errors.New("vddk: library already initialized")

	// ErrNilCallback is returned when an asynchronous call has no completion.
	ErrNilCallback = errors.New("vddk: nil callback")

	// ErrInvalidBuffer is returned for buffers that are empty, freed or not a
	// whole number of sectors.
	ErrInvalidBuffer = errors.New("vddk: invalid buffer")

	// ErrInvalidVersion is returned by ParseVersion.
	ErrInvalidVersion = errors.New("vddk: invalid version string")

	// ErrFaultOutOfRange is returned by SetFault for an unknown injection
	// point.
	ErrFaultOutOfRange = errors.New("vddk: fault id out of range")
)

// Error is a failure reported by the native library.
type Error struct {
	Op   string
	Code Code

	notBuilt bool
}

func (e *Error) Error() string {
	return fmt.Sprintf("vddk: %s: %s (%d)", e.Op, e.Code, uint64(e.Code))
}

// Unwrap lets errors.Is match ErrNotBuilt when the code came from the stub
// backend rather than from a native library.
func (e *Error) Unwrap() error {
	if e.notBuilt {
		return ErrNotBuilt
	}
	return nil
}

// NewError turns a native result code into an error, returning nil for
// CodeOK. native reports whether the code came from a linked library. This
// is exported for use by the mount package.
func NewError(op string, code uint64, native bool) error {
	if code == bridge.CodeOK {
		return nil
	}
	return &Error{Op: op, Code: Code(code), notBuilt: !native}
}

func check(op string, code uint64) error {
	return NewError(op, code, backend.Built)
}

// IsCode reports whether err wraps a native Error carrying code.
func IsCode(err error, code Code) bool {
	c, ok := CodeOf(err)
	return ok && c == code
}

// CodeOf extracts the native code from err.
func CodeOf(err error) (Code, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return 0, false
}
