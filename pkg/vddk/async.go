package vddk

import (
	"context"
	"fmt"
	"unsafe"

	"github.com/google/uuid"

	"github.com/safekeeping/vddk-go/pkg/vddk/buffer"
	"github.com/safekeeping/vddk-go/pkg/vddk/internal/backend"
	"github.com/safekeeping/vddk-go/pkg/vddk/internal/bridge"
)

// CompletionFunc receives the outcome of an asynchronous read or write. It
// runs on a thread owned by the native library, usually from inside Wait, and
// is called exactly once per accepted request. err is nil on success.
type CompletionFunc func(err error)

// ReadAsync submits a read of b.Len() bytes starting at sector start. The
// buffer stays pinned until done runs and must not be freed before then.
func (d *Disk) ReadAsync(start uint64, b *buffer.Buffer, done CompletionFunc) error {
	return d.submit("ReadAsync", start, b, done, backend.ReadAsync)
}

// WriteAsync submits a write of b starting at sector start.
func (d *Disk) WriteAsync(start uint64, b *buffer.Buffer, done CompletionFunc) error {
	return d.submit("WriteAsync", start, b, done, backend.WriteAsync)
}

// Pending returns the number of submitted requests that have not completed.
func (d *Disk) Pending() int {
	return int(d.pending.Load())
}

type asyncCall func(bridge.Handle, uint64, uint64, unsafe.Pointer, bridge.Ref) uint64

func (d *Disk) submit(op string, start uint64, b *buffer.Buffer, done CompletionFunc, call asyncCall) error {
	if done == nil {
		return ErrNilCallback
	}
	p, count, err := bufferSectors(b)
	if err != nil {
		return err
	}
	h, err := d.submitHandle()
	if err != nil {
		return err
	}
	if err := b.Pin(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBuffer, err)
	}

	id := uuid.NewString()
	logger := d.logger.With("op", op, "request", id)
	d.pending.Add(1)

	ref := bridge.RegisterCompletion(&bridge.Completion{
		ID:   id,
		Hold: b,
		Fn: func(code uint64) {
			err := check(op, code)
			if err != nil {
				logger.Warn(context.Background(), "asynchronous request failed", "error", err)
			} else {
				logger.Debug(context.Background(), "asynchronous request completed")
			}
			done(err)
		},
		Done: func() {
			b.Unpin()
			d.pending.Add(-1)
		},
	})

	code := call(h, start, count, p, ref)
	switch code {
	case bridge.CodeAsync:
	case bridge.CodeOK:
		// Completed inline. If the library did not deliver the callback
		// itself, deliver it here so done still runs once.
		if bridge.CancelCompletion(ref) {
			done(nil)
		}
		return nil
	default:
		bridge.CancelCompletion(ref)
		return check(op, code)
	}
	logger.Debug(context.Background(), "asynchronous request submitted", "start", start, "sectors", count)
	return nil
}
