package vddk

import (
	"context"
	"errors"

	"github.com/safekeeping/vddk-go/pkg/vddk/internal/bridge"
)

// ProgressFunc receives the completion percentage of a long-running
// operation. Returning false asks the native library to cancel it.
type ProgressFunc func(percent int) bool

// withProgress registers fn for the duration of call. Cancelling ctx makes
// the next progress report return false. A call that the library cancelled
// because of ctx reports ctx.Err() alongside the native error.
func withProgress(ctx context.Context, op string, fn ProgressFunc, call func(bridge.Ref) uint64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var cb bridge.ProgressFunc
	switch {
	case fn != nil:
		cb = func(percent int) bool {
			if ctx.Err() != nil {
				return false
			}
			return fn(percent)
		}
	case ctx.Done() != nil:
		cb = func(int) bool { return ctx.Err() == nil }
	}

	ref := bridge.RegisterProgress(cb)
	defer bridge.ReleaseProgress(ref)

	err := check(op, call(ref))
	if err != nil && ctx.Err() != nil && IsCode(err, CodeCancelled) {
		return errors.Join(err, ctx.Err())
	}
	return err
}
