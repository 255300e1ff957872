//go:build cgo && linux

package backend

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safekeeping/vddk-go/pkg/vddk/internal/bridge"
)

func TestCompletionFromNativeThread(t *testing.T) {
	before := bridge.OutstandingCompletions()

	var got atomic.Uint64
	var calls, released atomic.Int32
	ref := bridge.RegisterCompletion(&bridge.Completion{
		ID: "native-thread",
		Fn: func(code uint64) {
			calls.Add(1)
			got.Store(code)
		},
		Done: func() { released.Add(1) },
	})

	require.NoError(t, DeliverOnForeignThread(ref, 16000))
	assert.Equal(t, uint64(16000), got.Load())
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, int32(1), released.Load())
	assert.Equal(t, before, bridge.OutstandingCompletions())
}

func TestCompletionsFromManyNativeThreads(t *testing.T) {
	const n = 32
	before := bridge.OutstandingCompletions()

	var delivered, released atomic.Int32
	refs := make([]bridge.Ref, n)
	for i := range refs {
		refs[i] = bridge.RegisterCompletion(&bridge.Completion{
			Fn:   func(uint64) { delivered.Add(1) },
			Done: func() { released.Add(1) },
		})
	}

	// Every thread is new to the runtime and exits after one delivery, so
	// each call attaches and detaches.
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i, ref := range refs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = DeliverOnForeignThread(ref, bridge.CodeOK)
		}()
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, int32(n), delivered.Load())
	assert.Equal(t, int32(n), released.Load())
	assert.Equal(t, before, bridge.OutstandingCompletions())
}
