package bridge

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu     sync.Mutex
	lines  []string
	levels []Level
}

func (s *recordingSink) add(l Level, msg string) {
	s.mu.Lock()
	s.lines = append(s.lines, msg)
	s.levels = append(s.levels, l)
	s.mu.Unlock()
}

func (s *recordingSink) Log(msg string)   { s.add(LevelLog, msg) }
func (s *recordingSink) Warn(msg string)  { s.add(LevelWarn, msg) }
func (s *recordingSink) Panic(msg string) { s.add(LevelPanic, msg) }

func installSink(t *testing.T) *recordingSink {
	t.Helper()
	s := &recordingSink{}
	prev := SetSink(s)
	t.Cleanup(func() { SetSink(prev) })
	return s
}

func TestCompletionDeliveredExactlyOnce(t *testing.T) {
	sink := installSink(t)
	before := OutstandingCompletions()

	var (
		calls    atomic.Int32
		released atomic.Int32
		got      atomic.Uint64
	)
	ref := RegisterCompletion(&Completion{
		ID:   "op-1",
		Fn:   func(code uint64) { calls.Add(1); got.Store(code) },
		Hold: []byte("pinned"),
		Done: func() { released.Add(1) },
	})
	require.Equal(t, before+1, OutstandingCompletions())

	DeliverCompletion(ref, CodeOK)
	DeliverCompletion(ref, CodeFail)

	require.EqualValues(t, 1, calls.Load())
	require.EqualValues(t, 1, released.Load())
	require.Equal(t, CodeOK, got.Load())
	require.Equal(t, before, OutstandingCompletions())
	require.Len(t, sink.lines, 1, "duplicate delivery is logged")
	require.Equal(t, LevelWarn, sink.levels[0])
}

func TestCompletionFromLockedThread(t *testing.T) {
	done := make(chan uint64, 1)
	var released atomic.Bool
	ref := RegisterCompletion(&Completion{
		ID:   "op-thread",
		Fn:   func(code uint64) { done <- code },
		Done: func() { released.Store(true) },
	})

	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		DeliverCompletion(ref, 16000)
	}()

	require.Equal(t, uint64(16000), <-done)
	require.Eventually(t, released.Load, testTimeout, testTick)
}

func TestCompletionPanicStillReleases(t *testing.T) {
	sink := installSink(t)
	var released atomic.Bool
	ref := RegisterCompletion(&Completion{
		ID:   "op-panic",
		Fn:   func(uint64) { panic("boom") },
		Done: func() { released.Store(true) },
	})

	require.NotPanics(t, func() { DeliverCompletion(ref, CodeOK) })
	require.True(t, released.Load())
	require.Len(t, sink.lines, 1)
	assert.Contains(t, sink.lines[0], "op-panic")
}

func TestCompletionCancel(t *testing.T) {
	var calls, released atomic.Int32
	ref := RegisterCompletion(&Completion{
		Fn:   func(uint64) { calls.Add(1) },
		Done: func() { released.Add(1) },
	})

	require.True(t, CancelCompletion(ref))
	require.False(t, CancelCompletion(ref))
	installSink(t)
	DeliverCompletion(ref, CodeOK)

	require.Zero(t, calls.Load())
	require.EqualValues(t, 1, released.Load())
}

func TestCompletionManyOutOfOrder(t *testing.T) {
	const n = 64
	var (
		wg   sync.WaitGroup
		seen sync.Map
	)
	refs := make([]Ref, n)
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		refs[i] = RegisterCompletion(&Completion{Fn: func(code uint64) {
			_, dup := seen.LoadOrStore(i, code)
			assert.False(t, dup)
			wg.Done()
		}})
	}
	for i := n - 1; i >= 0; i-- {
		go DeliverCompletion(refs[i], uint64(i))
	}
	wg.Wait()
	for i := 0; i < n; i++ {
		v, ok := seen.Load(i)
		require.True(t, ok)
		require.Equal(t, uint64(i), v)
	}
}

func TestRegisterCompletionWithoutCallback(t *testing.T) {
	require.Panics(t, func() { RegisterCompletion(&Completion{ID: "nil"}) })
}

func TestProgressDispatch(t *testing.T) {
	var seen []int
	ref := RegisterProgress(func(p int) bool {
		seen = append(seen, p)
		return p < 50
	})
	defer ReleaseProgress(ref)

	require.True(t, DispatchProgress(ref, 10))
	require.False(t, DispatchProgress(ref, 50))
	require.Equal(t, []int{10, 50}, seen)

	require.Zero(t, RegisterProgress(nil))
}

func TestProgressPanicCancels(t *testing.T) {
	installSink(t)
	ref := RegisterProgress(func(int) bool { panic("bad progress") })
	defer ReleaseProgress(ref)

	require.False(t, DispatchProgress(ref, 1))
}

func TestProgressMissingRefIsViolation(t *testing.T) {
	ref := RegisterProgress(func(int) bool { return true })
	ReleaseProgress(ref)

	require.Panics(t, func() { DispatchProgress(ref, 1) })
}

func TestSinkSlot(t *testing.T) {
	prev := SetSink(nil)
	defer SetSink(prev)

	require.Nil(t, ActiveSink())
	require.NotPanics(t, func() { DispatchLog(LevelLog, "no sink installed\n") })

	a := &recordingSink{}
	b := &recordingSink{}
	require.Nil(t, SetSink(a))
	require.Same(t, a, SetSink(b))

	DispatchLog(LevelLog, "opened disk\n")
	DispatchLog(LevelWarn, "slow transport")
	DispatchLog(LevelPanic, "fatal\r\n")

	require.Empty(t, a.lines)
	require.Equal(t, []string{"opened disk", "slow transport", "fatal"}, b.lines)
	require.Equal(t, []Level{LevelLog, LevelWarn, LevelPanic}, b.levels)
}

type panickingSink struct{}

func (panickingSink) Log(string)   { panic("sink") }
func (panickingSink) Warn(string)  { panic("sink") }
func (panickingSink) Panic(string) { panic("sink") }

func TestSinkPanicIsRecovered(t *testing.T) {
	prev := SetSink(panickingSink{})
	defer SetSink(prev)

	require.NotPanics(t, func() { DispatchLog(LevelLog, "x") })
}
