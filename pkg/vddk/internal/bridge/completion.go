package bridge

import "fmt"

// CompletionFunc receives the native result code of an asynchronous
// operation.
type CompletionFunc func(code uint64)

// Completion is the context of one outstanding asynchronous operation.
type Completion struct {
	// ID correlates submission and delivery in logs.
	ID string
	Fn CompletionFunc
	// Hold keeps the I/O buffer reachable until delivery.
	Hold any
	// Done runs after Fn, on every path, once the context is released.
	Done func()
}

var completionRefs = NewRegistry()

// RegisterCompletion records c before the asynchronous call is submitted.
func RegisterCompletion(c *Completion) Ref {
	if c == nil || c.Fn == nil {
		Violation("completion registered without a callback")
	}
	return completionRefs.Put(c)
}

// CancelCompletion withdraws a registration whose submission failed
// synchronously. It returns true if the context was still outstanding, in
// which case its Done hook runs and Fn never will.
func CancelCompletion(ref Ref) bool {
	v, ok := completionRefs.Take(ref)
	if !ok {
		return false
	}
	if c, ok := v.(*Completion); ok {
		c.release()
	}
	return true
}

// OutstandingCompletions returns the number of registered contexts that have
// not been delivered or cancelled.
func OutstandingCompletions() int {
	return completionRefs.Len()
}

// DeliverCompletion hands code to the callback registered under ref, then
// releases the context. The context is claimed before the callback runs, so
// a second delivery for the same ref finds nothing and is only logged.
func DeliverCompletion(ref Ref, code uint64) {
	v, ok := completionRefs.Take(ref)
	if !ok {
		DispatchLog(LevelWarn, fmt.Sprintf("completion for ref %d has no outstanding operation", ref))
		return
	}
	c, ok := v.(*Completion)
	if !ok {
		Violation("completion context for ref %d has type %T", ref, v)
	}
	defer c.release()
	defer func() {
		if r := recover(); r != nil {
			DispatchLog(LevelWarn, fmt.Sprintf("completion callback %s panicked: %v", c.ID, r))
		}
	}()
	c.Fn(code)
}

func (c *Completion) release() {
	if c.Done != nil {
		c.Done()
	}
	c.Hold = nil
}
