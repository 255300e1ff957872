package bridge

// ProgressFunc receives a completion percentage and reports whether the
// native operation should continue.
type ProgressFunc func(percent int) bool

var progressRefs = NewRegistry()

// RegisterProgress keeps fn reachable for the duration of one native call. A
// nil fn yields the zero Ref, which the backend maps to a null callback.
func RegisterProgress(fn ProgressFunc) Ref {
	if fn == nil {
		return 0
	}
	return progressRefs.Put(fn)
}

// ReleaseProgress drops the registration made by RegisterProgress.
func ReleaseProgress(ref Ref) {
	if ref != 0 {
		progressRefs.Delete(ref)
	}
}

// DispatchProgress runs the callback registered under ref and returns its
// verdict unchanged. A panicking callback cancels the operation.
func DispatchProgress(ref Ref, percent int) (keepGoing bool) {
	fn := Lookup[ProgressFunc](progressRefs, ref)
	defer func() {
		if r := recover(); r != nil {
			DispatchLog(LevelWarn, "progress callback panicked; cancelling operation")
			keepGoing = false
		}
	}()
	return fn(percent)
}
