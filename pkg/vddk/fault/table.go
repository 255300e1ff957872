//go:build !vddk_release

package fault

import "sync"

// Instrumented reports whether this build carries a live table.
const Instrumented = true

type slot struct {
	enabled bool
	code    int32
}

var table struct {
	mu    sync.RWMutex
	slots [Count]slot
}

// Set enables or disables id. It returns false, leaving every slot untouched,
// when id is out of range.
func Set(id ID, enabled bool, code int32) bool {
	if !id.Valid() {
		return false
	}
	table.mu.Lock()
	table.slots[id] = slot{enabled: enabled, code: code}
	table.mu.Unlock()
	return true
}

// IsEnabled reports whether id is enabled and the code to inject. Out of
// range identifiers report disabled.
func IsEnabled(id ID) (bool, int32) {
	if !id.Valid() {
		return false, 0
	}
	table.mu.RLock()
	s := table.slots[id]
	table.mu.RUnlock()
	if !s.enabled {
		return false, 0
	}
	return true, s.code
}

// Reset disables every slot.
func Reset() {
	table.mu.Lock()
	table.slots = [Count]slot{}
	table.mu.Unlock()
}

// Snapshot returns the enabled slots in numeric order.
func Snapshot() []Entry {
	table.mu.RLock()
	defer table.mu.RUnlock()

	var out []Entry
	for i, s := range table.slots {
		if s.enabled {
			out = append(out, Entry{ID: ID(i), Enabled: true, Code: s.code})
		}
	}
	return out
}
