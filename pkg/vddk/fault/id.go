package fault

import (
	"strconv"
	"strings"
)

// ID identifies an injection point. Values match the native enumeration.
type ID int32

// Valid reports whether id names a slot in this build's table.
func (id ID) Valid() bool {
	return id >= 0 && id < Count
}

func (id ID) String() string {
	if !id.Valid() {
		return "ID(" + strconv.Itoa(int(id)) + ")"
	}
	return names[id]
}

// Parse accepts a point name with or without the "VDDK_" prefix, in any
// case, or a decimal index.
func Parse(s string) (ID, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		id := ID(n)
		return id, id.Valid()
	}
	s = strings.TrimPrefix(strings.ToUpper(s), "VDDK_")
	for i, n := range names {
		if n == s {
			return ID(i), true
		}
	}
	return -1, false
}

// All returns every injection point in numeric order.
func All() []ID {
	ids := make([]ID, Count)
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}

// Entry is the state of one slot.
type Entry struct {
	ID      ID
	Enabled bool
	Code    int32
}
