package vddk

import (
	"strconv"
	"strings"

	"github.com/safekeeping/vddk-go/pkg/vddk/internal/backend"
	"github.com/safekeeping/vddk-go/pkg/vddk/internal/bridge"
)

// Code is a native result code, carried verbatim.
type Code uint64

// String returns the documented name of c, or "Code(n)" for values the
// table does not know.
func (c Code) String() string {
	if n, ok := codeNames[c]; ok {
		return n
	}
	return "Code(" + strconv.FormatUint(uint64(c), 10) + ")"
}

// Known reports whether c has a documented name.
func (c Code) Known() bool {
	_, ok := codeNames[c]
	return ok
}

// Text asks the native library for the message describing c. An empty
// locale selects the library default. Without a native library, or when the
// library has no text for c, the documented name is returned.
func (c Code) Text(locale string) string {
	if t := backend.GetErrorText(uint64(c), bridge.Optional(locale)); t != nil && *t != "" {
		return *t
	}
	return c.String()
}

// ParseCode looks up a documented name such as "VIX_E_DISK_FULL". The
// "VIX_E_" prefix and case are optional.
func ParseCode(name string) (Code, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for c, n := range codeNames {
		if n == name || strings.TrimPrefix(n, "VIX_E_") == name {
			return c, true
		}
	}
	return 0, false
}
