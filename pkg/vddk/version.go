package vddk

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/safekeeping/vddk-go/pkg/vddk/internal/backend"
)

var (
	Version      = "v0.0.0-in-progress"
	NativeTarget = "7.0.3"
)

// WrapperVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func WrapperVersion() string {
	return Version
}

// NativeAvailable reports whether this binary links the native disk library.
func NativeAvailable() bool {
	return backend.Built
}

var versionSeparators = regexp.MustCompile(`[\s.\-]`)

// NativeVersion is a four part native library version such as
// 7.0.3.19513565.
type NativeVersion struct {
	Major, Minor, Patch, Build uint32
}

// ParseVersion accepts "major.minor.patch.build" where any separator may be a
// dot, dash or whitespace.
func ParseVersion(s string) (NativeVersion, error) {
	parts, err := splitVersion(s)
	if err != nil {
		return NativeVersion{}, err
	}
	if len(parts) != 4 {
		return NativeVersion{}, fmt.Errorf("%w: %q has %d components, want 4", ErrInvalidVersion, s, len(parts))
	}
	return NativeVersion{Major: parts[0], Minor: parts[1], Patch: parts[2], Build: parts[3]}, nil
}

func splitVersion(s string) ([]uint32, error) {
	fields := versionSeparators.Split(s, -1)
	out := make([]uint32, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
		}
		out = append(out, uint32(n))
	}
	return out, nil
}

func (v NativeVersion) components() [4]uint32 {
	return [4]uint32{v.Major, v.Minor, v.Patch, v.Build}
}

// Compare returns -1, 0 or 1 as v is older than, equal to or newer than o.
func (v NativeVersion) Compare(o NativeVersion) int {
	oc := o.components()
	return compareComponents(v.components(), oc[:])
}

// Check compares v against a partial version such as "6.7" or "7.0.2",
// looking only at the components the prefix names. It returns -1 when v is
// older, 1 when newer and 0 when the named components match.
func (v NativeVersion) Check(prefix string) (int, error) {
	parts, err := splitVersion(prefix)
	if err != nil {
		return 0, err
	}
	if len(parts) > 4 {
		return 0, fmt.Errorf("%w: %q has more than 4 components", ErrInvalidVersion, prefix)
	}
	return compareComponents(v.components(), parts), nil
}

func compareComponents(mine [4]uint32, other []uint32) int {
	for i, o := range other {
		switch {
		case mine[i] < o:
			return -1
		case mine[i] > o:
			return 1
		}
	}
	return 0
}

func (v NativeVersion) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Patch, v.Build)
}

// Extended renders the version the way the native tools print it.
func (v NativeVersion) Extended() string {
	return fmt.Sprintf("VDDK Version %d.%d.%d build %d", v.Major, v.Minor, v.Patch, v.Build)
}
