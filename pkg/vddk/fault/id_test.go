package fault

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDNames(t *testing.T) {
	seen := make(map[string]ID, Count)
	for _, id := range All() {
		name := id.String()
		assert.NotEmpty(t, name, "id %d", int(id))
		prev, dup := seen[name]
		assert.False(t, dup, "%s used by %d and %d", name, int(prev), int(id))
		seen[name] = id
	}
	assert.Len(t, seen, Count)
}

func TestIDNumbering(t *testing.T) {
	// Values are fixed by the native library.
	assert.Equal(t, ID(0), SANServerConnectError)
	assert.Equal(t, ID(13), HotAddAHCIOnly)
	assert.Equal(t, ID(14), APIInitDiskLibFailed)
	assert.Equal(t, ID(Count-1), VimAccessSessionGetAboutInfoFailNoAbout)
}

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		want   ID
		wantOK bool
	}{
		{"SAN_STARTIO_ERROR", SANStartIOError, true},
		{"VDDK_SAN_STARTIO_ERROR", SANStartIOError, true},
		{"vddk_hotadd_ahci_only", HotAddAHCIOnly, true},
		{" 14 ", APIInitDiskLibFailed, true},
		{"VIXDISKLIB_VIXDISKLIB_WAIT_FAIL", APIWaitFail, true},
		{"-1", -1, false},
		{"87", 87, false},
		{"NOT_A_POINT", -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Parse(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInvalidIDString(t *testing.T) {
	assert.Equal(t, "ID(-3)", ID(-3).String())
	assert.Equal(t, "ID(87)", ID(Count).String())
	assert.False(t, ID(Count).Valid())
}
