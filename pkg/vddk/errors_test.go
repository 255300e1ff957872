package vddk_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safekeeping/vddk-go/pkg/vddk"
)

func TestNewError(t *testing.T) {
	require.NoError(t, vddk.NewError("Open", 0, true))
	require.NoError(t, vddk.NewError("Open", 0, false))

	err := vddk.NewError("Open", uint64(vddk.CodeFileNotFound), true)
	require.Error(t, err)
	assert.Equal(t, "vddk: Open: VIX_E_FILE_NOT_FOUND (4)", err.Error())
	assert.False(t, errors.Is(err, vddk.ErrNotBuilt))

	stub := vddk.NewError("Open", uint64(vddk.CodeFail), false)
	assert.True(t, errors.Is(stub, vddk.ErrNotBuilt))
}

func TestCodeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("backup of disk 2: %w", vddk.NewError("Read", uint64(vddk.CodeDiskOutOfRange), true))

	code, ok := vddk.CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, vddk.CodeDiskOutOfRange, code)
	assert.True(t, vddk.IsCode(err, vddk.CodeDiskOutOfRange))
	assert.False(t, vddk.IsCode(err, vddk.CodeFail))

	var e *vddk.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "Read", e.Op)

	_, ok = vddk.CodeOf(errors.New("plain"))
	assert.False(t, ok)
	assert.False(t, vddk.IsCode(nil, vddk.CodeOK))
}

func TestCodeString(t *testing.T) {
	tests := []struct {
		code vddk.Code
		want string
	}{
		{vddk.CodeOK, "VIX_OK"},
		{vddk.CodeBufferTooSmall, "VIX_E_BUFFER_TOOSMALL"},
		{vddk.CodeDiskKeyNotFound, "VIX_E_DISK_KEY_NOTFOUND"},
		{vddk.CodeMntUnsupportedOS, "VIX_E_MNTAPI_UNSUPPROTED_OS"},
		{vddk.CodeAsync, "VIX_ASYNC"},
		{vddk.Code(99999), "Code(99999)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.String())
			assert.Equal(t, tt.want != "Code(99999)", tt.code.Known())
		})
	}
}

func TestParseCode(t *testing.T) {
	tests := []struct {
		in   string
		want vddk.Code
		ok   bool
	}{
		{in: "VIX_E_DISK_FULL", want: vddk.CodeDiskFull, ok: true},
		{in: "disk_full", want: vddk.CodeDiskFull, ok: true},
		{in: "VIX_ASYNC", want: vddk.CodeAsync, ok: true},
		{in: " vix_ok ", want: vddk.CodeOK, ok: true},
		{in: "NOT_A_CODE", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := vddk.ParseCode(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
