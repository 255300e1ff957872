package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safekeeping/vddk-go/pkg/vddk"
	"github.com/safekeeping/vddk-go/pkg/vddk/fault"
	"github.com/safekeeping/vddk-go/pkg/vddk/logging"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var levelVar slog.LevelVar
	g := &globals{levelVar: &levelVar}
	g.setLogger(logging.ModeText)

	root := newRootCommand(g)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "vddk-go "+vddk.WrapperVersion())
	assert.Contains(t, out, "native library linked:")
}

func TestErrorTextCommand(t *testing.T) {
	out, err := execute(t, "error-text", "VIX_E_FILE_NOT_FOUND")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "4\tVIX_E_FILE_NOT_FOUND\t"), out)

	_, err = execute(t, "error-text", "bogus")
	assert.Error(t, err)
}

func TestRejectsBadLogFlags(t *testing.T) {
	_, err := execute(t, "--log-level", "loud", "version")
	assert.Error(t, err)
	_, err = execute(t, "--log-format", "xml", "version")
	assert.Error(t, err)
}

func TestParseCode(t *testing.T) {
	tests := []struct {
		in   string
		want vddk.Code
	}{
		{"16052", vddk.CodeDiskKeyNotFound},
		{"VIX_E_DISK_FULL", vddk.CodeDiskFull},
		{"cancelled", vddk.CodeCancelled},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseCode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArmFaults(t *testing.T) {
	if !fault.Instrumented {
		t.Skip("fault table compiled out")
	}
	t.Cleanup(fault.Reset)

	require.NoError(t, armFaults([]string{"SAN_READ_WRITE_ERROR=VIX_E_DISK_FULL", "vddk_san_startio_error"}))

	on, code := vddk.Fault(fault.SANReadWriteError)
	assert.True(t, on)
	assert.Equal(t, vddk.CodeDiskFull, code)
	on, code = vddk.Fault(fault.SANStartIOError)
	assert.True(t, on)
	assert.Equal(t, vddk.CodeFail, code)

	assert.ErrorIs(t, armFaults([]string{"NO_SUCH_POINT"}), vddk.ErrFaultOutOfRange)
	assert.Error(t, armFaults([]string{"SAN_STARTIO_ERROR=what"}))
}

func TestFaultListCommand(t *testing.T) {
	if !fault.Instrumented {
		t.Skip("fault table compiled out")
	}
	t.Cleanup(fault.Reset)

	out, err := execute(t, "--fault", "HOTADD_REMOVEDISK_FAILED=13", "fault", "list", "--enabled")
	require.NoError(t, err)
	assert.Contains(t, out, "HOTADD_REMOVEDISK_FAILED")
	assert.Contains(t, out, "VIX_E_FILE_ACCESS_ERROR")
	assert.NotContains(t, out, "SAN_SERVER_CONNECT_ERROR")
}
