//go:build !vddk_release

package vddk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safekeeping/vddk-go/pkg/vddk"
	"github.com/safekeeping/vddk-go/pkg/vddk/fault"
)

func TestSetFault(t *testing.T) {
	t.Cleanup(fault.Reset)

	require.NoError(t, vddk.SetFault(fault.SANReadWriteError, true, vddk.CodeDiskFull))
	on, code := vddk.Fault(fault.SANReadWriteError)
	assert.True(t, on)
	assert.Equal(t, vddk.CodeDiskFull, code)

	require.NoError(t, vddk.SetFault(fault.SANReadWriteError, false, 0))
	on, _ = vddk.Fault(fault.SANReadWriteError)
	assert.False(t, on)

	before := fault.Snapshot()
	assert.ErrorIs(t, vddk.SetFault(fault.ID(fault.Count), true, vddk.CodeFail), vddk.ErrFaultOutOfRange)
	assert.ErrorIs(t, vddk.SetFault(-1, true, vddk.CodeFail), vddk.ErrFaultOutOfRange)
	assert.Equal(t, before, fault.Snapshot())
}
