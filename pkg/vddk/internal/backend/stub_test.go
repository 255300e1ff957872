//go:build !cgo || !linux

package backend

import (
	"testing"

	"github.com/safekeeping/vddk-go/pkg/vddk/internal/bridge"
	"github.com/safekeeping/vddk-go/pkg/vddk/params"
	"github.com/stretchr/testify/assert"
)

func TestStubFailsWithoutSideEffects(t *testing.T) {
	assert.False(t, Built)
	assert.False(t, MntBuilt)

	h := bridge.Handle(0xfeed)
	assert.Equal(t, bridge.CodeFail, Open(1, "[ds] vm/vm.vmdk", 0, &h))
	assert.Equal(t, bridge.Handle(0xfeed), h)

	assert.Equal(t, bridge.CodeFail, Connect(params.ConnectParams{}.Record(), &h))
	assert.Equal(t, bridge.Handle(0xfeed), h)

	info := params.Info{CapacitySectors: 7}
	assert.Equal(t, bridge.CodeFail, GetInfo(h, &info))
	assert.Equal(t, uint64(7), info.CapacitySectors)

	var cleaned, remaining uint32 = 3, 4
	assert.Equal(t, bridge.CodeFail, Cleanup(params.ConnectRecord{}, &cleaned, &remaining))
	assert.Equal(t, uint32(3), cleaned)
	assert.Equal(t, uint32(4), remaining)

	blocks := []params.Block{{Offset: 1}}
	assert.Equal(t, bridge.CodeFail, QueryAllocatedBlocks(h, 0, 128, 128, &blocks))
	assert.Len(t, blocks, 1)

	var vols []bridge.Handle
	assert.Equal(t, bridge.CodeFail, MntGetVolumeHandles(h, &vols))
	assert.Nil(t, vols)

	required, code := GetMetadataKeys(h, nil)
	assert.Equal(t, bridge.CodeFail, code)
	assert.Zero(t, required)

	assert.Empty(t, ListTransportModes())
	assert.Empty(t, GetTransportMode(h))
	assert.Nil(t, GetErrorText(1, nil))
}

func TestStubFaultHook(t *testing.T) {
	assert.False(t, FaultHook)
	assert.False(t, InstallFaultHook(true))
	assert.Equal(t, bridge.CodeNotSupported, PerturbEnable("DiskLib_Read", true))
}
