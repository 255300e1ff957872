//go:build !vddk_release

package fault

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetTable(t *testing.T) {
	t.Helper()
	Reset()
	t.Cleanup(Reset)
}

func TestSetThenQuery(t *testing.T) {
	tests := []struct {
		name        string
		id          ID
		enabled     bool
		code        int32
		wantEnabled bool
		wantCode    int32
	}{
		{"enable", SANStartIOError, true, 16002, true, 16002},
		{"enable zero code", APIWaitFail, true, 0, true, 0},
		{"disable", HotAddAHCIOnly, false, 1, false, 0},
		{"last slot", VimAccessSessionGetAboutInfoFailNoAbout, true, -1, true, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetTable(t)
			require.True(t, Set(tt.id, tt.enabled, tt.code))
			enabled, code := IsEnabled(tt.id)
			assert.Equal(t, tt.wantEnabled, enabled)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestDisableAfterEnable(t *testing.T) {
	resetTable(t)
	require.True(t, Set(APIInitSSLFailed, true, 3))
	require.True(t, Set(APIInitSSLFailed, false, 99))

	enabled, code := IsEnabled(APIInitSSLFailed)
	assert.False(t, enabled)
	assert.Zero(t, code)
}

func TestOutOfRangeLeavesTableUntouched(t *testing.T) {
	resetTable(t)
	require.True(t, Set(SANDiskOpenError, true, 4))
	before := Snapshot()

	for _, id := range []ID{-1, Count, Count + 10} {
		assert.False(t, Set(id, true, 1), "id %d", int(id))
		enabled, _ := IsEnabled(id)
		assert.False(t, enabled)
	}
	assert.Equal(t, before, Snapshot())
}

func TestSnapshotAndReset(t *testing.T) {
	resetTable(t)
	Set(APIWaitFail, true, 1)
	Set(SANServerConnectError, true, 2)
	Set(HotAddRemoveDiskFailed, false, 3)

	assert.Equal(t, []Entry{
		{ID: SANServerConnectError, Enabled: true, Code: 2},
		{ID: APIWaitFail, Enabled: true, Code: 1},
	}, Snapshot())

	Reset()
	assert.Empty(t, Snapshot())
}

func TestConcurrentSetAndQuery(t *testing.T) {
	resetTable(t)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		w := w
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				id := ID((w*500 + i) % Count)
				Set(id, i%2 == 0, int32(i))
			}
		}()
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				enabled, code := IsEnabled(ID(i % Count))
				if !enabled {
					assert.Zero(t, code)
				}
			}
		}()
	}
	wg.Wait()
}
