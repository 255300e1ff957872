//go:build cgo && linux

package vddk_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safekeeping/vddk-go/pkg/vddk"
	"github.com/safekeeping/vddk-go/pkg/vddk/buffer"
	"github.com/safekeeping/vddk-go/pkg/vddk/params"
)

// These tests need an installed native library and run only with
// VDDK_GO_INTEGRATION=1. VDDK_GO_LIBDIR overrides the library directory.
func localLibrary(t *testing.T) (*vddk.Library, *vddk.Connection) {
	t.Helper()
	if ok, _ := strconv.ParseBool(os.Getenv("VDDK_GO_INTEGRATION")); !ok {
		t.Skip("set VDDK_GO_INTEGRATION=1 to run against the native library")
	}

	lib, err := vddk.Init(vddk.Config{MajorVersion: 7, MinorVersion: 0, LibDir: os.Getenv("VDDK_GO_LIBDIR")})
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, lib.Exit()) })

	conn, err := lib.Connect(params.ConnectParams{})
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, conn.Disconnect()) })
	return lib, conn
}

func createDisk(t *testing.T, conn *vddk.Connection, sectors uint64) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "disk.vmdk")
	var last int
	err := conn.Create(context.Background(), path, params.CreateParams{
		DiskType:        params.DiskMonolithicSparse,
		AdapterType:     params.AdapterSCSILSILogic,
		HardwareVersion: params.HWCurrent,
		CapacitySectors: sectors,
	}, func(p int) bool {
		last = p
		return true
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, last, 100)
	return path
}

func TestIntegrationSecondInitFails(t *testing.T) {
	localLibrary(t)
	_, err := vddk.Init(vddk.Config{MajorVersion: 7})
	assert.ErrorIs(t, err, vddk.ErrAlreadyInitialized)
}

func TestIntegrationReadWriteMetadata(t *testing.T) {
	lib, conn := localLibrary(t)

	modes, err := lib.ListTransportModes()
	require.NoError(t, err)
	assert.Contains(t, modes, "file")

	path := createDisk(t, conn, 2048)
	disk, err := conn.Open(path, 0)
	require.NoError(t, err)
	defer func() { require.NoError(t, disk.Close()) }()

	info, err := disk.Info()
	require.NoError(t, err)
	assert.Equal(t, uint64(2048), info.CapacitySectors)
	assert.False(t, info.HasParent())

	want := bytes.Repeat([]byte{0xa5}, 4*params.SectorSize)
	require.NoError(t, disk.Write(8, want))
	got := make([]byte, len(want))
	require.NoError(t, disk.Read(8, got))
	assert.Equal(t, want, got)

	require.NoError(t, disk.WriteMetadata("backup.generation", "42"))
	keys, err := disk.MetadataKeys()
	require.NoError(t, err)
	assert.Contains(t, keys, "backup.generation")
	v, err := disk.ReadMetadata("backup.generation")
	require.NoError(t, err)
	assert.Equal(t, "42", v)

	_, err = disk.ReadMetadata("no.such.key")
	assert.True(t, vddk.IsCode(err, vddk.CodeDiskKeyNotFound))

	blocks, err := disk.QueryAllocatedBlocks(0, 2048, params.MinChunkSize)
	require.NoError(t, err)
	require.NotEmpty(t, blocks)
	assert.LessOrEqual(t, blocks[0].Offset, uint64(8))
}

func TestIntegrationAsyncIO(t *testing.T) {
	_, conn := localLibrary(t)
	path := createDisk(t, conn, 4096)

	disk, err := conn.Open(path, 0)
	require.NoError(t, err)
	defer func() { require.NoError(t, disk.Close()) }()

	const n = 8
	bufs := make([]*buffer.Buffer, n)
	for i := range bufs {
		b, err := buffer.Allocate(8*params.SectorSize, 4096)
		require.NoError(t, err)
		for j := range b.Bytes() {
			b.Bytes()[j] = byte(i)
		}
		bufs[i] = b
	}

	var mu sync.Mutex
	var results []error
	for i, b := range bufs {
		err := disk.WriteAsync(uint64(i*8), b, func(err error) {
			mu.Lock()
			results = append(results, err)
			mu.Unlock()
		})
		require.NoError(t, err)
	}
	require.NoError(t, disk.Wait())
	assert.Zero(t, disk.Pending())

	mu.Lock()
	assert.Len(t, results, n)
	for _, err := range results {
		assert.NoError(t, err)
	}
	mu.Unlock()

	for i, b := range bufs {
		assert.False(t, b.Pinned())
		require.NoError(t, disk.ReadBuffer(uint64(i*8), b))
		assert.Equal(t, byte(i), b.Bytes()[0])
		require.NoError(t, b.Free())
	}
}
