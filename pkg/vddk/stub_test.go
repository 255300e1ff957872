//go:build !cgo || !linux

package vddk

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safekeeping/vddk-go/pkg/vddk/buffer"
	"github.com/safekeeping/vddk-go/pkg/vddk/internal/bridge"
	"github.com/safekeeping/vddk-go/pkg/vddk/logging"
	"github.com/safekeeping/vddk-go/pkg/vddk/params"
)

func TestInitWithoutNativeLibrary(t *testing.T) {
	before := bridge.ActiveSink()

	lib, err := Init(Config{MajorVersion: 7})
	require.Error(t, err)
	assert.Nil(t, lib)
	assert.True(t, errors.Is(err, ErrNotBuilt))
	assert.True(t, IsCode(err, CodeFail))
	assert.False(t, NativeAvailable())

	// A failed Init leaves no live library and restores the sink.
	assert.Nil(t, live)
	assert.Equal(t, before, bridge.ActiveSink())

	_, err = Init(Config{})
	assert.True(t, errors.Is(err, ErrNotBuilt))
}

func TestCodeTextFallsBackToName(t *testing.T) {
	assert.Equal(t, "VIX_E_FILE_NOT_FOUND", CodeFileNotFound.Text(""))
	assert.Equal(t, "Code(424242)", Code(424242).Text("en"))
}

// stubLibrary stands in for an initialized library so that handle-level
// calls reach the stub backend.
func stubLibrary(t *testing.T) *Library {
	t.Helper()
	return &Library{logger: logging.New(nil)}
}

func stubDisk(t *testing.T) *Disk {
	t.Helper()
	conn := stubLibrary(t).newConnection(bridge.Handle(0x10), params.ConnectParams{}, ConnectOptions{})
	t.Cleanup(func() { _ = conn.Disconnect() })
	d := conn.newDisk(bridge.Handle(0x20), "[ds1] vm/vm.vmdk", params.OpenReadOnly)
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func allocate(t *testing.T, size int) *buffer.Buffer {
	t.Helper()
	b, err := buffer.Allocate(size, 4096)
	if errors.Is(err, buffer.ErrUnsupported) {
		t.Skip("aligned buffers not supported on this platform")
	}
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Free() })
	return b
}

func TestLibraryOperationsReportStub(t *testing.T) {
	lib := stubLibrary(t)

	_, err := lib.ListTransportModes()
	assert.ErrorIs(t, err, ErrNotBuilt)

	_, err = lib.Connect(params.ConnectParams{})
	assert.ErrorIs(t, err, ErrNotBuilt)

	cleaned, remaining, err := lib.Cleanup(params.ConnectParams{})
	assert.ErrorIs(t, err, ErrNotBuilt)
	assert.Zero(t, cleaned)
	assert.Zero(t, remaining)

	assert.ErrorIs(t, lib.Rename("a.vmdk", "b.vmdk"), ErrNotBuilt)
	assert.True(t, IsCode(lib.PerturbEnable("Perturb.nfc", true), CodeNotSupported))
	assert.False(t, lib.FaultHookInstalled())
}

func TestClosedLibraryRejectsCalls(t *testing.T) {
	lib := stubLibrary(t)
	lib.closed.Store(true)

	_, err := lib.Connect(params.ConnectParams{})
	assert.ErrorIs(t, err, ErrLibraryClosed)
	assert.ErrorIs(t, lib.Exit(), ErrLibraryClosed)

	d := stubDisk(t)
	d.conn.lib.closed.Store(true)
	_, err = d.Info()
	assert.ErrorIs(t, err, ErrLibraryClosed)
}

func TestDiskValidatesBuffers(t *testing.T) {
	d := stubDisk(t)

	tests := []struct {
		name string
		buf  []byte
	}{
		{name: "nil", buf: nil},
		{name: "partial sector", buf: make([]byte, 100)},
		{name: "sector and a half", buf: make([]byte, 768)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, d.Read(0, tt.buf), ErrInvalidBuffer)
			assert.ErrorIs(t, d.Write(0, tt.buf), ErrInvalidBuffer)
		})
	}

	assert.ErrorIs(t, d.Read(0, make([]byte, 1024)), ErrNotBuilt)
	assert.ErrorIs(t, d.ReadBuffer(0, nil), ErrInvalidBuffer)
}

func TestDirectIOUnpinsBuffer(t *testing.T) {
	d := stubDisk(t)
	b := allocate(t, 4096)

	assert.ErrorIs(t, d.ReadBuffer(0, b), ErrNotBuilt)
	assert.ErrorIs(t, d.WriteBuffer(8, b), ErrNotBuilt)
	assert.False(t, b.Pinned())
}

func TestAsyncSubmissionFailureReleasesContext(t *testing.T) {
	d := stubDisk(t)
	b := allocate(t, 8192)
	outstanding := bridge.OutstandingCompletions()

	assert.ErrorIs(t, d.ReadAsync(0, b, nil), ErrNilCallback)

	called := false
	err := d.ReadAsync(0, b, func(error) { called = true })
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotBuilt))

	err = d.WriteAsync(16, b, func(error) { called = true })
	require.Error(t, err)

	assert.False(t, called)
	assert.False(t, b.Pinned())
	assert.Zero(t, d.Pending())
	assert.Equal(t, outstanding, bridge.OutstandingCompletions())
	require.NoError(t, b.Free())
}

func TestDiskQueriesReportStub(t *testing.T) {
	d := stubDisk(t)

	keys, err := d.MetadataKeys()
	assert.ErrorIs(t, err, ErrNotBuilt)
	assert.Nil(t, keys)

	_, err = d.ReadMetadata("uuid")
	assert.ErrorIs(t, err, ErrNotBuilt)

	_, err = d.TransportMode()
	assert.ErrorIs(t, err, ErrNotBuilt)

	assert.ErrorIs(t, d.InfoProbe(), ErrNotBuilt)

	_, err = d.QueryAllocatedBlocks(0, 1024, 64)
	assert.True(t, IsCode(err, CodeInvalidArg))

	_, err = d.QueryAllocatedBlocks(0, 1024, params.MinChunkSize)
	assert.ErrorIs(t, err, ErrNotBuilt)

	err = d.Shrink(context.Background(), func(int) bool { return true })
	assert.ErrorIs(t, err, ErrNotBuilt)
}

func TestCloseIsIdempotent(t *testing.T) {
	d := stubDisk(t)

	assert.ErrorIs(t, d.Close(), ErrNotBuilt)
	assert.NoError(t, d.Close())

	_, err := d.Info()
	assert.ErrorIs(t, err, ErrClosed)

	conn := d.Connection()
	assert.ErrorIs(t, conn.Disconnect(), ErrNotBuilt)
	assert.NoError(t, conn.Disconnect())

	_, err = conn.Open("[ds1] vm/vm.vmdk", 0)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestCloseReleasesLockWhileWaiting(t *testing.T) {
	d := stubDisk(t)
	b := allocate(t, params.SectorSize)

	var infoErr, chainErr error
	orig := waitDisk
	t.Cleanup(func() { waitDisk = orig })
	waitDisk = func(h bridge.Handle) uint64 {
		assert.Equal(t, bridge.Handle(0x20), h)
		// A completion delivered from inside Wait may use the disk.
		_, infoErr = d.Info()
		chainErr = d.ReadAsync(0, b, func(error) {})
		d.pending.Add(-1)
		return bridge.CodeOK
	}
	d.pending.Store(1)

	closed := make(chan error, 1)
	go func() { closed <- d.Close() }()
	select {
	case err := <-closed:
		assert.ErrorIs(t, err, ErrNotBuilt)
	case <-time.After(5 * time.Second):
		t.Fatal("Close did not return while a completion used the disk")
	}

	assert.ErrorIs(t, infoErr, ErrNotBuilt)
	assert.ErrorIs(t, chainErr, ErrClosed)
	assert.False(t, b.Pinned())
	assert.Zero(t, d.Pending())
	assert.NoError(t, d.Close())
}
