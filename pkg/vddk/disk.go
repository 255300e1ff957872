package vddk

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/safekeeping/vddk-go/pkg/vddk/buffer"
	"github.com/safekeeping/vddk-go/pkg/vddk/internal/backend"
	"github.com/safekeeping/vddk-go/pkg/vddk/internal/bridge"
	"github.com/safekeeping/vddk-go/pkg/vddk/logging"
	"github.com/safekeeping/vddk-go/pkg/vddk/params"
)

// Disk is an open virtual disk.
//
// Memory Management:
// Disks must be closed with Close before their connection is released. A
// finalizer closes leaked disks as a safety net.
type Disk struct {
	conn   *Connection
	path   string
	flags  params.OpenFlags
	logger logging.Logger

	mu      sync.Mutex
	h       bridge.Handle
	closing bool
	pending atomic.Int64
}

// waitDisk is backend.Wait; tests replace it to run completions inline.
var waitDisk = backend.Wait

func (c *Connection) newDisk(h bridge.Handle, path string, flags params.OpenFlags) *Disk {
	d := &Disk{
		conn:   c,
		path:   path,
		flags:  flags,
		logger: c.logger.With("disk", path),
		h:      h,
	}
	runtime.SetFinalizer(d, func(disk *Disk) {
		_ = disk.Close()
	})
	d.logger.Debug(context.Background(), "disk opened", "handle", h, "flags", flags)
	return d
}

// Path returns the path the disk was opened with.
func (d *Disk) Path() string {
	return d.path
}

// Flags returns the open flags.
func (d *Disk) Flags() params.OpenFlags {
	return d.flags
}

// Connection returns the connection the disk was opened on.
func (d *Disk) Connection() *Connection {
	return d.conn
}

func (d *Disk) handle() (bridge.Handle, error) {
	if d == nil {
		return 0, ErrClosed
	}
	if err := d.conn.lib.ensureOpen(); err != nil {
		return 0, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.h.IsZero() {
		return 0, ErrClosed
	}
	return d.h, nil
}

// Close waits for outstanding asynchronous I/O and closes the disk. It is
// safe to call more than once. Completions delivered during the wait may
// still use the disk, but new asynchronous requests are refused with
// ErrClosed.
func (d *Disk) Close() error {
	if d == nil {
		return nil
	}
	d.mu.Lock()
	h := d.h
	if h.IsZero() || d.closing {
		d.mu.Unlock()
		return nil
	}
	d.closing = true
	d.mu.Unlock()

	if n := d.pending.Load(); n > 0 {
		d.logger.Debug(context.Background(), "waiting for asynchronous I/O before close", "pending", n)
		if err := check("Wait", waitDisk(h)); err != nil {
			d.logger.Warn(context.Background(), "wait before close failed", "error", err)
		}
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	err := check("Close", backend.Close(h))
	d.h = 0
	d.closing = false
	runtime.SetFinalizer(d, nil)
	return err
}

// submitHandle is handle for new asynchronous requests, which are refused
// once Close has started.
func (d *Disk) submitHandle() (bridge.Handle, error) {
	h, err := d.handle()
	if err != nil {
		return 0, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closing {
		return 0, ErrClosed
	}
	return h, nil
}

func sectors(n int) (uint64, error) {
	if n <= 0 || n%params.SectorSize != 0 {
		return 0, fmt.Errorf("%w: length %d is not a positive multiple of %d", ErrInvalidBuffer, n, params.SectorSize)
	}
	return uint64(n / params.SectorSize), nil
}

// Read fills buf with sectors starting at sector start. The length of buf
// must be a multiple of the sector size.
func (d *Disk) Read(start uint64, buf []byte) error {
	count, err := sectors(len(buf))
	if err != nil {
		return err
	}
	h, err := d.handle()
	if err != nil {
		return err
	}
	return check("Read", backend.Read(h, start, count, unsafe.Pointer(&buf[0])))
}

// Write writes buf to sectors starting at start.
func (d *Disk) Write(start uint64, buf []byte) error {
	count, err := sectors(len(buf))
	if err != nil {
		return err
	}
	h, err := d.handle()
	if err != nil {
		return err
	}
	return check("Write", backend.Write(h, start, count, unsafe.Pointer(&buf[0])))
}

func bufferSectors(b *buffer.Buffer) (unsafe.Pointer, uint64, error) {
	if b == nil {
		return nil, 0, fmt.Errorf("%w: nil buffer", ErrInvalidBuffer)
	}
	p := b.Pointer()
	if p == nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidBuffer, buffer.ErrFreed)
	}
	count, err := sectors(b.Len())
	return p, count, err
}

// ReadBuffer reads into an externally allocated buffer without copying.
func (d *Disk) ReadBuffer(start uint64, b *buffer.Buffer) error {
	return d.directIO("Read", start, b, backend.Read)
}

// WriteBuffer writes from an externally allocated buffer without copying.
func (d *Disk) WriteBuffer(start uint64, b *buffer.Buffer) error {
	return d.directIO("Write", start, b, backend.Write)
}

func (d *Disk) directIO(op string, start uint64, b *buffer.Buffer, call func(bridge.Handle, uint64, uint64, unsafe.Pointer) uint64) error {
	p, count, err := bufferSectors(b)
	if err != nil {
		return err
	}
	h, err := d.handle()
	if err != nil {
		return err
	}
	if err := b.Pin(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBuffer, err)
	}
	defer b.Unpin()
	return check(op, call(h, start, count, p))
}

// Wait blocks until every asynchronous operation on the disk has completed.
func (d *Disk) Wait() error {
	h, err := d.handle()
	if err != nil {
		return err
	}
	return check("Wait", waitDisk(h))
}

// Flush writes cached data to the disk.
func (d *Disk) Flush() error {
	h, err := d.handle()
	if err != nil {
		return err
	}
	return check("Flush", backend.Flush(h))
}

// Info returns geometry and link information.
func (d *Disk) Info() (params.Info, error) {
	h, err := d.handle()
	if err != nil {
		return params.Info{}, err
	}
	var info params.Info
	if err := check("GetInfo", backend.GetInfo(h, &info)); err != nil {
		return params.Info{}, err
	}
	return info, nil
}

// InfoProbe runs GetInfo without a destination and reports only the result.
func (d *Disk) InfoProbe() error {
	h, err := d.handle()
	if err != nil {
		return err
	}
	return check("GetInfo", backend.GetInfo(h, nil))
}

// TransportMode returns the transport the disk was opened with, for example
// "nbdssl" or "hotadd".
func (d *Disk) TransportMode() (string, error) {
	h, err := d.handle()
	if err != nil {
		return "", err
	}
	if !backend.Built {
		return "", ErrNotBuilt
	}
	return backend.GetTransportMode(h), nil
}

// SpaceNeededForClone returns the bytes a clone of the disk as diskType
// would occupy.
func (d *Disk) SpaceNeededForClone(diskType params.DiskType) (uint64, error) {
	h, err := d.handle()
	if err != nil {
		return 0, err
	}
	var n uint64
	if err := check("SpaceNeededForClone", backend.SpaceNeededForClone(h, uint32(diskType), &n)); err != nil {
		return 0, err
	}
	return n, nil
}

// CreateChild creates a redo log at path whose parent is d.
func (d *Disk) CreateChild(ctx context.Context, path string, diskType params.DiskType, progress ProgressFunc) error {
	h, err := d.handle()
	if err != nil {
		return err
	}
	return withProgress(ctx, "CreateChild", progress, func(ref bridge.Ref) uint64 {
		return backend.CreateChild(h, path, uint32(diskType), ref)
	})
}

// Shrink reclaims unused space in a sparse disk.
func (d *Disk) Shrink(ctx context.Context, progress ProgressFunc) error {
	h, err := d.handle()
	if err != nil {
		return err
	}
	return withProgress(ctx, "Shrink", progress, func(ref bridge.Ref) uint64 {
		return backend.Shrink(h, ref)
	})
}

// Defragment defragments a sparse disk.
func (d *Disk) Defragment(ctx context.Context, progress ProgressFunc) error {
	h, err := d.handle()
	if err != nil {
		return err
	}
	return withProgress(ctx, "Defragment", progress, func(ref bridge.Ref) uint64 {
		return backend.Defragment(h, ref)
	})
}

// IsAttachPossible reports, through the error, whether child can be attached
// to d.
func (d *Disk) IsAttachPossible(child *Disk) error {
	ph, err := d.handle()
	if err != nil {
		return err
	}
	ch, err := child.handle()
	if err != nil {
		return err
	}
	return check("IsAttachPossible", backend.IsAttachPossible(ph, ch))
}

// Attach appends the chain of child to d. On success the native library
// invalidates the parent handle, so d is closed and child represents the
// combined chain.
func (d *Disk) Attach(child *Disk) error {
	ph, err := d.handle()
	if err != nil {
		return err
	}
	ch, err := child.handle()
	if err != nil {
		return err
	}
	if err := check("Attach", backend.Attach(ph, ch)); err != nil {
		return err
	}
	d.mu.Lock()
	d.h = 0
	runtime.SetFinalizer(d, nil)
	d.mu.Unlock()
	return nil
}

// QueryAllocatedBlocks lists the allocated extents in count sectors starting
// at start, at a granularity of chunkSize sectors.
func (d *Disk) QueryAllocatedBlocks(start, count, chunkSize uint64) ([]params.Block, error) {
	if chunkSize < params.MinChunkSize || chunkSize > params.MaxChunkSize {
		return nil, NewError("QueryAllocatedBlocks", uint64(CodeInvalidArg), true)
	}
	h, err := d.handle()
	if err != nil {
		return nil, err
	}
	var blocks []params.Block
	if err := check("QueryAllocatedBlocks", backend.QueryAllocatedBlocks(h, start, count, chunkSize, &blocks)); err != nil {
		return nil, err
	}
	if blocks == nil {
		blocks = []params.Block{}
	}
	return blocks, nil
}

// NativeHandle returns the native disk pointer for use by companion
// libraries such as the mount API. It stays valid until Close.
func (d *Disk) NativeHandle() (uintptr, error) {
	h, err := d.handle()
	if err != nil {
		return 0, err
	}
	return h.Uintptr(), nil
}
