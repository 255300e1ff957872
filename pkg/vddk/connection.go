package vddk

import (
	"context"
	"runtime"
	"sync"

	"github.com/safekeeping/vddk-go/pkg/vddk/internal/backend"
	"github.com/safekeeping/vddk-go/pkg/vddk/internal/bridge"
	"github.com/safekeeping/vddk-go/pkg/vddk/logging"
	"github.com/safekeeping/vddk-go/pkg/vddk/params"
)

// Connection is an open native connection to a host, a vCenter or the local
// file system.
//
// Memory Management:
// Connections must be released with Disconnect. A finalizer disconnects
// leaked connections, but the native library holds server sessions and
// network resources until then, so rely on it only as a safety net.
type Connection struct {
	lib    *Library
	params params.ConnectParams
	opts   ConnectOptions
	logger logging.Logger

	mu sync.Mutex
	h  bridge.Handle
}

func (l *Library) newConnection(h bridge.Handle, p params.ConnectParams, opts ConnectOptions) *Connection {
	c := &Connection{
		lib:    l,
		params: p,
		opts:   opts,
		logger: l.logger.With("server", p.ServerName),
		h:      h,
	}
	runtime.SetFinalizer(c, func(conn *Connection) {
		_ = conn.Disconnect()
	})
	c.logger.Debug(context.Background(), "connected", "handle", h, "read_only", opts.ReadOnly)
	return c
}

func (c *Connection) handle() (bridge.Handle, error) {
	if c == nil {
		return 0, ErrClosed
	}
	if err := c.lib.ensureOpen(); err != nil {
		return 0, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.h.IsZero() {
		return 0, ErrClosed
	}
	return c.h, nil
}

// Disconnect releases the connection. It is safe to call more than once.
func (c *Connection) Disconnect() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.h.IsZero() {
		return nil
	}
	err := check("Disconnect", backend.Disconnect(c.h))
	c.h = 0
	runtime.SetFinalizer(c, nil)
	if err != nil {
		c.logger.Warn(context.Background(), "disconnect failed", "error", err)
	}
	return err
}

// Params returns the parameters the connection was opened with.
func (c *Connection) Params() params.ConnectParams {
	return c.params
}

// ConnectParams asks the native library for the parameters it is using,
// which may differ from the ones passed to Connect when a vStorage object or
// snapshot was resolved on the server.
func (c *Connection) ConnectParams() (params.ConnectParams, error) {
	h, err := c.handle()
	if err != nil {
		return params.ConnectParams{}, err
	}
	var rec params.ConnectRecord
	if err := check("GetConnectParams", backend.GetConnectParams(h, &rec)); err != nil {
		return params.ConnectParams{}, err
	}
	return rec.Params(), nil
}

// Open opens the disk at path.
func (c *Connection) Open(path string, flags params.OpenFlags) (*Disk, error) {
	h, err := c.handle()
	if err != nil {
		return nil, err
	}
	var dh bridge.Handle
	if err := check("Open", backend.Open(h, path, uint32(flags), &dh)); err != nil {
		return nil, err
	}
	return c.newDisk(dh, path, flags), nil
}

// OpenProbe runs Open without keeping the disk: the native library receives
// no handle destination and only the result code is reported.
func (c *Connection) OpenProbe(path string, flags params.OpenFlags) error {
	h, err := c.handle()
	if err != nil {
		return err
	}
	return check("Open", backend.Open(h, path, uint32(flags), nil))
}

// Unlink deletes the disk at path and all of its extents.
func (c *Connection) Unlink(path string) error {
	h, err := c.handle()
	if err != nil {
		return err
	}
	return check("Unlink", backend.Unlink(h, path))
}

// Create creates a local disk. Cancelling ctx cancels the operation at the
// next progress report.
func (c *Connection) Create(ctx context.Context, path string, cp params.CreateParams, progress ProgressFunc) error {
	h, err := c.handle()
	if err != nil {
		return err
	}
	return withProgress(ctx, "Create", progress, func(ref bridge.Ref) uint64 {
		return backend.Create(h, path, cp, ref)
	})
}

// Clone copies srcPath on src to dstPath on c. A nil src clones within c.
func (c *Connection) Clone(ctx context.Context, dstPath string, src *Connection, srcPath string, cp params.CreateParams, progress ProgressFunc, overwrite bool) error {
	dh, err := c.handle()
	if err != nil {
		return err
	}
	sh := dh
	if src != nil && src != c {
		if sh, err = src.handle(); err != nil {
			return err
		}
	}
	err = withProgress(ctx, "Clone", progress, func(ref bridge.Ref) uint64 {
		return backend.Clone(dh, dstPath, sh, srcPath, cp, ref, overwrite)
	})
	if err != nil {
		c.logger.Warn(ctx, "clone failed", "src", srcPath, "dst", dstPath, "error", err)
	}
	return err
}

// Grow extends the disk at path to capacity sectors.
func (c *Connection) Grow(ctx context.Context, path string, capacity uint64, updateGeometry bool, progress ProgressFunc) error {
	h, err := c.handle()
	if err != nil {
		return err
	}
	return withProgress(ctx, "Grow", progress, func(ref bridge.Ref) uint64 {
		return backend.Grow(h, path, capacity, updateGeometry, ref)
	})
}

// CheckRepair checks the sparse disk at path for metadata errors and
// optionally repairs them.
func (c *Connection) CheckRepair(path string, repair bool) error {
	h, err := c.handle()
	if err != nil {
		return err
	}
	return check("CheckRepair", backend.CheckRepair(h, path, repair))
}

// NativeHandle returns the native connection pointer for use by companion
// libraries such as the mount API. It stays valid until Disconnect.
func (c *Connection) NativeHandle() (uintptr, error) {
	h, err := c.handle()
	if err != nil {
		return 0, err
	}
	return h.Uintptr(), nil
}
