package vddk

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/safekeeping/vddk-go/pkg/vddk/internal/backend"
	"github.com/safekeeping/vddk-go/pkg/vddk/internal/bridge"
	"github.com/safekeeping/vddk-go/pkg/vddk/logging"
	"github.com/safekeeping/vddk-go/pkg/vddk/params"
)

var (
	initMu sync.Mutex
	live   *Library
)

// Library is the initialized native disk library. The native library keeps
// process-wide state, so at most one Library is live at a time: Init fails
// with ErrAlreadyInitialized until the previous one has exited.
type Library struct {
	cfg       Config
	logger    logging.Logger
	prevSink  bridge.Sink
	faultHook bool
	closed    atomic.Bool
}

// Init initializes the native library and routes its log output to
// cfg.Logger.
func Init(cfg Config) (*Library, error) {
	initMu.Lock()
	defer initMu.Unlock()

	if live != nil {
		return nil, ErrAlreadyInitialized
	}

	logger := logging.Ensure(cfg.Logger).With("component", "vddk")
	prev := bridge.SetSink(logging.NewNative(logger))

	libDir, configFile := cfg.nativeArgs()
	if err := check("Init", backend.Init(cfg.MajorVersion, cfg.MinorVersion, libDir, configFile)); err != nil {
		bridge.SetSink(prev)
		return nil, err
	}

	l := &Library{cfg: cfg, logger: logger, prevSink: prev}
	if backend.FaultHook {
		l.faultHook = backend.InstallFaultHook(true)
	}
	live = l

	logger.Info(context.Background(), "disk library initialized",
		"api", fmt.Sprintf("%d.%d", cfg.MajorVersion, cfg.MinorVersion),
		"lib_dir", cfg.LibDir,
		"fault_hook", l.faultHook,
	)
	return l, nil
}

// Exit shuts the native library down. Connections and disks must be closed
// first. A second call returns ErrLibraryClosed.
func (l *Library) Exit() error {
	if l == nil {
		return nil
	}

	initMu.Lock()
	defer initMu.Unlock()

	if !l.closed.CompareAndSwap(false, true) {
		return ErrLibraryClosed
	}

	ctx := context.Background()
	if n := bridge.OutstandingCompletions(); n > 0 {
		l.logger.Warn(ctx, "exiting with asynchronous operations outstanding", "outstanding", n)
	}
	if l.faultHook {
		backend.InstallFaultHook(false)
	}
	backend.Exit()
	bridge.SetSink(l.prevSink)
	if live == l {
		live = nil
	}

	l.logger.Info(ctx, "disk library exited")
	return nil
}

// Logger returns the logger the library was initialized with.
func (l *Library) Logger() logging.Logger {
	return l.logger
}

func (l *Library) ensureOpen() error {
	if l == nil || l.closed.Load() {
		return ErrLibraryClosed
	}
	return nil
}

// ListTransportModes returns the transport modes the native library
// supports, in its order of preference.
func (l *Library) ListTransportModes() ([]string, error) {
	if err := l.ensureOpen(); err != nil {
		return nil, err
	}
	if !backend.Built {
		return nil, ErrNotBuilt
	}
	return splitModes(backend.ListTransportModes()), nil
}

func splitModes(s string) []string {
	out := []string{}
	for _, m := range strings.Split(s, ":") {
		if m = strings.TrimSpace(m); m != "" {
			out = append(out, m)
		}
	}
	return out
}

// Cleanup removes state left behind by connections that did not shut down
// cleanly, such as hot-added disks and leftover mount points.
func (l *Library) Cleanup(p params.ConnectParams) (cleaned, remaining uint32, err error) {
	if err := l.ensureOpen(); err != nil {
		return 0, 0, err
	}
	code := backend.Cleanup(p.Record(), &cleaned, &remaining)
	return cleaned, remaining, check("Cleanup", code)
}

// Connect opens a connection with the default transport selection.
func (l *Library) Connect(p params.ConnectParams) (*Connection, error) {
	if err := l.ensureOpen(); err != nil {
		return nil, err
	}
	var h bridge.Handle
	if err := check("Connect", backend.Connect(p.Record(), &h)); err != nil {
		l.logger.Warn(context.Background(), "connect failed", "params", p, "error", err)
		return nil, err
	}
	return l.newConnection(h, p, ConnectOptions{}), nil
}

// ConnectOptions tunes ConnectEx.
type ConnectOptions struct {
	// ReadOnly requests a read-only connection, which enables SAN and
	// hot-add transports against a snapshot.
	ReadOnly bool
	// SnapshotRef is the managed object reference of the snapshot to read.
	SnapshotRef string
	// TransportModes lists the transports to try, in order. Empty lets the
	// library choose.
	TransportModes []string
}

func (o ConnectOptions) modes() *string {
	return bridge.Optional(strings.Join(o.TransportModes, ":"))
}

// ConnectEx opens a connection that can use the advanced transports.
func (l *Library) ConnectEx(p params.ConnectParams, opts ConnectOptions) (*Connection, error) {
	if err := l.ensureOpen(); err != nil {
		return nil, err
	}
	var h bridge.Handle
	code := backend.ConnectEx(p.Record(), opts.ReadOnly, bridge.Optional(opts.SnapshotRef), opts.modes(), &h)
	if err := check("ConnectEx", code); err != nil {
		l.logger.Warn(context.Background(), "connect failed",
			"params", p,
			"read_only", opts.ReadOnly,
			"modes", opts.TransportModes,
			"error", err,
		)
		return nil, err
	}
	return l.newConnection(h, p, opts), nil
}

// PrepareForAccess tells the server that identity is about to access the
// virtual machine's disks, disabling operations such as storage migration.
func (l *Library) PrepareForAccess(p params.ConnectParams, identity string) error {
	if err := l.ensureOpen(); err != nil {
		return err
	}
	return check("PrepareForAccess", backend.PrepareForAccess(p.Record(), identity))
}

// EndAccess reverses PrepareForAccess.
func (l *Library) EndAccess(p params.ConnectParams, identity string) error {
	if err := l.ensureOpen(); err != nil {
		return err
	}
	return check("EndAccess", backend.EndAccess(p.Record(), identity))
}

// Rename renames a local disk and its extents.
func (l *Library) Rename(src, dst string) error {
	if err := l.ensureOpen(); err != nil {
		return err
	}
	return check("Rename", backend.Rename(src, dst))
}

// ErrorText returns the native description of code.
func (l *Library) ErrorText(code Code, locale string) string {
	return code.Text(locale)
}
