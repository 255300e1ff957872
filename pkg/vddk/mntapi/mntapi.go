package mntapi

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/safekeeping/vddk-go/pkg/vddk"
	"github.com/safekeeping/vddk-go/pkg/vddk/internal/backend"
	"github.com/safekeeping/vddk-go/pkg/vddk/internal/bridge"
	"github.com/safekeeping/vddk-go/pkg/vddk/logging"
)

// Config carries the mount library initialization parameters.
type Config struct {
	MajorVersion uint32
	MinorVersion uint32
	// LibDir is the installation directory of the native libraries.
	LibDir string
	// TmpDir holds the library's temporary files and mount points.
	TmpDir string
	Logger logging.Logger
}

var (
	initMu sync.Mutex
	live   *Library
)

// Library is the initialized mount library. At most one is live at a time.
type Library struct {
	cfg      Config
	logger   logging.Logger
	prevSink bridge.Sink
	closed   atomic.Bool
}

// Available reports whether this binary links the mount library.
func Available() bool {
	return backend.MntBuilt
}

func check(op string, code uint64) error {
	return vddk.NewError(op, code, backend.MntBuilt)
}

// Init initializes the mount library and routes its native log output to
// cfg.Logger until Exit. The native log slot is shared with the disk
// library, so the two must be exited in the reverse order of Init.
func Init(cfg Config) (*Library, error) {
	initMu.Lock()
	defer initMu.Unlock()

	if live != nil {
		return nil, vddk.ErrAlreadyInitialized
	}
	logger := logging.Ensure(cfg.Logger).With("component", "mntapi")
	l := &Library{cfg: cfg, logger: logger}
	l.installSink()
	code := backend.MntInit(cfg.MajorVersion, cfg.MinorVersion, bridge.Optional(cfg.LibDir), bridge.Optional(cfg.TmpDir))
	if err := check("MntInit", code); err != nil {
		bridge.SetSink(l.prevSink)
		return nil, err
	}
	live = l
	logger.Info(context.Background(), "mount library initialized", "tmp_dir", cfg.TmpDir)
	return l, nil
}

// Exit shuts the mount library down. Disk sets must be closed first.
func (l *Library) Exit() error {
	if l == nil {
		return nil
	}
	initMu.Lock()
	defer initMu.Unlock()

	if !l.closed.CompareAndSwap(false, true) {
		return vddk.ErrLibraryClosed
	}
	backend.MntExit()
	bridge.SetSink(l.prevSink)
	if live == l {
		live = nil
	}
	l.logger.Info(context.Background(), "mount library exited")
	return nil
}

func (l *Library) installSink() {
	l.prevSink = bridge.SetSink(logging.NewNative(l.logger))
}

func (l *Library) ensureOpen() error {
	if l == nil || l.closed.Load() {
		return vddk.ErrLibraryClosed
	}
	return nil
}
