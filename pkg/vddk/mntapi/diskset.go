package mntapi

import (
	"context"
	"runtime"
	"sync"

	"github.com/safekeeping/vddk-go/pkg/vddk"
	"github.com/safekeeping/vddk-go/pkg/vddk/internal/backend"
	"github.com/safekeeping/vddk-go/pkg/vddk/internal/bridge"
	"github.com/safekeeping/vddk-go/pkg/vddk/logging"
	"github.com/safekeeping/vddk-go/pkg/vddk/params"
)

// DiskSet is a group of disks opened together so that volumes spanning
// several disks can be assembled.
//
// A DiskSet must be closed with Close. A finalizer closes leaked sets.
type DiskSet struct {
	lib    *Library
	logger logging.Logger

	mu sync.Mutex
	h  bridge.Handle
}

// OpenDisks opens the named disks on conn as one disk set.
func (l *Library) OpenDisks(conn *vddk.Connection, names []string, mode params.OpenFlags) (*DiskSet, error) {
	if err := l.ensureOpen(); err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, vddk.NewError("OpenDisks", uint64(vddk.CodeInvalidArg), true)
	}
	ch, err := conn.NativeHandle()
	if err != nil {
		return nil, err
	}
	var h bridge.Handle
	if err := check("OpenDisks", backend.MntOpenDisks(bridge.EncodeUintptr(ch), names, uint32(mode), &h)); err != nil {
		return nil, err
	}
	return l.newDiskSet(h, "disks", names), nil
}

// OpenDiskSet groups disks already opened with the disk library.
func (l *Library) OpenDiskSet(disks []*vddk.Disk, mode params.OpenFlags) (*DiskSet, error) {
	if err := l.ensureOpen(); err != nil {
		return nil, err
	}
	handles := make([]bridge.Handle, 0, len(disks))
	paths := make([]string, 0, len(disks))
	for _, d := range disks {
		p, err := d.NativeHandle()
		if err != nil {
			return nil, err
		}
		handles = append(handles, bridge.EncodeUintptr(p))
		paths = append(paths, d.Path())
	}
	var h bridge.Handle
	if err := check("OpenDiskSet", backend.MntOpenDiskSet(handles, uint32(mode), &h)); err != nil {
		return nil, err
	}
	return l.newDiskSet(h, "disks", paths), nil
}

func (l *Library) newDiskSet(h bridge.Handle, args ...any) *DiskSet {
	s := &DiskSet{lib: l, logger: l.logger.With(args...), h: h}
	runtime.SetFinalizer(s, func(set *DiskSet) {
		_ = set.Close()
	})
	s.logger.Debug(context.Background(), "disk set opened", "handle", h)
	return s
}

func (s *DiskSet) handle() (bridge.Handle, error) {
	if s == nil {
		return 0, vddk.ErrClosed
	}
	if err := s.lib.ensureOpen(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.h.IsZero() {
		return 0, vddk.ErrClosed
	}
	return s.h, nil
}

// Close releases the disk set. It is safe to call more than once.
func (s *DiskSet) Close() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.h.IsZero() {
		return nil
	}
	err := check("CloseDiskSet", backend.MntCloseDiskSet(s.h))
	s.h = 0
	runtime.SetFinalizer(s, nil)
	return err
}

// Volumes lists the volumes found on the disk set. The slice is empty, not
// nil, when there are none.
func (s *DiskSet) Volumes() ([]*Volume, error) {
	h, err := s.handle()
	if err != nil {
		return nil, err
	}
	var handles []bridge.Handle
	if err := check("GetVolumeHandles", backend.MntGetVolumeHandles(h, &handles)); err != nil {
		return nil, err
	}
	vols := make([]*Volume, len(handles))
	for i, vh := range handles {
		vols[i] = &Volume{set: s, h: vh, index: i}
	}
	return vols, nil
}

// OsInfo describes the guest operating system installed on the disk set.
func (s *DiskSet) OsInfo() (params.OsInfo, error) {
	h, err := s.handle()
	if err != nil {
		return params.OsInfo{}, err
	}
	var info params.OsInfo
	if err := check("GetOsInfo", backend.MntGetOsInfo(h, &info)); err != nil {
		return params.OsInfo{}, err
	}
	return info, nil
}
