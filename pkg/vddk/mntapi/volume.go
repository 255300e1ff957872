package mntapi

import (
	"context"

	"github.com/safekeeping/vddk-go/pkg/vddk/internal/backend"
	"github.com/safekeeping/vddk-go/pkg/vddk/internal/bridge"
	"github.com/safekeeping/vddk-go/pkg/vddk/params"
)

// Volume is one volume of a disk set. The native library owns the volume
// handles, and they stay valid while the set is open.
type Volume struct {
	set   *DiskSet
	h     bridge.Handle
	index int
}

// Index is the position of v in the list returned by Volumes.
func (v *Volume) Index() int {
	return v.index
}

func (v *Volume) handle() (bridge.Handle, error) {
	if _, err := v.set.handle(); err != nil {
		return 0, err
	}
	return v.h, nil
}

// Mount mounts the volume on the local host. Info reports where.
func (v *Volume) Mount(readOnly bool) error {
	h, err := v.handle()
	if err != nil {
		return err
	}
	if err := check("MountVolume", backend.MntMountVolume(h, readOnly)); err != nil {
		return err
	}
	v.set.logger.Info(context.Background(), "volume mounted", "volume", v.index, "read_only", readOnly)
	return nil
}

// Dismount unmounts the volume. force discards open files.
func (v *Volume) Dismount(force bool) error {
	h, err := v.handle()
	if err != nil {
		return err
	}
	if err := check("DismountVolume", backend.MntDismountVolume(h, force)); err != nil {
		return err
	}
	v.set.logger.Info(context.Background(), "volume dismounted", "volume", v.index, "force", force)
	return nil
}

// Info describes the volume and its mount points.
func (v *Volume) Info() (params.VolumeInfo, error) {
	h, err := v.handle()
	if err != nil {
		return params.VolumeInfo{}, err
	}
	var info params.VolumeInfo
	if err := check("GetVolumeInfo", backend.MntGetVolumeInfo(h, &info)); err != nil {
		return params.VolumeInfo{}, err
	}
	if info.MountPoints == nil {
		info.MountPoints = []string{}
	}
	return info, nil
}
