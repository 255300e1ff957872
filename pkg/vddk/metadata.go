package vddk

import (
	"github.com/safekeeping/vddk-go/pkg/vddk/internal/backend"
	"github.com/safekeeping/vddk-go/pkg/vddk/internal/bridge"
)

// MetadataKeys lists the keys of the disk descriptor's metadata table. A disk
// without metadata yields an empty, non-nil slice.
func (d *Disk) MetadataKeys() ([]string, error) {
	h, err := d.handle()
	if err != nil {
		return nil, err
	}
	buf, code := bridge.Fetch(func(b []byte) (int, uint64) {
		return backend.GetMetadataKeys(h, b)
	})
	if err := check("GetMetadataKeys", code); err != nil {
		return nil, err
	}
	return bridge.SplitNulList(buf), nil
}

// ReadMetadata returns the value stored under key. A missing key fails with
// CodeDiskKeyNotFound.
func (d *Disk) ReadMetadata(key string) (string, error) {
	h, err := d.handle()
	if err != nil {
		return "", err
	}
	buf, code := bridge.Fetch(func(b []byte) (int, uint64) {
		return backend.ReadMetadata(h, key, b)
	})
	if err := check("ReadMetadata", code); err != nil {
		return "", err
	}
	return bridge.CutNul(buf), nil
}

// WriteMetadata stores value under key, replacing any previous value.
func (d *Disk) WriteMetadata(key, value string) error {
	h, err := d.handle()
	if err != nil {
		return err
	}
	return check("WriteMetadata", backend.WriteMetadata(h, key, value))
}

// Metadata returns the whole metadata table.
func (d *Disk) Metadata() (map[string]string, error) {
	keys, err := d.MetadataKeys()
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		v, err := d.ReadMetadata(k)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}
