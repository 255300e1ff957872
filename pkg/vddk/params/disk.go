package params

import (
	"strconv"
	"strings"
)

// SectorSize is the unit every disk offset and length is expressed in.
const SectorSize = 512

// Allocated-block query limits, in sectors.
const (
	MinChunkSize   = 128
	MaxChunkSize   = 131072
	MaxChunkNumber = 524288
)

// DiskType selects the on-disk layout of a new disk.
type DiskType uint32

const (
	DiskMonolithicSparse DiskType = 1
	DiskMonolithicFlat   DiskType = 2
	DiskSplitSparse      DiskType = 3
	DiskSplitFlat        DiskType = 4
	DiskVMFSFlat         DiskType = 5
	DiskStreamOptimized  DiskType = 6
	DiskVMFSThin         DiskType = 7
	DiskVMFSSparse       DiskType = 8
	DiskUnknown          DiskType = 256
)

var diskTypeNames = map[DiskType]string{
	DiskMonolithicSparse: "monolithic-sparse",
	DiskMonolithicFlat:   "monolithic-flat",
	DiskSplitSparse:      "split-sparse",
	DiskSplitFlat:        "split-flat",
	DiskVMFSFlat:         "vmfs-flat",
	DiskStreamOptimized:  "stream-optimized",
	DiskVMFSThin:         "vmfs-thin",
	DiskVMFSSparse:       "vmfs-sparse",
}

func (d DiskType) String() string {
	if n, ok := diskTypeNames[d]; ok {
		return n
	}
	return "unknown"
}

// ParseDiskType accepts the names produced by DiskType.String.
func ParseDiskType(s string) (DiskType, bool) {
	for t, n := range diskTypeNames {
		if n == s {
			return t, true
		}
	}
	return DiskUnknown, false
}

// AdapterType is the virtual controller a disk is attached to.
type AdapterType uint32

const (
	AdapterIDE          AdapterType = 1
	AdapterSCSIBusLogic AdapterType = 2
	AdapterSCSILSILogic AdapterType = 3
	AdapterUnknown      AdapterType = 256
)

func (a AdapterType) String() string {
	switch a {
	case AdapterIDE:
		return "ide"
	case AdapterSCSIBusLogic:
		return "buslogic"
	case AdapterSCSILSILogic:
		return "lsilogic"
	default:
		return "unknown"
	}
}

// ParseAdapterType accepts the names produced by AdapterType.String.
func ParseAdapterType(s string) (AdapterType, bool) {
	for _, a := range []AdapterType{AdapterIDE, AdapterSCSIBusLogic, AdapterSCSILSILogic} {
		if a.String() == s {
			return a, true
		}
	}
	return AdapterUnknown, false
}

// HardwareVersion is the virtual hardware generation recorded in a new disk.
type HardwareVersion uint16

const (
	HWWorkstation4 HardwareVersion = 3
	HWWorkstation5 HardwareVersion = 4
	HWESX30        HardwareVersion = 4
	HWWorkstation6 HardwareVersion = 6
	HWESX4x        HardwareVersion = 7
	HWESX50        HardwareVersion = 8
	HWESX51        HardwareVersion = 9
	HWESX55        HardwareVersion = 10
	HWESX60        HardwareVersion = 11
	HWESX65        HardwareVersion = 13
	HWCurrent                      = HWESX65
)

// OpenFlags is the bit set passed when opening a disk.
type OpenFlags uint32

const (
	OpenUnbuffered        OpenFlags = 1 << 0
	OpenSingleLink        OpenFlags = 1 << 1
	OpenReadOnly          OpenFlags = 1 << 2
	OpenCompressionZlib   OpenFlags = 1 << 4
	OpenCompressionFastLZ OpenFlags = 1 << 5
	OpenCompressionSkipZ  OpenFlags = 1 << 6
)

var openFlagNames = []struct {
	flag OpenFlags
	name string
}{
	{OpenUnbuffered, "unbuffered"},
	{OpenSingleLink, "single-link"},
	{OpenReadOnly, "read-only"},
	{OpenCompressionZlib, "zlib"},
	{OpenCompressionFastLZ, "fastlz"},
	{OpenCompressionSkipZ, "skipz"},
}

func (f OpenFlags) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	for _, n := range openFlagNames {
		if f&n.flag != 0 {
			parts = append(parts, n.name)
			f &^= n.flag
		}
	}
	if f != 0 {
		parts = append(parts, "0x"+strconv.FormatUint(uint64(f), 16))
	}
	return strings.Join(parts, "|")
}

// CreateParams describes a disk to create or clone into. It is copied by
// value into the native call.
type CreateParams struct {
	DiskType           DiskType
	AdapterType        AdapterType
	HardwareVersion    HardwareVersion
	CapacitySectors    uint64
	LogicalSectorSize  uint32
	PhysicalSectorSize uint32
}

// Geometry is a cylinder/head/sector triple.
type Geometry struct {
	Cylinders uint32
	Heads     uint32
	Sectors   uint32
}

// Info describes an open disk. ParentFileNameHint and UUID are nil when the
// native library reports no value.
type Info struct {
	BIOSGeometry       Geometry
	PhysGeometry       Geometry
	CapacitySectors    uint64
	AdapterType        AdapterType
	NumLinks           int
	ParentFileNameHint *string
	UUID               *string
	LogicalSectorSize  uint32
	PhysicalSectorSize uint32
}

// CapacityBytes returns the disk size in bytes.
func (i Info) CapacityBytes() uint64 {
	return i.CapacitySectors * SectorSize
}

// HasParent reports whether the disk is a child in a link chain.
func (i Info) HasParent() bool {
	return i.ParentFileNameHint != nil && *i.ParentFileNameHint != ""
}

// Block is an allocated extent, in sectors.
type Block struct {
	Offset uint64
	Length uint64
}

// End returns the first sector past b.
func (b Block) End() uint64 {
	return b.Offset + b.Length
}
