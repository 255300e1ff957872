package params

// OsFamily is the guest operating system family reported by the mount
// library.
type OsFamily uint32

const (
	OsNone    OsFamily = 0
	OsWindows OsFamily = 1
	OsOther   OsFamily = 255
)

func (f OsFamily) String() string {
	switch f {
	case OsNone:
		return "none"
	case OsWindows:
		return "windows"
	default:
		return "other"
	}
}

// OsInfo describes the guest found on a disk set. Text fields are nil when
// the native library leaves them unset.
type OsInfo struct {
	Family       OsFamily
	MajorVersion int
	MinorVersion int
	Is64Bit      bool
	Vendor       *string
	Edition      *string
	OSFolder     *string
}

// VolumeType is the partitioning scheme of a volume.
type VolumeType uint32

const (
	VolumeUnknown        VolumeType = 0
	VolumeBasicPartition VolumeType = 1
	VolumeGPTPartition   VolumeType = 2
	VolumeDynamic        VolumeType = 3
	VolumeLVM            VolumeType = 4
)

func (v VolumeType) String() string {
	switch v {
	case VolumeBasicPartition:
		return "basic"
	case VolumeGPTPartition:
		return "gpt"
	case VolumeDynamic:
		return "dynamic"
	case VolumeLVM:
		return "lvm"
	default:
		return "unknown"
	}
}

// VolumeInfo describes a volume. SymbolicLink is nil while the volume is not
// mounted.
type VolumeInfo struct {
	Type         VolumeType
	IsMounted    bool
	SymbolicLink *string
	MountPoints  []string
}
