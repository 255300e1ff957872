package vddk

// Result codes of the native library. Any value may be returned; these are
// the ones the library documents by name.
const (
	CodeOK                            Code = 0
	CodeFail                          Code = 1
	CodeOutOfMemory                   Code = 2
	CodeInvalidArg                    Code = 3
	CodeFileNotFound                  Code = 4
	CodeObjectIsBusy                  Code = 5
	CodeNotSupported                  Code = 6
	CodeFileError                     Code = 7
	CodeDiskFull                      Code = 8
	CodeIncorrectFileType             Code = 9
	CodeCancelled                     Code = 10
	CodeFileReadOnly                  Code = 11
	CodeFileAlreadyExists             Code = 12
	CodeFileAccessError               Code = 13
	CodeRequiresLargeFiles            Code = 14
	CodeFileAlreadyLocked             Code = 15
	CodeVMDB                          Code = 16
	CodeNotSupportedOnRemoteObject    Code = 20
	CodeFileTooBig                    Code = 21
	CodeFileNameInvalid               Code = 22
	CodeAlreadyExists                 Code = 23
	CodeBufferTooSmall                Code = 24
	CodeObjectNotFound                Code = 25
	CodeHostNotConnected              Code = 26
	CodeInvalidUTF8String             Code = 27
	CodeUnfinishedJob                 Code = 29
	CodeNeedKey                       Code = 30
	CodeOperationAlreadyInProgress    Code = 31
	CodeLicense                       Code = 32
	CodeVMHostDisconnected            Code = 34
	CodeAuthenticationFail            Code = 35
	CodeHostConnectionLost            Code = 36
	CodeDuplicateName                 Code = 41
	CodeArgumentTooBig                Code = 44
	CodeInvalidHandle                 Code = 1000
	CodeNotSupportedOnHandleType      Code = 1001
	CodeTooManyHandles                Code = 1002
	CodeHostDiskInvalidValue          Code = 14003
	CodeHostDiskSectorSize            Code = 14004
	CodeHostFileErrorEOF              Code = 14005
	CodeHostNetBlkDevHandshake        Code = 14006
	CodeHostSocketCreationError       Code = 14007
	CodeHostServerNotFound            Code = 14008
	CodeHostNetworkConnRefused        Code = 14009
	CodeHostTCPSocketError            Code = 14010
	CodeHostTCPConnLost               Code = 14011
	CodeHostNBDHashFileVolume         Code = 14012
	CodeHostNBDHashFileInit           Code = 14013
	CodeDiskInval                     Code = 16000
	CodeDiskNoInit                    Code = 16001
	CodeDiskNoIO                      Code = 16002
	CodeDiskPartialChain              Code = 16003
	CodeDiskNeedsRepair               Code = 16006
	CodeDiskOutOfRange                Code = 16007
	CodeDiskCIDMismatch               Code = 16008
	CodeDiskCantShrink                Code = 16009
	CodeDiskPartMismatch              Code = 16010
	CodeDiskUnsupportedDiskVersion    Code = 16011
	CodeDiskOpenParent                Code = 16012
	CodeDiskNotSupported              Code = 16013
	CodeDiskNeedKey                   Code = 16014
	CodeDiskNoKeyOverride             Code = 16015
	CodeDiskNotEncrypted              Code = 16016
	CodeDiskNoKey                     Code = 16017
	CodeDiskInvalidPartitionTable     Code = 16018
	CodeDiskNotNormal                 Code = 16019
	CodeDiskNotEncDesc                Code = 16020
	CodeDiskNeedVMFS                  Code = 16022
	CodeDiskRawTooBig                 Code = 16024
	CodeDiskTooManyOpenFiles          Code = 16027
	CodeDiskTooManyRedo               Code = 16028
	CodeDiskRawTooSmall               Code = 16029
	CodeDiskInvalidChain              Code = 16030
	CodeDiskKeyNotFound               Code = 16052
	CodeDiskSubsystemInitFail         Code = 16053
	CodeDiskInvalidConnection         Code = 16054
	CodeDiskEncoding                  Code = 16061
	CodeDiskCantRepair                Code = 16062
	CodeDiskInvalidDisk               Code = 16063
	CodeDiskNoLicense                 Code = 16064
	CodeDiskNoDevice                  Code = 16065
	CodeDiskUnsupportedDevice         Code = 16066
	CodeDiskCapacityMismatch          Code = 16067
	CodeDiskParentNotAllowed          Code = 16068
	CodeDiskAttachRootLink            Code = 16069
	CodeMntMountPointNotFound         Code = 24000
	CodeMntMountPointInUse            Code = 24001
	CodeMntDiskNotFound               Code = 24002
	CodeMntDiskNotMounted             Code = 24003
	CodeMntDiskIsMounted              Code = 24004
	CodeMntDiskNotSafe                Code = 24005
	CodeMntDiskCantOpen               Code = 24006
	CodeMntCantReadParts              Code = 24007
	CodeMntUmountAppNotFound          Code = 24008
	CodeMntUmount                     Code = 24009
	CodeMntNoMountablePartitions      Code = 24010
	CodeMntPartitionRange             Code = 24011
	CodeMntPerm                       Code = 24012
	CodeMntDict                       Code = 24013
	CodeMntDictLocked                 Code = 24014
	CodeMntOpenHandles                Code = 24015
	CodeMntCantMakeVarDir             Code = 24016
	CodeMntNoRoot                     Code = 24017
	CodeMntLoopFailed                 Code = 24018
	CodeMntDaemon                     Code = 24019
	CodeMntInternal                   Code = 24020
	CodeMntSystem                     Code = 24021
	CodeMntNoConnectionDetails        Code = 24022
	CodeMntIncompatibleVersion        Code = 24300
	CodeMntOSError                    Code = 24301
	CodeMntDriveLetterInUse           Code = 24302
	CodeMntDriveLetterAlreadyAssigned Code = 24303
	CodeMntVolumeNotMounted           Code = 24304
	CodeMntVolumeAlreadyMounted       Code = 24305
	CodeMntFormatFailure              Code = 24306
	CodeMntNoDriver                   Code = 24307
	CodeMntAlreadyOpened              Code = 24308
	CodeMntItemNotFound               Code = 24309
	CodeMntUnsupportedBootLoader      Code = 24310
	CodeMntUnsupportedOS              Code = 24311
	CodeMntCodeConversion             Code = 24312
	CodeMntRegWriteError              Code = 24313
	CodeMntUnsupportedFTVolume        Code = 24314
	CodeMntPartitionNotFound          Code = 24315
	CodeMntPutFileError               Code = 24316
	CodeMntGetFileError               Code = 24317
	CodeMntRegNotOpened               Code = 24318
	CodeMntRegDelKeyError             Code = 24319
	CodeMntCreatePartitionTableError  Code = 24320
	CodeMntOpenFailure                Code = 24321
	CodeMntVolumeNotWritable          Code = 24322
	CodeAsync                         Code = 25000
	CodeAsyncMixedModeUnsupported     Code = 26000
)

var codeNames = map[Code]string{
	CodeOK:                            "VIX_OK",
	CodeFail:                          "VIX_E_FAIL",
	CodeOutOfMemory:                   "VIX_E_OUT_OF_MEMORY",
	CodeInvalidArg:                    "VIX_E_INVALID_ARG",
	CodeFileNotFound:                  "VIX_E_FILE_NOT_FOUND",
	CodeObjectIsBusy:                  "VIX_E_OBJECT_IS_BUSY",
	CodeNotSupported:                  "VIX_E_NOT_SUPPORTED",
	CodeFileError:                     "VIX_E_FILE_ERROR",
	CodeDiskFull:                      "VIX_E_DISK_FULL",
	CodeIncorrectFileType:             "VIX_E_INCORRECT_FILE_TYPE",
	CodeCancelled:                     "VIX_E_CANCELLED",
	CodeFileReadOnly:                  "VIX_E_FILE_READ_ONLY",
	CodeFileAlreadyExists:             "VIX_E_FILE_ALREADY_EXISTS",
	CodeFileAccessError:               "VIX_E_FILE_ACCESS_ERROR",
	CodeRequiresLargeFiles:            "VIX_E_REQUIRES_LARGE_FILES",
	CodeFileAlreadyLocked:             "VIX_E_FILE_ALREADY_LOCKED",
	CodeVMDB:                          "VIX_E_VMDB",
	CodeNotSupportedOnRemoteObject:    "VIX_E_NOT_SUPPORTED_ON_REMOTE_OBJECT",
	CodeFileTooBig:                    "VIX_E_FILE_TOO_BIG",
	CodeFileNameInvalid:               "VIX_E_FILE_NAME_INVALID",
	CodeAlreadyExists:                 "VIX_E_ALREADY_EXISTS",
	CodeBufferTooSmall:                "VIX_E_BUFFER_TOOSMALL",
	CodeObjectNotFound:                "VIX_E_OBJECT_NOT_FOUND",
	CodeHostNotConnected:              "VIX_E_HOST_NOT_CONNECTED",
	CodeInvalidUTF8String:             "VIX_E_INVALID_UTF8_STRING",
	CodeUnfinishedJob:                 "VIX_E_UNFINISHED_JOB",
	CodeNeedKey:                       "VIX_E_NEED_KEY",
	CodeOperationAlreadyInProgress:    "VIX_E_OPERATION_ALREADY_IN_PROGRESS",
	CodeLicense:                       "VIX_E_LICENSE",
	CodeVMHostDisconnected:            "VIX_E_VM_HOST_DISCONNECTED",
	CodeAuthenticationFail:            "VIX_E_AUTHENTICATION_FAIL",
	CodeHostConnectionLost:            "VIX_E_HOST_CONNECTION_LOST",
	CodeDuplicateName:                 "VIX_E_DUPLICATE_NAME",
	CodeArgumentTooBig:                "VIX_E_ARGUMENT_TOO_BIG",
	CodeInvalidHandle:                 "VIX_E_INVALID_HANDLE",
	CodeNotSupportedOnHandleType:      "VIX_E_NOT_SUPPORTED_ON_HANDLE_TYPE",
	CodeTooManyHandles:                "VIX_E_TOO_MANY_HANDLES",
	CodeHostDiskInvalidValue:          "VIX_E_HOST_DISK_INVALID_VALUE",
	CodeHostDiskSectorSize:            "VIX_E_HOST_DISK_SECTORSIZE",
	CodeHostFileErrorEOF:              "VIX_E_HOST_FILE_ERROR_EOF",
	CodeHostNetBlkDevHandshake:        "VIX_E_HOST_NETBLKDEV_HANDSHAKE",
	CodeHostSocketCreationError:       "VIX_E_HOST_SOCKET_CREATION_ERROR",
	CodeHostServerNotFound:            "VIX_E_HOST_SERVER_NOT_FOUND",
	CodeHostNetworkConnRefused:        "VIX_E_HOST_NETWORK_CONN_REFUSED",
	CodeHostTCPSocketError:            "VIX_E_HOST_TCP_SOCKET_ERROR",
	CodeHostTCPConnLost:               "VIX_E_HOST_TCP_CONN_LOST",
	CodeHostNBDHashFileVolume:         "VIX_E_HOST_NBD_HASHFILE_VOLUME",
	CodeHostNBDHashFileInit:           "VIX_E_HOST_NBD_HASHFILE_INIT",
	CodeDiskInval:                     "VIX_E_DISK_INVAL",
	CodeDiskNoInit:                    "VIX_E_DISK_NOINIT",
	CodeDiskNoIO:                      "VIX_E_DISK_NOIO",
	CodeDiskPartialChain:              "VIX_E_DISK_PARTIALCHAIN",
	CodeDiskNeedsRepair:               "VIX_E_DISK_NEEDSREPAIR",
	CodeDiskOutOfRange:                "VIX_E_DISK_OUTOFRANGE",
	CodeDiskCIDMismatch:               "VIX_E_DISK_CID_MISMATCH",
	CodeDiskCantShrink:                "VIX_E_DISK_CANTSHRINK",
	CodeDiskPartMismatch:              "VIX_E_DISK_PARTMISMATCH",
	CodeDiskUnsupportedDiskVersion:    "VIX_E_DISK_UNSUPPORTEDDISKVERSION",
	CodeDiskOpenParent:                "VIX_E_DISK_OPENPARENT",
	CodeDiskNotSupported:              "VIX_E_DISK_NOTSUPPORTED",
	CodeDiskNeedKey:                   "VIX_E_DISK_NEEDKEY",
	CodeDiskNoKeyOverride:             "VIX_E_DISK_NOKEYOVERRIDE",
	CodeDiskNotEncrypted:              "VIX_E_DISK_NOTENCRYPTED",
	CodeDiskNoKey:                     "VIX_E_DISK_NOKEY",
	CodeDiskInvalidPartitionTable:     "VIX_E_DISK_INVALIDPARTITIONTABLE",
	CodeDiskNotNormal:                 "VIX_E_DISK_NOTNORMAL",
	CodeDiskNotEncDesc:                "VIX_E_DISK_NOTENCDESC",
	CodeDiskNeedVMFS:                  "VIX_E_DISK_NEEDVMFS",
	CodeDiskRawTooBig:                 "VIX_E_DISK_RAWTOOBIG",
	CodeDiskTooManyOpenFiles:          "VIX_E_DISK_TOOMANYOPENFILES",
	CodeDiskTooManyRedo:               "VIX_E_DISK_TOOMANYREDO",
	CodeDiskRawTooSmall:               "VIX_E_DISK_RAWTOOSMALL",
	CodeDiskInvalidChain:              "VIX_E_DISK_INVALIDCHAIN",
	CodeDiskKeyNotFound:               "VIX_E_DISK_KEY_NOTFOUND",
	CodeDiskSubsystemInitFail:         "VIX_E_DISK_SUBSYSTEM_INIT_FAIL",
	CodeDiskInvalidConnection:         "VIX_E_DISK_INVALID_CONNECTION",
	CodeDiskEncoding:                  "VIX_E_DISK_ENCODING",
	CodeDiskCantRepair:                "VIX_E_DISK_CANTREPAIR",
	CodeDiskInvalidDisk:               "VIX_E_DISK_INVALIDDISK",
	CodeDiskNoLicense:                 "VIX_E_DISK_NOLICENSE",
	CodeDiskNoDevice:                  "VIX_E_DISK_NODEVICE",
	CodeDiskUnsupportedDevice:         "VIX_E_DISK_UNSUPPORTEDDEVICE",
	CodeDiskCapacityMismatch:          "VIX_E_DISK_CAPACITY_MISMATCH",
	CodeDiskParentNotAllowed:          "VIX_E_DISK_PARENT_NOTALLOWED",
	CodeDiskAttachRootLink:            "VIX_E_DISK_ATTACH_ROOTLINK",
	CodeMntMountPointNotFound:         "VIX_E_MNTAPI_MOUNTPT_NOT_FOUND",
	CodeMntMountPointInUse:            "VIX_E_MNTAPI_MOUNTPT_IN_USE",
	CodeMntDiskNotFound:               "VIX_E_MNTAPI_DISK_NOT_FOUND",
	CodeMntDiskNotMounted:             "VIX_E_MNTAPI_DISK_NOT_MOUNTED",
	CodeMntDiskIsMounted:              "VIX_E_MNTAPI_DISK_IS_MOUNTED",
	CodeMntDiskNotSafe:                "VIX_E_MNTAPI_DISK_NOT_SAFE",
	CodeMntDiskCantOpen:               "VIX_E_MNTAPI_DISK_CANT_OPEN",
	CodeMntCantReadParts:              "VIX_E_MNTAPI_CANT_READ_PARTS",
	CodeMntUmountAppNotFound:          "VIX_E_MNTAPI_UMOUNT_APP_NOT_FOUND",
	CodeMntUmount:                     "VIX_E_MNTAPI_UMOUNT",
	CodeMntNoMountablePartitions:      "VIX_E_MNTAPI_NO_MOUNTABLE_PARTITONS",
	CodeMntPartitionRange:             "VIX_E_MNTAPI_PARTITION_RANGE",
	CodeMntPerm:                       "VIX_E_MNTAPI_PERM",
	CodeMntDict:                       "VIX_E_MNTAPI_DICT",
	CodeMntDictLocked:                 "VIX_E_MNTAPI_DICT_LOCKED",
	CodeMntOpenHandles:                "VIX_E_MNTAPI_OPEN_HANDLES",
	CodeMntCantMakeVarDir:             "VIX_E_MNTAPI_CANT_MAKE_VAR_DIR",
	CodeMntNoRoot:                     "VIX_E_MNTAPI_NO_ROOT",
	CodeMntLoopFailed:                 "VIX_E_MNTAPI_LOOP_FAILED",
	CodeMntDaemon:                     "VIX_E_MNTAPI_DAEMON",
	CodeMntInternal:                   "VIX_E_MNTAPI_INTERNAL",
	CodeMntSystem:                     "VIX_E_MNTAPI_SYSTEM",
	CodeMntNoConnectionDetails:        "VIX_E_MNTAPI_NO_CONNECTION_DETAILS",
	CodeMntIncompatibleVersion:        "VIX_E_MNTAPI_INCOMPATIBLE_VERSION",
	CodeMntOSError:                    "VIX_E_MNTAPI_OS_ERROR",
	CodeMntDriveLetterInUse:           "VIX_E_MNTAPI_DRIVE_LETTER_IN_USE",
	CodeMntDriveLetterAlreadyAssigned: "VIX_E_MNTAPI_DRIVE_LETTER_ALREADY_ASSIGNED",
	CodeMntVolumeNotMounted:           "VIX_E_MNTAPI_VOLUME_NOT_MOUNTED",
	CodeMntVolumeAlreadyMounted:       "VIX_E_MNTAPI_VOLUME_ALREADY_MOUNTED",
	CodeMntFormatFailure:              "VIX_E_MNTAPI_FORMAT_FAILURE",
	CodeMntNoDriver:                   "VIX_E_MNTAPI_NO_DRIVER",
	CodeMntAlreadyOpened:              "VIX_E_MNTAPI_ALREADY_OPENED",
	CodeMntItemNotFound:               "VIX_E_MNTAPI_ITEM_NOT_FOUND",
	CodeMntUnsupportedBootLoader:      "VIX_E_MNTAPI_UNSUPPROTED_BOOT_LOADER",
	CodeMntUnsupportedOS:              "VIX_E_MNTAPI_UNSUPPROTED_OS",
	CodeMntCodeConversion:             "VIX_E_MNTAPI_CODECONVERSION",
	CodeMntRegWriteError:              "VIX_E_MNTAPI_REGWRITE_ERROR",
	CodeMntUnsupportedFTVolume:        "VIX_E_MNTAPI_UNSUPPORTED_FT_VOLUME",
	CodeMntPartitionNotFound:          "VIX_E_MNTAPI_PARTITION_NOT_FOUND",
	CodeMntPutFileError:               "VIX_E_MNTAPI_PUTFILE_ERROR",
	CodeMntGetFileError:               "VIX_E_MNTAPI_GETFILE_ERROR",
	CodeMntRegNotOpened:               "VIX_E_MNTAPI_REG_NOT_OPENED",
	CodeMntRegDelKeyError:             "VIX_E_MNTAPI_REGDELKEY_ERROR",
	CodeMntCreatePartitionTableError:  "VIX_E_MNTAPI_CREATE_PARTITIONTABLE_ERROR",
	CodeMntOpenFailure:                "VIX_E_MNTAPI_OPEN_FAILURE",
	CodeMntVolumeNotWritable:          "VIX_E_MNTAPI_VOLUME_NOT_WRITABLE",
	CodeAsync:                         "VIX_ASYNC",
	CodeAsyncMixedModeUnsupported:     "VIX_E_ASYNC_MIXEDMODE_UNSUPPORTED",
}
