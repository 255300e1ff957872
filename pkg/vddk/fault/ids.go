package fault

// Injection points, in the order the native library numbers them. The list
// is append-only: new library versions add entries at the end.
const (
	SANServerConnectError ID = iota
	SANBlkListInitError
	SANStartIOError
	SANUnknownAdapter
	SANDiskOpenError
	SANAsyncReadWriteError
	SANReadWriteError
	HotAddAddDiskDiskNotFound
	HotAddAddDiskDiskAddFailed
	HotAddRemoveDiskFailed
	VixDiskLibInitDiskLibFailed
	VixDiskLibVimLoadDiskBadKey
	VixDiskLibVimBadTicket
	HotAddAHCIOnly

	APIInitDiskLibFailed
	APIInitSSLFailed
	APIDiskLibCloneFailed
	APICreateChildGetInfoFailed
	APICreateChildFailed
	APIGetInfoFailed
	APIConnectNoMemoryVMXSpec
	APIConnectNoMemoryFCD
	APIConnectNoMemoryRDS
	APIConnectNoMemoryServer
	APIConnectNoMemoryConn
	APIConnectNoMemoryCredUID
	APIConnectNoMemoryCredSessionID
	APIConnectNoMemoryCredTicketIDAll
	APIConnectNoMemoryCredTicketID
	APIOpenWithInfoFail
	APISpaceUsedFail
	APIPutFileNoSpace
	APIPutFileStartSessionFail
	APIPutFileFail
	APIPutFileOpenFail
	APIPutFileUpdAdapterFail
	APIPutFileUpdVersionFail
	APIPutFileFileExist
	APIGetFileStartSessionFail
	APIGetFileGetEncryptFail
	APICloneLocalOpenFail
	APISpaceNeededForCloneFail
	APIAttachFail
	APIWaitFail
	APINoAvailableModes
	APIAddThumbInvParam
	APIAddThumbInvThumb
	APIAddThumbOpenDBFail
	APIAddThumbRetHostFail
	APIAddThumbAddThumbFail
	APIOpenPluginFail
	APIInitTransportFail
	APIReleaseDiskTokenFail
	APIPushCryptoKeyFail
	APIReadMetadataFail
	APICreateSessionFailAgent
	APICreateSessionFailStatus
	APIUnlinkFileNotExist
	VixDiskLibAlcBlockOpenGetInfoFailed
	VixDiskLibAlcBlockQueryNBDGetAlcFailed
	VixDiskLibAlcBlockQueryAllocFailed
	VixDiskLibAlcBlockCloseNBDCloseFailed
	VcbLibHotAddReconfigFail
	VcbLibHotAddAddDiskDiskNotFound
	VcbLibHotAddRemoveDiskFailed
	VcbLibHotAddAddDiskDiskAddFailed
	VcbLibHotAddAcquireLockFail
	VcbLibHotAddAllocateSCSITargetFail
	BlockListVmomiSanMPWriteFail
	BlockListVmomiSanMPPathInactive
	BlockListVmomiMapTableAsyncAlcBlocksFailed
	BlockListVmomiMapTableAsyncWriteFail
	BlockListVmomiAsyncWriteUpdateAlcMapFail
	BlockListVmomiAsyncWriteStartThreadsFail
	PluginSANServerConnectFail
	PluginSANBlkListInitFail
	PluginSANStartIOFail
	PluginSANUnknownAdapter
	PluginSANDiskOpenFail
	VimAccessSessionGetNFCTicketFailNoDiskSpec
	VimAccessSessionGetNFCTicketFailNoTicket
	VimAccessSessionGetNFCTicketFailNoService
	VimAccessSessionGetNFCTicketFailNoSessionID
	VimAccessSessionGetFileNameFailNoDiskSpec
	VimAccessSessionGetFileNameFailNoFileName
	VimAccessSessionGetAboutInfoFailNoContent
	VimAccessSessionGetAboutInfoFailNoAbout
)

// Count is the number of injection points this build knows about.
const Count = 87

var names = [Count]string{
	SANServerConnectError:                       "SAN_SERVER_CONNECT_ERROR",
	SANBlkListInitError:                         "SAN_BLKLIST_INIT_ERROR",
	SANStartIOError:                             "SAN_STARTIO_ERROR",
	SANUnknownAdapter:                           "SAN_UNKNOWN_ADAPTER",
	SANDiskOpenError:                            "SAN_DISK_OPEN_ERROR",
	SANAsyncReadWriteError:                      "SAN_ASYNC_READ_WRITE_ERROR",
	SANReadWriteError:                           "SAN_READ_WRITE_ERROR",
	HotAddAddDiskDiskNotFound:                   "HOTADD_ADDDISK_DISK_NOT_FOUND",
	HotAddAddDiskDiskAddFailed:                  "HOTADD_ADDDISK_DISK_ADD_FAILED",
	HotAddRemoveDiskFailed:                      "HOTADD_REMOVEDISK_FAILED",
	VixDiskLibInitDiskLibFailed:                 "VIXDISKLIB_INIT_DISKLIB_FAILED",
	VixDiskLibVimLoadDiskBadKey:                 "VIXDISKLIBVIM_LOAD_DISK_BAD_KEY",
	VixDiskLibVimBadTicket:                      "VIXDISKLIBVIM_BAD_TICKET",
	HotAddAHCIOnly:                              "HOTADD_AHCI_ONLY",
	APIInitDiskLibFailed:                        "VIXDISKLIB_VIXDISKLIB_INIT_DISKLIB_FAILED",
	APIInitSSLFailed:                            "VIXDISKLIB_VIXDISKLIB_INIT_SSL_FAILED",
	APIDiskLibCloneFailed:                       "VIXDISKLIB_VIXDISKLIB_DISKLIB_CLONE_FAILED",
	APICreateChildGetInfoFailed:                 "VIXDISKLIB_VIXDISKLIB_CREATECHILD_GETINFO_FAILED",
	APICreateChildFailed:                        "VIXDISKLIB_VIXDISKLIB_CREATECHILD_FAILED",
	APIGetInfoFailed:                            "VIXDISKLIB_VIXDISKLIB_GETINFO_FAILED",
	APIConnectNoMemoryVMXSpec:                   "VIXDISKLIB_VIXDISKLIB_CONNECT_NO_MEMORY_VMXSPEC",
	APIConnectNoMemoryFCD:                       "VIXDISKLIB_VIXDISKLIB_CONNECT_NO_MEMORY_FCD",
	APIConnectNoMemoryRDS:                       "VIXDISKLIB_VIXDISKLIB_CONNECT_NO_MEMORY_RDS",
	APIConnectNoMemoryServer:                    "VIXDISKLIB_VIXDISKLIB_CONNECT_NO_MEMORY_SERVER",
	APIConnectNoMemoryConn:                      "VIXDISKLIB_VIXDISKLIB_CONNECT_NO_MEMORY_CONN",
	APIConnectNoMemoryCredUID:                   "VIXDISKLIB_VIXDISKLIB_CONNECT_NO_MEMORY_CRED_UID",
	APIConnectNoMemoryCredSessionID:             "VIXDISKLIB_VIXDISKLIB_CONNECT_NO_MEMORY_CRED_SESSIONID",
	APIConnectNoMemoryCredTicketIDAll:           "VIXDISKLIB_VIXDISKLIB_CONNECT_NO_MEMORY_CRED_TICKETID_ALL",
	APIConnectNoMemoryCredTicketID:              "VIXDISKLIB_VIXDISKLIB_CONNECT_NO_MEMORY_CRED_TICKETID",
	APIOpenWithInfoFail:                         "VIXDISKLIB_VIXDISKLIB_OPENWITHINFO_FAIL",
	APISpaceUsedFail:                            "VIXDISKLIB_VIXDISKLIB_SPACEUSED_FAIL",
	APIPutFileNoSpace:                           "VIXDISKLIB_VIXDISKLIB_PUTFILE_NO_SPACE",
	APIPutFileStartSessionFail:                  "VIXDISKLIB_VIXDISKLIB_PUTFILE_START_SESSION_FAIL",
	APIPutFileFail:                              "VIXDISKLIB_VIXDISKLIB_PUTFILE_FAIL",
	APIPutFileOpenFail:                          "VIXDISKLIB_VIXDISKLIB_PUTFILE_OPEN_FAIL",
	APIPutFileUpdAdapterFail:                    "VIXDISKLIB_VIXDISKLIB_PUTFILE_UPDADAPTER_FAIL",
	APIPutFileUpdVersionFail:                    "VIXDISKLIB_VIXDISKLIB_PUTFILE_UPDVERSION_FAIL",
	APIPutFileFileExist:                         "VIXDISKLIB_VIXDISKLIB_PUTFILE_FILEEXIST",
	APIGetFileStartSessionFail:                  "VIXDISKLIB_VIXDISKLIB_GETFILE_STARTSESSION_FAIL",
	APIGetFileGetEncryptFail:                    "VIXDISKLIB_VIXDISKLIB_GETFILE_GETENCRYPT_FAIL",
	APICloneLocalOpenFail:                       "VIXDISKLIB_VIXDISKLIB_CLONELOCAL_OPEN_FAIL",
	APISpaceNeededForCloneFail:                  "VIXDISKLIB_VIXDISKLIB_SPACENEEDEDFORCLONE_FAIL",
	APIAttachFail:                               "VIXDISKLIB_VIXDISKLIB_ATTACH_FAIL",
	APIWaitFail:                                 "VIXDISKLIB_VIXDISKLIB_WAIT_FAIL",
	APINoAvailableModes:                         "VIXDISKLIB_VIXDISKLIB_NOAVAILABLEMODES",
	APIAddThumbInvParam:                         "VIXDISKLIB_VIXDISKLIB_ADDTHUMB_INVPARAM",
	APIAddThumbInvThumb:                         "VIXDISKLIB_VIXDISKLIB_ADDTHUMB_INVTHUMB",
	APIAddThumbOpenDBFail:                       "VIXDISKLIB_VIXDISKLIB_ADDTHUMB_OPENDB_FAIL",
	APIAddThumbRetHostFail:                      "VIXDISKLIB_VIXDISKLIB_ADDTHUMB_RETHOST_FAIL",
	APIAddThumbAddThumbFail:                     "VIXDISKLIB_VIXDISKLIB_ADDTHUMB_ADDTHUMB_FAIL",
	APIOpenPluginFail:                           "VIXDISKLIB_VIXDISKLIB_OPEN_PLUGIN_FAIL",
	APIInitTransportFail:                        "VIXDISKLIB_VIXDISKLIB_INIT_TRANSPORT_FAIL",
	APIReleaseDiskTokenFail:                     "VIXDISKLIB_VIXDISKLIB_RELEASEDISKTOKEN_FAIL",
	APIPushCryptoKeyFail:                        "VIXDISKLIB_VIXDISKLIB_PUSHCRYPTOKEY_FAIL",
	APIReadMetadataFail:                         "VIXDISKLIB_VIXDISKLIB_READMETADATA_FAIL",
	APICreateSessionFailAgent:                   "VIXDISKLIB_VIXDISKLIB_CREATESESSION_FAIL_AGENT",
	APICreateSessionFailStatus:                  "VIXDISKLIB_VIXDISKLIB_CREATESESSION_FAIL_STATUS",
	APIUnlinkFileNotExist:                       "VIXDISKLIB_VIXDISKLIB_UNLINK_FILENOTEXIST",
	VixDiskLibAlcBlockOpenGetInfoFailed:         "VIXDISKLIB_ALCBLOCK_OPEN_GETINFO_FAILED",
	VixDiskLibAlcBlockQueryNBDGetAlcFailed:      "VIXDISKLIB_ALCBLOCK_QUERY_NBDGETALC_FAILED",
	VixDiskLibAlcBlockQueryAllocFailed:          "VIXDISKLIB_ALCBLOCK_QUERY_ALLOC_FAILED",
	VixDiskLibAlcBlockCloseNBDCloseFailed:       "VIXDISKLIB_ALCBLOCK_CLOSE_NBDCLOSE_FAILED",
	VcbLibHotAddReconfigFail:                    "VCBLIB_HOTADD_RECONFIG_FAIL",
	VcbLibHotAddAddDiskDiskNotFound:             "VCBLIB_HOTADD_ADDDISK_DISK_NOT_FOUND",
	VcbLibHotAddRemoveDiskFailed:                "VCBLIB_HOTADD_REMOVEDISK_FAILED",
	VcbLibHotAddAddDiskDiskAddFailed:            "VCBLIB_HOTADD_ADDDISK_DISK_ADD_FAILED",
	VcbLibHotAddAcquireLockFail:                 "VCBLIB_HOTADD_ACQUIRE_LOCK_FAIL",
	VcbLibHotAddAllocateSCSITargetFail:          "VCBLIB_HOTADD_ALLOCATESCSITARGET_FAIL",
	BlockListVmomiSanMPWriteFail:                "BLOCKLISTVMOMI_SANMP_WRITE_FAIL",
	BlockListVmomiSanMPPathInactive:             "BLOCKLISTVMOMI_SANMP_PATH_INACTIVE",
	BlockListVmomiMapTableAsyncAlcBlocksFailed:  "BLOCKLISTVMOMI_MAPTABLE_ASYNCALCBLOCKS_FAILED",
	BlockListVmomiMapTableAsyncWriteFail:        "BLOCKLISTVMOMI_MAPTABLE_ASYNCWRITE_FAIL",
	BlockListVmomiAsyncWriteUpdateAlcMapFail:    "BLOCKLISTVMOMI_ASYNCWRITE_UPDATEALCMAP_FAIL",
	BlockListVmomiAsyncWriteStartThreadsFail:    "BLOCKLISTVMOMI_ASYNCWRITE_STARTTHREADS_FAIL",
	PluginSANServerConnectFail:                  "PLUGIN_SAN_SERVER_CONNECT_FAIL",
	PluginSANBlkListInitFail:                    "PLUGIN_SAN_BLKLIST_INIT_FAIL",
	PluginSANStartIOFail:                        "PLUGIN_SAN_STARTIO_FAIL",
	PluginSANUnknownAdapter:                     "PLUGIN_SAN_UNKNOWN_ADAPTER",
	PluginSANDiskOpenFail:                       "PLUGIN_SAN_DISK_OPEN_FAIL",
	VimAccessSessionGetNFCTicketFailNoDiskSpec:  "VIMACCESS_SESSION_GETNFCTICKET_FAIL_NO_DISKSPEC",
	VimAccessSessionGetNFCTicketFailNoTicket:    "VIMACCESS_SESSION_GETNFCTICKET_FAIL_NO_TICKET",
	VimAccessSessionGetNFCTicketFailNoService:   "VIMACCESS_SESSION_GETNFCTICKET_FAIL_NO_SERVICE",
	VimAccessSessionGetNFCTicketFailNoSessionID: "VIMACCESS_SESSION_GETNFCTICKET_FAIL_NO_SESSIONID",
	VimAccessSessionGetFileNameFailNoDiskSpec:   "VIMACCESS_SESSION_GETFILENAME_FAIL_NO_DISKSPEC",
	VimAccessSessionGetFileNameFailNoFileName:   "VIMACCESS_SESSION_GETFILENAME_FAIL_NO_FILENAME",
	VimAccessSessionGetAboutInfoFailNoContent:   "VIMACCESS_SESSION_GETABOUTINFO_FAIL_NO_CONTENT",
	VimAccessSessionGetAboutInfoFailNoAbout:     "VIMACCESS_SESSION_GETABOUTINFO_FAIL_NO_ABOUT",
}
