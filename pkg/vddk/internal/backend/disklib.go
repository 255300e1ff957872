//go:build cgo && linux

package backend

/*
#cgo CFLAGS: -I/usr/local/vmware-vix-disklib-distrib/include
#cgo LDFLAGS: -L/usr/local/vmware-vix-disklib-distrib/lib64 -lvixDiskLib -ldl
#include "vddkgo.h"

static inline VixError
vddkgo_init(uint32 major, uint32 minor, const char *libDir, const char *configFile)
{
   return VixDiskLib_InitEx(major, minor, vddkgo_log, vddkgo_warn, vddkgo_panic,
                            libDir, configFile);
}

static inline void
vddkgo_set_uid(VixDiskLibConnectParams *p, char *user, char *pass)
{
   p->creds.uid.userName = user;
   p->creds.uid.password = pass;
}

static inline void
vddkgo_set_session(VixDiskLibConnectParams *p, char *cookie, char *user, char *key)
{
   p->creds.sessionId.cookie = cookie;
   p->creds.sessionId.userName = user;
   p->creds.sessionId.key = key;
}

static inline void
vddkgo_set_object(VixDiskLibConnectParams *p, char *id, char *ds, char *ss)
{
   p->spec.vStorageObjSpec.id = id;
   p->spec.vStorageObjSpec.datastoreMoRef = ds;
   p->spec.vStorageObjSpec.ssId = ss;
}

static inline char *vddkgo_uid_user(VixDiskLibConnectParams *p) { return p->creds.uid.userName; }
static inline char *vddkgo_uid_pass(VixDiskLibConnectParams *p) { return p->creds.uid.password; }
static inline char *vddkgo_session_cookie(VixDiskLibConnectParams *p) { return p->creds.sessionId.cookie; }
static inline char *vddkgo_session_user(VixDiskLibConnectParams *p) { return p->creds.sessionId.userName; }
static inline char *vddkgo_session_key(VixDiskLibConnectParams *p) { return p->creds.sessionId.key; }
static inline char *vddkgo_object_id(VixDiskLibConnectParams *p) { return p->spec.vStorageObjSpec.id; }
static inline char *vddkgo_object_ds(VixDiskLibConnectParams *p) { return p->spec.vStorageObjSpec.datastoreMoRef; }
static inline char *vddkgo_object_ss(VixDiskLibConnectParams *p) { return p->spec.vStorageObjSpec.ssId; }

// Detach the strings owned by the Go arena so FreeConnectParams only
// releases the struct itself.
static inline void
vddkgo_clear_params(VixDiskLibConnectParams *p)
{
   p->vmxSpec = NULL;
   p->serverName = NULL;
   p->thumbPrint = NULL;
   memset(&p->creds, 0, sizeof p->creds);
   memset(&p->spec, 0, sizeof p->spec);
}

static inline VixError
vddkgo_read_async(VixDiskLibHandle h, VixDiskLibSectorType start,
                  VixDiskLibSectorType n, uint8 *buf, uintptr_t ref)
{
   return VixDiskLib_ReadAsync(h, start, n, buf, vddkgo_complete, (void *)ref);
}

static inline VixError
vddkgo_write_async(VixDiskLibHandle h, VixDiskLibSectorType start,
                   VixDiskLibSectorType n, const uint8 *buf, uintptr_t ref)
{
   return VixDiskLib_WriteAsync(h, start, n, buf, vddkgo_complete, (void *)ref);
}

static inline VixError
vddkgo_create(VixDiskLibConnection c, const char *path,
              VixDiskLibCreateParams *cp, uintptr_t ref)
{
   return VixDiskLib_Create(c, path, cp, vddkgo_progress_fn(ref), (void *)ref);
}

static inline VixError
vddkgo_clone(VixDiskLibConnection dst, const char *dstPath,
             VixDiskLibConnection src, const char *srcPath,
             VixDiskLibCreateParams *cp, uintptr_t ref, Bool overwrite)
{
   return VixDiskLib_Clone(dst, dstPath, src, srcPath, cp,
                           vddkgo_progress_fn(ref), (void *)ref, overwrite);
}

static inline VixError
vddkgo_grow(VixDiskLibConnection c, const char *path, VixDiskLibSectorType capacity,
            Bool updateGeometry, uintptr_t ref)
{
   return VixDiskLib_Grow(c, path, capacity, updateGeometry,
                          vddkgo_progress_fn(ref), (void *)ref);
}

static inline VixError
vddkgo_create_child(VixDiskLibHandle h, const char *path,
                    VixDiskLibDiskType diskType, uintptr_t ref)
{
   return VixDiskLib_CreateChild(h, path, diskType, vddkgo_progress_fn(ref), (void *)ref);
}

static inline VixError
vddkgo_shrink(VixDiskLibHandle h, uintptr_t ref)
{
   return VixDiskLib_Shrink(h, vddkgo_progress_fn(ref), (void *)ref);
}

static inline VixError
vddkgo_defragment(VixDiskLibHandle h, uintptr_t ref)
{
   return VixDiskLib_Defragment(h, vddkgo_progress_fn(ref), (void *)ref);
}

static inline VixDiskLibBlock *
vddkgo_block(VixDiskLibBlockList *l, uint32 i)
{
   return &l->blocks[i];
}
*/
import "C"

import (
	"unsafe"

	"github.com/safekeeping/vddk-go/pkg/vddk/internal/bridge"
	"github.com/safekeeping/vddk-go/pkg/vddk/params"
)

// Built reports whether the native disk library is linked in.
const Built = true

type cAllocator struct{}

func (cAllocator) Malloc(n uintptr) unsafe.Pointer {
	return C.vddkgo_malloc(C.size_t(n))
}

func (cAllocator) Free(p unsafe.Pointer) {
	C.free(p)
}

func newArena() *bridge.Arena {
	return bridge.NewArena(cAllocator{})
}

func cstr(p unsafe.Pointer) *C.char {
	return (*C.char)(p)
}

func cbool(b bool) C.Bool {
	if b {
		return C.vddkgo_bool(1)
	}
	return C.vddkgo_bool(0)
}

func goStringOrEmpty(p *C.char) string {
	if p == nil {
		return ""
	}
	return C.GoString(p)
}

// marshalStrings acquires every s in order. It stops at the first allocation
// failure; the arena still owns what was acquired.
func marshalStrings(a *bridge.Arena, ss ...*string) ([]*C.char, bool) {
	out := make([]*C.char, len(ss))
	for i, s := range ss {
		p, err := a.CString(s)
		if err != nil {
			return nil, false
		}
		out[i] = cstr(p)
	}
	return out, true
}

func conn(h bridge.Handle) C.VixDiskLibConnection {
	return bridge.Decode[C.VixDiskLibConnection](h)
}

func disk(h bridge.Handle) C.VixDiskLibHandle {
	return bridge.Decode[C.VixDiskLibHandle](h)
}

// Init calls VixDiskLib_InitEx with the log, warn and panic trampolines.
func Init(major, minor uint32, libDir, configFile *string) uint64 {
	a := newArena()
	defer a.Release()
	s, ok := marshalStrings(a, libDir, configFile)
	if !ok {
		return bridge.CodeOutOfMemory
	}
	return uint64(C.vddkgo_init(C.uint32(major), C.uint32(minor), s[0], s[1]))
}

func Exit() {
	C.VixDiskLib_Exit()
}

// ListTransportModes returns the colon-separated transport list. The native
// string is static and is not freed.
func ListTransportModes() string {
	return goStringOrEmpty(C.VixDiskLib_ListTransportModes())
}

// newConnectParams allocates a native parameter struct and fills the arms
// selected by rec's discriminants. Strings are owned by a.
func newConnectParams(a *bridge.Arena, rec params.ConnectRecord) (*C.VixDiskLibConnectParams, uint64) {
	p := C.VixDiskLib_AllocateConnectParams()
	if p == nil {
		return nil, bridge.CodeOutOfMemory
	}

	top, ok := marshalStrings(a, rec.ServerName, rec.Thumbprint)
	if !ok {
		freeConnectParams(p)
		return nil, bridge.CodeOutOfMemory
	}
	p.serverName, p.thumbPrint = top[0], top[1]
	p.credType = C.VixDiskLibCredType(rec.CredType)
	p.specType = C.VixDiskLibSpecType(rec.SpecType)
	p.port = C.uint32(rec.Port)
	p.nfcHostPort = C.uint32(rec.NFCHostPort)

	switch rec.CredType {
	case params.CredUID:
		s, ok := marshalStrings(a, rec.Username, rec.Password)
		if !ok {
			freeConnectParams(p)
			return nil, bridge.CodeOutOfMemory
		}
		C.vddkgo_set_uid(p, s[0], s[1])
	case params.CredSessionID:
		s, ok := marshalStrings(a, rec.Cookie, rec.SessionUser, rec.Key)
		if !ok {
			freeConnectParams(p)
			return nil, bridge.CodeOutOfMemory
		}
		C.vddkgo_set_session(p, s[0], s[1], s[2])
	}

	switch rec.SpecType {
	case params.SpecVMX:
		s, ok := marshalStrings(a, rec.VMXSpec)
		if !ok {
			freeConnectParams(p)
			return nil, bridge.CodeOutOfMemory
		}
		p.vmxSpec = s[0]
	case params.SpecVStorageObject:
		s, ok := marshalStrings(a, rec.ObjectID, rec.DatastoreMoRef, rec.SnapshotID)
		if !ok {
			freeConnectParams(p)
			return nil, bridge.CodeOutOfMemory
		}
		C.vddkgo_set_object(p, s[0], s[1], s[2])
	}
	return p, bridge.CodeOK
}

func freeConnectParams(p *C.VixDiskLibConnectParams) {
	C.vddkgo_clear_params(p)
	C.VixDiskLib_FreeConnectParams(p)
}

func gostr(p *C.char) *string {
	return bridge.GoString(unsafe.Pointer(p))
}

// readConnectParams copies the arms selected by p's discriminants.
func readConnectParams(p *C.VixDiskLibConnectParams) params.ConnectRecord {
	rec := params.ConnectRecord{
		CredType:    params.CredentialType(p.credType),
		SpecType:    params.SpecType(p.specType),
		ServerName:  gostr(p.serverName),
		Thumbprint:  gostr(p.thumbPrint),
		Port:        uint32(p.port),
		NFCHostPort: uint32(p.nfcHostPort),
	}
	switch rec.CredType {
	case params.CredUID:
		rec.Username = gostr(C.vddkgo_uid_user(p))
		rec.Password = gostr(C.vddkgo_uid_pass(p))
	case params.CredSessionID:
		rec.Cookie = gostr(C.vddkgo_session_cookie(p))
		rec.SessionUser = gostr(C.vddkgo_session_user(p))
		rec.Key = gostr(C.vddkgo_session_key(p))
	}
	switch rec.SpecType {
	case params.SpecVMX:
		rec.VMXSpec = gostr(p.vmxSpec)
	case params.SpecVStorageObject:
		rec.ObjectID = gostr(C.vddkgo_object_id(p))
		rec.DatastoreMoRef = gostr(C.vddkgo_object_ds(p))
		rec.SnapshotID = gostr(C.vddkgo_object_ss(p))
	}
	return rec
}

// withConnectParams marshals rec for the duration of fn.
func withConnectParams(rec params.ConnectRecord, extra []*string, fn func(p *C.VixDiskLibConnectParams, s []*C.char) C.VixError) uint64 {
	a := newArena()
	defer a.Release()

	s, ok := marshalStrings(a, extra...)
	if !ok {
		return bridge.CodeOutOfMemory
	}
	p, code := newConnectParams(a, rec)
	if code != bridge.CodeOK {
		return code
	}
	defer freeConnectParams(p)
	return uint64(fn(p, s))
}

// Cleanup removes leftover state from aborted sessions. Nil counters are
// passed through as null.
func Cleanup(rec params.ConnectRecord, cleaned, remaining *uint32) uint64 {
	var c, r C.uint32
	code := withConnectParams(rec, nil, func(p *C.VixDiskLibConnectParams, _ []*C.char) C.VixError {
		var pc, pr *C.uint32
		if cleaned != nil {
			pc = &c
		}
		if remaining != nil {
			pr = &r
		}
		return C.VixDiskLib_Cleanup(p, pc, pr)
	})
	if cleaned != nil {
		*cleaned = uint32(c)
	}
	if remaining != nil {
		*remaining = uint32(r)
	}
	return code
}

func Connect(rec params.ConnectRecord, out *bridge.Handle) uint64 {
	var c C.VixDiskLibConnection
	code := withConnectParams(rec, nil, func(p *C.VixDiskLibConnectParams, _ []*C.char) C.VixError {
		if out == nil {
			return C.VixDiskLib_Connect(p, nil)
		}
		return C.VixDiskLib_Connect(p, &c)
	})
	if out != nil {
		*out = bridge.Encode(c)
	}
	return code
}

func ConnectEx(rec params.ConnectRecord, readOnly bool, snapshotRef, transportModes *string, out *bridge.Handle) uint64 {
	var c C.VixDiskLibConnection
	code := withConnectParams(rec, []*string{snapshotRef, transportModes}, func(p *C.VixDiskLibConnectParams, s []*C.char) C.VixError {
		if out == nil {
			return C.VixDiskLib_ConnectEx(p, cbool(readOnly), s[0], s[1], nil)
		}
		return C.VixDiskLib_ConnectEx(p, cbool(readOnly), s[0], s[1], &c)
	})
	if out != nil {
		*out = bridge.Encode(c)
	}
	return code
}

func PrepareForAccess(rec params.ConnectRecord, identity string) uint64 {
	return withConnectParams(rec, []*string{&identity}, func(p *C.VixDiskLibConnectParams, s []*C.char) C.VixError {
		return C.VixDiskLib_PrepareForAccess(p, s[0])
	})
}

func EndAccess(rec params.ConnectRecord, identity string) uint64 {
	return withConnectParams(rec, []*string{&identity}, func(p *C.VixDiskLibConnectParams, s []*C.char) C.VixError {
		return C.VixDiskLib_EndAccess(p, s[0])
	})
}

func Disconnect(c bridge.Handle) uint64 {
	return uint64(C.VixDiskLib_Disconnect(conn(c)))
}

// GetConnectParams copies the parameters a connection was made with and
// frees the native copy.
func GetConnectParams(c bridge.Handle, out *params.ConnectRecord) uint64 {
	if out == nil {
		return uint64(C.VixDiskLib_GetConnectParams(conn(c), nil))
	}
	var p *C.VixDiskLibConnectParams
	code := uint64(C.VixDiskLib_GetConnectParams(conn(c), &p))
	if p != nil {
		*out = readConnectParams(p)
		C.VixDiskLib_FreeConnectParams(p)
	}
	return code
}

func Open(c bridge.Handle, path string, flags uint32, out *bridge.Handle) uint64 {
	a := newArena()
	defer a.Release()
	s, ok := marshalStrings(a, &path)
	if !ok {
		return bridge.CodeOutOfMemory
	}
	if out == nil {
		return uint64(C.VixDiskLib_Open(conn(c), s[0], C.uint32(flags), nil))
	}
	var h C.VixDiskLibHandle
	code := uint64(C.VixDiskLib_Open(conn(c), s[0], C.uint32(flags), &h))
	*out = bridge.Encode(h)
	return code
}

func Close(d bridge.Handle) uint64 {
	return uint64(C.VixDiskLib_Close(disk(d)))
}

func Unlink(c bridge.Handle, path string) uint64 {
	a := newArena()
	defer a.Release()
	s, ok := marshalStrings(a, &path)
	if !ok {
		return bridge.CodeOutOfMemory
	}
	return uint64(C.VixDiskLib_Unlink(conn(c), s[0]))
}

func Rename(src, dst string) uint64 {
	a := newArena()
	defer a.Release()
	s, ok := marshalStrings(a, &src, &dst)
	if !ok {
		return bridge.CodeOutOfMemory
	}
	return uint64(C.VixDiskLib_Rename(s[0], s[1]))
}

func createParams(cp params.CreateParams) C.VixDiskLibCreateParams {
	var out C.VixDiskLibCreateParams
	out.diskType = C.VixDiskLibDiskType(cp.DiskType)
	out.adapterType = C.VixDiskLibAdapterType(cp.AdapterType)
	out.hwVersion = C.uint16(cp.HardwareVersion)
	out.capacity = C.VixDiskLibSectorType(cp.CapacitySectors)
	out.logicalSectorSize = C.uint32(cp.LogicalSectorSize)
	out.physicalSectorSize = C.uint32(cp.PhysicalSectorSize)
	return out
}

// Create makes a new disk. A zero progress ref passes a null callback.
func Create(c bridge.Handle, path string, cp params.CreateParams, progress bridge.Ref) uint64 {
	a := newArena()
	defer a.Release()
	s, ok := marshalStrings(a, &path)
	if !ok {
		return bridge.CodeOutOfMemory
	}
	ccp := createParams(cp)
	return uint64(C.vddkgo_create(conn(c), s[0], &ccp, C.uintptr_t(progress)))
}

func Clone(dst bridge.Handle, dstPath string, src bridge.Handle, srcPath string, cp params.CreateParams, progress bridge.Ref, overwrite bool) uint64 {
	a := newArena()
	defer a.Release()
	s, ok := marshalStrings(a, &dstPath, &srcPath)
	if !ok {
		return bridge.CodeOutOfMemory
	}
	ccp := createParams(cp)
	return uint64(C.vddkgo_clone(conn(dst), s[0], conn(src), s[1], &ccp, C.uintptr_t(progress), cbool(overwrite)))
}

func Grow(c bridge.Handle, path string, capacity uint64, updateGeometry bool, progress bridge.Ref) uint64 {
	a := newArena()
	defer a.Release()
	s, ok := marshalStrings(a, &path)
	if !ok {
		return bridge.CodeOutOfMemory
	}
	return uint64(C.vddkgo_grow(conn(c), s[0], C.VixDiskLibSectorType(capacity), cbool(updateGeometry), C.uintptr_t(progress)))
}

func CheckRepair(c bridge.Handle, path string, repair bool) uint64 {
	a := newArena()
	defer a.Release()
	s, ok := marshalStrings(a, &path)
	if !ok {
		return bridge.CodeOutOfMemory
	}
	return uint64(C.VixDiskLib_CheckRepair(conn(c), s[0], cbool(repair)))
}

func CreateChild(d bridge.Handle, path string, diskType uint32, progress bridge.Ref) uint64 {
	a := newArena()
	defer a.Release()
	s, ok := marshalStrings(a, &path)
	if !ok {
		return bridge.CodeOutOfMemory
	}
	return uint64(C.vddkgo_create_child(disk(d), s[0], C.VixDiskLibDiskType(diskType), C.uintptr_t(progress)))
}

func Shrink(d bridge.Handle, progress bridge.Ref) uint64 {
	return uint64(C.vddkgo_shrink(disk(d), C.uintptr_t(progress)))
}

func Defragment(d bridge.Handle, progress bridge.Ref) uint64 {
	return uint64(C.vddkgo_defragment(disk(d), C.uintptr_t(progress)))
}

func IsAttachPossible(parent, child bridge.Handle) uint64 {
	return uint64(C.VixDiskLib_IsAttachPossible(disk(parent), disk(child)))
}

func Attach(parent, child bridge.Handle) uint64 {
	return uint64(C.VixDiskLib_Attach(disk(parent), disk(child)))
}

// Read fills count sectors at buf. buf is either pinned Go memory or a
// native buffer and must hold count*512 bytes.
func Read(d bridge.Handle, start, count uint64, buf unsafe.Pointer) uint64 {
	return uint64(C.VixDiskLib_Read(disk(d), C.VixDiskLibSectorType(start), C.VixDiskLibSectorType(count), (*C.uint8)(buf)))
}

func Write(d bridge.Handle, start, count uint64, buf unsafe.Pointer) uint64 {
	return uint64(C.VixDiskLib_Write(disk(d), C.VixDiskLibSectorType(start), C.VixDiskLibSectorType(count), (*C.uint8)(buf)))
}

// ReadAsync submits a read whose completion is delivered to ref. buf must be
// native memory that stays valid until the completion runs.
func ReadAsync(d bridge.Handle, start, count uint64, buf unsafe.Pointer, ref bridge.Ref) uint64 {
	return uint64(C.vddkgo_read_async(disk(d), C.VixDiskLibSectorType(start), C.VixDiskLibSectorType(count), (*C.uint8)(buf), C.uintptr_t(ref)))
}

func WriteAsync(d bridge.Handle, start, count uint64, buf unsafe.Pointer, ref bridge.Ref) uint64 {
	return uint64(C.vddkgo_write_async(disk(d), C.VixDiskLibSectorType(start), C.VixDiskLibSectorType(count), (*C.uint8)(buf), C.uintptr_t(ref)))
}

func Wait(d bridge.Handle) uint64 {
	return uint64(C.VixDiskLib_Wait(disk(d)))
}

func Flush(d bridge.Handle) uint64 {
	return uint64(C.VixDiskLib_Flush(disk(d)))
}

func bytesPtr(buf []byte) *C.char {
	if len(buf) == 0 {
		return nil
	}
	return (*C.char)(unsafe.Pointer(&buf[0]))
}

// GetMetadataKeys is one round of the size-discovery protocol.
func GetMetadataKeys(d bridge.Handle, buf []byte) (int, uint64) {
	var required C.size_t
	code := C.VixDiskLib_GetMetadataKeys(disk(d), bytesPtr(buf), C.size_t(len(buf)), &required)
	return int(required), uint64(code)
}

// ReadMetadata is one round of the size-discovery protocol for key.
func ReadMetadata(d bridge.Handle, key string, buf []byte) (int, uint64) {
	a := newArena()
	defer a.Release()
	s, ok := marshalStrings(a, &key)
	if !ok {
		return 0, bridge.CodeOutOfMemory
	}
	var required C.size_t
	code := C.VixDiskLib_ReadMetadata(disk(d), s[0], bytesPtr(buf), C.size_t(len(buf)), &required)
	return int(required), uint64(code)
}

func WriteMetadata(d bridge.Handle, key, value string) uint64 {
	a := newArena()
	defer a.Release()
	s, ok := marshalStrings(a, &key, &value)
	if !ok {
		return bridge.CodeOutOfMemory
	}
	return uint64(C.VixDiskLib_WriteMetadata(disk(d), s[0], s[1]))
}

// GetInfo copies the disk info into out and frees the native record. A nil
// out passes a null out-parameter.
func GetInfo(d bridge.Handle, out *params.Info) uint64 {
	if out == nil {
		return uint64(C.VixDiskLib_GetInfo(disk(d), nil))
	}
	var info *C.VixDiskLibInfo
	code := uint64(C.VixDiskLib_GetInfo(disk(d), &info))
	if info != nil {
		*out = params.Info{
			BIOSGeometry: params.Geometry{
				Cylinders: uint32(info.biosGeo.cylinders),
				Heads:     uint32(info.biosGeo.heads),
				Sectors:   uint32(info.biosGeo.sectors),
			},
			PhysGeometry: params.Geometry{
				Cylinders: uint32(info.physGeo.cylinders),
				Heads:     uint32(info.physGeo.heads),
				Sectors:   uint32(info.physGeo.sectors),
			},
			CapacitySectors:    uint64(info.capacity),
			AdapterType:        params.AdapterType(info.adapterType),
			NumLinks:           int(info.numLinks),
			ParentFileNameHint: gostr(info.parentFileNameHint),
			UUID:               gostr(info.uuid),
			LogicalSectorSize:  uint32(info.logicalSectorSize),
			PhysicalSectorSize: uint32(info.physicalSectorSize),
		}
		C.VixDiskLib_FreeInfo(info)
	}
	return code
}

// GetTransportMode returns the transport an open disk uses. The native
// string is static.
func GetTransportMode(d bridge.Handle) string {
	return goStringOrEmpty(C.VixDiskLib_GetTransportMode(disk(d)))
}

func SpaceNeededForClone(d bridge.Handle, diskType uint32, out *uint64) uint64 {
	if out == nil {
		return uint64(C.VixDiskLib_SpaceNeededForClone(disk(d), C.VixDiskLibDiskType(diskType), nil))
	}
	var n C.uint64
	code := uint64(C.VixDiskLib_SpaceNeededForClone(disk(d), C.VixDiskLibDiskType(diskType), &n))
	*out = uint64(n)
	return code
}

// QueryAllocatedBlocks copies the allocated extents into out and frees the
// native list.
func QueryAllocatedBlocks(d bridge.Handle, start, count, chunk uint64, out *[]params.Block) uint64 {
	if out == nil {
		return uint64(C.VixDiskLib_QueryAllocatedBlocks(disk(d), C.VixDiskLibSectorType(start), C.VixDiskLibSectorType(count), C.VixDiskLibSectorType(chunk), nil))
	}
	var list *C.VixDiskLibBlockList
	code := uint64(C.VixDiskLib_QueryAllocatedBlocks(disk(d), C.VixDiskLibSectorType(start), C.VixDiskLibSectorType(count), C.VixDiskLibSectorType(chunk), &list))
	if list != nil {
		n := uint32(list.numBlocks)
		blocks := make([]params.Block, 0, n)
		for i := uint32(0); i < n; i++ {
			b := C.vddkgo_block(list, C.uint32(i))
			blocks = append(blocks, params.Block{Offset: uint64(b.offset), Length: uint64(b.length)})
		}
		*out = blocks
		C.VixDiskLib_FreeBlockList(list)
	}
	return code
}

// GetErrorText returns the native description of code, or nil.
func GetErrorText(code uint64, locale *string) *string {
	a := newArena()
	defer a.Release()
	s, ok := marshalStrings(a, locale)
	if !ok {
		return nil
	}
	text := C.VixDiskLib_GetErrorText(C.VixError(code), s[0])
	if text == nil {
		return nil
	}
	defer C.VixDiskLib_FreeErrorText(text)
	return gostr(text)
}
