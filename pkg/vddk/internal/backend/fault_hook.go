//go:build cgo && linux && vddkfault

package backend

/*
#define VDDK_FAULT_IS_EXTERN
#include "vddkgo.h"
#include "vddkFaultInjection.h"

extern int vddkgoIsFaultEnabled(int id, int *faultErr);
extern void Perturb_Enable(const char *fName, int enable);

static Bool
vddkgo_is_fault_enabled(int id, int *faultErr)
{
   return vddkgoIsFaultEnabled(id, faultErr) ? TRUE : FALSE;
}

static inline void
vddkgo_install_fault_hook(int on)
{
   VixDiskLib_IsFaultEnabled = on ? vddkgo_is_fault_enabled : NULL;
}
*/
import "C"

import "github.com/safekeeping/vddk-go/pkg/vddk/internal/bridge"

// FaultHook reports whether this build can route the native library's fault
// queries to the Go table.
const FaultHook = true

// InstallFaultHook points VixDiskLib_IsFaultEnabled at the Go fault table, or
// clears it.
func InstallFaultHook(on bool) bool {
	v := 0
	if on {
		v = 1
	}
	C.vddkgo_install_fault_hook(C.int(v))
	return true
}

// PerturbEnable toggles a named perturbation point inside the native library.
func PerturbEnable(name string, enable bool) uint64 {
	a := newArena()
	defer a.Release()
	s, ok := marshalStrings(a, &name)
	if !ok {
		return bridge.CodeOutOfMemory
	}
	v := 0
	if enable {
		v = 1
	}
	C.Perturb_Enable(s[0], C.int(v))
	return bridge.CodeOK
}
