//go:build cgo && linux

package backend

/*
#include <stdint.h>
*/
import "C"

import "github.com/safekeeping/vddk-go/pkg/vddk/internal/bridge"

// Trampoline targets. The native libraries call these through the static C
// functions in vddkgo.h, possibly from threads Go has never seen.

//export vddkgoLog
func vddkgoLog(level C.int, msg *C.char) {
	bridge.DispatchLog(bridge.Level(level), C.GoString(msg))
}

//export vddkgoComplete
func vddkgoComplete(ref C.uintptr_t, result C.uint64_t) {
	bridge.DeliverCompletion(bridge.Ref(ref), uint64(result))
}

//export vddkgoProgress
func vddkgoProgress(ref C.uintptr_t, percent C.int) C.int {
	if bridge.DispatchProgress(bridge.Ref(ref), int(percent)) {
		return 1
	}
	return 0
}
