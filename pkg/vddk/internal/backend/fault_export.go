//go:build cgo && linux && vddkfault

package backend

/*
#include <stdint.h>
*/
import "C"

import "github.com/safekeeping/vddk-go/pkg/vddk/fault"

//export vddkgoIsFaultEnabled
func vddkgoIsFaultEnabled(id C.int, faultErr *C.int) C.int {
	enabled, code := fault.IsEnabled(fault.ID(id))
	if !enabled {
		return 0
	}
	if faultErr != nil {
		*faultErr = C.int(code)
	}
	return 1
}
