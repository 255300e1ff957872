//go:build cgo && linux

package backend

/*
#cgo LDFLAGS: -lpthread
#include <pthread.h>
#include <stdint.h>

extern void vddkgoComplete(uintptr_t ref, uint64_t result);

typedef struct {
   uintptr_t ref;
   uint64_t result;
} vddkgo_delivery;

static void *
vddkgo_deliver_main(void *arg)
{
   vddkgo_delivery *d = arg;
   vddkgoComplete(d->ref, d->result);
   return NULL;
}

static int
vddkgo_deliver_on_new_thread(uintptr_t ref, uint64_t result)
{
   vddkgo_delivery d = { ref, result };
   pthread_t t;
   int rc = pthread_create(&t, NULL, vddkgo_deliver_main, &d);
   if (rc != 0) {
      return rc;
   }
   return pthread_join(t, NULL);
}
*/
import "C"

import (
	"fmt"
	"syscall"

	"github.com/safekeeping/vddk-go/pkg/vddk/internal/bridge"
)

// DeliverOnForeignThread runs the completion trampoline for ref on a thread
// created with pthread_create, the way the native library's worker threads
// do. It returns once that thread has exited.
func DeliverOnForeignThread(ref bridge.Ref, code uint64) error {
	if rc := C.vddkgo_deliver_on_new_thread(C.uintptr_t(ref), C.uint64_t(code)); rc != 0 {
		return fmt.Errorf("backend: start delivery thread: %w", syscall.Errno(rc))
	}
	return nil
}
