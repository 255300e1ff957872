package vddk

import (
	"context"
	"fmt"

	"github.com/safekeeping/vddk-go/pkg/vddk/fault"
	"github.com/safekeeping/vddk-go/pkg/vddk/internal/backend"
)

// SetFault enables or disables the injection point id. When enabled, the
// native library fails at that point with code. It fails with
// ErrFaultOutOfRange for an unknown id and with ErrNotBuilt for release
// builds, where the fault table is compiled out.
func SetFault(id fault.ID, enabled bool, code Code) error {
	if !id.Valid() {
		return fmt.Errorf("%w: %s", ErrFaultOutOfRange, id)
	}
	if !fault.Instrumented {
		return fmt.Errorf("%w: fault table compiled out", ErrNotBuilt)
	}
	if !fault.Set(id, enabled, int32(code)) {
		return fmt.Errorf("%w: %s", ErrFaultOutOfRange, id)
	}
	return nil
}

// Fault reports the state of injection point id.
func Fault(id fault.ID) (enabled bool, code Code) {
	on, c := fault.IsEnabled(id)
	return on, Code(uint32(c))
}

// FaultHookInstalled reports whether the native library consults the fault
// table. This requires a native build with the vddkfault tag.
func (l *Library) FaultHookInstalled() bool {
	return l != nil && l.faultHook
}

// PerturbEnable switches one of the native library's built-in perturbation
// points on or off. Only fault-instrumented native builds support it; other
// builds fail with CodeNotSupported.
func (l *Library) PerturbEnable(name string, enable bool) error {
	if err := l.ensureOpen(); err != nil {
		return err
	}
	err := check("PerturbEnable", backend.PerturbEnable(name, enable))
	if err == nil {
		l.logger.Info(context.Background(), "perturbation toggled", "name", name, "enabled", enable)
	}
	return err
}
