package bridge

import "fmt"

// ContractViolation reports a mismatch between the binding and its caller
// detected inside a trampoline. It is raised with panic and never returned.
type ContractViolation struct {
	What string
}

func (v *ContractViolation) Error() string {
	return "bridge: binding contract violation: " + v.What
}

// Violation panics with a *ContractViolation built from format and args.
func Violation(format string, args ...any) {
	panic(&ContractViolation{What: fmt.Sprintf(format, args...)})
}
