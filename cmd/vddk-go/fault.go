package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/safekeeping/vddk-go/pkg/vddk"
	"github.com/safekeeping/vddk-go/pkg/vddk/fault"
)

func newFaultCommand() *cobra.Command {
	var enabledOnly bool

	cmd := &cobra.Command{
		Use:   "fault",
		Short: "Inspect the fault injection table",
		Long: "List the injection points of the native library. Points are armed for a\n" +
			"single invocation with the global --fault flag, for example\n" +
			"  vddk-go --fault SAN_READ_WRITE_ERROR=VIX_E_DISK_FULL info disk.vmdk",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List injection points and their state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !fault.Instrumented {
				fmt.Fprintln(cmd.ErrOrStderr(), "fault table compiled out of this build")
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tENABLED\tCODE")
			for _, id := range fault.All() {
				on, code := vddk.Fault(id)
				if enabledOnly && !on {
					continue
				}
				fmt.Fprintf(w, "%d\t%s\t%t\t%s\n", int32(id), id, on, code)
			}
			return w.Flush()
		},
	}
	list.Flags().BoolVar(&enabledOnly, "enabled", false, "Only show armed points")

	cmd.AddCommand(list)
	return cmd
}

// armFaults applies --fault values of the form NAME[=CODE]. The code
// defaults to VIX_E_FAIL.
func armFaults(specs []string) error {
	for _, spec := range specs {
		name, codeStr, hasCode := strings.Cut(spec, "=")
		id, ok := fault.Parse(name)
		if !ok {
			return fmt.Errorf("%w: %q", vddk.ErrFaultOutOfRange, name)
		}
		code := vddk.CodeFail
		if hasCode {
			c, err := parseCode(codeStr)
			if err != nil {
				return err
			}
			code = c
		}
		if err := vddk.SetFault(id, true, code); err != nil {
			return err
		}
	}
	return nil
}

// parseCode accepts a decimal code or a documented name such as
// VIX_E_DISK_FULL.
func parseCode(s string) (vddk.Code, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return vddk.Code(n), nil
	}
	if c, ok := vddk.ParseCode(s); ok {
		return c, nil
	}
	return 0, fmt.Errorf("unknown result code %q", s)
}
