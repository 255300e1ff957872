package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/safekeeping/vddk-go/pkg/vddk/mntapi"
	"github.com/safekeeping/vddk-go/pkg/vddk/params"
)

func newMountCommand(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mount",
		Short: "Inspect guest volumes through the mount library",
	}

	var showOS bool
	volumes := &cobra.Command{
		Use:   "volumes <disk>...",
		Short: "List the volumes found on a set of disks",
		Args:  cobra.MinimumNArgs(1),
		RunE: withSession(g, func(ctx context.Context, cmd *cobra.Command, s *session, args []string) (err error) {
			mnt, err := mntapi.Init(s.profile.MountConfig(g.logger))
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, mnt.Exit()) }()

			set, err := mnt.OpenDisks(s.conn, args, params.OpenReadOnly)
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, set.Close()) }()

			out := cmd.OutOrStdout()
			if showOS {
				osInfo, err := set.OsInfo()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "guest: %s %d.%d 64-bit=%t vendor=%s edition=%s\n",
					osInfo.Family, osInfo.MajorVersion, osInfo.MinorVersion, osInfo.Is64Bit,
					orDash(osInfo.Vendor), orDash(osInfo.Edition))
			}

			vols, err := set.Volumes()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "VOLUME\tTYPE\tMOUNTED\tLINK\tMOUNT POINTS")
			for _, v := range vols {
				info, err := v.Info()
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%d\t%s\t%t\t%s\t%s\n", v.Index(), info.Type, info.IsMounted,
					orDash(info.SymbolicLink), strings.Join(info.MountPoints, ","))
			}
			return w.Flush()
		}),
	}
	volumes.Flags().BoolVar(&showOS, "os", false, "Also describe the guest operating system")

	cmd.AddCommand(volumes)
	return cmd
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
