package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/safekeeping/vddk-go/pkg/vddk"
	"github.com/safekeeping/vddk-go/pkg/vddk/params"
)

func newTransportModesCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "transport-modes",
		Short: "List the transport modes the native library supports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			_, lib, err := g.openLibrary(cmd)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := lib.Exit(); err == nil {
					err = cerr
				}
			}()
			modes, err := lib.ListTransportModes()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(modes, " "))
			return nil
		},
	}
}

func newInfoCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "info <disk>",
		Short: "Show geometry, size and link information of a disk",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(g, func(ctx context.Context, cmd *cobra.Command, s *session, args []string) error {
			disk, err := s.openDisk(args[0], false)
			if err != nil {
				return err
			}
			defer disk.Close()

			info, err := disk.Info()
			if err != nil {
				return err
			}
			mode, err := disk.TransportMode()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "path\t%s\n", disk.Path())
			fmt.Fprintf(w, "transport\t%s\n", mode)
			fmt.Fprintf(w, "capacity\t%d sectors (%d bytes)\n", info.CapacitySectors, info.CapacityBytes())
			fmt.Fprintf(w, "adapter\t%s\n", info.AdapterType)
			fmt.Fprintf(w, "bios geometry\t%d/%d/%d\n", info.BIOSGeometry.Cylinders, info.BIOSGeometry.Heads, info.BIOSGeometry.Sectors)
			fmt.Fprintf(w, "physical geometry\t%d/%d/%d\n", info.PhysGeometry.Cylinders, info.PhysGeometry.Heads, info.PhysGeometry.Sectors)
			fmt.Fprintf(w, "links\t%d\n", info.NumLinks)
			if info.HasParent() {
				fmt.Fprintf(w, "parent\t%s\n", *info.ParentFileNameHint)
			}
			if info.UUID != nil {
				fmt.Fprintf(w, "uuid\t%s\n", *info.UUID)
			}
			if info.LogicalSectorSize != 0 {
				fmt.Fprintf(w, "sector size\t%d logical, %d physical\n", info.LogicalSectorSize, info.PhysicalSectorSize)
			}
			return w.Flush()
		}),
	}
}

func newMetadataCommand(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metadata",
		Short: "Read and write disk descriptor metadata",
	}

	list := &cobra.Command{
		Use:   "list <disk>",
		Short: "Print every metadata key and value",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(g, func(ctx context.Context, cmd *cobra.Command, s *session, args []string) error {
			disk, err := s.openDisk(args[0], false)
			if err != nil {
				return err
			}
			defer disk.Close()

			keys, err := disk.MetadataKeys()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, k := range keys {
				v, err := disk.ReadMetadata(k)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\n", k, v)
			}
			return w.Flush()
		}),
	}

	get := &cobra.Command{
		Use:   "get <disk> <key>",
		Short: "Print one metadata value",
		Args:  cobra.ExactArgs(2),
		RunE: withSession(g, func(ctx context.Context, cmd *cobra.Command, s *session, args []string) error {
			disk, err := s.openDisk(args[0], false)
			if err != nil {
				return err
			}
			defer disk.Close()

			v, err := disk.ReadMetadata(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		}),
	}

	set := &cobra.Command{
		Use:   "set <disk> <key> <value>",
		Short: "Store a metadata value",
		Args:  cobra.ExactArgs(3),
		RunE: withSession(g, func(ctx context.Context, cmd *cobra.Command, s *session, args []string) error {
			disk, err := s.openDisk(args[0], true)
			if err != nil {
				return err
			}
			defer disk.Close()
			return disk.WriteMetadata(args[1], args[2])
		}),
	}

	cmd.AddCommand(list, get, set)
	return cmd
}

func newCreateCommand(g *globals) *cobra.Command {
	var (
		sizeMiB  uint64
		diskType string
		adapter  string
		quiet    bool
	)

	cmd := &cobra.Command{
		Use:   "create <path>",
		Short: "Create a local virtual disk",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(g, func(ctx context.Context, cmd *cobra.Command, s *session, args []string) error {
			if s.remote {
				return fmt.Errorf("create works on local connections only")
			}
			dt, ok := params.ParseDiskType(diskType)
			if !ok {
				return fmt.Errorf("unknown disk type %q", diskType)
			}
			at, ok := params.ParseAdapterType(adapter)
			if !ok {
				return fmt.Errorf("unknown adapter type %q", adapter)
			}
			if sizeMiB == 0 {
				return fmt.Errorf("size must be positive")
			}

			cp := params.CreateParams{
				DiskType:        dt,
				AdapterType:     at,
				HardwareVersion: params.HWCurrent,
				CapacitySectors: sizeMiB << 20 / params.SectorSize,
			}
			var progress vddk.ProgressFunc
			if !quiet {
				progress = progressPrinter(cmd)
			}
			if err := s.conn.Create(ctx, args[0], cp, progress); err != nil {
				return err
			}
			g.logger.Info(ctx, "disk created", "path", args[0], "type", dt, "sectors", cp.CapacitySectors)
			return nil
		}),
	}

	cmd.Flags().Uint64Var(&sizeMiB, "size", 1024, "Capacity in MiB")
	cmd.Flags().StringVar(&diskType, "type", params.DiskMonolithicSparse.String(), "Disk type")
	cmd.Flags().StringVar(&adapter, "adapter", params.AdapterSCSILSILogic.String(), "Adapter type (ide, buslogic, lsilogic)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not print progress")
	return cmd
}

func progressPrinter(cmd *cobra.Command) vddk.ProgressFunc {
	last := -1
	return func(percent int) bool {
		if percent != last && percent%10 == 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "%3d%%\n", percent)
			last = percent
		}
		return true
	}
}

func newBlocksCommand(g *globals) *cobra.Command {
	var chunk uint64

	cmd := &cobra.Command{
		Use:   "blocks <disk>",
		Short: "List the allocated extents of a disk",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(g, func(ctx context.Context, cmd *cobra.Command, s *session, args []string) error {
			disk, err := s.openDisk(args[0], false)
			if err != nil {
				return err
			}
			defer disk.Close()

			info, err := disk.Info()
			if err != nil {
				return err
			}
			blocks, err := allocatedBlocks(ctx, disk, info.CapacitySectors, chunk)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "OFFSET\tLENGTH\tEND")
			var total uint64
			for _, b := range blocks {
				fmt.Fprintf(w, "%d\t%d\t%d\n", b.Offset, b.Length, b.End())
				total += b.Length
			}
			fmt.Fprintf(w, "allocated\t%d sectors of %d\t\n", total, info.CapacitySectors)
			return w.Flush()
		}),
	}
	cmd.Flags().Uint64Var(&chunk, "chunk", params.MinChunkSize, "Query granularity in sectors")
	return cmd
}

// allocatedBlocks walks the disk in windows of at most MaxChunkNumber chunks.
// A trailing partial chunk is not queried.
func allocatedBlocks(ctx context.Context, disk *vddk.Disk, capacity, chunk uint64) ([]params.Block, error) {
	if chunk == 0 {
		return nil, fmt.Errorf("chunk size must be positive")
	}
	window := chunk * params.MaxChunkNumber
	end := capacity - capacity%chunk

	out := []params.Block{}
	for start := uint64(0); start < end; start += window {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		count := min(window, end-start)
		blocks, err := disk.QueryAllocatedBlocks(start, count, chunk)
		if err != nil {
			return nil, err
		}
		out = append(out, blocks...)
	}
	return out, nil
}
