// Command vddk-go inspects and manipulates virtual disks through the native
// VDDK libraries.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/safekeeping/vddk-go/internal/profile"
	"github.com/safekeeping/vddk-go/pkg/vddk"
	"github.com/safekeeping/vddk-go/pkg/vddk/logging"
)

const (
	defaultLogLevel  = "warning"
	defaultLogFormat = "text"
	configEnv        = "VDDK_GO_CONFIG"
)

func main() {
	var levelVar slog.LevelVar
	levelVar.Set(slog.LevelWarn)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g := &globals{levelVar: &levelVar}
	g.setLogger(logging.ModeText)

	root := newRootCommand(g)
	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			g.slog.Warn("command interrupted", "error", err)
			os.Exit(130)
		}
		g.slog.Error("command execution failed", "error", err)
		os.Exit(1)
	}
}

// globals carries the persistent flags and the loggers built from them.
type globals struct {
	configPath string
	connection string
	logLevel   string
	logFormat  string
	faults     []string

	levelVar *slog.LevelVar
	slog     *slog.Logger
	logger   logging.Logger
}

func (g *globals) setLogger(mode logging.Mode) {
	g.slog = logging.NewSlog(mode, os.Stderr, g.levelVar)
	slog.SetDefault(g.slog)
	g.logger = logging.New(g.slog)
}

func newRootCommand(g *globals) *cobra.Command {
	root := &cobra.Command{
		Use:           "vddk-go",
		Short:         "Inspect and manipulate virtual disks through VDDK",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&g.configPath, "config", defaultConfigPath(), "Profile file with library settings and connections")
	flags.StringVarP(&g.connection, "connection", "c", "", "Connection name from the profile (\"local\" for local files)")
	flags.StringVar(&g.logLevel, "log-level", defaultLogLevel, "Set log verbosity (debug, info, warning, error)")
	flags.StringVar(&g.logFormat, "log-format", defaultLogFormat, "Log format (text, json)")
	flags.StringArrayVar(&g.faults, "fault", nil, "Arm an injection point before running, as NAME[=CODE] (repeatable)")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level, err := logging.ParseLevel(g.logLevel)
		if err != nil {
			return err
		}
		mode, err := logging.ParseMode(g.logFormat)
		if err != nil {
			return err
		}
		g.levelVar.Set(level)
		g.setLogger(mode)
		return armFaults(g.faults)
	}

	root.AddCommand(
		newVersionCommand(),
		newTransportModesCommand(g),
		newInfoCommand(g),
		newMetadataCommand(g),
		newCreateCommand(g),
		newBlocksCommand(g),
		newFaultCommand(),
		newMountCommand(g),
		newErrorTextCommand(),
	)
	return root
}

func defaultConfigPath() string {
	if p := os.Getenv(configEnv); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "vddk-go.yaml"
	}
	return filepath.Join(dir, "vddk-go", "profile.yaml")
}

// loadProfile reads the profile. A missing file at the default location
// yields an empty profile, which still allows local connections.
func (g *globals) loadProfile(cmd *cobra.Command) (*profile.File, error) {
	f, err := profile.Load(g.configPath)
	if err == nil {
		return f, nil
	}
	if errors.Is(err, os.ErrNotExist) && !cmd.Flags().Changed("config") {
		g.slog.Debug("no profile file, using defaults", "path", g.configPath)
		return &profile.File{}, nil
	}
	return nil, err
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the wrapper version and native library availability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "vddk-go %s\n", vddk.WrapperVersion())
			fmt.Fprintf(out, "native target %s\n", vddk.NativeTarget)
			fmt.Fprintf(out, "native library linked: %t\n", vddk.NativeAvailable())
			return nil
		},
	}
}

func newErrorTextCommand() *cobra.Command {
	var locale string

	cmd := &cobra.Command{
		Use:   "error-text <code>",
		Short: "Describe a native result code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := parseCode(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", uint64(code), code, code.Text(locale))
			return nil
		},
	}
	cmd.Flags().StringVar(&locale, "locale", "", "Message locale (library default when empty)")
	return cmd
}
