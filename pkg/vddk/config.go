package vddk

import (
	"github.com/safekeeping/vddk-go/pkg/vddk/internal/bridge"
	"github.com/safekeeping/vddk-go/pkg/vddk/logging"
)

// Config carries the native initialization parameters.
type Config struct {
	// MajorVersion and MinorVersion select the API level the caller was
	// written against, for example 7 and 0.
	MajorVersion uint32
	MinorVersion uint32

	// LibDir is the installation directory of the native library. Empty lets
	// the library search its default locations.
	LibDir string

	// ConfigFile is an optional native configuration file.
	ConfigFile string

	// Logger receives native log output and binding diagnostics. Nil uses
	// slog.Default().
	Logger logging.Logger
}

func (c Config) nativeArgs() (libDir, configFile *string) {
	return bridge.Optional(c.LibDir), bridge.Optional(c.ConfigFile)
}
