// Package profile loads the YAML profile file used by the command line tool:
// native library settings plus named connection targets.
package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/safekeeping/vddk-go/pkg/vddk"
	"github.com/safekeeping/vddk-go/pkg/vddk/logging"
	"github.com/safekeeping/vddk-go/pkg/vddk/mntapi"
	"github.com/safekeeping/vddk-go/pkg/vddk/params"
)

// PasswordEnv overrides an empty password in a connection profile.
const PasswordEnv = "VDDK_GO_PASSWORD"

// LocalConnection names the implicit connection to local files.
const LocalConnection = "local"

var (
	ErrUnknownConnection = errors.New("profile: unknown connection")
	ErrInvalid           = errors.New("profile: invalid profile")
)

// File is a parsed profile file.
type File struct {
	Library     Library               `yaml:"library"`
	Connections map[string]Connection `yaml:"connections"`
}

// Library holds native initialization settings.
type Library struct {
	Version    string `yaml:"version,omitempty"`
	LibDir     string `yaml:"lib_dir,omitempty"`
	ConfigFile string `yaml:"config_file,omitempty"`
	TmpDir     string `yaml:"tmp_dir,omitempty"`
}

// Connection describes one connection target.
type Connection struct {
	Server      string      `yaml:"server,omitempty"`
	Thumbprint  string      `yaml:"thumbprint,omitempty"`
	Port        uint32      `yaml:"port,omitempty"`
	NFCPort     uint32      `yaml:"nfc_port,omitempty"`
	Credentials Credentials `yaml:"credentials,omitempty"`
	Spec        Spec        `yaml:"spec,omitempty"`
	Transports  []string    `yaml:"transports,omitempty"`
	Snapshot    string      `yaml:"snapshot,omitempty"`
	ReadOnly    *bool       `yaml:"read_only,omitempty"`
}

// Credentials selects one credential arm by Type: uid, session, ticket or
// sspi.
type Credentials struct {
	Type     string `yaml:"type,omitempty"`
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
	Cookie   string `yaml:"cookie,omitempty"`
	Key      string `yaml:"key,omitempty"`
}

// Spec selects the target by Type: vmx or vstorage-object.
type Spec struct {
	Type       string `yaml:"type,omitempty"`
	VMX        string `yaml:"vmx,omitempty"`
	ID         string `yaml:"id,omitempty"`
	Datastore  string `yaml:"datastore,omitempty"`
	SnapshotID string `yaml:"ss_id,omitempty"`
}

// Load reads and validates the profile at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profile: read %s: %w", path, err)
	}
	f, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a profile. Unknown keys are rejected.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) validate() error {
	if _, _, err := f.Library.APIVersion(); err != nil {
		return err
	}
	for _, name := range f.Names() {
		c := f.Connections[name]
		if _, err := c.credentials(); err != nil {
			return fmt.Errorf("connection %q: %w", name, err)
		}
		if _, err := c.spec(); err != nil {
			return fmt.Errorf("connection %q: %w", name, err)
		}
	}
	return nil
}

// Names lists the configured connections in sorted order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Connections))
	for n := range f.Connections {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// APIVersion parses Version as "major.minor". An empty version selects 7.0.
func (l Library) APIVersion() (major, minor uint32, err error) {
	v := strings.TrimSpace(l.Version)
	if v == "" {
		return 7, 0, nil
	}
	majStr, minStr, _ := strings.Cut(v, ".")
	a, err := strconv.ParseUint(majStr, 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: library version %q", ErrInvalid, l.Version)
	}
	var b uint64
	if minStr != "" {
		if b, err = strconv.ParseUint(minStr, 10, 32); err != nil {
			return 0, 0, fmt.Errorf("%w: library version %q", ErrInvalid, l.Version)
		}
	}
	return uint32(a), uint32(b), nil
}

// DiskConfig builds the disk library configuration.
func (f *File) DiskConfig(logger logging.Logger) vddk.Config {
	major, minor, _ := f.Library.APIVersion()
	return vddk.Config{
		MajorVersion: major,
		MinorVersion: minor,
		LibDir:       f.Library.LibDir,
		ConfigFile:   f.Library.ConfigFile,
		Logger:       logger,
	}
}

// MountConfig builds the mount library configuration.
func (f *File) MountConfig(logger logging.Logger) mntapi.Config {
	major, minor, _ := f.Library.APIVersion()
	return mntapi.Config{
		MajorVersion: major,
		MinorVersion: minor,
		LibDir:       f.Library.LibDir,
		TmpDir:       f.Library.TmpDir,
		Logger:       logger,
	}
}

// Lookup returns the named connection. An empty name selects the only
// configured connection; "local" selects local files unless the profile
// defines a connection with that name.
func (f *File) Lookup(name string) (Connection, error) {
	if name == "" {
		switch len(f.Connections) {
		case 0:
			return Connection{}, nil
		case 1:
			name = f.Names()[0]
		default:
			return Connection{}, fmt.Errorf("%w: several connections configured, choose one of %s",
				ErrUnknownConnection, strings.Join(f.Names(), ", "))
		}
	}
	if c, ok := f.Connections[name]; ok {
		return c, nil
	}
	if name == LocalConnection {
		return Connection{}, nil
	}
	return Connection{}, fmt.Errorf("%w: %q", ErrUnknownConnection, name)
}

// Params converts c to native connection parameters. An empty password is
// taken from the environment.
func (c Connection) Params() (params.ConnectParams, error) {
	creds, err := c.credentials()
	if err != nil {
		return params.ConnectParams{}, err
	}
	spec, err := c.spec()
	if err != nil {
		return params.ConnectParams{}, err
	}
	return params.ConnectParams{
		Credentials: creds,
		Spec:        spec,
		ServerName:  c.Server,
		Thumbprint:  c.Thumbprint,
		Port:        c.Port,
		NFCHostPort: c.NFCPort,
	}, nil
}

// Options converts the transport settings. Remote connections default to
// read-only.
func (c Connection) Options() vddk.ConnectOptions {
	readOnly := c.Server != ""
	if c.ReadOnly != nil {
		readOnly = *c.ReadOnly
	}
	return vddk.ConnectOptions{
		ReadOnly:       readOnly,
		SnapshotRef:    c.Snapshot,
		TransportModes: c.Transports,
	}
}

func (c Connection) credentials() (params.Credentials, error) {
	cr := c.Credentials
	switch strings.ToLower(strings.TrimSpace(cr.Type)) {
	case "":
		if c.Server == "" {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: remote connection without credentials", ErrInvalid)
	case "uid":
		password := cr.Password
		if password == "" {
			password = os.Getenv(PasswordEnv)
		}
		return params.UIDCredentials{Username: cr.Username, Password: password}, nil
	case "session":
		return params.SessionCredentials{Cookie: cr.Cookie, Username: cr.Username, Key: cr.Key}, nil
	case "ticket":
		return params.TicketCredentials{}, nil
	case "sspi":
		return params.SSPICredentials{}, nil
	default:
		return nil, fmt.Errorf("%w: credential type %q", ErrInvalid, cr.Type)
	}
}

func (c Connection) spec() (params.Spec, error) {
	s := c.Spec
	switch strings.ToLower(strings.TrimSpace(s.Type)) {
	case "":
		if s.VMX != "" {
			return params.VMXSpec{MoRef: s.VMX}, nil
		}
		return nil, nil
	case "vmx":
		return params.VMXSpec{MoRef: s.VMX}, nil
	case "vstorage-object", "fcd":
		if s.ID == "" {
			return nil, fmt.Errorf("%w: vstorage-object spec without id", ErrInvalid)
		}
		return params.VStorageObjectSpec{ID: s.ID, DatastoreMoRef: s.Datastore, SnapshotID: s.SnapshotID}, nil
	default:
		return nil, fmt.Errorf("%w: spec type %q", ErrInvalid, s.Type)
	}
}
