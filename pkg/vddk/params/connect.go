package params

import (
	"log/slog"

	"github.com/safekeeping/vddk-go/pkg/vddk/logging"
)

// CredentialType is the native credential discriminant.
type CredentialType uint32

const (
	CredUID       CredentialType = 1
	CredSessionID CredentialType = 2
	CredTicketID  CredentialType = 3
	CredSSPI      CredentialType = 4
	CredUnknown   CredentialType = 256
)

func (c CredentialType) String() string {
	switch c {
	case CredUID:
		return "uid"
	case CredSessionID:
		return "session"
	case CredTicketID:
		return "ticket"
	case CredSSPI:
		return "sspi"
	default:
		return "unknown"
	}
}

// SpecType is the native target-specifier discriminant.
type SpecType uint32

const (
	SpecVMX            SpecType = 0
	SpecVStorageObject SpecType = 1
	SpecUnknown        SpecType = 256
)

func (s SpecType) String() string {
	switch s {
	case SpecVMX:
		return "vmx"
	case SpecVStorageObject:
		return "vstorage-object"
	default:
		return "unknown"
	}
}

// Credentials is one arm of the credential union.
type Credentials interface {
	CredentialType() CredentialType
	isCredentials()
}

// UIDCredentials authenticates with a user name and password.
type UIDCredentials struct {
	Username string
	Password string
}

// SessionCredentials reuses an HTTP session.
type SessionCredentials struct {
	Cookie   string
	Username string
	Key      string
}

// TicketCredentials selects a ticket managed inside the native library. It
// carries no fields of its own.
type TicketCredentials struct{}

// SSPICredentials uses the calling thread's Windows credentials.
type SSPICredentials struct{}

func (UIDCredentials) CredentialType() CredentialType     { return CredUID }
func (SessionCredentials) CredentialType() CredentialType { return CredSessionID }
func (TicketCredentials) CredentialType() CredentialType  { return CredTicketID }
func (SSPICredentials) CredentialType() CredentialType    { return CredSSPI }

func (UIDCredentials) isCredentials()     {}
func (SessionCredentials) isCredentials() {}
func (TicketCredentials) isCredentials()  {}
func (SSPICredentials) isCredentials()    {}

// Spec is one arm of the target-specifier union.
type Spec interface {
	SpecType() SpecType
	isSpec()
}

// VMXSpec names a virtual machine, e.g. "moref=vm-42".
type VMXSpec struct {
	MoRef string
}

// VStorageObjectSpec names a first class disk.
type VStorageObjectSpec struct {
	ID             string
	DatastoreMoRef string
	SnapshotID     string
}

func (VMXSpec) SpecType() SpecType            { return SpecVMX }
func (VStorageObjectSpec) SpecType() SpecType { return SpecVStorageObject }

func (VMXSpec) isSpec()            {}
func (VStorageObjectSpec) isSpec() {}

// ConnectParams describes a connection. A zero value, with no server name,
// selects a local connection.
type ConnectParams struct {
	Credentials Credentials
	Spec        Spec
	ServerName  string
	Thumbprint  string
	Port        uint32
	NFCHostPort uint32
}

// ConnectRecord mirrors the native connect parameter struct. Only the arms
// selected by CredType and SpecType are meaningful; the others are nil.
type ConnectRecord struct {
	CredType CredentialType
	SpecType SpecType

	VMXSpec        *string
	ObjectID       *string
	DatastoreMoRef *string
	SnapshotID     *string

	ServerName *string
	Thumbprint *string

	Username *string
	Password *string

	Cookie      *string
	SessionUser *string
	Key         *string

	Port        uint32
	NFCHostPort uint32
}

// Record packs p into the native layout. Fields of the selected arms are
// always present, even when empty. ServerName and Thumbprint are optional:
// an empty value becomes a null native string.
func (p ConnectParams) Record() ConnectRecord {
	r := ConnectRecord{
		CredType:    CredUnknown,
		SpecType:    SpecUnknown,
		ServerName:  optional(p.ServerName),
		Thumbprint:  optional(p.Thumbprint),
		Port:        p.Port,
		NFCHostPort: p.NFCHostPort,
	}

	switch c := p.Credentials.(type) {
	case UIDCredentials:
		r.CredType = CredUID
		r.Username, r.Password = ptr(c.Username), ptr(c.Password)
	case *UIDCredentials:
		r.CredType = CredUID
		r.Username, r.Password = ptr(c.Username), ptr(c.Password)
	case SessionCredentials:
		r.CredType = CredSessionID
		r.Cookie, r.SessionUser, r.Key = ptr(c.Cookie), ptr(c.Username), ptr(c.Key)
	case *SessionCredentials:
		r.CredType = CredSessionID
		r.Cookie, r.SessionUser, r.Key = ptr(c.Cookie), ptr(c.Username), ptr(c.Key)
	case nil:
	default:
		r.CredType = c.CredentialType()
	}

	switch s := p.Spec.(type) {
	case VMXSpec:
		r.SpecType = SpecVMX
		r.VMXSpec = ptr(s.MoRef)
	case *VMXSpec:
		r.SpecType = SpecVMX
		r.VMXSpec = ptr(s.MoRef)
	case VStorageObjectSpec:
		r.SpecType = SpecVStorageObject
		r.ObjectID, r.DatastoreMoRef, r.SnapshotID = ptr(s.ID), ptr(s.DatastoreMoRef), ptr(s.SnapshotID)
	case *VStorageObjectSpec:
		r.SpecType = SpecVStorageObject
		r.ObjectID, r.DatastoreMoRef, r.SnapshotID = ptr(s.ID), ptr(s.DatastoreMoRef), ptr(s.SnapshotID)
	}

	return r
}

// Params unpacks r, reading only the arms its discriminants select.
func (r ConnectRecord) Params() ConnectParams {
	p := ConnectParams{
		ServerName:  value(r.ServerName),
		Thumbprint:  value(r.Thumbprint),
		Port:        r.Port,
		NFCHostPort: r.NFCHostPort,
	}

	switch r.CredType {
	case CredUID:
		p.Credentials = UIDCredentials{Username: value(r.Username), Password: value(r.Password)}
	case CredSessionID:
		p.Credentials = SessionCredentials{Cookie: value(r.Cookie), Username: value(r.SessionUser), Key: value(r.Key)}
	case CredTicketID:
		p.Credentials = TicketCredentials{}
	case CredSSPI:
		p.Credentials = SSPICredentials{}
	}

	switch r.SpecType {
	case SpecVMX:
		p.Spec = VMXSpec{MoRef: value(r.VMXSpec)}
	case SpecVStorageObject:
		p.Spec = VStorageObjectSpec{ID: value(r.ObjectID), DatastoreMoRef: value(r.DatastoreMoRef), SnapshotID: value(r.SnapshotID)}
	}

	return p
}

// IsLocal reports whether p targets local files rather than a server.
func (p ConnectParams) IsLocal() bool {
	return p.ServerName == ""
}

// LogValue renders p for structured logs with every secret redacted.
func (p ConnectParams) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("server", p.ServerName),
		slog.Uint64("port", uint64(p.Port)),
	}
	if p.Credentials != nil {
		attrs = append(attrs, slog.String("cred_type", p.Credentials.CredentialType().String()))
		switch c := p.Credentials.(type) {
		case UIDCredentials:
			attrs = append(attrs, slog.String("username", c.Username), logging.Redacted("password"))
		case SessionCredentials:
			attrs = append(attrs, slog.String("username", c.Username), logging.Redacted("cookie"), logging.Redacted("key"))
		}
	}
	switch s := p.Spec.(type) {
	case VMXSpec:
		attrs = append(attrs, slog.String("vmx_spec", s.MoRef))
	case VStorageObjectSpec:
		attrs = append(attrs, slog.String("object_id", s.ID), slog.String("datastore", s.DatastoreMoRef))
	}
	return slog.GroupValue(attrs...)
}

func ptr(s string) *string {
	return &s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
