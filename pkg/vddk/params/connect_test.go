package params_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/safekeeping/vddk-go/pkg/vddk/logging"
	"github.com/safekeeping/vddk-go/pkg/vddk/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) *string { return &s }

func TestRecordUIDWithVMXSpec(t *testing.T) {
	p := params.ConnectParams{
		Credentials: params.UIDCredentials{Username: "administrator@vsphere.local", Password: "hunter2"},
		Spec:        params.VMXSpec{MoRef: "moref=vm-42"},
		ServerName:  "vcenter.example.com",
		Thumbprint:  "AA:BB:CC",
		Port:        443,
		NFCHostPort: 902,
	}

	r := p.Record()

	assert.Equal(t, params.CredUID, r.CredType)
	assert.Equal(t, params.SpecVMX, r.SpecType)
	require.NotNil(t, r.Username)
	require.NotNil(t, r.Password)
	require.NotNil(t, r.VMXSpec)
	assert.Equal(t, "administrator@vsphere.local", *r.Username)
	assert.Equal(t, "hunter2", *r.Password)
	assert.Equal(t, "moref=vm-42", *r.VMXSpec)

	assert.Nil(t, r.Cookie)
	assert.Nil(t, r.SessionUser)
	assert.Nil(t, r.Key)
	assert.Nil(t, r.ObjectID)
	assert.Nil(t, r.DatastoreMoRef)
	assert.Nil(t, r.SnapshotID)

	assert.Equal(t, uint32(443), r.Port)
	assert.Equal(t, uint32(902), r.NFCHostPort)
}

func TestParamsReadsOnlySelectedArms(t *testing.T) {
	r := params.ConnectRecord{
		CredType:       params.CredUID,
		SpecType:       params.SpecVMX,
		VMXSpec:        str("moref=vm-7"),
		ObjectID:       str("stale-object"),
		DatastoreMoRef: str("datastore-1"),
		Username:       str("root"),
		Password:       str("secret"),
		Cookie:         str("stale-cookie"),
		Key:            str("stale-key"),
		ServerName:     str("esx01"),
	}

	p := r.Params()

	assert.Equal(t, params.UIDCredentials{Username: "root", Password: "secret"}, p.Credentials)
	assert.Equal(t, params.VMXSpec{MoRef: "moref=vm-7"}, p.Spec)
	assert.Equal(t, "esx01", p.ServerName)
	assert.Empty(t, p.Thumbprint)
}

func TestRecordRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   params.ConnectParams
	}{
		{
			name: "local",
			in:   params.ConnectParams{},
		},
		{
			name: "session and object",
			in: params.ConnectParams{
				Credentials: params.SessionCredentials{Cookie: "vmware_soap_session=abc", Username: "svc", Key: "k"},
				Spec:        params.VStorageObjectSpec{ID: "fcd-1", DatastoreMoRef: "datastore-11", SnapshotID: "ss-3"},
				ServerName:  "vc",
			},
		},
		{
			name: "ticket",
			in:   params.ConnectParams{Credentials: params.TicketCredentials{}, ServerName: "vc"},
		},
		{
			name: "sspi with empty arm values",
			in: params.ConnectParams{
				Credentials: params.SSPICredentials{},
				Spec:        params.VMXSpec{},
				ServerName:  "vc",
			},
		},
		{
			name: "uid with empty password",
			in: params.ConnectParams{
				Credentials: params.UIDCredentials{Username: "root"},
				ServerName:  "esx",
				Port:        902,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.in, tt.in.Record().Params())
		})
	}
}

func TestRecordDistinguishesEmptyFromNull(t *testing.T) {
	r := params.ConnectParams{
		Credentials: params.UIDCredentials{Username: "root"},
		Spec:        params.VMXSpec{},
	}.Record()

	require.NotNil(t, r.Password, "selected arm fields are always present")
	assert.Equal(t, "", *r.Password)
	require.NotNil(t, r.VMXSpec)
	assert.Equal(t, "", *r.VMXSpec)

	assert.Nil(t, r.ServerName, "empty optional fields map to null")
	assert.Nil(t, r.Thumbprint)
}

func TestRecordPointerArms(t *testing.T) {
	r := params.ConnectParams{
		Credentials: &params.UIDCredentials{Username: "u", Password: "p"},
		Spec:        &params.VStorageObjectSpec{ID: "fcd"},
	}.Record()

	assert.Equal(t, params.CredUID, r.CredType)
	assert.Equal(t, params.SpecVStorageObject, r.SpecType)
	require.NotNil(t, r.ObjectID)
	assert.Equal(t, "fcd", *r.ObjectID)
	assert.Nil(t, r.VMXSpec)
}

func TestUnknownDiscriminants(t *testing.T) {
	r := params.ConnectParams{}.Record()
	assert.Equal(t, params.CredUnknown, r.CredType)
	assert.Equal(t, params.SpecUnknown, r.SpecType)

	p := params.ConnectRecord{CredType: 99, SpecType: 42, Username: str("ignored")}.Params()
	assert.Nil(t, p.Credentials)
	assert.Nil(t, p.Spec)
}

func TestConnectParamsLogValueRedacts(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("connecting", "params", params.ConnectParams{
		Credentials: params.UIDCredentials{Username: "root", Password: "hunter2"},
		Spec:        params.VMXSpec{MoRef: "moref=vm-1"},
		ServerName:  "esx01",
	})
	logger.Info("connecting", "params", params.ConnectParams{
		Credentials: params.SessionCredentials{Cookie: "c00kie", Username: "svc", Key: "s3cr3t"},
		ServerName:  "vc",
	})

	out := buf.String()
	assert.NotContains(t, out, "hunter2")
	assert.NotContains(t, out, "c00kie")
	assert.NotContains(t, out, "s3cr3t")
	assert.Equal(t, 3, strings.Count(out, logging.Placeholder()))
	assert.Contains(t, out, "params.server=esx01")
	assert.Contains(t, out, "params.cred_type=uid")
}

func TestIsLocal(t *testing.T) {
	assert.True(t, params.ConnectParams{}.IsLocal())
	assert.False(t, params.ConnectParams{ServerName: "esx"}.IsLocal())
}
