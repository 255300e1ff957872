package bridge

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestGoString(t *testing.T) {
	require.Nil(t, GoString(nil), "null must stay null")

	empty := []byte{0}
	got := GoString(unsafe.Pointer(&empty[0]))
	require.NotNil(t, got)
	require.Equal(t, "", *got)

	buf := []byte("nbdssl\x00ignored")
	require.Equal(t, "nbdssl", *GoString(unsafe.Pointer(&buf[0])))
}

func TestOptionalAndValue(t *testing.T) {
	require.Nil(t, Optional(""))
	require.Equal(t, "esx01", *Optional("esx01"))
	require.Equal(t, "", Value(nil))
	require.Equal(t, "x", Value(Ptr("x")))
}

func TestSplitNulList(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []string
	}{
		{name: "nil", in: nil, want: []string{}},
		{name: "terminator only", in: []byte{0}, want: []string{}},
		{name: "double terminator", in: []byte{0, 0}, want: []string{}},
		{name: "one key", in: []byte("uuid\x00\x00"), want: []string{"uuid"}},
		{name: "several keys", in: []byte("adapterType\x00geometry.heads\x00uuid\x00\x00"), want: []string{"adapterType", "geometry.heads", "uuid"}},
		{name: "missing final terminator", in: []byte("a\x00b"), want: []string{"a", "b"}},
		{name: "garbage after terminator", in: []byte("a\x00\x00zzz"), want: []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitNulList(tt.in)
			require.NotNil(t, got)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCutNul(t *testing.T) {
	require.Equal(t, "lsilogic", CutNul([]byte("lsilogic\x00\x00\x00")))
	require.Equal(t, "abc", CutNul([]byte("abc")))
	require.Equal(t, "", CutNul(nil))
}
