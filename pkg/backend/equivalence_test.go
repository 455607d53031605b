package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tagpack/tagpack/pkg/codec"
	"github.com/tagpack/tagpack/pkg/value"
)

// equivalenceCorpus is deliberately heavy on the cases a textual
// bridge would corrupt: binary payloads, the int/float distinction,
// and non-text map keys.
func equivalenceCorpus() []struct {
	name string
	in   value.Value
} {
	return []struct {
		name string
		in   value.Value
	}{
		{name: "nil", in: value.Nil()},
		{name: "bool", in: value.Bool(true)},
		{name: "int", in: value.Int(4096)},
		{name: "float", in: value.Float(2.75)},
		{name: "text", in: value.Text("plain text")},
		{name: "binary payload", in: value.Bytes([]byte{0x00, 0xFF, 0x7F, 0x80, 0x0A})},
		{name: "int float distinction", in: value.List(value.Int(1), value.Float(1.5))},
		{name: "mixed type map", in: value.Map(
			value.Pair{Key: value.Text("blob"), Value: value.Bytes([]byte{1, 2, 3})},
			value.Pair{Key: value.Int(7), Value: value.Text("int-keyed")},
			value.Pair{Key: value.Bytes([]byte{0xCC}), Value: value.Nil()},
		)},
		{name: "nested", in: value.List(
			value.Map(value.Pair{Key: value.Text("deep"), Value: value.List(value.Bytes([]byte{9}))}),
		)},
	}
}

func TestBackendEquivalence(t *testing.T) {
	svc := NewInProcService(codec.Options{})
	ref := &Reference{}
	acc := NewAccelerated(svc)

	for _, tc := range equivalenceCorpus() {
		t.Run(tc.name, func(t *testing.T) {
			want, err := ref.Encode(tc.in)
			require.NoError(t, err)

			got, err := acc.Encode(tc.in)
			require.NoError(t, err)
			assert.Equal(t, want, got, "accelerated and reference encodings must be byte-identical")

			// Cross-decode both directions.
			fromAcc, err := ref.Decode(got)
			require.NoError(t, err)
			assert.True(t, fromAcc.Equal(tc.in), "reference must decode accelerated output")

			fromRef, err := acc.Decode(want)
			require.NoError(t, err)
			assert.True(t, fromRef.Equal(tc.in), "accelerated must decode reference output")

			assert.Zero(t, svc.Live(), "service handles must be released after every call")
		})
	}
}

func TestAccelerated_ReleasesHandlesOnError(t *testing.T) {
	svc := NewInProcService(codec.Options{})
	acc := NewAccelerated(svc)

	_, err := acc.Decode([]byte{0xC1})
	require.ErrorIs(t, err, codec.ErrUnknownTag)
	assert.Zero(t, svc.Live(), "input handle must be released when the operation fails")

	_, err = acc.Decode([]byte{0xD2, 0x00})
	require.ErrorIs(t, err, codec.ErrTruncatedInput)
	assert.Zero(t, svc.Live())
}

func TestAccelerated_CanonicalizesOptions(t *testing.T) {
	// A service configured for the default wire format must agree with
	// the default reference backend even when fed wide host encodings.
	svc := NewInProcService(codec.Options{})
	acc := NewAcceleratedOptions(svc, codec.Options{WideIntegers: true})
	ref := &Reference{}

	in := value.Int(300)
	want, err := ref.Encode(in)
	require.NoError(t, err)
	got, err := acc.Encode(in)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
