package cbor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftl-lang/ftl/dir"
	"github.com/ftl-lang/ftl/modules/cbor"
	"github.com/ftl-lang/ftl/value"
)

func TestDumpRestoreScalarRoundTrip(t *testing.T) {
	cases := []value.Value{
		value.TheNull,
		value.NewInt(nil, -7),
		value.NewReal(nil, 2.5),
		value.NewFromString(nil, "hi"),
	}
	for _, v := range cases {
		b, err := cbor.Dump(v)
		require.NoError(t, err)
		got, err := cbor.Restore(nil, b)
		require.NoError(t, err)
		assert.True(t, value.Equal(v, got), "round-trip of %v produced %v", v, got)
	}
}

func TestDumpRestoreDirectoryRoundTrip(t *testing.T) {
	d := dir.NewIDDir(nil)
	d.Add("a", value.NewInt(nil, 1))
	d.Add("b", value.NewFromString(nil, "x"))

	b, err := cbor.Dump(d)
	require.NoError(t, err)

	got, err := cbor.Restore(nil, b)
	require.NoError(t, err)
	gd, ok := got.(value.Directory)
	require.True(t, ok, "expected a directory, got %T", got)
	assert.Equal(t, int64(1), gd.Get("a").(*value.Int).Number())
	assert.Equal(t, "x", gd.Get("b").(*value.Str).String(nil))
}

func TestDumpRestoreVecDirRoundTrip(t *testing.T) {
	v := dir.NewVecDir(nil)
	v.Push(value.NewInt(nil, 10))
	v.Push(value.NewInt(nil, 20))

	b, err := cbor.Dump(v)
	require.NoError(t, err)

	got, err := cbor.Restore(nil, b)
	require.NoError(t, err)
	vd, ok := got.(*dir.VecDir)
	require.True(t, ok, "expected *dir.VecDir, got %T", got)
	assert.Equal(t, 2, vd.Count())
}

func TestDumpRejectsUnencodableValue(t *testing.T) {
	_, err := cbor.Dump(value.NewClosure(nil, nil, nil, nil, false))
	assert.Error(t, err)
}

func TestRestoreRejectsMalformedBytes(t *testing.T) {
	_, err := cbor.Restore(nil, []byte{0xff, 0xff, 0xff})
	assert.Error(t, err)
}
