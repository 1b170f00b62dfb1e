package json_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftl-lang/ftl/dir"
	"github.com/ftl-lang/ftl/modules/json"
	"github.com/ftl-lang/ftl/printf"
	"github.com/ftl-lang/ftl/value"
)

func TestEncodeScalars(t *testing.T) {
	cases := []struct {
		v    value.Value
		want any
	}{
		{value.TheNull, nil},
		{value.NewInt(nil, 5), int64(5)},
		{value.NewReal(nil, 1.5), 1.5},
		{value.NewFromString(nil, "hi"), "hi"},
	}
	for _, c := range cases {
		got, err := json.Encode(c.v)
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
	}
}

func TestEncodeVecDirBecomesArray(t *testing.T) {
	v := dir.NewVecDir(nil)
	v.Push(value.NewInt(nil, 1))
	v.Push(value.NewInt(nil, 2))

	got, err := json.Encode(v)
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), int64(2)}, got)
}

func TestEncodeIDDirBecomesObject(t *testing.T) {
	d := dir.NewIDDir(nil)
	d.Add("a", value.NewInt(nil, 1))

	got, err := json.Encode(d)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": int64(1)}, got)
}

func TestEncodeRejectsClosure(t *testing.T) {
	_, err := json.Encode(value.NewClosure(nil, nil, nil, nil, false))
	assert.Error(t, err)
}

func TestCompactAndDecodeRoundTrip(t *testing.T) {
	d := dir.NewIDDir(nil)
	d.Add("a", value.NewInt(nil, 1))
	d.Add("b", value.NewFromString(nil, "x"))

	text, err := json.Compact(d)
	require.NoError(t, err)

	back, err := json.Decode(nil, []byte(text))
	require.NoError(t, err)
	got, ok := back.(value.Directory)
	require.True(t, ok)
	assert.Equal(t, int64(1), got.Get("a").(*value.Int).Number())
	assert.Equal(t, "x", got.Get("b").(*value.Str).String(nil))
}

func TestPrettyIsIndented(t *testing.T) {
	d := dir.NewIDDir(nil)
	d.Add("a", value.NewInt(nil, 1))

	text, err := json.Pretty(d)
	require.NoError(t, err)
	assert.Contains(t, text, "\n")
	assert.Contains(t, text, "  ")
}

func TestDecodeArrayBecomesVecDir(t *testing.T) {
	v, err := json.Decode(nil, []byte(`[1,2,3]`))
	require.NoError(t, err)
	vd, ok := v.(*dir.VecDir)
	require.True(t, ok, "expected *dir.VecDir, got %T", v)
	assert.Equal(t, 3, vd.Count())
}

func TestPrintfJAndJVerbsAreRegistered(t *testing.T) {
	d := dir.NewIDDir(nil)
	d.Add("a", value.NewInt(nil, 1))

	out, err := printf.Sprintf(nil, "%j", []value.Value{d})
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, out)
}
