package printf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftl-lang/ftl/printf"
	"github.com/ftl-lang/ftl/value"
)

func TestSprintfDefaultSVerb(t *testing.T) {
	out, err := printf.Sprintf(nil, "x=%s!", []value.Value{value.NewInt(nil, 7)})
	require.NoError(t, err)
	assert.Equal(t, "x=7!", out)
}

func TestSprintfLiteralPercent(t *testing.T) {
	out, err := printf.Sprintf(nil, "100%%", nil)
	require.NoError(t, err)
	assert.Equal(t, "100%", out)
}

func TestSprintfTrailingPercentIsError(t *testing.T) {
	_, err := printf.Sprintf(nil, "abc%", nil)
	assert.Error(t, err)
}

func TestSprintfUnknownVerbIsError(t *testing.T) {
	_, err := printf.Sprintf(nil, "%q", []value.Value{value.NewInt(nil, 1)})
	assert.Error(t, err)
}

func TestSprintfNotEnoughArgumentsIsError(t *testing.T) {
	_, err := printf.Sprintf(nil, "%s %s", []value.Value{value.NewInt(nil, 1)})
	assert.Error(t, err)
}

func TestSprintfTypeMismatchIsError(t *testing.T) {
	printf.Register(printf.Verb{
		Letter: 'Q',
		Help:   "test-only int verb",
		Type:   value.TInt,
		Format: func(root, v value.Value) (string, error) { return v.String(root), nil },
	})

	_, err := printf.Sprintf(nil, "%Q", []value.Value{value.NewFromString(nil, "not an int")})
	assert.Error(t, err)

	out, err := printf.Sprintf(nil, "%Q", []value.Value{value.NewInt(nil, 5)})
	require.NoError(t, err)
	assert.Equal(t, "5", out)
}

func TestRegisterDuplicateLetterPanics(t *testing.T) {
	assert.Panics(t, func() {
		printf.Register(printf.Verb{Letter: 's', Format: func(root, v value.Value) (string, error) { return "", nil }})
	})
}

func TestLookupFindsRegisteredVerb(t *testing.T) {
	v, ok := printf.Lookup('s')
	require.True(t, ok)
	assert.Equal(t, byte('s'), v.Letter)
}
