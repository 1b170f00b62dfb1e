package ftlerr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ftl-lang/ftl/ftlerr"
)

func TestUnboundWrapsSentinelAndName(t *testing.T) {
	err := ftlerr.Unbound("foo", "")
	assert.ErrorIs(t, err, ftlerr.ErrUnbound)
	assert.Contains(t, err.Error(), "foo")
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestUnboundWithSuggestion(t *testing.T) {
	err := ftlerr.Unbound("foo", "bar")
	assert.ErrorIs(t, err, ftlerr.ErrUnbound)
	assert.Contains(t, err.Error(), "did you mean \"bar\"")
}

func TestArityWrapsSentinel(t *testing.T) {
	err := ftlerr.Arity("inc", 1, 2)
	assert.ErrorIs(t, err, ftlerr.ErrArity)
	assert.Contains(t, err.Error(), "inc")
	assert.Contains(t, err.Error(), "1")
	assert.Contains(t, err.Error(), "2")
}

func TestTypeWrapsSentinel(t *testing.T) {
	err := ftlerr.Type("add", "int", "string")
	assert.ErrorIs(t, err, ftlerr.ErrType)
	assert.Contains(t, err.Error(), "int")
	assert.Contains(t, err.Error(), "string")
}

func TestAtWrapsWithSourcePositionAndUnwraps(t *testing.T) {
	inner := ftlerr.Unbound("x", "")
	err := ftlerr.At("script.ftl", 12, inner)
	assert.Contains(t, err.Error(), "script.ftl:12:")
	assert.ErrorIs(t, err, ftlerr.ErrUnbound)

	var pe *ftlerr.Positioned
	require := assert.New(t)
	require.True(errors.As(err, &pe))
	require.Equal("script.ftl", pe.Source)
	require.Equal(12, pe.Line)
}

func TestAtPassesThroughNil(t *testing.T) {
	assert.Nil(t, ftlerr.At("script.ftl", 1, nil))
}
