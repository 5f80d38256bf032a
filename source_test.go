package envx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/envx"
)

func TestSourceFunc(t *testing.T) {
	t.Parallel()

	src := envx.SourceFunc(func(key string) (string, bool) {
		if key == "ONLY" {
			return "value", true
		}
		return "", false
	})

	v, ok := src.Lookup("ONLY")
	assert.True(t, ok)
	assert.Equal(t, "value", v)

	_, ok = src.Lookup("OTHER")
	assert.False(t, ok)
}

func TestMapSource(t *testing.T) {
	t.Parallel()

	src := envx.Map{"KEY": "", "OTHER": "v"}

	// Present with empty value is distinct from absent.
	v, ok := src.Lookup("KEY")
	assert.True(t, ok)
	assert.Equal(t, "", v)

	_, ok = src.Lookup("ABSENT")
	assert.False(t, ok)
}

func TestOSSourceReadsLiveEnvironment(t *testing.T) {
	src := envx.OS()

	t.Setenv("ENVX_TEST_LIVE", "first")
	v, ok := src.Lookup("ENVX_TEST_LIVE")
	require.True(t, ok)
	assert.Equal(t, "first", v)

	// No caching: a changed store is visible on the next Lookup.
	t.Setenv("ENVX_TEST_LIVE", "second")
	v, ok = src.Lookup("ENVX_TEST_LIVE")
	require.True(t, ok)
	assert.Equal(t, "second", v)
}

func TestProcessEnvFunctions(t *testing.T) {
	t.Setenv("ENVX_TEST_GLOBAL", "set")

	v, err := envx.Required("ENVX_TEST_GLOBAL")
	require.NoError(t, err)
	assert.Equal(t, "set", v)

	assert.Equal(t, "set", envx.OrDefault("ENVX_TEST_GLOBAL", "fallback"))
	assert.Equal(t, "fallback", envx.OrDefault("ENVX_TEST_GLOBAL_ABSENT", "fallback"))

	t.Setenv("ENVX_TEST_GLOBAL_FLAG", "on")
	assert.True(t, envx.Bool("ENVX_TEST_GLOBAL_FLAG", false))

	t.Setenv("ENVX_TEST_GLOBAL_LIST", "x, y ,z,")
	list, err := envx.List("ENVX_TEST_GLOBAL_LIST")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z", ""}, list)

	_, err = envx.List("ENVX_TEST_GLOBAL_LIST_ABSENT")
	assert.ErrorIs(t, err, envx.ErrMissing)
}
