package envx_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/envx"
)

func TestMissingError(t *testing.T) {
	t.Parallel()

	err := envx.MissingError{Key: "DATABASE_URL"}

	assert.Equal(t, `environment variable "DATABASE_URL" is not set`, err.Error())
	assert.ErrorIs(t, err, envx.ErrMissing)
	assert.NotErrorIs(t, err, envx.ErrParse)
}

func TestParseError(t *testing.T) {
	t.Parallel()

	err := envx.ParseError{Key: "PORT", Value: "eighty"}

	assert.Equal(t, `failed to parse environment variable "PORT": eighty`, err.Error())
	assert.ErrorIs(t, err, envx.ErrParse)
	assert.NotErrorIs(t, err, envx.ErrMissing)
}

func TestErrorsSurviveWrapping(t *testing.T) {
	t.Parallel()

	env := envx.New(envx.Map{"PORT": "eighty"})

	_, err := env.Int("PORT")
	require.Error(t, err)

	wrapped := fmt.Errorf("loading server config: %w", err)
	assert.ErrorIs(t, wrapped, envx.ErrParse)

	var parseErr envx.ParseError
	require.True(t, errors.As(wrapped, &parseErr))
	assert.Equal(t, "PORT", parseErr.Key)
	assert.Equal(t, "eighty", parseErr.Value)
}
