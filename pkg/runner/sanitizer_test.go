package runner_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsmlab/automata/pkg/runner"
)

func TestSanitizeInput_PassThrough(t *testing.T) {
	out, err := runner.SanitizeInput("a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", out)
}

func TestSanitizeInput_StripsControlCharacters(t *testing.T) {
	out, err := runner.SanitizeInput("a\x1b[31mb\tc\nd")
	require.NoError(t, err)
	assert.Equal(t, "a[31mbcd", out)
}

func TestSanitizeInput_RejectsOversized(t *testing.T) {
	big := strings.Repeat("a", runner.DefaultMaxInputSize+1)
	_, err := runner.SanitizeInput(big)
	assert.ErrorIs(t, err, runner.ErrInputTooLarge)
}

func TestSanitizeInput_SizeOverrideFromEnv(t *testing.T) {
	t.Setenv(runner.EnvMaxInputSize, "8")

	_, err := runner.SanitizeInput("123456789")
	assert.ErrorIs(t, err, runner.ErrInputTooLarge)

	out, err := runner.SanitizeInput("12345678")
	require.NoError(t, err)
	assert.Equal(t, "12345678", out)
}

func TestSanitizeInput_RejectsInvalidUTF8(t *testing.T) {
	_, err := runner.SanitizeInput("abc\xff\xfe")
	assert.ErrorIs(t, err, runner.ErrInvalidUTF8)
}
