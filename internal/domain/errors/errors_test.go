package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepoNotFoundError(t *testing.T) {
	err := NewRepoNotFoundError("tomi/matechat")

	assert.Contains(t, err.Error(), "tomi/matechat")

	var target *RepoNotFoundError
	require.ErrorAs(t, error(err), &target)
	assert.Equal(t, "tomi/matechat", target.Repo)
}

func TestAuthError_Unwrap(t *testing.T) {
	cause := errors.New("401 Bad credentials")
	err := NewAuthError("tomi/matechat", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "tomi/matechat")
}

func TestAuthError_WithoutCause(t *testing.T) {
	err := NewAuthError("tomi/matechat", nil)

	assert.NotEmpty(t, err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestRateLimitedError_Unwrap(t *testing.T) {
	cause := errors.New("403 rate limit exceeded")
	err := NewRateLimitedError(cause)

	assert.ErrorIs(t, err, cause)
}

func TestCompletionError(t *testing.T) {
	cause := errors.New("deadline exceeded")
	err := NewCompletionError("gemini", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "gemini")
}

func TestInvalidInputError(t *testing.T) {
	err := NewInvalidInputError()

	var target *InvalidInputError
	assert.ErrorAs(t, error(err), &target)
}
