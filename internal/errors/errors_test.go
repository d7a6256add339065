package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError(t *testing.T) {
	t.Run("should render type and message", func(t *testing.T) {
		err := NewAppError(TypeVCS, "something broke", nil)
		assert.Equal(t, "VCS: something broke", err.Error())
	})

	t.Run("should render the underlying error", func(t *testing.T) {
		underlying := errors.New("boom")
		err := NewAppError(TypeAI, "model call failed", underlying)

		assert.Equal(t, "AI: model call failed (boom)", err.Error())
		assert.Equal(t, underlying, errors.Unwrap(err))
	})

	t.Run("should match sentinels after WithContext", func(t *testing.T) {
		err := ErrPRNotFound.WithContext("pr", "acme/shop#42")

		assert.True(t, errors.Is(err, ErrPRNotFound))
		assert.False(t, errors.Is(err, ErrRepositoryNotFound))
	})

	t.Run("should match sentinels through wrapping", func(t *testing.T) {
		err := fmt.Errorf("analyzing: %w", ErrUnparseableVerdict.WithContext("labels_found", 2))

		assert.True(t, errors.Is(err, ErrUnparseableVerdict))
	})

	t.Run("should not mutate the original on WithContext", func(t *testing.T) {
		original := ErrGitHubRateLimit
		modified := original.WithContext("retry_after", "30")

		assert.NotContains(t, original.Context, "retry_after")
		assert.Equal(t, "30", modified.Context["retry_after"])
	})

	t.Run("should carry the suggestion through copies", func(t *testing.T) {
		err := ErrAPIKeyMissing.WithContext("operation", "analyze")
		require.NotEmpty(t, err.Suggestion)
		assert.Equal(t, ErrAPIKeyMissing.Suggestion, err.Suggestion)
	})

	t.Run("should replace the underlying error on WithError", func(t *testing.T) {
		underlying := errors.New("401 from API")
		err := ErrGitHubTokenInvalid.WithError(underlying)

		assert.True(t, errors.Is(err, ErrGitHubTokenInvalid))
		assert.Equal(t, underlying, errors.Unwrap(err))
	})
}
