package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"

	domainErrors "github.com/uniliner/SecurityParser/internal/errors"
)

func TestNewGeminiInvoker(t *testing.T) {
	t.Run("should reject an empty API key", func(t *testing.T) {
		_, err := NewGeminiInvoker(context.Background(), "", "gemini-1.5-flash", "instruction")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainErrors.ErrAPIKeyMissing))
	})
}

func TestFormatResponse(t *testing.T) {
	t.Run("should join candidate parts", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []genai.Part{genai.Text("Positive\n"), genai.Text("Adds a filter.")}}},
			},
		}

		assert.Equal(t, "Positive\nAdds a filter.", formatResponse(resp))
	})

	t.Run("should tolerate empty responses", func(t *testing.T) {
		assert.Equal(t, "", formatResponse(nil))
		assert.Equal(t, "", formatResponse(&genai.GenerateContentResponse{}))
		assert.Equal(t, "", formatResponse(&genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{Content: nil}},
		}))
	})
}

func TestMapGeminiError(t *testing.T) {
	t.Run("should map quota exhaustion", func(t *testing.T) {
		err := mapGeminiError(&googleapi.Error{Code: http.StatusTooManyRequests})
		assert.True(t, errors.Is(err, domainErrors.ErrGeminiQuotaExceeded))
	})

	t.Run("should map authentication failures", func(t *testing.T) {
		err := mapGeminiError(&googleapi.Error{Code: http.StatusUnauthorized})
		assert.True(t, errors.Is(err, domainErrors.ErrGeminiAPIKeyInvalid))

		err = mapGeminiError(&googleapi.Error{Code: http.StatusForbidden})
		assert.True(t, errors.Is(err, domainErrors.ErrGeminiAPIKeyInvalid))
	})

	t.Run("should map wrapped API errors", func(t *testing.T) {
		wrapped := fmt.Errorf("transport: %w", &googleapi.Error{Code: http.StatusTooManyRequests})
		err := mapGeminiError(wrapped)
		assert.True(t, errors.Is(err, domainErrors.ErrGeminiQuotaExceeded))
	})

	t.Run("should pass other errors through wrapped", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := mapGeminiError(cause)

		assert.True(t, errors.Is(err, cause))
		assert.False(t, errors.Is(err, domainErrors.ErrGeminiQuotaExceeded))
	})
}
