package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/uniliner/SecurityParser/internal/errors"
	"github.com/uniliner/SecurityParser/internal/models"
)

func securityPR(number int) *models.PullRequest {
	return &models.PullRequest{
		Title:  "Lock down admin endpoints",
		Number: number,
		Commits: []models.Commit{
			{
				Message: "add role check",
				Files: []models.FileChange{
					{
						Name:  "src/AdminController.java",
						Patch: "--- a/src/AdminController.java\n+++ b/src/AdminController.java\n@@ -1 +1,2 @@\n a\n+@Secured(\"ROLE_ADMIN\")\n",
					},
				},
			},
		},
	}
}

func TestAnalysisService_AnalyzeRef(t *testing.T) {
	ref := models.PRRef{Owner: "acme", Repo: "shop", Number: 42}

	t.Run("should classify a fetched PR", func(t *testing.T) {
		fetcher := &MockPRFetcher{}
		invoker := &MockModelInvoker{}
		service := NewAnalysisService(fetcher, invoker)

		fetcher.On("FetchPR", mock.Anything, ref).Return(securityPR(42), nil).Once()
		invoker.On("Invoke", mock.Anything, mock.Anything).
			Return("Positive\nAdds @Secured to AdminController.java.", nil).Once()

		result := service.AnalyzeRef(context.Background(), ref)

		require.NoError(t, result.Err)
		assert.Equal(t, models.LabelPositive, result.Verdict.Label)
		assert.Contains(t, result.Verdict.FileRefs, "AdminController.java")
		fetcher.AssertExpectations(t)
		invoker.AssertExpectations(t)
	})

	t.Run("should carry the fetch error in the result", func(t *testing.T) {
		fetcher := &MockPRFetcher{}
		service := NewAnalysisService(fetcher, &MockModelInvoker{})

		fetcher.On("FetchPR", mock.Anything, ref).
			Return(nil, domainErrors.ErrPRNotFound).Once()

		result := service.AnalyzeRef(context.Background(), ref)

		require.Error(t, result.Err)
		assert.True(t, errors.Is(result.Err, domainErrors.ErrPRNotFound))
	})

	t.Run("should record an unparseable verdict without retrying", func(t *testing.T) {
		fetcher := &MockPRFetcher{}
		invoker := &MockModelInvoker{}
		service := NewAnalysisService(fetcher, invoker)

		fetcher.On("FetchPR", mock.Anything, ref).Return(securityPR(42), nil).Once()
		invoker.On("Invoke", mock.Anything, mock.Anything).
			Return("I am not sure about this one.", nil).Once()

		result := service.AnalyzeRef(context.Background(), ref)

		require.Error(t, result.Err)
		assert.True(t, errors.Is(result.Err, domainErrors.ErrUnparseableVerdict))
		assert.Equal(t, models.LabelUnparseable, result.Verdict.Label)
		invoker.AssertNumberOfCalls(t, "Invoke", 1)
	})

	t.Run("should count prompt tokens when the provider can price them", func(t *testing.T) {
		fetcher := &MockPRFetcher{}
		invoker := &MockCostAwareInvoker{}
		service := NewAnalysisService(fetcher, invoker)

		fetcher.On("FetchPR", mock.Anything, ref).Return(securityPR(42), nil).Once()
		invoker.On("CountTokens", mock.Anything, mock.Anything).Return(1280, nil).Once()
		invoker.On("GetProviderName").Return("gemini").Once()
		invoker.On("GetModelName").Return("gemini-1.5-flash").Once()
		invoker.On("Invoke", mock.Anything, mock.Anything).
			Return("Positive\nAdds @Secured to AdminController.java.", nil).Once()

		result := service.AnalyzeRef(context.Background(), ref)

		require.NoError(t, result.Err)
		invoker.AssertExpectations(t)
	})

	t.Run("should still analyze when token counting fails", func(t *testing.T) {
		fetcher := &MockPRFetcher{}
		invoker := &MockCostAwareInvoker{}
		service := NewAnalysisService(fetcher, invoker)

		fetcher.On("FetchPR", mock.Anything, ref).Return(securityPR(42), nil).Once()
		invoker.On("CountTokens", mock.Anything, mock.Anything).Return(0, assert.AnError).Once()
		invoker.On("Invoke", mock.Anything, mock.Anything).
			Return("Negative\nDependency bump in pom.xml.", nil).Once()

		result := service.AnalyzeRef(context.Background(), ref)

		require.NoError(t, result.Err)
		assert.Equal(t, models.LabelNegative, result.Verdict.Label)
	})

	t.Run("should fail cleanly when no model is configured", func(t *testing.T) {
		fetcher := &MockPRFetcher{}
		service := NewAnalysisService(fetcher, nil)

		fetcher.On("FetchPR", mock.Anything, ref).Return(securityPR(42), nil).Once()

		result := service.AnalyzeRef(context.Background(), ref)

		require.Error(t, result.Err)
		assert.True(t, errors.Is(result.Err, domainErrors.ErrAPIKeyMissing))
	})
}

func TestAnalysisService_AnalyzeRepo(t *testing.T) {
	t.Run("should isolate one PR's failure from the rest of the batch", func(t *testing.T) {
		fetcher := &MockPRFetcher{}
		invoker := &MockModelInvoker{}
		service := NewAnalysisService(fetcher, invoker)

		good := securityPR(1)
		bad := securityPR(2)
		alsoGood := securityPR(3)

		fetcher.On("FetchPRs", mock.Anything, "acme", "shop").
			Return([]*models.PullRequest{good, bad, alsoGood}, nil).Once()

		invoker.On("Invoke", mock.Anything, mock.Anything).
			Return("Positive\nSecurity change in AdminController.java.", nil).Once()
		invoker.On("Invoke", mock.Anything, mock.Anything).
			Return("", domainErrors.ErrEmptyResponse).Once()
		invoker.On("Invoke", mock.Anything, mock.Anything).
			Return("Negative\nPlain refactor of pom.xml.", nil).Once()

		results, err := service.AnalyzeRepo(context.Background(), "acme", "shop", 0)

		require.NoError(t, err)
		require.Len(t, results, 3)

		assert.NoError(t, results[0].Err)
		assert.Equal(t, models.LabelPositive, results[0].Verdict.Label)

		require.Error(t, results[1].Err)
		assert.True(t, errors.Is(results[1].Err, domainErrors.ErrEmptyResponse))

		assert.NoError(t, results[2].Err)
		assert.Equal(t, models.LabelNegative, results[2].Verdict.Label)
	})

	t.Run("should honor the PR limit", func(t *testing.T) {
		fetcher := &MockPRFetcher{}
		invoker := &MockModelInvoker{}
		service := NewAnalysisService(fetcher, invoker)

		fetcher.On("FetchPRs", mock.Anything, "acme", "shop").
			Return([]*models.PullRequest{securityPR(1), securityPR(2), securityPR(3)}, nil).Once()
		invoker.On("Invoke", mock.Anything, mock.Anything).
			Return("Neutral\nTouches SecurityConfig.java without behavior change.", nil)

		results, err := service.AnalyzeRepo(context.Background(), "acme", "shop", 2)

		require.NoError(t, err)
		assert.Len(t, results, 2)
		invoker.AssertNumberOfCalls(t, "Invoke", 2)
	})

	t.Run("should surface a listing failure", func(t *testing.T) {
		fetcher := &MockPRFetcher{}
		service := NewAnalysisService(fetcher, &MockModelInvoker{})

		fetcher.On("FetchPRs", mock.Anything, "acme", "gone").
			Return(nil, domainErrors.ErrRepositoryNotFound).Once()

		_, err := service.AnalyzeRepo(context.Background(), "acme", "gone", 0)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainErrors.ErrRepositoryNotFound))
	})
}
