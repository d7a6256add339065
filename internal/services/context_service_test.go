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
	"github.com/uniliner/SecurityParser/internal/scan"
)

func TestContextService_PRContext(t *testing.T) {
	ref := models.PRRef{Owner: "acme", Repo: "shop", Number: 7}

	t.Run("should keep only files above the relevance threshold, best first", func(t *testing.T) {
		lister := &MockChangedFilesLister{}
		service := NewContextService(lister)

		lister.On("ListChangedFiles", mock.Anything, ref).
			Return([]string{
				"docs/README.md",
				"src/security/JwtTokenProvider.java",
				"src/main/resources/application.yml",
			}, nil).Once()

		result, err := service.PRContext(context.Background(), ref, 0)

		require.NoError(t, err)
		assert.Len(t, result.ChangedFiles, 3)

		require.NotEmpty(t, result.SecurityContext)
		for _, f := range result.SecurityContext {
			assert.Greater(t, f.SecurityScore, scan.ContextThreshold)
		}
		for i := 1; i < len(result.SecurityContext); i++ {
			assert.GreaterOrEqual(t,
				result.SecurityContext[i-1].SecurityScore,
				result.SecurityContext[i].SecurityScore)
		}
		assert.Equal(t, "src/security/JwtTokenProvider.java", result.SecurityContext[0].Path)
	})

	t.Run("should cap the context at maxFiles", func(t *testing.T) {
		lister := &MockChangedFilesLister{}
		service := NewContextService(lister)

		lister.On("ListChangedFiles", mock.Anything, ref).
			Return([]string{
				"src/security/AuthFilter.java",
				"src/security/TokenService.java",
				"src/security/RoleGuard.java",
			}, nil).Once()

		result, err := service.PRContext(context.Background(), ref, 2)

		require.NoError(t, err)
		assert.Len(t, result.SecurityContext, 2)
		assert.Len(t, result.ChangedFiles, 3)
	})

	t.Run("should return an empty context for irrelevant changes", func(t *testing.T) {
		lister := &MockChangedFilesLister{}
		service := NewContextService(lister)

		lister.On("ListChangedFiles", mock.Anything, ref).
			Return([]string{"docs/README.md", "frontend/Button.tsx"}, nil).Once()

		result, err := service.PRContext(context.Background(), ref, 3)

		require.NoError(t, err)
		assert.Empty(t, result.SecurityContext)
	})

	t.Run("should surface listing failures", func(t *testing.T) {
		lister := &MockChangedFilesLister{}
		service := NewContextService(lister)

		lister.On("ListChangedFiles", mock.Anything, ref).
			Return(nil, domainErrors.ErrPRNotFound).Once()

		_, err := service.PRContext(context.Background(), ref, 3)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainErrors.ErrPRNotFound))
	})
}
