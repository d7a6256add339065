package ports

import (
	"context"

	"github.com/uniliner/SecurityParser/internal/models"
)

// PRSearcher finds candidate pull requests via the code host's search API.
type PRSearcher interface {
	// SearchPRs returns matching PR references in the code host's own
	// order. An empty result is valid, never an error.
	SearchPRs(ctx context.Context, query string, limit int) ([]models.PRRef, error)
}

// PRFetcher retrieves full pull request content.
type PRFetcher interface {
	// FetchPR returns the PR with commits and normalized file patches.
	// Returns ErrPRNotFound when the PR or a referenced commit vanished.
	FetchPR(ctx context.Context, ref models.PRRef) (*models.PullRequest, error)

	// FetchPRs lists a repository's open pull requests with full content.
	FetchPRs(ctx context.Context, owner, repo string) ([]*models.PullRequest, error)
}

// TreeLister lists a repository's blob paths.
type TreeLister interface {
	ListTree(ctx context.Context, owner, repo, ref string) ([]models.RepoFile, error)
}

// ChangedFilesLister returns the file paths touched by a pull request.
type ChangedFilesLister interface {
	ListChangedFiles(ctx context.Context, ref models.PRRef) ([]string, error)
}
