package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/uniliner/SecurityParser/internal/cache"
	"github.com/uniliner/SecurityParser/internal/diff"
	domainErrors "github.com/uniliner/SecurityParser/internal/errors"
	"github.com/uniliner/SecurityParser/internal/logger"
	"github.com/uniliner/SecurityParser/internal/models"
	"github.com/uniliner/SecurityParser/internal/ports"
	"github.com/uniliner/SecurityParser/internal/regex"
)

var (
	_ ports.PRSearcher         = (*GitHubClient)(nil)
	_ ports.PRFetcher          = (*GitHubClient)(nil)
	_ ports.TreeLister         = (*GitHubClient)(nil)
	_ ports.ChangedFilesLister = (*GitHubClient)(nil)
)

type SearchService interface {
	Issues(ctx context.Context, query string, opts *github.SearchOptions) (*github.IssuesSearchResult, *github.Response, error)
}

type PullRequestsService interface {
	Get(ctx context.Context, owner, repo string, number int) (*github.PullRequest, *github.Response, error)
	List(ctx context.Context, owner, repo string, opts *github.PullRequestListOptions) ([]*github.PullRequest, *github.Response, error)
	ListCommits(ctx context.Context, owner, repo string, number int, opts *github.ListOptions) ([]*github.RepositoryCommit, *github.Response, error)
	ListFiles(ctx context.Context, owner, repo string, number int, opts *github.ListOptions) ([]*github.CommitFile, *github.Response, error)
}

type RepositoriesService interface {
	GetCommit(ctx context.Context, owner, repo, sha string, opts *github.ListOptions) (*github.RepositoryCommit, *github.Response, error)
}

type GitService interface {
	GetTree(ctx context.Context, owner, repo, sha string, recursive bool) (*github.Tree, *github.Response, error)
}

// SecurityQueries are the built-in search queries for Spring security PRs.
// The " is:pull-request" qualifier is appended by SearchPRs.
var SecurityQueries = []string{
	`language:java ("@RestController" OR "@Controller") (security OR authentication OR authorization OR "@Secured" OR "@PreAuthorize" OR "@RolesAllowed")`,
	`language:java (SecurityFilterChain OR WebSecurityConfigurerAdapter OR "configure(HttpSecurity" OR "@EnableWebSecurity")`,
	`language:java (@RequestMapping OR @GetMapping OR @PostMapping) (hasRole OR hasAuthority OR isAuthenticated)`,
}

// rateLimitFloor is the remaining-call count below which the client waits
// for the reset before issuing the next search page.
const rateLimitFloor = 10

type GitHubClient struct {
	searchService SearchService
	prService     PullRequestsService
	repoService   RepositoriesService
	gitService    GitService
	cache         *cache.Cache

	// sleep is swapped out by tests
	sleep func(ctx context.Context, d time.Duration) error
}

func NewGitHubClient(token string, prCache *cache.Cache) *GitHubClient {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	return &GitHubClient{
		searchService: client.Search,
		prService:     client.PullRequests,
		repoService:   client.Repositories,
		gitService:    client.Git,
		cache:         prCache,
		sleep:         sleepCtx,
	}
}

func NewGitHubClientWithServices(
	searchService SearchService,
	prService PullRequestsService,
	repoService RepositoriesService,
	gitService GitService,
	prCache *cache.Cache,
) *GitHubClient {
	return &GitHubClient{
		searchService: searchService,
		prService:     prService,
		repoService:   repoService,
		gitService:    gitService,
		cache:         prCache,
		sleep:         sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// SearchPRs runs a code host search for pull requests. Results come back in
// the host's own order, untouched. An empty result is valid.
func (ghc *GitHubClient) SearchPRs(ctx context.Context, query string, limit int) ([]models.PRRef, error) {
	log := logger.FromContext(ctx)

	opts := &github.SearchOptions{
		ListOptions: github.ListOptions{PerPage: 100, Page: 1},
	}

	var refs []models.PRRef
	for {
		result, resp, err := ghc.searchService.Issues(ctx, query+" is:pull-request", opts)
		if err != nil {
			if resp != nil {
				if resp.StatusCode == http.StatusUnauthorized {
					return nil, domainErrors.ErrGitHubTokenInvalid.WithContext("operation", "search PRs")
				}
				if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests {
					return nil, domainErrors.ErrGitHubRateLimit.
						WithContext("operation", "search PRs").
						WithContext("retry_after", resp.Header.Get("Retry-After"))
				}
			}
			return nil, fmt.Errorf("failed to search pull requests: %w", err)
		}

		for _, issue := range result.Issues {
			ref, ok := refFromIssue(issue)
			if !ok {
				log.Warn("skipping search result without repository info",
					"issue_number", issue.GetNumber())
				continue
			}
			refs = append(refs, ref)
			if limit > 0 && len(refs) >= limit {
				return refs, nil
			}
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage

		if err := ghc.waitForRateLimit(ctx, resp); err != nil {
			return nil, err
		}
	}

	log.Debug("pull request search finished",
		"query", query,
		"count", len(refs))

	return refs, nil
}

// waitForRateLimit sleeps until the rate limit window resets when the
// remaining call budget runs low.
func (ghc *GitHubClient) waitForRateLimit(ctx context.Context, resp *github.Response) error {
	if resp == nil || resp.Rate.Remaining >= rateLimitFloor {
		return nil
	}

	wait := time.Until(resp.Rate.Reset.Time) + time.Second
	if wait <= 0 {
		return nil
	}

	logger.Warn(ctx, "rate limit nearly exhausted, waiting for reset",
		"remaining", resp.Rate.Remaining,
		"wait", wait.String())
	return ghc.sleep(ctx, wait)
}

func refFromIssue(issue *github.Issue) (models.PRRef, bool) {
	m := regex.RepositoryURL.FindStringSubmatch(issue.GetRepositoryURL())
	if m == nil {
		return models.PRRef{}, false
	}
	return models.PRRef{
		Owner:  m[1],
		Repo:   m[2],
		Number: issue.GetNumber(),
	}, true
}

// FetchPR retrieves one pull request with its ordered commits and
// normalized per-file patches.
func (ghc *GitHubClient) FetchPR(ctx context.Context, ref models.PRRef) (*models.PullRequest, error) {
	log := logger.FromContext(ctx)

	log.Debug("fetching github pull request",
		"owner", ref.Owner,
		"repo", ref.Repo,
		"pr_number", ref.Number)

	pr, resp, err := ghc.prService.Get(ctx, ref.Owner, ref.Repo, ref.Number)
	if err != nil {
		if resp != nil {
			if resp.StatusCode == http.StatusUnauthorized {
				return nil, domainErrors.ErrGitHubTokenInvalid.WithContext("operation", "get PR")
			}
			if resp.StatusCode == http.StatusNotFound {
				return nil, domainErrors.ErrPRNotFound.
					WithContext("pr", ref.String())
			}
		}
		return nil, fmt.Errorf("failed to get PR %s: %w", ref, err)
	}

	commits, err := ghc.fetchCommits(ctx, ref.Owner, ref.Repo, ref.Number)
	if err != nil {
		return nil, err
	}

	result := &models.PullRequest{
		Title:   pr.GetTitle(),
		Number:  ref.Number,
		Body:    pr.GetBody(),
		Commits: commits,
	}

	log.Debug("github PR fetched successfully",
		"pr", ref.String(),
		"title", result.Title,
		"commits", len(commits))

	return result, nil
}

// FetchPRs lists a repository's open pull requests with full content,
// backed by the file cache.
func (ghc *GitHubClient) FetchPRs(ctx context.Context, owner, repo string) ([]*models.PullRequest, error) {
	log := logger.FromContext(ctx)
	key := cache.RepoKey(owner, repo)

	if ghc.cache != nil {
		data, hit, err := ghc.cache.Get(key)
		if err != nil {
			log.Warn("failed to read PR cache, fetching fresh", "error", err)
		} else if hit {
			var prs []*models.PullRequest
			if err := json.Unmarshal(data, &prs); err == nil {
				log.Debug("PR list served from cache", "repo", owner+"/"+repo, "prs", len(prs))
				return prs, nil
			}
			log.Warn("discarding corrupt PR cache entry", "key", key)
		}
	}

	list, resp, err := ghc.prService.List(ctx, owner, repo, &github.PullRequestListOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: 100},
	})
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, domainErrors.ErrRepositoryNotFound.
				WithContext("repo", owner+"/"+repo)
		}
		return nil, fmt.Errorf("failed to list PRs for %s/%s: %w", owner, repo, err)
	}

	prs := make([]*models.PullRequest, 0, len(list))
	for _, pr := range list {
		commits, err := ghc.fetchCommits(ctx, owner, repo, pr.GetNumber())
		if err != nil {
			return nil, err
		}
		prs = append(prs, &models.PullRequest{
			Title:   pr.GetTitle(),
			Number:  pr.GetNumber(),
			Body:    pr.GetBody(),
			Commits: commits,
		})
	}

	if ghc.cache != nil {
		if err := ghc.cache.Set(key, prs); err != nil {
			log.Warn("failed to write PR cache", "error", err)
		}
	}

	return prs, nil
}

// fetchCommits walks a PR's commits in source control order and normalizes
// every file patch. Zero-change files keep a valid header-only patch; a
// malformed patch never leaves this boundary.
func (ghc *GitHubClient) fetchCommits(ctx context.Context, owner, repo string, number int) ([]models.Commit, error) {
	commits, _, err := ghc.prService.ListCommits(ctx, owner, repo, number, &github.ListOptions{PerPage: 100})
	if err != nil {
		return nil, fmt.Errorf("failed to list commits for PR #%d: %w", number, err)
	}

	result := make([]models.Commit, 0, len(commits))
	for _, commit := range commits {
		detail, resp, err := ghc.repoService.GetCommit(ctx, owner, repo, commit.GetSHA(), &github.ListOptions{})
		if err != nil {
			if resp != nil && resp.StatusCode == http.StatusNotFound {
				return nil, domainErrors.ErrCommitNotFound.
					WithContext("sha", commit.GetSHA()).
					WithContext("repo", owner+"/"+repo)
			}
			return nil, fmt.Errorf("failed to get commit %s: %w", commit.GetSHA(), err)
		}

		files := make([]models.FileChange, 0, len(detail.Files))
		for _, file := range detail.Files {
			patch, err := diff.Normalize(file.GetFilename(), file.GetPatch())
			if err != nil {
				return nil, err
			}
			files = append(files, models.FileChange{
				Name:  file.GetFilename(),
				Patch: patch,
			})
		}

		result = append(result, models.Commit{
			Message: detail.GetCommit().GetMessage(),
			Files:   files,
		})
	}

	return result, nil
}

// ListTree returns the repository's blob paths for the given ref, sorted.
func (ghc *GitHubClient) ListTree(ctx context.Context, owner, repo, ref string) ([]models.RepoFile, error) {
	if ref == "" {
		ref = "HEAD"
	}

	tree, resp, err := ghc.gitService.GetTree(ctx, owner, repo, ref, true)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, domainErrors.ErrRepositoryNotFound.
				WithContext("repo", owner+"/"+repo).
				WithContext("ref", ref)
		}
		return nil, fmt.Errorf("failed to get tree for %s/%s@%s: %w", owner, repo, ref, err)
	}

	files := make([]models.RepoFile, 0, len(tree.Entries))
	for _, entry := range tree.Entries {
		if entry.GetType() != "blob" {
			continue
		}
		files = append(files, models.RepoFile{
			Path: entry.GetPath(),
			Size: entry.GetSize(),
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

// ListChangedFiles returns the file paths a pull request touches.
func (ghc *GitHubClient) ListChangedFiles(ctx context.Context, ref models.PRRef) ([]string, error) {
	files, resp, err := ghc.prService.ListFiles(ctx, ref.Owner, ref.Repo, ref.Number, &github.ListOptions{PerPage: 100})
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, domainErrors.ErrPRNotFound.WithContext("pr", ref.String())
		}
		return nil, fmt.Errorf("failed to list files for %s: %w", ref, err)
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.GetFilename())
	}
	return paths, nil
}
