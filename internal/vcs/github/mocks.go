package github

import (
	"context"

	"github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/mock"
)

type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Issues(ctx context.Context, query string, opts *github.SearchOptions) (*github.IssuesSearchResult, *github.Response, error) {
	args := m.Called(ctx, query, opts)
	if args.Get(0) == nil {
		return nil, respArg(args, 1), args.Error(2)
	}
	return args.Get(0).(*github.IssuesSearchResult), respArg(args, 1), args.Error(2)
}

type MockPRService struct {
	mock.Mock
}

func (m *MockPRService) Get(ctx context.Context, owner, repo string, number int) (*github.PullRequest, *github.Response, error) {
	args := m.Called(ctx, owner, repo, number)
	if args.Get(0) == nil {
		return nil, respArg(args, 1), args.Error(2)
	}
	return args.Get(0).(*github.PullRequest), respArg(args, 1), args.Error(2)
}

func (m *MockPRService) List(ctx context.Context, owner, repo string, opts *github.PullRequestListOptions) ([]*github.PullRequest, *github.Response, error) {
	args := m.Called(ctx, owner, repo, opts)
	if args.Get(0) == nil {
		return nil, respArg(args, 1), args.Error(2)
	}
	return args.Get(0).([]*github.PullRequest), respArg(args, 1), args.Error(2)
}

func (m *MockPRService) ListCommits(ctx context.Context, owner, repo string, number int, opts *github.ListOptions) ([]*github.RepositoryCommit, *github.Response, error) {
	args := m.Called(ctx, owner, repo, number, opts)
	if args.Get(0) == nil {
		return nil, respArg(args, 1), args.Error(2)
	}
	return args.Get(0).([]*github.RepositoryCommit), respArg(args, 1), args.Error(2)
}

func (m *MockPRService) ListFiles(ctx context.Context, owner, repo string, number int, opts *github.ListOptions) ([]*github.CommitFile, *github.Response, error) {
	args := m.Called(ctx, owner, repo, number, opts)
	if args.Get(0) == nil {
		return nil, respArg(args, 1), args.Error(2)
	}
	return args.Get(0).([]*github.CommitFile), respArg(args, 1), args.Error(2)
}

type MockRepoService struct {
	mock.Mock
}

func (m *MockRepoService) GetCommit(ctx context.Context, owner, repo, sha string, opts *github.ListOptions) (*github.RepositoryCommit, *github.Response, error) {
	args := m.Called(ctx, owner, repo, sha, opts)
	if args.Get(0) == nil {
		return nil, respArg(args, 1), args.Error(2)
	}
	return args.Get(0).(*github.RepositoryCommit), respArg(args, 1), args.Error(2)
}

type MockGitService struct {
	mock.Mock
}

func (m *MockGitService) GetTree(ctx context.Context, owner, repo, sha string, recursive bool) (*github.Tree, *github.Response, error) {
	args := m.Called(ctx, owner, repo, sha, recursive)
	if args.Get(0) == nil {
		return nil, respArg(args, 1), args.Error(2)
	}
	return args.Get(0).(*github.Tree), respArg(args, 1), args.Error(2)
}

func respArg(args mock.Arguments, idx int) *github.Response {
	if args.Get(idx) == nil {
		return nil
	}
	return args.Get(idx).(*github.Response)
}
