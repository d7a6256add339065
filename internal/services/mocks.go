package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/uniliner/SecurityParser/internal/models"
)

type MockPRFetcher struct {
	mock.Mock
}

func (m *MockPRFetcher) FetchPR(ctx context.Context, ref models.PRRef) (*models.PullRequest, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PullRequest), args.Error(1)
}

func (m *MockPRFetcher) FetchPRs(ctx context.Context, owner, repo string) ([]*models.PullRequest, error) {
	args := m.Called(ctx, owner, repo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.PullRequest), args.Error(1)
}

type MockModelInvoker struct {
	mock.Mock
}

func (m *MockModelInvoker) Invoke(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// MockCostAwareInvoker implements both ModelInvoker and CostAwareAIProvider.
type MockCostAwareInvoker struct {
	mock.Mock
}

func (m *MockCostAwareInvoker) Invoke(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockCostAwareInvoker) CountTokens(ctx context.Context, prompt string) (int, error) {
	args := m.Called(ctx, prompt)
	return args.Int(0), args.Error(1)
}

func (m *MockCostAwareInvoker) GetModelName() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockCostAwareInvoker) GetProviderName() string {
	args := m.Called()
	return args.String(0)
}

type MockChangedFilesLister struct {
	mock.Mock
}

func (m *MockChangedFilesLister) ListChangedFiles(ctx context.Context, ref models.PRRef) ([]string, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
