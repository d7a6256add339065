package services

import (
	"context"

	domainErrors "github.com/uniliner/SecurityParser/internal/errors"
	"github.com/uniliner/SecurityParser/internal/logger"
	"github.com/uniliner/SecurityParser/internal/models"
	"github.com/uniliner/SecurityParser/internal/ports"
	"github.com/uniliner/SecurityParser/internal/prompt"
	"github.com/uniliner/SecurityParser/internal/verdict"
)

// AnalysisService runs the per-PR pipeline: fetch, assemble, invoke, parse.
// Every PR is processed independently; one failed analysis never aborts a
// batch.
type AnalysisService struct {
	fetcher ports.PRFetcher
	invoker ports.ModelInvoker
}

func NewAnalysisService(fetcher ports.PRFetcher, invoker ports.ModelInvoker) *AnalysisService {
	return &AnalysisService{
		fetcher: fetcher,
		invoker: invoker,
	}
}

// AnalyzeRef fetches one PR and classifies it.
func (s *AnalysisService) AnalyzeRef(ctx context.Context, ref models.PRRef) models.AnalysisResult {
	result := models.AnalysisResult{Ref: ref}

	pr, err := s.fetcher.FetchPR(ctx, ref)
	if err != nil {
		result.Err = err
		return result
	}

	return s.analyzePR(ctx, ref, pr)
}

// AnalyzeRepo classifies up to limit open PRs of a repository. The returned
// slice has one entry per PR; entries carry their own error when that PR's
// analysis failed.
func (s *AnalysisService) AnalyzeRepo(ctx context.Context, owner, repo string, limit int) ([]models.AnalysisResult, error) {
	prs, err := s.fetcher.FetchPRs(ctx, owner, repo)
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(prs) > limit {
		prs = prs[:limit]
	}

	results := make([]models.AnalysisResult, 0, len(prs))
	for _, pr := range prs {
		ref := models.PRRef{Owner: owner, Repo: repo, Number: pr.Number}
		results = append(results, s.analyzePR(ctx, ref, pr))
	}
	return results, nil
}

func (s *AnalysisService) analyzePR(ctx context.Context, ref models.PRRef, pr *models.PullRequest) models.AnalysisResult {
	log := logger.FromContext(ctx)
	result := models.AnalysisResult{Ref: ref, PR: pr}

	if s.invoker == nil {
		result.Err = domainErrors.ErrAPIKeyMissing
		return result
	}

	assembled, err := prompt.Assemble(pr)
	if err != nil {
		result.Err = err
		return result
	}

	if counter, ok := s.invoker.(ports.CostAwareAIProvider); ok {
		if tokens, err := counter.CountTokens(ctx, assembled); err == nil {
			log.Debug("prompt cost estimated",
				"pr", ref.String(),
				"provider", counter.GetProviderName(),
				"model", counter.GetModelName(),
				"tokens", tokens)
		}
	}

	raw, err := s.invoker.Invoke(ctx, assembled)
	if err != nil {
		result.Err = err
		return result
	}

	v, err := verdict.Parse(raw)
	result.Verdict = v
	if err != nil {
		// Unparseable is a quality defect of this analysis, recorded
		// but never retried.
		result.Err = err
		return result
	}

	if len(v.FileRefs) == 0 {
		log.Warn("verdict justification cites no files or methods",
			"pr", ref.String(),
			"verdict", string(v.Label))
	}

	log.Info("pull request classified",
		"pr", ref.String(),
		"verdict", string(v.Label))

	return result
}
