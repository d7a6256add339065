package services

import (
	"context"
	"sort"

	"github.com/uniliner/SecurityParser/internal/models"
	"github.com/uniliner/SecurityParser/internal/ports"
	"github.com/uniliner/SecurityParser/internal/scan"
)

// ContextService builds the security context of a pull request: its changed
// files scored for security relevance, most relevant first.
type ContextService struct {
	files ports.ChangedFilesLister
}

func NewContextService(files ports.ChangedFilesLister) *ContextService {
	return &ContextService{files: files}
}

// PRContext scores the PR's changed files and keeps the ones above the
// relevance threshold, capped at maxFiles.
func (s *ContextService) PRContext(ctx context.Context, ref models.PRRef, maxFiles int) (*models.PRSecurityContext, error) {
	paths, err := s.files.ListChangedFiles(ctx, ref)
	if err != nil {
		return nil, err
	}

	var relevant []models.RepoFile
	for _, path := range paths {
		score := scan.ScorePath(path)
		if score > scan.ContextThreshold {
			relevant = append(relevant, models.RepoFile{
				Path:          path,
				SecurityScore: score,
			})
		}
	}

	sort.SliceStable(relevant, func(i, j int) bool {
		return relevant[i].SecurityScore > relevant[j].SecurityScore
	})

	if maxFiles > 0 && len(relevant) > maxFiles {
		relevant = relevant[:maxFiles]
	}

	return &models.PRSecurityContext{
		ChangedFiles:    paths,
		SecurityContext: relevant,
	}, nil
}
