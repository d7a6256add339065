package scan

import (
	"time"

	"github.com/uniliner/SecurityParser/internal/models"
)

// BuildReport classifies a repository's paths and groups findings by
// severity for the scan report.
func BuildReport(repository string, paths []string) *models.ScanReport {
	classification := Classify(paths)

	findings := map[models.Severity][]models.Finding{
		models.SeverityCritical: nil,
		models.SeverityHigh:     nil,
		models.SeverityMedium:   nil,
	}

	for _, f := range classification.CriticalRisk {
		findings[f.Severity] = append(findings[f.Severity], f)
	}
	for _, f := range classification.HighRisk {
		findings[f.Severity] = append(findings[f.Severity], f)
	}

	total := 0
	bySeverity := make(map[models.Severity]int, len(findings))
	for severity, items := range findings {
		bySeverity[severity] = len(items)
		total += len(items)
	}

	return &models.ScanReport{
		ScanTime:           time.Now(),
		Repository:         repository,
		TotalFindings:      total,
		FindingsBySeverity: bySeverity,
		Findings:           findings,
	}
}
