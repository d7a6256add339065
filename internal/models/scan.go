package models

import "time"

// Severity buckets for scan findings.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
)

type (
	// PatternGroup is a named set of path patterns with a shared risk score.
	PatternGroup struct {
		Name      string
		Patterns  []string
		RiskScore int
		Rationale string
	}

	// PatternMatch records which pattern of which group matched a path.
	PatternMatch struct {
		Group     string `json:"group"`
		Pattern   string `json:"pattern,omitempty"`
		RiskScore int    `json:"risk_score,omitempty"`
		Rationale string `json:"rationale,omitempty"`
	}

	// RepoFile is a repository blob with its path-based security score.
	RepoFile struct {
		Path          string  `json:"path"`
		Size          int     `json:"size,omitempty"`
		SecurityScore float64 `json:"security_score"`
	}

	// Finding is one sensitive path plus everything that matched it.
	Finding struct {
		File     string         `json:"file"`
		Severity Severity       `json:"severity"`
		Matches  []PatternMatch `json:"matches"`
	}

	// ScanReport is the JSON document the scan command writes.
	ScanReport struct {
		ScanTime           time.Time            `json:"scan_time"`
		Repository         string               `json:"repository"`
		TotalFindings      int                  `json:"total_findings"`
		FindingsBySeverity map[Severity]int     `json:"findings_by_severity"`
		Findings           map[Severity][]Finding `json:"findings"`
	}

	// PRSecurityContext is the scored view of a PR's changed files.
	PRSecurityContext struct {
		ChangedFiles    []string
		SecurityContext []RepoFile
	}
)
