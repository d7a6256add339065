// Package scan classifies repository paths against known sensitive-file
// patterns and scores them for security relevance.
package scan

import (
	"regexp"
	"strings"
	"sync"

	"github.com/uniliner/SecurityParser/internal/models"
)

// Classification buckets a repository's paths by risk.
type Classification struct {
	CriticalRisk []models.Finding
	HighRisk     []models.Finding
	Safe         []string
}

var (
	patternCache   = map[string]*regexp.Regexp{}
	patternCacheMu sync.Mutex
)

// compilePattern translates the catalog's glob-ish syntax into a regexp:
// {a,b} becomes (a|b), dots are literal, * matches any run of characters.
// Matching is a search anywhere in the path.
func compilePattern(pattern string) *regexp.Regexp {
	patternCacheMu.Lock()
	defer patternCacheMu.Unlock()

	if re, ok := patternCache[pattern]; ok {
		return re
	}

	expr := pattern
	expr = strings.ReplaceAll(expr, ".", `\.`)
	expr = strings.ReplaceAll(expr, "{", "(")
	expr = strings.ReplaceAll(expr, "}", ")")
	expr = strings.ReplaceAll(expr, ",", "|")
	expr = strings.ReplaceAll(expr, "*", ".*")

	re := regexp.MustCompile(expr)
	patternCache[pattern] = re
	return re
}

// MatchGroups returns every pattern group that matches the path.
func MatchGroups(path string, groups []models.PatternGroup) []models.PatternMatch {
	var matched []models.PatternMatch
	for _, group := range groups {
		for _, pattern := range group.Patterns {
			if compilePattern(pattern).MatchString(path) {
				matched = append(matched, models.PatternMatch{
					Group:     group.Name,
					Pattern:   pattern,
					RiskScore: group.RiskScore,
					Rationale: group.Rationale,
				})
			}
		}
	}
	return matched
}

// IsContextualPath reports whether the path sits in a configuration location
// or a security-related directory.
func IsContextualPath(path string) bool {
	for _, loc := range ConfigurationLocations {
		if strings.Contains(path, loc) {
			return true
		}
	}
	for _, seg := range SecurityRelatedPaths {
		if strings.Contains(path, seg) {
			return true
		}
	}
	return false
}

// Classify buckets every path into critical, high-risk or safe. Contextual
// paths without a pattern hit land in the high-risk bucket.
func Classify(paths []string) Classification {
	var c Classification

	for _, path := range paths {
		if matches := MatchGroups(path, CriticalPatterns); len(matches) > 0 {
			c.CriticalRisk = append(c.CriticalRisk, models.Finding{
				File:     path,
				Severity: models.SeverityCritical,
				Matches:  matches,
			})
			continue
		}

		if matches := MatchGroups(path, HighRiskPatterns); len(matches) > 0 {
			c.HighRisk = append(c.HighRisk, models.Finding{
				File:     path,
				Severity: models.SeverityHigh,
				Matches:  matches,
			})
			continue
		}

		if IsContextualPath(path) {
			c.HighRisk = append(c.HighRisk, models.Finding{
				File:     path,
				Severity: models.SeverityMedium,
				Matches:  []models.PatternMatch{{Group: "contextual_path"}},
			})
			continue
		}

		c.Safe = append(c.Safe, path)
	}

	return c
}
