package scan

import "strings"

// Keyword tiers for the path-based security score. Weights are heuristic
// and clamped to [0, 1].
var (
	criticalKeywords = []string{
		"auth", "security", "permission", "acl", "rbac", "role",
		"privilege", "credential", "secret", "password", "token",
	}
	importantKeywords = []string{
		"config", "setting", "middleware", "interceptor", "filter",
		"policy", "validation", "sanitize", "encrypt",
	}
	relevantKeywords = []string{
		"user", "admin", "account", "profile", "session", "login",
		"access", "guard", "protect",
	}

	locationWeights = map[string]float64{
		"security/": 0.8,
		"auth/":     0.8,
		"src/":      0.3,
		"lib/":      0.3,
		"test/":     -0.2, // test files are lower priority
	}

	fileTypeWeights = map[string]float64{
		"config.":     0.3,
		".env":        0.4,
		"security.":   0.4,
		"auth.":       0.4,
		"middleware.": 0.3,
		"policy.":     0.3,
	}
)

// ContextThreshold is the minimum score for a changed file to count as
// security context for a PR.
const ContextThreshold = 0.3

// ScorePath computes the initial security score of a file path.
func ScorePath(path string) float64 {
	score := 0.0
	lower := strings.ToLower(path)

	for _, kw := range criticalKeywords {
		if strings.Contains(lower, kw) {
			score += 0.4
		}
	}
	for _, kw := range importantKeywords {
		if strings.Contains(lower, kw) {
			score += 0.2
		}
	}
	for _, kw := range relevantKeywords {
		if strings.Contains(lower, kw) {
			score += 0.1
		}
	}

	for loc, weight := range locationWeights {
		if strings.Contains(lower, loc) {
			score += weight
		}
	}

	for pattern, weight := range fileTypeWeights {
		if strings.Contains(lower, pattern) {
			score += weight
		}
	}

	return clamp(score)
}

func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
