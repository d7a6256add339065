package regex

import "regexp"

var (
	// Unified diff structure
	DiffOldFileHeader = regexp.MustCompile(`(?m)^--- (?:a/)?(\S+)`)
	DiffNewFileHeader = regexp.MustCompile(`(?m)^\+\+\+ (?:b/)?(\S+)`)
	DiffHunkHeader    = regexp.MustCompile(`(?m)^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@`)

	// Verdict extraction patterns. Labels are matched case-sensitively and as
	// whole words so that "positive" or "Positively" never count as a hit.
	VerdictPositive = regexp.MustCompile(`\bPositive\b`)
	VerdictNegative = regexp.MustCompile(`\bNegative\b`)
	VerdictNeutral  = regexp.MustCompile(`\bNeutral\b`)

	// File/class/method references inside a model justification.
	FileReference   = regexp.MustCompile(`\b[\w./-]+\.(?:java|kt|xml|properties|ya?ml|gradle|go|py|json|sql|env)\b`)
	MethodReference = regexp.MustCompile(`\b[A-Za-z_][\w]*\(\)`)
	ClassReference  = regexp.MustCompile(`\b[A-Z][A-Za-z0-9]*(?:Controller|Config|Filter|Service|Provider|Handler|Manager)\b`)

	// Repo references in "owner/name" form
	RepoFullName = regexp.MustCompile(`^([\w.-]+)/([\w.-]+)$`)

	// Search API result URLs: https://api.github.com/repos/{owner}/{repo}/issues/{n}
	RepositoryURL = regexp.MustCompile(`/repos/([^/]+)/([^/]+)`)

	// Spring endpoint hints used by the path scorer
	SpringSecurityAnnotation = regexp.MustCompile(`@(?:Secured|PreAuthorize|RolesAllowed|EnableWebSecurity)\b`)

	// AI and JSON parsing
	MarkdownJSONBlock = regexp.MustCompile("(?s)```(?:json)?\n?(.*?)```")
)
