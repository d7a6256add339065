// Package diff normalizes and validates the unified-diff patches that come
// back from the code host. The API returns bare hunk text for changed files
// and nothing at all for zero-change commits; everything that leaves this
// package is a structurally valid unified diff.
package diff

import (
	"strings"

	domainErrors "github.com/uniliner/SecurityParser/internal/errors"
	"github.com/uniliner/SecurityParser/internal/regex"
)

// Normalize turns a raw API patch into a proper unified diff for the given
// file. A missing or empty patch (zero-change commit) yields a header-only
// diff with zero hunks rather than absent or malformed text.
func Normalize(name, patch string) (string, error) {
	header := "--- a/" + name + "\n+++ b/" + name + "\n"

	patch = strings.TrimRight(patch, "\n")
	if patch == "" {
		return header, nil
	}

	if hasFileHeaders(patch) {
		normalized := patch + "\n"
		if err := Validate(normalized); err != nil {
			return "", err
		}
		return normalized, nil
	}

	if !strings.HasPrefix(patch, "@@") {
		return "", domainErrors.ErrMalformedPatch.
			WithContext("file", name).
			WithContext("first_line", firstLine(patch))
	}

	normalized := header + patch + "\n"
	if err := Validate(normalized); err != nil {
		return "", err
	}
	return normalized, nil
}

// Validate checks that a patch is a structurally valid unified diff: both
// file headers present and every hunk header well-formed. A diff with zero
// hunks is valid.
func Validate(patch string) error {
	if !hasFileHeaders(patch) {
		return domainErrors.ErrMalformedPatch.WithContext("reason", "missing file headers")
	}

	for _, line := range strings.Split(patch, "\n") {
		if strings.HasPrefix(line, "@@") && !regex.DiffHunkHeader.MatchString(line) {
			return domainErrors.ErrMalformedPatch.
				WithContext("reason", "bad hunk header").
				WithContext("line", line)
		}
	}
	return nil
}

// HunkCount returns the number of hunks in a valid unified diff.
func HunkCount(patch string) int {
	return len(regex.DiffHunkHeader.FindAllString(patch, -1))
}

// IsZeroChange reports whether a normalized patch carries no hunks.
func IsZeroChange(patch string) bool {
	return Validate(patch) == nil && HunkCount(patch) == 0
}

func hasFileHeaders(patch string) bool {
	return regex.DiffOldFileHeader.MatchString(patch) && regex.DiffNewFileHeader.MatchString(patch)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
