// Package verdict extracts the categorical label and its justification from
// the model's free-text response.
package verdict

import (
	"strings"

	domainErrors "github.com/uniliner/SecurityParser/internal/errors"
	"github.com/uniliner/SecurityParser/internal/models"
	"github.com/uniliner/SecurityParser/internal/regex"
)

// Parse reads a raw model response and returns its Verdict. The response
// must contain exactly one distinct recognized label, matched case-sensitively
// as a whole word; anything else comes back as LabelUnparseable together
// with ErrUnparseableVerdict. Repetitions of the same label are tolerated.
func Parse(raw string) (models.Verdict, error) {
	v := models.Verdict{Raw: raw}

	var found []models.Label
	if regex.VerdictPositive.MatchString(raw) {
		found = append(found, models.LabelPositive)
	}
	if regex.VerdictNegative.MatchString(raw) {
		found = append(found, models.LabelNegative)
	}
	if regex.VerdictNeutral.MatchString(raw) {
		found = append(found, models.LabelNeutral)
	}

	if len(found) != 1 {
		v.Label = models.LabelUnparseable
		return v, domainErrors.ErrUnparseableVerdict.
			WithContext("labels_found", len(found))
	}

	v.Label = found[0]
	v.Justification = extractJustification(raw, v.Label)
	v.FileRefs = extractReferences(v.Justification)
	return v, nil
}

// extractJustification drops the line carrying the label and returns the
// rest of the response, trimmed.
func extractJustification(raw string, label models.Label) string {
	lines := strings.Split(raw, "\n")
	kept := make([]string, 0, len(lines))
	dropped := false
	for _, line := range lines {
		if !dropped && strings.TrimSpace(line) == string(label) {
			dropped = true
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// extractReferences collects file, class and method mentions in order of
// first appearance. An empty result is a quality signal the caller surfaces,
// not a failure.
func extractReferences(justification string) []string {
	var refs []string
	seen := make(map[string]bool)

	add := func(matches []string, skip func(string) bool) {
		for _, m := range matches {
			if seen[m] || (skip != nil && skip(m)) {
				continue
			}
			seen[m] = true
			refs = append(refs, m)
		}
	}

	files := regex.FileReference.FindAllString(justification, -1)
	add(files, nil)
	// A class cited only through its file name is already covered.
	add(regex.ClassReference.FindAllString(justification, -1), func(class string) bool {
		for _, f := range files {
			if strings.HasPrefix(f, class+".") {
				return true
			}
		}
		return false
	})
	add(regex.MethodReference.FindAllString(justification, -1), nil)
	return refs
}
