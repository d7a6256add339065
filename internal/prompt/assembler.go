// Package prompt assembles the text sent to the model: static content
// instructions, the serialized PR payload between content markers, and the
// static output-format instructions.
package prompt

import (
	"strings"

	"github.com/uniliner/SecurityParser/internal/models"
)

// Assemble builds the full prompt for one pull request.
func Assemble(pr *models.PullRequest) (string, error) {
	serialized, err := Serialize(pr)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(contentTemplate)
	b.WriteString("\n")
	b.WriteString(contentStartMarker)
	b.WriteString("\n")
	b.WriteString(serialized)
	b.WriteString("\n")
	b.WriteString(contentEndMarker)
	b.WriteString("\n")
	b.WriteString(outputFormatTemplate)
	return b.String(), nil
}

// ExtractPayload pulls the serialized PR back out of an assembled prompt.
// Used by tests to verify the round-trip property.
func ExtractPayload(assembled string) (string, bool) {
	start := strings.Index(assembled, contentStartMarker)
	end := strings.Index(assembled, contentEndMarker)
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return strings.TrimSpace(assembled[start+len(contentStartMarker) : end]), true
}
