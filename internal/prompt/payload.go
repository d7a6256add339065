package prompt

import (
	"encoding/json"
	"fmt"

	"github.com/uniliner/SecurityParser/internal/models"
)

// The payload key order is a fixed contract consumed by the instruction
// templates: PR_TITLE, PR_NUMBER, PR_BODY, COMMITS[COMMIT_MESSAGE,
// COMMIT_FILES[FILE_NAME, FILE_PATCH]]. Struct tag order preserves it.
type (
	payload struct {
		PRTitle  string          `json:"PR_TITLE"`
		PRNumber int             `json:"PR_NUMBER"`
		PRBody   string          `json:"PR_BODY"`
		Commits  []payloadCommit `json:"COMMITS"`
	}

	payloadCommit struct {
		CommitMessage string        `json:"COMMIT_MESSAGE"`
		CommitFiles   []payloadFile `json:"COMMIT_FILES"`
	}

	payloadFile struct {
		FileName  string `json:"FILE_NAME"`
		FilePatch string `json:"FILE_PATCH"`
	}
)

// Serialize renders a PullRequest as the JSON payload the templates expect.
func Serialize(pr *models.PullRequest) (string, error) {
	p := payload{
		PRTitle:  pr.Title,
		PRNumber: pr.Number,
		PRBody:   pr.Body,
		Commits:  make([]payloadCommit, 0, len(pr.Commits)),
	}

	for _, c := range pr.Commits {
		pc := payloadCommit{
			CommitMessage: c.Message,
			CommitFiles:   make([]payloadFile, 0, len(c.Files)),
		}
		for _, f := range c.Files {
			pc.CommitFiles = append(pc.CommitFiles, payloadFile{
				FileName:  f.Name,
				FilePatch: f.Patch,
			})
		}
		p.Commits = append(p.Commits, pc)
	}

	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to serialize PR payload: %w", err)
	}
	return string(data), nil
}

// ParsePayload is the inverse of Serialize. Title, number, body and the
// ordered commit/file sequences round-trip exactly.
func ParsePayload(text string) (*models.PullRequest, error) {
	var p payload
	if err := json.Unmarshal([]byte(text), &p); err != nil {
		return nil, fmt.Errorf("failed to parse PR payload: %w", err)
	}

	pr := &models.PullRequest{
		Title:   p.PRTitle,
		Number:  p.PRNumber,
		Body:    p.PRBody,
		Commits: make([]models.Commit, 0, len(p.Commits)),
	}

	for _, pc := range p.Commits {
		c := models.Commit{
			Message: pc.CommitMessage,
			Files:   make([]models.FileChange, 0, len(pc.CommitFiles)),
		}
		for _, pf := range pc.CommitFiles {
			c.Files = append(c.Files, models.FileChange{
				Name:  pf.FileName,
				Patch: pf.FilePatch,
			})
		}
		pr.Commits = append(pr.Commits, c)
	}

	return pr, nil
}
