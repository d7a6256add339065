package models

import "fmt"

type (
	// PullRequest holds everything the analysis pipeline needs from a PR.
	// Commits keep source control order; nothing is mutated after fetch.
	PullRequest struct {
		Title   string
		Number  int
		Body    string
		Commits []Commit
	}

	// Commit is one commit inside a PR, with its file changes in API order.
	Commit struct {
		Message string
		Files   []FileChange
	}

	// FileChange is a single file touched by a commit. Patch is always a
	// syntactically valid unified diff; zero-change commits carry a
	// header-only patch with no hunks.
	FileChange struct {
		Name  string
		Patch string
	}
)

// PRRef identifies a pull request on the code host.
type PRRef struct {
	Owner  string
	Repo   string
	Number int
}

func (r PRRef) String() string {
	return fmt.Sprintf("%s/%s#%d", r.Owner, r.Repo, r.Number)
}
