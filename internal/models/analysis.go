package models

// AnalysisResult pairs one PR with its verdict. Err is set when that PR's
// analysis failed at any pipeline stage; the rest of the batch is unaffected.
type AnalysisResult struct {
	Ref     PRRef
	PR      *PullRequest
	Verdict Verdict
	Err     error
}
