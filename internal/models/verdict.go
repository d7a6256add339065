package models

// Label is the closed set of verdicts the model may return. Matching is
// case-sensitive: "positive" is not a label.
type Label string

const (
	LabelPositive Label = "Positive"
	LabelNegative Label = "Negative"
	LabelNeutral  Label = "Neutral"

	// LabelUnparseable is assigned locally when the response does not
	// contain exactly one recognized label. It never comes from the model.
	LabelUnparseable Label = "Unparseable"
)

// RecognizedLabels lists the labels the model is allowed to answer with.
func RecognizedLabels() []Label {
	return []Label{LabelPositive, LabelNegative, LabelNeutral}
}

// Verdict is the parsed outcome of one PR analysis.
type Verdict struct {
	Label         Label
	Justification string
	// FileRefs are file/class/method references found in the
	// justification. Emptiness is a quality signal, not an error.
	FileRefs []string
	// Raw keeps the unmodified model response for manual review of
	// suspected false positives/negatives.
	Raw string
}
