package prompt

// Format instructions only. Content/analysis instructions live in
// templates.go; never merge the two.

const outputFormatTemplate = `Output format:
Answer with exactly one of the following labels, spelled exactly as written here, on its own line:
Positive
Negative
Neutral

Positive means the PR changes security or authentication behavior. Negative means it does not. Neutral means the changes touch security-adjacent code without changing its behavior.

After the label, give a short justification that names the specific files, classes and methods your verdict is based on. Do not use any other label and do not change the label's capitalization.`
