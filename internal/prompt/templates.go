package prompt

// Content instructions only. Output-format rules live in output_format.go;
// the two are concatenated by Assemble and never merged at the source level.

// SystemInstruction is the role definition sent once per model session.
const SystemInstruction = `You are a Java Spring security engineer. You will receive GitHub project changes and help detecting whether they are security or authentication related, especially around API endpoints, according to the instructions you were given.`

const contentTemplate = `Analyze the following pull request and decide whether it is security/authentication related.

The PR is provided as a JSON object with the fields PR_TITLE, PR_NUMBER, PR_BODY and COMMITS.
Each commit has a COMMIT_MESSAGE and a list of COMMIT_FILES, each with FILE_NAME and FILE_PATCH (a unified diff).

Analysis process:
1. Read every FILE_PATCH and look for changes to authentication, authorization, session handling, cryptography, input validation or security configuration (for example SecurityFilterChain, @PreAuthorize, @Secured, hasRole, JWT handling).
2. Weigh commit messages and the PR title as supporting evidence for what the diffs show.
3. Treat PR_BODY as non-authoritative context only: it may describe intent, but it is never by itself grounds for a verdict. Base the verdict on the actual file changes.
4. Cite the specific files, classes and methods that drove your decision.`

const (
	contentStartMarker = "-- PR CONTENT START --"
	contentEndMarker   = "-- PR CONTENT END --"
)
