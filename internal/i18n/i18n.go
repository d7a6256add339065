package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

func NewTranslations(defaultLang string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	files, err := filepath.Glob("locales/active.*.toml")
	if err != nil {
		return nil, fmt.Errorf("error reading locales: %w", err)
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "Find and classify security-related pull requests with AI"

	[app_description]
	other = "SecurityParser searches GitHub for candidate security/authentication PRs, fetches their diffs, asks a model for a verdict and parses the answer."

	[analyze_command_usage]
	other = "Analyze a repository's pull requests for security relevance"

	[analyze_repo_flag_usage]
	other = "Repository in owner/name form"

	[analyze_pr_flag_usage]
	other = "Analyze only this PR number"

	[analyze_limit_flag_usage]
	other = "Maximum number of PRs to analyze"

	[analyzing_pr]
	other = "Analyzing PR #{{.Number}}..."

	[analysis_verdict]
	other = "[{{.Title}}]: {{.Label}}"

	[analysis_failed]
	other = "Analysis of PR #{{.Number}} failed: {{.Error}}"

	[analysis_no_refs]
	other = "The justification cites no files or methods; treat this verdict with care"

	[search_command_usage]
	other = "Search GitHub for candidate security pull requests"

	[search_query_flag_usage]
	other = "Custom search query (replaces the built-in Spring security queries)"

	[search_limit_flag_usage]
	other = "Maximum number of PRs per query"

	[search_found_pr]
	other = "Found security PR: {{.Ref}}"

	[search_no_results]
	other = "No pull requests matched"

	[search_complete]
	one = "Search complete! Found {{.Count}} security-related PR"
	other = "Search complete! Found {{.Count}} security-related PRs"

	[scan_command_usage]
	other = "Scan a repository tree for sensitive files"

	[scan_ref_flag_usage]
	other = "Git ref to scan (default branch if empty)"

	[scan_output_flag_usage]
	other = "Write the JSON report to this file"

	[scan_report_saved]
	other = "Detailed report saved to: {{.Path}}"

	[scan_total_findings]
	other = "Total findings: {{.Count}}"

	[context_command_usage]
	other = "Show the security context of a pull request"

	[context_max_flag_usage]
	other = "Maximum context files to show"

	[context_changed_files]
	other = "Changed files:"

	[context_security_files]
	other = "Security context files:"

	[config_command_usage]
	other = "Manage SecurityParser configuration"

	[config_init_usage]
	other = "Create the default configuration file"

	[config_show_usage]
	other = "Show the current configuration"

	[config_set_api_key_usage]
	other = "Set the Gemini API key"

	[config_set_token_usage]
	other = "Set the GitHub token"

	[config_set_lang_usage]
	other = "Set the interface language"

	[config_saved]
	other = "Configuration saved"

	[config_current]
	other = "Current configuration"

	[cache_command_usage]
	other = "Manage the PR fetch cache"

	[cache_clean_usage]
	other = "Delete all cached PR data"

	[cache_show_usage]
	other = "Show cache location and entries"

	[cache_cleaned]
	other = "Cache cleaned"

	[cache_entries]
	one = "{{.Count}} cache entry in {{.Dir}}"
	other = "{{.Count}} cache entries in {{.Dir}}"

	[error_repo_format]
	other = "Repository must be in owner/name form"

	[error_client_creation]
	other = "Could not create the GitHub client"

	[error_ai_creation]
	other = "Could not create the AI service"

	[help_command_usage]
	other = "Show help"
	`
