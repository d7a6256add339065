package analyze

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	cfg "github.com/uniliner/SecurityParser/internal/config"
	"github.com/uniliner/SecurityParser/internal/i18n"
	"github.com/uniliner/SecurityParser/internal/models"
	"github.com/uniliner/SecurityParser/internal/regex"
	"github.com/uniliner/SecurityParser/internal/services"
)

type Command struct {
	analysis *services.AnalysisService
}

func NewCommand(analysis *services.AnalysisService) *Command {
	return &Command{analysis: analysis}
}

func (c *Command) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:    "analyze",
		Aliases: []string{"a"},
		Usage:   t.GetMessage("analyze_command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "repo",
				Aliases:  []string{"r"},
				Usage:    t.GetMessage("analyze_repo_flag_usage", 0, nil),
				Required: true,
			},
			&cli.IntFlag{
				Name:    "pr",
				Aliases: []string{"n"},
				Usage:   t.GetMessage("analyze_pr_flag_usage", 0, nil),
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"l"},
				Usage:   t.GetMessage("analyze_limit_flag_usage", 0, nil),
				Value:   int64(config.MaxPRs),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			m := regex.RepoFullName.FindStringSubmatch(command.String("repo"))
			if m == nil {
				return fmt.Errorf("%s", t.GetMessage("error_repo_format", 0, nil))
			}
			owner, repo := m[1], m[2]

			if prNumber := int(command.Int("pr")); prNumber > 0 {
				ref := models.PRRef{Owner: owner, Repo: repo, Number: prNumber}
				fmt.Println(t.GetMessage("analyzing_pr", 0, map[string]interface{}{"Number": prNumber}))
				printResult(t, c.analysis.AnalyzeRef(ctx, ref))
				return nil
			}

			results, err := c.analysis.AnalyzeRepo(ctx, owner, repo, int(command.Int("limit")))
			if err != nil {
				return err
			}
			for _, result := range results {
				printResult(t, result)
			}
			return nil
		},
	}
}

func printResult(t *i18n.Translations, result models.AnalysisResult) {
	if result.Err != nil {
		fmt.Println(t.GetMessage("analysis_failed", 0, map[string]interface{}{
			"Number": result.Ref.Number,
			"Error":  result.Err.Error(),
		}))
		return
	}

	title := ""
	if result.PR != nil {
		title = result.PR.Title
	}
	fmt.Println(t.GetMessage("analysis_verdict", 0, map[string]interface{}{
		"Title": title,
		"Label": string(result.Verdict.Label),
	}))
	if result.Verdict.Justification != "" {
		fmt.Println(result.Verdict.Justification)
	}
	if len(result.Verdict.FileRefs) == 0 {
		fmt.Println(t.GetMessage("analysis_no_refs", 0, nil))
	}
}
