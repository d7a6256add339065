package prcontext

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
	contexts *services.ContextService
}

func NewCommand(contexts *services.ContextService) *Command {
	return &Command{contexts: contexts}
}

func (c *Command) CreateCommand(t *i18n.Translations, _ *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "pr-context",
		Usage: t.GetMessage("context_command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "repo",
				Aliases:  []string{"r"},
				Usage:    t.GetMessage("analyze_repo_flag_usage", 0, nil),
				Required: true,
			},
			&cli.IntFlag{
				Name:     "pr",
				Aliases:  []string{"n"},
				Usage:    t.GetMessage("analyze_pr_flag_usage", 0, nil),
				Required: true,
			},
			&cli.IntFlag{
				Name:  "max",
				Usage: t.GetMessage("context_max_flag_usage", 0, nil),
				Value: 3,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			m := regex.RepoFullName.FindStringSubmatch(command.String("repo"))
			if m == nil {
				return fmt.Errorf("%s", t.GetMessage("error_repo_format", 0, nil))
			}

			ref := models.PRRef{
				Owner:  m[1],
				Repo:   m[2],
				Number: int(command.Int("pr")),
			}

			prContext, err := c.contexts.PRContext(ctx, ref, int(command.Int("max")))
			if err != nil {
				return err
			}

			fmt.Println(t.GetMessage("context_changed_files", 0, nil))
			for _, path := range prContext.ChangedFiles {
				fmt.Printf("- %s\n", path)
			}

			fmt.Println(t.GetMessage("context_security_files", 0, nil))
			for _, file := range prContext.SecurityContext {
				fmt.Printf("- %s (Score: %.2f)\n", file.Path, file.SecurityScore)
			}
			return nil
		},
	}
}
