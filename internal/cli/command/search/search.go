package search

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	cfg "github.com/uniliner/SecurityParser/internal/config"
	"github.com/uniliner/SecurityParser/internal/i18n"
	"github.com/uniliner/SecurityParser/internal/logger"
	"github.com/uniliner/SecurityParser/internal/ports"
	githubvcs "github.com/uniliner/SecurityParser/internal/vcs/github"
)

type Command struct {
	searcher ports.PRSearcher
}

func NewCommand(searcher ports.PRSearcher) *Command {
	return &Command{searcher: searcher}
}

func (c *Command) CreateCommand(t *i18n.Translations, _ *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:    "search",
		Aliases: []string{"s"},
		Usage:   t.GetMessage("search_command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   t.GetMessage("search_query_flag_usage", 0, nil),
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"l"},
				Usage:   t.GetMessage("search_limit_flag_usage", 0, nil),
				Value:   100,
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			queries := githubvcs.SecurityQueries
			if q := command.String("query"); q != "" {
				queries = []string{q}
			}
			limit := int(command.Int("limit"))

			total := 0
			for _, query := range queries {
				refs, err := c.searcher.SearchPRs(ctx, query, limit)
				if err != nil {
					// one failed query does not kill the rest
					logger.Error(ctx, "search query failed", err, "query", query)
					continue
				}
				for _, ref := range refs {
					fmt.Println(t.GetMessage("search_found_pr", 0, map[string]interface{}{
						"Ref": ref.String(),
					}))
				}
				total += len(refs)
			}

			if total == 0 {
				fmt.Println(t.GetMessage("search_no_results", 0, nil))
				return nil
			}

			fmt.Println(t.GetMessage("search_complete", total, map[string]interface{}{
				"Count": total,
			}))
			return nil
		},
	}
}
