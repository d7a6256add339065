package cache

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/uniliner/SecurityParser/internal/cache"
	cfg "github.com/uniliner/SecurityParser/internal/config"
	"github.com/uniliner/SecurityParser/internal/i18n"
)

type Command struct {
	cache *cache.Cache
}

func NewCommand(prCache *cache.Cache) *Command {
	return &Command{cache: prCache}
}

func (c *Command) CreateCommand(t *i18n.Translations, _ *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: t.GetMessage("cache_command_usage", 0, nil),
		Commands: []*cli.Command{
			{
				Name:  "clean",
				Usage: t.GetMessage("cache_clean_usage", 0, nil),
				Action: func(ctx context.Context, command *cli.Command) error {
					if err := c.cache.Clean(); err != nil {
						return err
					}
					fmt.Println(t.GetMessage("cache_cleaned", 0, nil))
					return nil
				},
			},
			{
				Name:  "show",
				Usage: t.GetMessage("cache_show_usage", 0, nil),
				Action: func(ctx context.Context, command *cli.Command) error {
					count, err := c.cache.Entries()
					if err != nil {
						return err
					}
					fmt.Println(t.GetMessage("cache_entries", count, map[string]interface{}{
						"Count": count,
						"Dir":   c.cache.Dir(),
					}))
					return nil
				},
			},
		},
	}
}
