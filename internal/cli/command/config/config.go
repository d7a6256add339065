package config

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	cfg "github.com/uniliner/SecurityParser/internal/config"
	"github.com/uniliner/SecurityParser/internal/i18n"
)

type Command struct{}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: t.GetMessage("config_command_usage", 0, nil),
		Commands: []*cli.Command{
			c.initCommand(t, config),
			c.showCommand(t, config),
			c.setAPIKeyCommand(t, config),
			c.setTokenCommand(t, config),
			c.setLangCommand(t, config),
		},
	}
}

func (c *Command) initCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: t.GetMessage("config_init_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			if err := cfg.SaveConfig(config); err != nil {
				return err
			}
			fmt.Println(t.GetMessage("config_saved", 0, nil))
			return nil
		},
	}
}

func (c *Command) showCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			fmt.Println(t.GetMessage("config_current", 0, nil))
			fmt.Printf("  language: %s\n", config.Language)
			fmt.Printf("  gemini_model: %s\n", config.GeminiModel)
			fmt.Printf("  cache_ttl_hours: %d\n", config.CacheTTLHours)
			fmt.Printf("  max_prs: %d\n", config.MaxPRs)
			fmt.Printf("  github_token: %s\n", maskSecret(config.GitHubToken))
			fmt.Printf("  gemini_api_key: %s\n", maskSecret(config.GeminiAPIKey))
			fmt.Printf("  path: %s\n", config.PathFile)
			return nil
		},
	}
}

func (c *Command) setAPIKeyCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-api-key",
		Usage:     t.GetMessage("config_set_api_key_usage", 0, nil),
		ArgsUsage: "<key>",
		Action: func(ctx context.Context, command *cli.Command) error {
			key := command.Args().First()
			if key == "" {
				return fmt.Errorf("usage: config set-api-key <key>")
			}
			config.GeminiAPIKey = key
			if err := cfg.SaveConfig(config); err != nil {
				return err
			}
			fmt.Println(t.GetMessage("config_saved", 0, nil))
			return nil
		},
	}
}

func (c *Command) setTokenCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-token",
		Usage:     t.GetMessage("config_set_token_usage", 0, nil),
		ArgsUsage: "<token>",
		Action: func(ctx context.Context, command *cli.Command) error {
			token := command.Args().First()
			if token == "" {
				return fmt.Errorf("usage: config set-token <token>")
			}
			config.GitHubToken = token
			if err := cfg.SaveConfig(config); err != nil {
				return err
			}
			fmt.Println(t.GetMessage("config_saved", 0, nil))
			return nil
		},
	}
}

func (c *Command) setLangCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-lang",
		Usage:     t.GetMessage("config_set_lang_usage", 0, nil),
		ArgsUsage: "<lang>",
		Action: func(ctx context.Context, command *cli.Command) error {
			lang := command.Args().First()
			if lang == "" {
				return fmt.Errorf("usage: config set-lang <lang>")
			}
			if err := t.SetLanguage(lang); err != nil {
				return err
			}
			config.Language = lang
			if err := cfg.SaveConfig(config); err != nil {
				return err
			}
			fmt.Println(t.GetMessage("config_saved", 0, nil))
			return nil
		},
	}
}

func maskSecret(s string) string {
	if s == "" {
		return "(not set)"
	}
	if len(s) <= 8 {
		return "********"
	}
	return s[:4] + "..." + s[len(s)-4:]
}
