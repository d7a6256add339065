package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/uniliner/SecurityParser/internal/ai/gemini"
	"github.com/uniliner/SecurityParser/internal/cache"
	"github.com/uniliner/SecurityParser/internal/cli/command/analyze"
	cachecmd "github.com/uniliner/SecurityParser/internal/cli/command/cache"
	"github.com/uniliner/SecurityParser/internal/cli/command/config"
	"github.com/uniliner/SecurityParser/internal/cli/command/prcontext"
	"github.com/uniliner/SecurityParser/internal/cli/command/scan"
	"github.com/uniliner/SecurityParser/internal/cli/command/search"
	"github.com/uniliner/SecurityParser/internal/cli/registry"
	cfg "github.com/uniliner/SecurityParser/internal/config"
	"github.com/uniliner/SecurityParser/internal/i18n"
	"github.com/uniliner/SecurityParser/internal/logger"
	"github.com/uniliner/SecurityParser/internal/ports"
	"github.com/uniliner/SecurityParser/internal/prompt"
	"github.com/uniliner/SecurityParser/internal/services"
	"github.com/uniliner/SecurityParser/internal/vcs/github"
	"github.com/uniliner/SecurityParser/internal/version"
)

func main() {
	logger.Initialize(hasFlag("--debug"), hasFlag("--verbose"))

	app, cleanup, err := initializeApp()
	if err != nil {
		log.Fatalf("Error initializing the cli: %v", err)
	}

	err = app.Run(context.Background(), os.Args)
	cleanup()
	if err != nil {
		log.Fatal(err)
	}
}

func hasFlag(name string) bool {
	for _, arg := range os.Args[1:] {
		if arg == name {
			return true
		}
	}
	return false
}

func initializeApp() (*cli.Command, func(), error) {
	cleanup := func() {}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, cleanup, fmt.Errorf("could not resolve the user home directory: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, cleanup, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language)
	if err != nil {
		log.Fatalf("Error loading translations: %v", err)
	}

	if err := cfg.SaveConfig(cfgApp); err != nil {
		return nil, cleanup, err
	}

	prCache, err := cache.NewCache(time.Duration(cfgApp.CacheTTLHours) * time.Hour)
	if err != nil {
		return nil, cleanup, err
	}

	ghClient := github.NewGitHubClient(cfgApp.GitHubToken, prCache)

	ctx := context.Background()
	var invoker ports.ModelInvoker
	if cfgApp.GeminiAPIKey == "" {
		log.Println("Gemini is not configured. You can set it up with 'security-parser config set-api-key'")
	} else {
		geminiInvoker, err := gemini.NewGeminiInvoker(ctx, cfgApp.GeminiAPIKey, cfgApp.GeminiModel, prompt.SystemInstruction)
		if err != nil {
			log.Printf("Warning: could not initialize the Gemini client: %v", err)
		} else {
			invoker = geminiInvoker
			cleanup = func() {
				if err := geminiInvoker.Close(); err != nil {
					log.Printf("Warning: could not close the Gemini client: %v", err)
				}
			}
		}
	}

	analysisService := services.NewAnalysisService(ghClient, invoker)
	contextService := services.NewContextService(ghClient)

	registerCommand := registry.NewRegistry(cfgApp, translations)

	if err := registerCommand.Register("analyze", analyze.NewCommand(analysisService)); err != nil {
		log.Fatalf("Error registering the 'analyze' command: %v", err)
	}

	if err := registerCommand.Register("search", search.NewCommand(ghClient)); err != nil {
		log.Fatalf("Error registering the 'search' command: %v", err)
	}

	if err := registerCommand.Register("scan", scan.NewCommand(ghClient)); err != nil {
		log.Fatalf("Error registering the 'scan' command: %v", err)
	}

	if err := registerCommand.Register("pr-context", prcontext.NewCommand(contextService)); err != nil {
		log.Fatalf("Error registering the 'pr-context' command: %v", err)
	}

	if err := registerCommand.Register("config", config.NewCommand()); err != nil {
		log.Fatalf("Error registering the 'config' command: %v", err)
	}

	if err := registerCommand.Register("cache", cachecmd.NewCommand(prCache)); err != nil {
		log.Fatalf("Error registering the 'cache' command: %v", err)
	}

	commands := registerCommand.CreateCommands()

	helpCommand := &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}
	commands = append(commands, helpCommand)

	return &cli.Command{
		Name:        "security-parser",
		Usage:       translations.GetMessage("app_usage", 0, nil),
		Version:     version.Version,
		Description: translations.GetMessage("app_description", 0, nil),
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Usage: "enable debug logging"},
			&cli.BoolFlag{Name: "verbose", Usage: "enable verbose logging"},
		},
		Commands:              commands,
		EnableShellCompletion: true,
	}, cleanup, nil
}
