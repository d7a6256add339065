package scan

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	cfg "github.com/uniliner/SecurityParser/internal/config"
	"github.com/uniliner/SecurityParser/internal/i18n"
	"github.com/uniliner/SecurityParser/internal/ports"
	"github.com/uniliner/SecurityParser/internal/regex"
	"github.com/uniliner/SecurityParser/internal/scan"
)

type Command struct {
	trees ports.TreeLister
}

func NewCommand(trees ports.TreeLister) *Command {
	return &Command{trees: trees}
}

func (c *Command) CreateCommand(t *i18n.Translations, _ *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "scan",
		Usage: t.GetMessage("scan_command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "repo",
				Aliases:  []string{"r"},
				Usage:    t.GetMessage("analyze_repo_flag_usage", 0, nil),
				Required: true,
			},
			&cli.StringFlag{
				Name:  "ref",
				Usage: t.GetMessage("scan_ref_flag_usage", 0, nil),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   t.GetMessage("scan_output_flag_usage", 0, nil),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			m := regex.RepoFullName.FindStringSubmatch(command.String("repo"))
			if m == nil {
				return fmt.Errorf("%s", t.GetMessage("error_repo_format", 0, nil))
			}
			owner, repo := m[1], m[2]

			files, err := c.trees.ListTree(ctx, owner, repo, command.String("ref"))
			if err != nil {
				return err
			}

			paths := make([]string, 0, len(files))
			for _, f := range files {
				paths = append(paths, f.Path)
			}

			fmt.Println(scan.FormatTree(paths))

			report := scan.BuildReport(owner+"/"+repo, paths)
			fmt.Println(t.GetMessage("scan_total_findings", 0, map[string]interface{}{
				"Count": report.TotalFindings,
			}))
			for severity, count := range report.FindingsBySeverity {
				if count > 0 {
					fmt.Printf("%s: %d\n", severity, count)
				}
			}

			output := command.String("output")
			if output == "" {
				output = fmt.Sprintf("security_scan_%s_%s.json", owner, repo)
			}

			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode scan report: %w", err)
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("failed to write scan report: %w", err)
			}

			fmt.Println(t.GetMessage("scan_report_saved", 0, map[string]interface{}{
				"Path": output,
			}))
			return nil
		},
	}
}
