package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Attamusc/standup-cli/internal/clipboard"
	"github.com/Attamusc/standup-cli/internal/config"
	"github.com/Attamusc/standup-cli/internal/format"
	"github.com/Attamusc/standup-cli/internal/git"
	"github.com/Attamusc/standup-cli/internal/input"
	"github.com/Attamusc/standup-cli/internal/prompt"
	"github.com/spf13/cobra"
)

var (
	genFormat      string
	genTeam        string
	genRepos       []string
	genNoCopy      bool
	genVerbose     bool
	genQuiet       bool
	genConcurrency int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a standup report from the last 24 hours of commits",
	Long: `Generate scans the configured repositories for commits from the last 24
hours, groups them by conventional-commit type, asks what you are working on
today and whether anything is blocking you, and prints the assembled report.

The report is copied to the clipboard unless --no-copy (or copy=false in
.standuprc) disables it.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&genFormat, "format", "f", "", "Output format: plain, slack, or markdown (default: plain)")
	generateCmd.Flags().StringVarP(&genTeam, "team", "t", "", "Team name for the standup header")
	generateCmd.Flags().StringArrayVar(&genRepos, "repo", nil, "Repository path to scan (repeatable). Defaults to cwd or .standuprc repos.")
	generateCmd.Flags().BoolVar(&genNoCopy, "no-copy", false, "Disable clipboard auto-copy")
	generateCmd.Flags().BoolVar(&genVerbose, "verbose", false, "Enable verbose progress output")
	generateCmd.Flags().BoolVar(&genQuiet, "quiet", false, "Suppress progress output")
	generateCmd.Flags().IntVar(&genConcurrency, "concurrency", 4, "Number of concurrent repository scans")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg := config.Load(config.Flags{
		Format:  genFormat,
		Team:    genTeam,
		NoCopy:  genNoCopy,
		Verbose: genVerbose,
		Quiet:   genQuiet,
	})

	// Validate the format tag before any repository work happens.
	outFormat, err := format.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg)

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}
	repoPaths := input.ResolveRepoPaths(genRepos, cfg.Repos, workDir)

	fmt.Println()
	fmt.Println(titleStyle.Render("  standup-cli"))
	fmt.Println(subtitleStyle.Render("  Generate your daily standup in seconds"))
	fmt.Println()

	fmt.Println(dimStyle.Render("  Scanning git commits from last 24hrs..."))
	logger.Debug("Resolved repository paths", "count", len(repoPaths))

	summaries, skipped := scanRepos(ctx, logger, git.NewSummarizer(), genConcurrency, repoPaths)

	for _, summary := range summaries {
		fmt.Println(successStyle.Render(fmt.Sprintf("  %s: %d commit(s), %d file(s) changed",
			summary.Name, summary.CommitCount, summary.FilesChanged)))
	}
	for _, repoPath := range skipped {
		fmt.Println(warnStyle.Render("  Warning: skipped non-git repo " + repoPath))
	}
	fmt.Println()

	reader := prompt.New(cmd.InOrStdin(), os.Stdout)

	today, err := reader.Ask(boldStyle.Render("What are you working on today?"))
	if err != nil {
		return err
	}
	fmt.Println()

	blockers, err := reader.Ask(boldStyle.Render(`Any blockers? (press Enter for "None")`))
	if err != nil {
		return err
	}
	fmt.Println()

	if today == "" {
		today = "(not specified)"
	}

	output, err := format.Render(format.Report{
		RepoLines: format.RepoLines(summaries),
		Today:     today,
		Blockers:  blockers,
		Team:      cfg.Team,
	}, outFormat)
	if err != nil {
		return err
	}

	fmt.Println(divider())
	fmt.Println(headerStyle.Render("  Your Standup ") + accentStyle.Render("["+string(outFormat)+"]"))
	fmt.Println()
	for _, line := range strings.Split(output, "\n") {
		fmt.Println("  " + line)
	}
	fmt.Println()
	fmt.Println(divider())
	fmt.Println()
	fmt.Println(subtitleStyle.Render("  Tip: use --format slack | markdown | plain"))
	fmt.Println()

	if cfg.Copy {
		if err := clipboard.Copy(output); err != nil {
			logger.Debug("Clipboard copy failed", "error", err)
			fmt.Println(warnStyle.Render("  Warning: clipboard copy unavailable"))
		} else {
			fmt.Println(successStyle.Render("  Copied standup to clipboard"))
		}
		fmt.Println()
	}

	return nil
}
