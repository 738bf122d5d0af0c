package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/Attamusc/standup-cli/internal/commits"
	"github.com/Attamusc/standup-cli/internal/config"
	"github.com/Attamusc/standup-cli/internal/git"
	"github.com/Attamusc/standup-cli/internal/input"
	"github.com/spf13/cobra"
)

var (
	scanRepoPaths   []string
	scanVerbose     bool
	scanQuiet       bool
	scanConcurrency int
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan repositories and print yesterday's commits without prompting",
	Long: `Scan runs the repository side of the standup only: it scans the configured
repositories for commits from the last 24 hours and prints the grouped
summary per repository. No questions are asked and nothing touches the
clipboard, so it is safe to run from scripts.`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringArrayVar(&scanRepoPaths, "repo", nil, "Repository path to scan (repeatable). Defaults to cwd or .standuprc repos.")
	scanCmd.Flags().BoolVar(&scanVerbose, "verbose", false, "Enable verbose progress output")
	scanCmd.Flags().BoolVar(&scanQuiet, "quiet", false, "Suppress progress output")
	scanCmd.Flags().IntVar(&scanConcurrency, "concurrency", 4, "Number of concurrent repository scans")
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg := config.Load(config.Flags{Verbose: scanVerbose, Quiet: scanQuiet})
	logger := setupLogger(cfg)

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}
	repoPaths := input.ResolveRepoPaths(scanRepoPaths, cfg.Repos, workDir)

	summaries, skipped := scanRepos(ctx, logger, git.NewSummarizer(), scanConcurrency, repoPaths)

	for _, repoPath := range skipped {
		fmt.Println(warnStyle.Render("Warning: skipped non-git repo " + repoPath))
	}

	for i, summary := range summaries {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s (%d commits, %d files changed):\n",
			summary.Name, summary.CommitCount, summary.FilesChanged)
		for _, line := range commits.Summarize(summary.Commits) {
			fmt.Println(line)
		}
	}

	if len(summaries) == 0 {
		fmt.Println("No repositories scanned")
	}

	return nil
}
