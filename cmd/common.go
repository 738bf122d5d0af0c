package cmd

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/Attamusc/standup-cli/internal/config"
	"github.com/Attamusc/standup-cli/internal/git"
)

// repoSummarizer is the part of git.Summarizer the scan loop needs.
// Narrowed to an interface so tests can inject canned summaries.
type repoSummarizer interface {
	Summarize(ctx context.Context, repoPath string) (*git.Summary, error)
}

// scanRepos scans every path with bounded concurrency. Results and skipped
// paths both come back in input order regardless of completion order: each
// goroutine writes only its own index.
func scanRepos(ctx context.Context, logger *slog.Logger, summarizer repoSummarizer,
	concurrency int, repoPaths []string) ([]*git.Summary, []string) {

	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]*git.Summary, len(repoPaths))
	semaphore := make(chan struct{}, concurrency)

	var completed atomic.Int32
	var wg sync.WaitGroup

	for i, repoPath := range repoPaths {
		wg.Add(1)
		go func(i int, repoPath string) {
			defer wg.Done()
			semaphore <- struct{}{}        // Acquire semaphore
			defer func() { <-semaphore }() // Release semaphore

			summary, err := summarizer.Summarize(ctx, repoPath)
			if err != nil {
				logger.Debug("Skipping path", "path", repoPath, "error", err)
			} else {
				results[i] = summary
			}

			current := completed.Add(1)
			logger.Debug("Scanning repositories",
				"completed", int(current),
				"total", len(repoPaths))
		}(i, repoPath)
	}

	wg.Wait()

	var summaries []*git.Summary
	var skipped []string
	for i, summary := range results {
		if summary == nil {
			skipped = append(skipped, repoPaths[i])
			continue
		}
		summaries = append(summaries, summary)
	}
	return summaries, skipped
}

// setupLogger creates a logger configured for progress output
func setupLogger(cfg *config.Config) *slog.Logger {
	if cfg.Quiet {
		// Discard all log output when quiet
		return slog.New(slog.NewTextHandler(os.NewFile(0, os.DevNull), &slog.HandlerOptions{
			Level: slog.LevelError + 1, // Higher than any log level to discard all
		}))
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	// Use stderr for progress so stdout stays clean for output
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove time stamps for cleaner progress output
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}
