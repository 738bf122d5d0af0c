package git

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/Attamusc/standup-cli/internal/commits"
)

// Summary describes the last day of activity in one repository.
type Summary struct {
	Name         string
	Path         string
	Commits      []commits.Record
	CommitCount  int
	FilesChanged int
}

// Summarizer scans repositories via the log query and decoder.
type Summarizer struct {
	run LogRunner
}

// NewSummarizer returns a Summarizer backed by the real git binary.
func NewSummarizer() *Summarizer {
	return &Summarizer{run: runLog}
}

// NewSummarizerWithRunner returns a Summarizer with a custom log runner.
func NewSummarizerWithRunner(run LogRunner) *Summarizer {
	return &Summarizer{run: run}
}

// Summarize scans a single repository path. A non-nil error means the path
// should be skipped: not a git repository, git missing, or unreadable. That
// is an expected condition for mixed path lists, so callers warn and move on
// rather than aborting the run.
func (s *Summarizer) Summarize(ctx context.Context, repoPath string) (*Summary, error) {
	absPath, err := filepath.Abs(repoPath)
	if err != nil {
		return nil, fmt.Errorf("resolve path %s: %w", repoPath, err)
	}

	name := repoDisplayName(absPath)

	raw, err := s.run(ctx, absPath)
	if err != nil {
		return nil, fmt.Errorf("git log in %s: %w", absPath, err)
	}

	records, err := DecodeLog(bytes.NewReader(bytes.TrimSpace(raw)))
	if err != nil {
		return nil, fmt.Errorf("decode log for %s: %w", absPath, err)
	}

	summary := &Summary{
		Name:        name,
		Path:        absPath,
		Commits:     records,
		CommitCount: len(records),
	}
	for _, record := range records {
		summary.FilesChanged += record.FilesChanged
	}
	return summary, nil
}

// repoDisplayName derives a short name from the final path segment, falling
// back to the absolute path when there is no usable segment (e.g. "/").
func repoDisplayName(absPath string) string {
	name := filepath.Base(absPath)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return absPath
	}
	return name
}
