package format

import (
	"fmt"
	"strings"

	"github.com/Attamusc/standup-cli/internal/commits"
	"github.com/Attamusc/standup-cli/internal/git"
)

// Format selects the rendering of the final report.
type Format string

// Supported output formats.
const (
	Plain    Format = "plain"
	Slack    Format = "slack"
	Markdown Format = "markdown"
)

// ParseFormat validates a format tag. It is called before any repository is
// scanned so a typo fails the run immediately instead of after the work.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case Plain:
		return Plain, nil
	case Slack:
		return Slack, nil
	case Markdown:
		return Markdown, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected plain, slack, or markdown)", raw)
	}
}

// Report holds everything the renderers need: the flattened per-repository
// block plus the interactive answers.
type Report struct {
	RepoLines []string
	Today     string
	Blockers  string
	Team      string
}

// RepoLines flattens repository summaries into the "Yesterday" block: a
// header with counts per repository followed by its grouped commit lines,
// with a blank line between repositories.
func RepoLines(summaries []*git.Summary) []string {
	var lines []string
	if len(summaries) == 0 {
		lines = append(lines, "No repositories scanned")
	}

	for _, summary := range summaries {
		lines = append(lines, fmt.Sprintf("%s (%d commits, %d files changed):",
			summary.Name, summary.CommitCount, summary.FilesChanged))
		lines = append(lines, commits.Summarize(summary.Commits)...)
		lines = append(lines, "")
	}

	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Render assembles the final report string for the requested format.
func Render(report Report, format Format) (string, error) {
	blockers := report.Blockers
	if blockers == "" {
		blockers = "None"
	}

	switch format {
	case Plain:
		return renderPlain(report, blockers), nil
	case Slack:
		return renderSlack(report, blockers), nil
	case Markdown:
		return renderMarkdown(report, blockers), nil
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}

func renderPlain(report Report, blockers string) string {
	var lines []string
	if report.Team != "" {
		lines = append(lines, "Team: "+report.Team)
	}
	lines = append(lines, "Yesterday:")
	lines = append(lines, report.RepoLines...)
	lines = append(lines, "Today: "+report.Today)
	lines = append(lines, "Blockers: "+blockers)
	return strings.Join(lines, "\n")
}

func renderSlack(report Report, blockers string) string {
	var lines []string
	if report.Team != "" {
		lines = append(lines, "*Team:* "+report.Team)
	}
	lines = append(lines, "*Yesterday:*")

	for _, line := range report.RepoLines {
		switch {
		case line == "":
			lines = append(lines, "")
		case strings.HasSuffix(line, ":"):
			lines = append(lines, "*"+line+"*")
		case strings.HasPrefix(line, "- "):
			lines = append(lines, line)
		default:
			lines = append(lines, "- "+line)
		}
	}

	lines = append(lines, "*Today:* "+report.Today)
	lines = append(lines, "*Blockers:* "+blockers)
	return strings.Join(lines, "\n")
}

func renderMarkdown(report Report, blockers string) string {
	lines := []string{"### Daily Standup", ""}
	if report.Team != "" {
		lines = append(lines, "**Team:**", report.Team, "")
	}
	lines = append(lines, "**Yesterday:**")
	lines = append(lines, report.RepoLines...)
	lines = append(lines, "", "**Today:**", report.Today, "", "**Blockers:**", blockers)
	return strings.Join(lines, "\n")
}
