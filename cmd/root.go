package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "standup-cli",
	Short: "Generate your daily standup from git commits",
	Long: `standup-cli builds a daily standup report from the last 24 hours of git
history. It scans one or more repositories, classifies commits by
conventional-commit type, asks for today's plan and blockers, and renders
the result as plain text, Slack markup, or markdown.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}
