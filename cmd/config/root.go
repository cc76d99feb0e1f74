package config

import (
	"github.com/spf13/cobra"
)

var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage jira-worklog configuration",
	Long: `Commands for managing the jira-worklog config file (~/.jira-worklog.yaml,
or the path in JLOG_CONFIG). Environment variables override the file.`,
}
