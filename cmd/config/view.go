package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"jira-worklog/internal/config"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "View the config file",
	Long:  `Displays the raw content of your jira-worklog configuration file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		config.PrintRaw(cfg)
		return nil
	},
}

func init() {
	ConfigCmd.AddCommand(viewCmd)
}
