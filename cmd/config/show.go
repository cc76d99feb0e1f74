package config

import (
	"github.com/spf13/cobra"

	"jira-worklog/internal/config"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration (hiding the token)",
	Long:  `Displays the configuration after environment overrides, masking the API token.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Resolve()
		if err != nil {
			return err
		}
		config.PrintMasked(cfg)
		return nil
	},
}

func init() {
	ConfigCmd.AddCommand(showCmd)
}
