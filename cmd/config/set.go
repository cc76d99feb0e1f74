package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"jira-worklog/internal/config"
)

var setCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value (login, token, domain, query)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		value := args[1]

		if err := config.SetValue(key, value); err != nil {
			return fmt.Errorf("setting configuration value: %w", err)
		}
		if key == "token" {
			value = config.MaskToken(value)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration updated: %s = %s\n", key, value)
		return nil
	},
}

func init() {
	ConfigCmd.AddCommand(setCmd)
}
