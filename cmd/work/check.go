package work

import (
	"fmt"

	"github.com/spf13/cobra"

	"jira-worklog/internal/report"
	"jira-worklog/internal/worklog"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "List matching issues with no time logged by you",
	Long:  `Runs the worklog search and reports the issues where your login has no worklog.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := report.Setup(Options(cmd), cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		result, err := report.Collect(cmd.Context(), env.Client, env.Config.Login, env.Query)
		if err != nil {
			return fmt.Errorf("checking work: %w", err)
		}

		out := cmd.OutOrStdout()
		missing := worklog.Missing(result)
		if len(missing) == 0 {
			fmt.Fprintln(out, "All issues have work logged by you.")
			return nil
		}
		fmt.Fprintln(out, "You have not logged work for the following issues:")
		for _, t := range missing {
			fmt.Fprintf(out, "- %s: %s\n", t.Key, t.Name)
		}
		return nil
	},
}

func init() {
	WorkCmd.AddCommand(checkCmd)
	AddFilterFlags(checkCmd)
}
