package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"jira-worklog/cmd/work"
	"jira-worklog/internal/jira"
	"jira-worklog/internal/report"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "List the issues matched by the JQL filter",
	Long:  `Runs only the search step and prints the key and detail URL of every match.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := report.Setup(work.Options(cmd), cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		refs, err := env.Client.Search(cmd.Context(), env.Query)
		if err != nil {
			return err
		}
		printRefs(cmd.OutOrStdout(), refs)
		return nil
	},
}

func init() {
	work.AddFilterFlags(searchCmd)
}

// printRefs prints issue references in a formatted table.
func printRefs(w io.Writer, refs []jira.IssueRef) {
	fmt.Fprintf(w, "%-15s\t%s\n", "KEY", "URL")
	for _, ref := range refs {
		fmt.Fprintf(w, "%-15s\t%s\n", ref.Key, ref.Self)
	}
}
