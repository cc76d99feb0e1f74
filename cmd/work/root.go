package work

import (
	"github.com/spf13/cobra"

	"jira-worklog/internal/report"
)

var WorkCmd = &cobra.Command{
	Use:   "work",
	Short: "Inspect your Jira worklogs",
	Long:  `Commands for checking the time you logged on the issues matched by a JQL filter.`,
}

// AddFilterFlags registers the flags that select the JQL for a run.
func AddFilterFlags(c *cobra.Command) {
	c.Flags().String("query", "", "JQL filter (overrides --project/--from/--to and the configured query)")
	c.Flags().StringP("project", "p", "", "Restrict to a project key")
	c.Flags().String("from", "", "First worklog date, YYYY-MM-DD")
	c.Flags().String("to", "", "Last worklog date, YYYY-MM-DD")
}

// Options reads the flags registered by AddFilterFlags plus --verbose.
func Options(c *cobra.Command) report.Options {
	var o report.Options
	o.Query, _ = c.Flags().GetString("query")
	o.Project, _ = c.Flags().GetString("project")
	o.From, _ = c.Flags().GetString("from")
	o.To, _ = c.Flags().GetString("to")
	o.Verbose, _ = c.Flags().GetBool("verbose")
	return o
}
