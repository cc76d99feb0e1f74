package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"jira-worklog/cmd/config"
	"jira-worklog/cmd/work"
	"jira-worklog/internal/output"
	"jira-worklog/internal/report"
)

var rootCmd = &cobra.Command{
	Use:   "jira-worklog",
	Short: "Sum the time you logged on Jira issues",
	Long: `jira-worklog searches Jira with a JQL filter, fetches every matching issue
and totals the worklogs written by your login, per issue and overall.

Credentials come from JLOG_LOGIN, JLOG_API_TOKEN and JLOG_API_DOMAIN
(a .env file in the working directory is honoured), or from the config file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := report.Setup(work.Options(cmd), cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		path, _ := cmd.Flags().GetString("write")
		logResult, _ := cmd.Flags().GetBool("log")
		sink := output.Sink{
			Log:  logResult,
			Path: path,
			Out:  cmd.OutOrStdout(),
			Err:  cmd.ErrOrStderr(),
		}

		_, err = report.Run(cmd.Context(), env, sink)
		return err
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command tree with args and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func init() {
	rootCmd.AddCommand(config.ConfigCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(work.WorkCmd)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")

	rootCmd.Flags().String("write", "", "Write the result as JSON to this path")
	rootCmd.Flags().Bool("log", false, "Print the result to the console")
	work.AddFilterFlags(rootCmd)
}
