// Package report wires the resolved configuration, the Jira client, the
// aggregator and the output sink into one run.
package report

import (
	"context"
	"io"
	"log/slog"

	"jira-worklog/internal/config"
	"jira-worklog/internal/jira"
	"jira-worklog/internal/logging"
	"jira-worklog/internal/output"
	"jira-worklog/internal/worklog"
)

// Options are the command-line inputs that shape a run.
type Options struct {
	Query   string
	Project string
	From    string
	To      string
	Verbose bool
}

// Env is everything a command needs after resolution.
type Env struct {
	Config config.Config
	Query  string
	Client *jira.Client
	Logger *slog.Logger
}

// Setup resolves configuration and the JQL for opts and builds the client.
// Diagnostics are logged to stderr.
func Setup(opts Options, stderr io.Writer) (Env, error) {
	logger := logging.New(stderr, opts.Verbose)

	cfg, err := config.Resolve()
	if err != nil {
		return Env{}, err
	}

	built, err := jira.BuildQuery(opts.Project, opts.From, opts.To)
	if err != nil {
		return Env{}, err
	}

	return Env{
		Config: cfg,
		Query:  jira.SelectQuery(opts.Query, built, cfg.Query),
		Client: jira.NewClient(cfg, logger),
		Logger: logger,
	}, nil
}

// Collect searches, fetches and aggregates the worklogs of login.
func Collect(ctx context.Context, c *jira.Client, login, jql string) (worklog.Result, error) {
	issues, err := jira.FetchIssues(ctx, c, jql)
	if err != nil {
		return worklog.Result{}, err
	}
	return worklog.Aggregate(issues, login), nil
}

// Run collects the result and hands it to sink. Nothing is emitted when
// collection fails.
func Run(ctx context.Context, env Env, sink output.Sink) (worklog.Result, error) {
	env.Logger.Debug("running report", "jql", env.Query, "login", env.Config.Login)

	result, err := Collect(ctx, env.Client, env.Config.Login, env.Query)
	if err != nil {
		return worklog.Result{}, err
	}
	env.Logger.Debug("worklogs aggregated",
		"issues", len(result.List),
		"seconds", result.Total.Seconds(),
		"hours", result.Total.Hours(),
	)

	if err := sink.Emit(result); err != nil {
		return result, err
	}
	return result, nil
}
