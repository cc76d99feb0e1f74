package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jira-worklog/internal/config"
	"jira-worklog/internal/jira"
	"jira-worklog/internal/logging"
	"jira-worklog/internal/output"
)

const fixBug = `{"key":"T-1","fields":{"summary":"Fix bug","worklog":{"worklogs":[
	{"author":{"emailAddress":"a@x.com","displayName":"A"},"timeSpentSeconds":3600},
	{"author":{"emailAddress":"b@x.com","displayName":"B"},"timeSpentSeconds":1800}]}}}`

// newEnv serves the given detail bodies behind a fake search endpoint.
func newEnv(t *testing.T, details ...string) Env {
	t.Helper()
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/search" {
			var refs []jira.IssueRef
			for i := range details {
				refs = append(refs, jira.IssueRef{Self: fmt.Sprintf("%s/detail/%d", srv.URL, i)})
			}
			json.NewEncoder(w).Encode(jira.SearchResult{Issues: refs})
			return
		}
		var i int
		if _, err := fmt.Sscanf(r.URL.Path, "/detail/%d", &i); err != nil || i >= len(details) {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(details[i]))
	}))
	t.Cleanup(srv.Close)

	cfg := config.Config{Login: "a@x.com", Token: "t", Domain: "acme"}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := jira.NewClient(cfg, logger)
	client.BaseURL = srv.URL
	return Env{Config: cfg, Query: jira.DefaultQuery, Client: client, Logger: logger}
}

func TestRun_WritesAggregatedFile(t *testing.T) {
	env := newEnv(t, fixBug)
	path := filepath.Join(t.TempDir(), "out.json")
	var out bytes.Buffer

	result, err := Run(context.Background(), env, output.Sink{Path: path, Out: &out, Err: io.Discard})

	require.NoError(t, err)
	require.Len(t, result.List, 1)
	assert.Equal(t, int64(3600), result.Total.Seconds())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"list": [{"key": "T-1", "name": "Fix bug", "worklogs": {"seconds": 3600, "minutes": 60, "hours": 1}}],
		"total": {"seconds": 3600, "minutes": 60, "hours": 1}
	}`, string(data))
	assert.Contains(t, out.String(), "file written")
}

func TestRun_DetailFailureWritesNothing(t *testing.T) {
	env := newEnv(t, fixBug, "<html>502</html>", fixBug)
	path := filepath.Join(t.TempDir(), "out.json")
	var out bytes.Buffer

	_, err := Run(context.Background(), env, output.Sink{Log: true, Path: path, Out: &out, Err: io.Discard})

	require.Error(t, err)
	assert.Empty(t, out.String())
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_EmptySearch(t *testing.T) {
	env := newEnv(t)
	var out bytes.Buffer

	result, err := Run(context.Background(), env, output.Sink{Log: true, Out: &out})

	require.NoError(t, err)
	assert.Empty(t, result.List)
	assert.Equal(t, int64(0), result.Total.Seconds())
	assert.Contains(t, out.String(), `"list": []`)
}

func TestCollect_KeepsSearchOrder(t *testing.T) {
	second := `{"key":"T-2","fields":{"summary":"Second","worklog":{"worklogs":[
		{"author":{"emailAddress":"a@x.com","displayName":"A"},"timeSpentSeconds":60}]}}}`
	env := newEnv(t, second, fixBug)

	result, err := Collect(context.Background(), env.Client, env.Config.Login, env.Query)

	require.NoError(t, err)
	require.Len(t, result.List, 2)
	assert.Equal(t, "T-2", result.List[0].Key)
	assert.Equal(t, "T-1", result.List[1].Key)
	assert.Equal(t, int64(3660), result.Total.Seconds())
}

func TestSetup_SelectsQuery(t *testing.T) {
	t.Setenv("JLOG_CONFIG", filepath.Join(t.TempDir(), "none.yaml"))
	t.Setenv(config.EnvLogin, "a@x.com")
	t.Setenv(config.EnvToken, "tok")
	t.Setenv(config.EnvDomain, "acme")
	t.Setenv(config.EnvBaseURL, "")

	env, err := Setup(Options{Project: "TILL", From: "2020-07-01"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, `project = "TILL" AND worklogAuthor = currentUser() AND worklogDate >= 2020-07-01`, env.Query)
	assert.Equal(t, "a@x.com", env.Config.Login)
	assert.Equal(t, "https://acme.atlassian.net/rest/api/3", env.Client.BaseURL)

	env, err = Setup(Options{Query: "key = T-1", Project: "TILL"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "key = T-1", env.Query)

	_, err = Setup(Options{To: "yesterday"}, io.Discard)
	require.Error(t, err)
}

func TestRun_SummaryOnlyWhenVerbose(t *testing.T) {
	for _, verbose := range []bool{false, true} {
		env := newEnv(t, fixBug)
		var stderr bytes.Buffer
		env.Logger = logging.New(&stderr, verbose)

		_, err := Run(context.Background(), env, output.Sink{Out: io.Discard, Err: io.Discard})

		require.NoError(t, err)
		if verbose {
			assert.Contains(t, stderr.String(), "worklogs aggregated")
		} else {
			assert.Empty(t, stderr.String())
		}
	}
}
