package jira

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"jira-worklog/internal/config"
)

// Client represents a Jira Cloud REST API client.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	auth   string
	logger *slog.Logger
}

// BaseURL returns the REST v3 root for an Atlassian Cloud subdomain.
func BaseURL(domain string) string {
	return fmt.Sprintf("https://%s.atlassian.net/rest/api/3", domain)
}

// NewClient creates a new Jira API client for cfg. cfg.BaseURL, when set,
// replaces the Cloud URL built from cfg.Domain. The HTTP client has no
// timeout; callers bound requests through the context.
func NewClient(cfg config.Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	base := BaseURL(cfg.Domain)
	if cfg.BaseURL != "" {
		base = strings.TrimRight(cfg.BaseURL, "/")
	}
	return &Client{
		BaseURL:    base,
		HTTPClient: &http.Client{},
		auth:       basicAuth(cfg.Login, cfg.Token),
		logger:     logger,
	}
}

func basicAuth(login, token string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(login+":"+token))
}

// SearchURL builds the search endpoint for jql.
func (c *Client) SearchURL(jql string) string {
	return c.BaseURL + "/search?jql=" + escapeComponent(jql)
}

// escapeComponent percent-encodes s for use as a query value, spaces as %20.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// FetchJSON performs an authenticated GET and decodes the body into v.
// The status code is not inspected: Jira error bodies are JSON too and
// decode into whatever fields they share with v.
func (c *Client) FetchJSON(ctx context.Context, rawURL string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", c.auth)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("jira response", "url", rawURL, "status", resp.StatusCode)

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", rawURL, err)
	}
	return nil
}

// Search returns the issues matching jql. A response without an issues
// field yields an empty slice.
func (c *Client) Search(ctx context.Context, jql string) ([]IssueRef, error) {
	var result SearchResult
	if err := c.FetchJSON(ctx, c.SearchURL(jql), &result); err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	if result.Issues == nil {
		return []IssueRef{}, nil
	}
	return result.Issues, nil
}

// Issue fetches the full record behind an issue's self link.
func (c *Client) Issue(ctx context.Context, self string) (Issue, error) {
	var issue Issue
	if err := c.FetchJSON(ctx, self, &issue); err != nil {
		return Issue{}, err
	}
	return issue, nil
}
