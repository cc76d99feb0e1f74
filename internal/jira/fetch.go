package jira

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// FetchIssues runs the search for jql and then fetches every matching issue
// concurrently. The returned slice follows search order. The first failed
// fetch cancels the rest and fails the whole batch.
//
// There is no cap on in-flight requests; a large result set opens one
// request per issue.
func FetchIssues(ctx context.Context, c *Client, jql string) ([]Issue, error) {
	refs, err := c.Search(ctx, jql)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("search complete", "jql", jql, "issues", len(refs))

	issues := make([]Issue, len(refs))
	g, gctx := errgroup.WithContext(ctx)
	for i, ref := range refs {
		i, ref := i, ref
		g.Go(func() error {
			issue, err := c.Issue(gctx, ref.Self)
			if err != nil {
				return fmt.Errorf("failed to fetch issue %s: %w", refName(ref), err)
			}
			issues[i] = issue
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return issues, nil
}

func refName(ref IssueRef) string {
	if ref.Key != "" {
		return ref.Key
	}
	return ref.Self
}
