package jira

import (
	"fmt"
	"strings"
	"time"
)

// DefaultQuery selects the current user's worklogs for the current month.
const DefaultQuery = "worklogAuthor = currentUser() AND worklogDate >= startOfMonth() AND worklogDate <= endOfMonth()"

const dateLayout = "2006-01-02"

// BuildQuery constructs a JQL filter over the current user's worklogs.
// project, from and to may each be empty; from and to are YYYY-MM-DD.
// With no arguments at all it returns "" so the caller can fall back.
func BuildQuery(project, from, to string) (string, error) {
	if project == "" && from == "" && to == "" {
		return "", nil
	}

	var parts []string
	if project != "" {
		parts = append(parts, fmt.Sprintf("project = %q", project))
	}
	parts = append(parts, "worklogAuthor = currentUser()")

	for _, bound := range []struct {
		op, value string
	}{{">=", from}, {"<=", to}} {
		if bound.value == "" {
			continue
		}
		if _, err := time.Parse(dateLayout, bound.value); err != nil {
			return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", bound.value, err)
		}
		parts = append(parts, fmt.Sprintf("worklogDate %s %s", bound.op, bound.value))
	}

	return strings.Join(parts, " AND "), nil
}

// SelectQuery picks the JQL for a run: an explicit query wins, then the
// built filter, then the configured default, then DefaultQuery.
func SelectQuery(explicit, built, configured string) string {
	for _, q := range []string{explicit, built, configured} {
		if q != "" {
			return q
		}
	}
	return DefaultQuery
}
