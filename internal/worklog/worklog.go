// Package worklog turns fetched Jira issues into per-issue and overall time
// totals for a single author.
package worklog

import (
	"encoding/json"

	"jira-worklog/internal/jira"
)

// Duration is an amount of logged time. Only seconds are stored; minutes
// and hours are always derived from them.
type Duration struct {
	seconds int64
}

// Seconds returns a Duration of s seconds.
func Seconds(s int64) Duration {
	return Duration{seconds: s}
}

func (d Duration) Seconds() int64 { return d.seconds }

func (d Duration) Minutes() float64 { return float64(d.seconds) / 60 }

func (d Duration) Hours() float64 { return float64(d.seconds) / 3600 }

// Add returns the sum of d and o.
func (d Duration) Add(o Duration) Duration {
	return Duration{seconds: d.seconds + o.seconds}
}

type durationJSON struct {
	Seconds int64   `json:"seconds"`
	Minutes float64 `json:"minutes"`
	Hours   float64 `json:"hours"`
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(durationJSON{
		Seconds: d.Seconds(),
		Minutes: d.Minutes(),
		Hours:   d.Hours(),
	})
}

// UnmarshalJSON reads the seconds field; minutes and hours are ignored
// since they are derived.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var v durationJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	d.seconds = v.Seconds
	return nil
}

// TaskSummary is the time one author logged on one issue.
type TaskSummary struct {
	Key      string   `json:"key"`
	Name     string   `json:"name"`
	Worklogs Duration `json:"worklogs"`
}

// Result is the output of one run.
type Result struct {
	List  []TaskSummary `json:"list"`
	Total Duration      `json:"total"`
}

// Summarize sums the worklogs on issue whose author email equals email.
// The comparison is exact and case-sensitive.
func Summarize(issue jira.Issue, email string) TaskSummary {
	var sum Duration
	for _, wl := range issue.Fields.Worklog.Worklogs {
		if wl.Author.EmailAddress != email {
			continue
		}
		sum = sum.Add(Seconds(wl.TimeSpentSeconds))
	}
	return TaskSummary{
		Key:      issue.Key,
		Name:     issue.Fields.Summary,
		Worklogs: sum,
	}
}

// Aggregate summarizes every issue in order and totals the result.
func Aggregate(issues []jira.Issue, email string) Result {
	list := make([]TaskSummary, 0, len(issues))
	for _, issue := range issues {
		list = append(list, Summarize(issue, email))
	}
	return Result{List: list, Total: Total(list)}
}

// Total folds the per-issue durations starting from zero.
func Total(list []TaskSummary) Duration {
	var total Duration
	for _, t := range list {
		total = total.Add(t.Worklogs)
	}
	return total
}

// Missing returns the summaries with no time logged, preserving order.
func Missing(r Result) []TaskSummary {
	var out []TaskSummary
	for _, t := range r.List {
		if t.Worklogs.Seconds() == 0 {
			out = append(out, t)
		}
	}
	return out
}
