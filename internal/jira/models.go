package jira

// SearchResult is the body of GET /search. Pagination fields are ignored.
type SearchResult struct {
	Issues []IssueRef `json:"issues"`
}

// IssueRef is a minimal issue reference returned by search.
type IssueRef struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Self string `json:"self"`
}

type Issue struct {
	Key    string      `json:"key"`
	Fields IssueFields `json:"fields"`
}

type IssueFields struct {
	Summary string      `json:"summary"`
	Worklog WorklogPage `json:"worklog"`
}

// WorklogPage is the worklog block embedded in an issue's fields.
type WorklogPage struct {
	Worklogs []Worklog `json:"worklogs"`
}

type Worklog struct {
	Author           Author `json:"author"`
	TimeSpentSeconds int64  `json:"timeSpentSeconds"`
}

type Author struct {
	EmailAddress string `json:"emailAddress"`
	DisplayName  string `json:"displayName"`
}
