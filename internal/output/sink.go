// Package output writes a worklog.Result to the console and to a file.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"jira-worklog/internal/worklog"
)

// Sink holds the output switches for a run. The zero value emits nothing.
type Sink struct {
	Log  bool
	Path string

	Out io.Writer
	Err io.Writer
}

// Emit performs the console dump and the file write, each only when enabled.
// A failed file write is reported to Err and does not fail Emit; only a
// console dump that cannot be rendered returns an error.
func (s Sink) Emit(r worklog.Result) error {
	if s.Log {
		if err := s.dump(r); err != nil {
			return err
		}
	}
	if s.Path == "" {
		return nil
	}
	if err := WriteFile(s.Path, r); err != nil {
		fmt.Fprintf(s.errw(), "Error writing %s: %v\n", s.Path, err)
		return nil
	}
	fmt.Fprintln(s.out(), "file written -> ", s.Path)
	return nil
}

type logTask struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Worklogs string `json:"worklogs"`
}

type logResult struct {
	List  []logTask        `json:"list"`
	Total worklog.Duration `json:"total"`
}

// dump prints r with each task's worklogs rendered as a compact JSON string.
func (s Sink) dump(r worklog.Result) error {
	view := logResult{List: make([]logTask, 0, len(r.List)), Total: r.Total}
	for _, t := range r.List {
		wl, err := json.Marshal(t.Worklogs)
		if err != nil {
			return fmt.Errorf("failed to marshal worklogs for %s: %w", t.Key, err)
		}
		view.List = append(view.List, logTask{Key: t.Key, Name: t.Name, Worklogs: string(wl)})
	}
	data, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format result: %w", err)
	}
	fmt.Fprintln(s.out(), string(data))
	return nil
}

// Marshal renders r as JSON indented with four spaces.
func Marshal(r worklog.Result) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// WriteFile writes r to path, replacing any existing content.
func WriteFile(path string, r worklog.Result) error {
	data, err := Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (s Sink) out() io.Writer {
	if s.Out == nil {
		return os.Stdout
	}
	return s.Out
}

func (s Sink) errw() io.Writer {
	if s.Err == nil {
		return os.Stderr
	}
	return s.Err
}
