// Package history appends rendered prompts and simulated responses to a
// flat-file log. The log is append-only and write-only from the
// rendering pipeline's perspective; a single synchronous write per run,
// no concurrent-writer coordination.
package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/teranos/promptforge/errors"
)

const dirPermissions = 0750

// Entry is one history record.
type Entry struct {
	Prompt    string
	Response  string
	Timestamp time.Time
}

// Append writes an entry to the log at path, creating parent
// directories as needed. A leading "~/" in path expands to the user's
// home directory.
func Append(path string, entry Entry) (string, error) {
	expanded, err := ExpandHome(path)
	if err != nil {
		return "", err
	}

	if dir := filepath.Dir(expanded); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return "", errors.Wrapf(err, "failed to create history directory %s", dir)
		}
	}

	f, err := os.OpenFile(expanded, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return "", errors.Wrapf(err, "failed to open history log %s", expanded)
	}
	defer f.Close()

	if _, err := f.WriteString(entry.format()); err != nil {
		return "", errors.Wrapf(err, "failed to write history log %s", expanded)
	}
	return expanded, nil
}

func (e Entry) format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n=== %s ===\n", e.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Prompt:\n%s\n\n", e.Prompt)
	if e.Response != "" {
		fmt.Fprintf(&b, "Response:\n%s\n\n", e.Response)
	}
	b.WriteString("---\n")
	return b.String()
}

// ExpandHome resolves a leading "~/" to the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "failed to resolve home directory")
		}
		if path == "~" {
			return home, nil
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
