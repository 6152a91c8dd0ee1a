// Package display formats pipeline output for the terminal: the
// rendered prompt, an optional simulated response and token estimate,
// in plain text, Markdown, or JSON.
package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/teranos/promptforge/errors"
)

// Supported output formats.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Result is the hollow data handed to the formatter: the rendering
// pipeline has no opinion on presentation.
type Result struct {
	Prompt    string    `json:"prompt"`
	Timestamp time.Time `json:"timestamp"`
	Tokens    int       `json:"tokens,omitempty"`
	Response  string    `json:"response,omitempty"`
}

// Format renders the result in the named format.
func Format(format string, res Result) (string, error) {
	switch format {
	case FormatText:
		return formatText(res), nil
	case FormatMarkdown:
		return formatMarkdown(res), nil
	case FormatJSON:
		out, err := MarshalJSON(res)
		if err != nil {
			return "", errors.Wrap(err, "failed to marshal result")
		}
		return string(out), nil
	default:
		return "", errors.Newf("unknown output format %q (use text, markdown, or json)", format)
	}
}

func formatText(res Result) string {
	var b strings.Builder
	b.WriteString(res.Prompt)
	if res.Tokens > 0 {
		fmt.Fprintf(&b, "\n\n[Tokens: %d]", res.Tokens)
	}
	if res.Response != "" {
		fmt.Fprintf(&b, "\n\n---\n%s", res.Response)
	}
	return b.String()
}

func formatMarkdown(res Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Prompt\n\n%s", res.Prompt)
	if res.Tokens > 0 {
		fmt.Fprintf(&b, "\n\n## Metadata\n- Tokens: %d\n- Timestamp: %s",
			res.Tokens, res.Timestamp.Format("2006-01-02 15:04:05"))
	}
	if res.Response != "" {
		fmt.Fprintf(&b, "\n\n# Simulated Response\n\n%s", res.Response)
	}
	return b.String()
}
