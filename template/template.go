// Package template provides placeholder parsing and rendering for prompt
// templates. Templates reference variables using two-brace syntax:
//   - {{name}} - a required variable
//   - {{name|default="value"}} - a variable with a literal default
//
// Names match [A-Za-z0-9_]+. Any other bracketed content is not a
// placeholder and passes through to the rendered output unchanged.
package template

import (
	"regexp"
	"strings"
)

// Placeholder is a declared variable reference found in a template.
type Placeholder struct {
	// Name of the variable, matches [A-Za-z0-9_]+
	Name string

	// Default is the declared literal default, if any
	Default string

	// HasDefault distinguishes an empty-string default from no default
	HasDefault bool
}

// Required reports whether the placeholder must be supplied a value.
func (p Placeholder) Required() bool {
	return !p.HasDefault
}

// Template represents parsed template text with placeholders.
type Template struct {
	raw      string
	segments []segment
}

// segment is either a literal run of text or a placeholder occurrence.
// For placeholders, raw keeps the original {{...}} text so rendering
// can fall back to it when a name has no mapped value.
type segment struct {
	literal bool
	content string // for literal: the text; for placeholder: the variable name
	raw     string
	def     string
	hasDef  bool
}

// Matches {{name}} or {{name|default="literal"}}
var placeholderPattern = regexp.MustCompile(`\{\{([A-Za-z0-9_]+)(?:\|default="([^"]*)")?\}\}`)

// Parse creates a Template from raw template text. Parsing never fails:
// malformed brace sequences are simply literal text.
func Parse(raw string) *Template {
	t := &Template{raw: raw}

	matches := placeholderPattern.FindAllStringSubmatchIndex(raw, -1)
	if len(matches) == 0 {
		t.segments = []segment{{literal: true, content: raw}}
		return t
	}

	var segments []segment
	lastEnd := 0

	for _, match := range matches {
		// match[0]:match[1] is the full {{...}} occurrence
		// match[2]:match[3] is the name group
		// match[4]:match[5] is the default group (-1 when absent)
		start, end := match[0], match[1]

		if start > lastEnd {
			segments = append(segments, segment{
				literal: true,
				content: raw[lastEnd:start],
			})
		}

		seg := segment{
			content: raw[match[2]:match[3]],
			raw:     raw[start:end],
		}
		if match[4] >= 0 {
			seg.def = raw[match[4]:match[5]]
			seg.hasDef = true
		}
		segments = append(segments, seg)

		lastEnd = end
	}

	if lastEnd < len(raw) {
		segments = append(segments, segment{
			literal: true,
			content: raw[lastEnd:],
		})
	}

	t.segments = segments
	return t
}

// Placeholders returns the distinct placeholders declared in the
// template, in first-seen order. When a name occurs more than once, the
// first occurrence's default (or lack of one) wins.
func (t *Template) Placeholders() []Placeholder {
	var out []Placeholder
	seen := make(map[string]bool)

	for _, seg := range t.segments {
		if seg.literal || seen[seg.content] {
			continue
		}
		seen[seg.content] = true
		out = append(out, Placeholder{
			Name:       seg.content,
			Default:    seg.def,
			HasDefault: seg.hasDef,
		})
	}
	return out
}

// Render substitutes every placeholder occurrence with its mapped value.
// Occurrences whose name is absent from values are left as their
// original literal text; rendering never fails. Missing values are a
// resolution-time concern, not a rendering one.
func (t *Template) Render(values map[string]string) string {
	var result strings.Builder
	result.Grow(len(t.raw) + len(t.raw)/2)

	for _, seg := range t.segments {
		if seg.literal {
			result.WriteString(seg.content)
			continue
		}
		if value, ok := values[seg.content]; ok {
			result.WriteString(value)
		} else {
			result.WriteString(seg.raw)
		}
	}

	return result.String()
}

// Raw returns the original template text.
func (t *Template) Raw() string {
	return t.raw
}

// Render is a convenience for parsing and rendering in one step, used
// for simulation response templates.
func Render(raw string, values map[string]string) string {
	return Parse(raw).Render(values)
}
