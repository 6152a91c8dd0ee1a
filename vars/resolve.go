// Package vars merges template variable values from CLI assignments, a
// JSON variables file, template-declared defaults, and an optional
// interactive prompter, under a fixed priority order:
//
//	CLI > file > default > interactive
//
// A name supplied by a higher-priority source fully overrides any
// lower-priority value.
package vars

import (
	"sort"
	"strings"

	"github.com/teranos/promptforge/errors"
	"github.com/teranos/promptforge/logger"
	"github.com/teranos/promptforge/template"
)

// Prompter supplies a value for a still-unresolved placeholder, usually
// by asking the user on the terminal. It is injectable so the resolver
// can be tested without a real terminal. The returned value is used
// verbatim after trimming; an empty trimmed line falls back to the
// declared default when one exists, otherwise it is the literal empty
// string.
type Prompter func(name, def string, hasDefault bool) (string, error)

// Resolver merges values for a set of declared placeholders.
type Resolver struct {
	// CLI holds --var KEY=VALUE assignments (highest priority)
	CLI map[string]string

	// File holds values loaded from a JSON variables file
	File map[string]string

	// Prompter, when non-nil, is asked for names still unresolved
	// after CLI, file, and defaults
	Prompter Prompter
}

// Resolution is the outcome of a successful resolve: a complete value
// mapping plus the sorted set of supplied-but-undeclared names. Values
// includes every supplied name, declared or not; undeclared extras are
// warned about but stay usable, since simulation response templates may
// reference names the prompt template never declares.
type Resolution struct {
	Values map[string]string
	Unused []string
}

// UnresolvedError reports the full set of placeholders left without a
// value, sorted by name. It unwraps to errors.ErrUnresolvedVariables.
type UnresolvedError struct {
	Names []string
}

func (e *UnresolvedError) Error() string {
	return "missing variables: " + strings.Join(e.Names, ", ")
}

func (e *UnresolvedError) Unwrap() error {
	return errors.ErrUnresolvedVariables
}

// source is one step in the priority chain. Keeping the chain as an
// explicit ordered list keeps the priority order auditable.
type source struct {
	name   string
	lookup func(ph template.Placeholder) (string, bool)
}

func (r *Resolver) sources() []source {
	return []source{
		{"cli", func(ph template.Placeholder) (string, bool) {
			v, ok := r.CLI[ph.Name]
			return v, ok
		}},
		{"file", func(ph template.Placeholder) (string, bool) {
			v, ok := r.File[ph.Name]
			return v, ok
		}},
		{"default", func(ph template.Placeholder) (string, bool) {
			return ph.Default, ph.HasDefault
		}},
	}
}

// Resolve produces a complete value mapping covering every declared
// placeholder, or an UnresolvedError naming everything still missing
// after all sources were applied.
func (r *Resolver) Resolve(placeholders []template.Placeholder) (*Resolution, error) {
	values := make(map[string]string, len(placeholders))
	chain := r.sources()

	var pending []template.Placeholder
	for _, ph := range placeholders {
		resolved := false
		for _, src := range chain {
			if v, ok := src.lookup(ph); ok {
				values[ph.Name] = v
				logger.Debugw("Resolved variable", "name", ph.Name, "source", src.name)
				resolved = true
				break
			}
		}
		if !resolved {
			pending = append(pending, ph)
		}
	}

	if r.Prompter != nil {
		for _, ph := range pending {
			entered, err := r.Prompter(ph.Name, ph.Default, ph.HasDefault)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to read value for %q", ph.Name)
			}
			entered = strings.TrimSpace(entered)
			if entered == "" && ph.HasDefault {
				entered = ph.Default
			}
			values[ph.Name] = entered
			logger.Debugw("Resolved variable", "name", ph.Name, "source", "interactive")
		}
		pending = nil
	}

	if len(pending) > 0 {
		missing := make([]string, 0, len(pending))
		for _, ph := range pending {
			missing = append(missing, ph.Name)
		}
		sort.Strings(missing)
		return nil, &UnresolvedError{Names: missing}
	}

	// Fold all supplied names back in, file first so CLI wins for
	// duplicates. For declared names this restates the chain's pick;
	// for extras it makes them reachable from response templates.
	for _, supplied := range []map[string]string{r.File, r.CLI} {
		for name, value := range supplied {
			values[name] = value
		}
	}

	return &Resolution{
		Values: values,
		Unused: r.unused(placeholders),
	}, nil
}

// unused returns supplied names (CLI + file) that no declared
// placeholder references, sorted for deterministic reporting.
func (r *Resolver) unused(placeholders []template.Placeholder) []string {
	declared := make(map[string]bool, len(placeholders))
	for _, ph := range placeholders {
		declared[ph.Name] = true
	}

	seen := make(map[string]bool)
	var unused []string
	for _, supplied := range []map[string]string{r.CLI, r.File} {
		for name := range supplied {
			if !declared[name] && !seen[name] {
				seen[name] = true
				unused = append(unused, name)
			}
		}
	}
	sort.Strings(unused)
	return unused
}
