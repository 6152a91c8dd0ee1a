package simulate

import (
	"github.com/teranos/promptforge/logger"
	"github.com/teranos/promptforge/template"
)

// Match scans the rules in order and returns the first whose pattern
// matches anywhere in the prompt. The second return is false when no
// rule matched; callers wanting a guaranteed response should end their
// set with a catch-all, as the builtin set does.
func (rs RuleSet) Match(prompt string) (*Rule, bool) {
	for i := range rs {
		if rs[i].pattern != nil && rs[i].pattern.MatchString(prompt) {
			logger.Infow("Matched simulation rule", "index", i, "pattern", rs[i].Regex)
			return &rs[i], true
		}
	}
	return nil, false
}

// Respond matches the prompt and renders the winning rule's response
// template against the given variable mapping. Returns false when no
// rule matched.
func (rs RuleSet) Respond(prompt string, values map[string]string) (string, bool) {
	rule, ok := rs.Match(prompt)
	if !ok {
		return "", false
	}
	return template.Render(rule.Response, values), true
}
