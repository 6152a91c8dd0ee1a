// Package simulate fabricates mock AI responses for a rendered prompt
// by matching it against an ordered list of regex rules. The first rule
// whose pattern matches anywhere in the prompt, case-insensitively,
// supplies the response template.
package simulate

import (
	"encoding/json"
	"os"
	"regexp"

	"github.com/teranos/promptforge/errors"
)

// Rule pairs a pattern with a response template. The response may
// itself contain {{name}} placeholders, rendered against the same
// variable mapping as the prompt.
type Rule struct {
	Regex    string `json:"regex"`
	Response string `json:"response"`

	pattern *regexp.Regexp
}

// RuleSet is an ordered sequence of rules, evaluated first-match-wins.
type RuleSet []Rule

// compile builds the case-insensitive, unanchored matcher for a rule.
func (r *Rule) compile() error {
	pattern, err := regexp.Compile("(?i)" + r.Regex)
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidRulePattern, "pattern %q: %v", r.Regex, err)
	}
	r.pattern = pattern
	return nil
}

// Builtin returns the default rule set: five topic rules and a final
// catch-all so every prompt gets a response.
func Builtin() RuleSet {
	rules := RuleSet{
		{
			Regex:    `code|programming|python|javascript|function|class|implement`,
			Response: "Here's a code implementation:\n\n```\n# Implementation\n```\n\nThis demonstrates the functionality.",
		},
		{
			Regex:    `explain|what is|describe|definition`,
			Response: "Explanation:\n\nKey points:\n1. First\n2. Second\n3. Third",
		},
		{
			Regex:    `list|enumerate|steps|how to`,
			Response: "Steps:\n\n1. First\n2. Second\n3. Third",
		},
		{
			Regex:    `debug|error|fix|problem`,
			Response: "Troubleshooting:\n\n**Problem:** [issue]\n**Solution:** [fix]\n**Explanation:** [why]",
		},
		{
			Regex:    `review|analyze|evaluate`,
			Response: "Analysis:\n\n**Strengths:** Point 1\n**Improvements:** Point 2",
		},
		{
			Regex:    `.*`,
			Response: "I understand. Here's a response addressing your needs.",
		},
	}

	for i := range rules {
		// Builtin patterns are fixed literals; compilation cannot fail.
		if err := rules[i].compile(); err != nil {
			panic(err)
		}
	}
	return rules
}

// ruleFile is the on-disk shape of a custom rules file.
type ruleFile struct {
	Rules []Rule `json:"rules"`
}

// Load reads a custom rules file, fully replacing the builtin set. All
// patterns are compiled up front so a bad regex is a load-time
// configuration error, never deferred to match time.
func Load(path string) (RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read rules file %s", path)
	}

	var file ruleFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, errors.NewMalformedFileError(err, path)
	}

	rules := RuleSet(file.Rules)
	for i := range rules {
		if err := rules[i].compile(); err != nil {
			return nil, errors.Wrapf(err, "rules file %s, rule %d", path, i)
		}
	}
	return rules, nil
}
