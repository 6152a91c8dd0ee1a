// Package tokens provides a rough token-count estimate for prompt text.
// This is not a real tokenizer: the estimate is word count scaled by a
// fixed multiplier, good enough for eyeballing prompt size.
package tokens

import "strings"

// wordsPerToken approximates how many tokens a whitespace-separated
// word expands to for typical English prompts.
const wordsPerToken = 1.3

// Estimate returns the approximate token count for text.
func Estimate(text string) int {
	return int(float64(len(strings.Fields(text))) * wordsPerToken)
}
