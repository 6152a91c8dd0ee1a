package display

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/promptforge/template"
)

var testTime = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

func TestFormatText(t *testing.T) {
	out, err := Format(FormatText, Result{Prompt: "hello", Timestamp: testTime})
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestFormatTextWithTokensAndResponse(t *testing.T) {
	out, err := Format(FormatText, Result{
		Prompt:    "hello world",
		Timestamp: testTime,
		Tokens:    2,
		Response:  "I understand.",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "hello world")
	assert.Contains(t, out, "[Tokens: 2]")
	assert.Contains(t, out, "---\nI understand.")
}

func TestFormatMarkdown(t *testing.T) {
	out, err := Format(FormatMarkdown, Result{
		Prompt:    "hello",
		Timestamp: testTime,
		Tokens:    1,
		Response:  "resp",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "# Prompt\n\nhello")
	assert.Contains(t, out, "- Tokens: 1")
	assert.Contains(t, out, "- Timestamp: 2024-06-15 10:30:00")
	assert.Contains(t, out, "# Simulated Response\n\nresp")
}

func TestFormatJSON(t *testing.T) {
	out, err := Format(FormatJSON, Result{
		Prompt:    "hello",
		Timestamp: testTime,
		Response:  "resp",
	})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "hello", decoded["prompt"])
	assert.Equal(t, "resp", decoded["response"])
	// Zero token count is omitted entirely.
	_, hasTokens := decoded["tokens"]
	assert.False(t, hasTokens)
}

func TestFormatUnknown(t *testing.T) {
	_, err := Format("yaml", Result{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yaml")
}

func TestCheckListing(t *testing.T) {
	placeholders := template.Parse(`{{role|default="assistant"}} {{task}}`).Placeholders()

	out := CheckListing(placeholders)
	assert.Contains(t, out, "Template variables:")
	assert.Contains(t, out, "role")
	assert.Contains(t, out, `(default: "assistant")`)
	assert.Contains(t, out, "task")
	assert.Contains(t, out, "(required)")
}

func TestCheckListingEmpty(t *testing.T) {
	out := CheckListing(nil)
	assert.Contains(t, out, "(none)")
}
