package template

import (
	"testing"
)

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     []Placeholder
	}{
		{
			name:     "literal only",
			template: "Hello world",
			want:     nil,
		},
		{
			name:     "single placeholder",
			template: "You are a {{role}}.",
			want:     []Placeholder{{Name: "role"}},
		},
		{
			name:     "placeholder with default",
			template: `Role: {{role|default="assistant"}}`,
			want:     []Placeholder{{Name: "role", Default: "assistant", HasDefault: true}},
		},
		{
			name:     "empty default is still a default",
			template: `{{suffix|default=""}}`,
			want:     []Placeholder{{Name: "suffix", Default: "", HasDefault: true}},
		},
		{
			name:     "mixed required and defaulted",
			template: `Role: {{role|default="assistant"}}` + "\nTask: {{task}}",
			want: []Placeholder{
				{Name: "role", Default: "assistant", HasDefault: true},
				{Name: "task"},
			},
		},
		{
			name:     "duplicate name listed once, first default wins",
			template: `{{role|default="expert"}} and {{role|default="novice"}}`,
			want:     []Placeholder{{Name: "role", Default: "expert", HasDefault: true}},
		},
		{
			name:     "first-seen order preserved",
			template: "{{b}} {{a}} {{b}} {{c}}",
			want:     []Placeholder{{Name: "b"}, {Name: "a"}, {Name: "c"}},
		},
		{
			name:     "malformed braces are not placeholders",
			template: "{{not a name}} {{role!}} {single}",
			want:     nil,
		},
		{
			name:     "underscores and digits in names",
			template: "{{user_name}} {{task2}}",
			want:     []Placeholder{{Name: "user_name"}, {Name: "task2"}},
		},
		{
			name:     "empty template",
			template: "",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.template).Placeholders()
			if len(got) != len(tt.want) {
				t.Fatalf("Placeholders() = %v, want %v", got, tt.want)
			}
			for i, p := range got {
				if p != tt.want[i] {
					t.Errorf("placeholder[%d] = %+v, want %+v", i, p, tt.want[i])
				}
			}
		})
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		template string
		values   map[string]string
		want     string
	}{
		{
			name:     "literal only",
			template: "Hello world",
			values:   map[string]string{},
			want:     "Hello world",
		},
		{
			name:     "single substitution",
			template: "You are a {{role}}.",
			values:   map[string]string{"role": "expert"},
			want:     "You are a expert.",
		},
		{
			name:     "defaulted syntax is fully replaced",
			template: `Role: {{role|default="assistant"}}` + "\nTask: {{task}}",
			values:   map[string]string{"role": "assistant", "task": "debug code"},
			want:     "Role: assistant\nTask: debug code",
		},
		{
			name:     "repeated occurrences all replaced",
			template: "{{name}}, meet {{name}}",
			values:   map[string]string{"name": "ALICE"},
			want:     "ALICE, meet ALICE",
		},
		{
			name:     "unknown name left as literal text",
			template: "keep {{unknown}} intact",
			values:   map[string]string{"other": "x"},
			want:     "keep {{unknown}} intact",
		},
		{
			name:     "empty value substitutes empty string",
			template: "a{{gap}}b",
			values:   map[string]string{"gap": ""},
			want:     "ab",
		},
		{
			name:     "malformed braces untouched",
			template: "{{not a name}} ok",
			values:   map[string]string{"not": "x"},
			want:     "{{not a name}} ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.template).Render(tt.values)
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Rendering output that contains no placeholder syntax is a fixed point:
// rendering it again yields the same text.
func TestRenderIdempotent(t *testing.T) {
	values := map[string]string{"role": "expert", "task": "review"}
	first := Parse("{{role}}: {{task}}").Render(values)

	second := Parse(first).Render(values)
	if first != second {
		t.Errorf("re-render changed output: %q -> %q", first, second)
	}
}

func TestRenderLeavesNoRecognizedSyntax(t *testing.T) {
	tmpl := Parse(`{{role|default="assistant"}} does {{task}} for {{task}}`)
	values := map[string]string{"role": "helper", "task": "triage"}

	got := tmpl.Render(values)
	if placeholderPattern.MatchString(got) {
		t.Errorf("rendered output still contains placeholder syntax: %q", got)
	}
}

func TestRawRoundTrip(t *testing.T) {
	raw := `prefix {{a}} middle {{b|default="x"}} suffix`
	tmpl := Parse(raw)

	if tmpl.Raw() != raw {
		t.Errorf("Raw() = %q, want %q", tmpl.Raw(), raw)
	}

	// With no values at all, every occurrence falls back to its
	// original text, so rendering reproduces the input.
	if got := tmpl.Render(nil); got != raw {
		t.Errorf("Render(nil) = %q, want %q", got, raw)
	}
}

func TestRenderHelper(t *testing.T) {
	got := Render("Hi {{name}}", map[string]string{"name": "BOB"})
	if got != "Hi BOB" {
		t.Errorf("Render() = %q, want %q", got, "Hi BOB")
	}
}
