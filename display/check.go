package display

import (
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/teranos/promptforge/template"
)

// CheckListing renders the --check view: each declared placeholder with
// its required/default status, in first-seen order.
func CheckListing(placeholders []template.Placeholder) string {
	var b strings.Builder
	b.WriteString("Template variables:\n")

	if len(placeholders) == 0 {
		b.WriteString("  (none)\n")
		return b.String()
	}

	for _, ph := range placeholders {
		status := pterm.Red("(required)")
		if ph.HasDefault {
			status = pterm.Gray(fmt.Sprintf("(default: %q)", ph.Default))
		}
		fmt.Fprintf(&b, "  - %s %s\n", pterm.Cyan(ph.Name), status)
	}
	return b.String()
}

// WarnUnused prints the unused-variables warning to stderr. Warnings
// never affect the exit status.
func WarnUnused(names []string) {
	if len(names) == 0 {
		return
	}
	pterm.Warning.WithWriter(os.Stderr).Printfln("Unused variables: %s", strings.Join(names, ", "))
}

// NoticeSaved prints the saved-to notice to stderr so it never mixes
// with rendered output on stdout.
func NoticeSaved(path string) {
	pterm.Success.WithWriter(os.Stderr).Printfln("Saved to %s", path)
}
