package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"

	"github.com/teranos/promptforge/vars"
)

// terminalPrompter builds the interactive-mode value source: one
// blocking line read per still-unresolved placeholder. The prompt text
// goes to stderr so piped stdout stays clean.
func terminalPrompter(in io.Reader) vars.Prompter {
	reader := bufio.NewReader(in)
	return func(name, def string, hasDefault bool) (string, error) {
		prompt := fmt.Sprintf("Enter '%s'", name)
		if hasDefault {
			prompt += fmt.Sprintf(" [%s]", def)
		}
		fmt.Fprintf(os.Stderr, "%s: ", pterm.Cyan(prompt))

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return "", err
		}
		return line, nil
	}
}
