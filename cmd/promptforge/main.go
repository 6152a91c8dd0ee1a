package main

import (
	"fmt"
	"os"

	"github.com/teranos/promptforge/cmd/promptforge/commands"
	"github.com/teranos/promptforge/logger"
	"github.com/teranos/promptforge/version"
)

func main() {
	commands.RootCmd.Version = version.Get().Short()

	err := commands.RootCmd.Execute()
	logger.Cleanup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
