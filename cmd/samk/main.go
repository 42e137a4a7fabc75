package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/wesleyorama2/samk/internal/cli"
	"github.com/wesleyorama2/samk/internal/output"
)

// Main is the entry point for the application
// It's exported to make it testable
func Main() int {
	if err := cli.Execute(); err != nil {
		noColor := output.ColorDisabled(os.Stderr, false)
		msg := fmt.Sprintf("Error: %v", err)
		if !noColor {
			msg = color.RedString("%s", msg)
		}
		fmt.Fprintln(os.Stderr, output.ErrorIcon(noColor), msg)
		return 1
	}
	return 0
}

func main() {
	os.Exit(Main())
}
