package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/arthur-debert/ezlink/cmd/ezlink"
	"github.com/arthur-debert/ezlink/pkg/ui/terminal"
)

func main() {
	rootCmd := ezlink.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Already rendered by the command
		if errors.Is(err, ezlink.ErrReported) {
			os.Exit(1)
		}

		errorStyle := terminal.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		fmt.Fprintln(os.Stderr)
		_ = rootCmd.Usage()

		os.Exit(1)
	}
}
