package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/arthur-debert/termctl/cmd/termctl"
	"github.com/arthur-debert/termctl/pkg/style"
	"github.com/arthur-debert/termctl/pkg/terminal"
)

func main() {
	rootCmd := termctl.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// detect --quiet answers through the exit code alone.
		if errors.Is(err, termctl.ErrNotTerminal) {
			os.Exit(1)
		}

		// Print the error in red when stderr can render it
		msg := fmt.Sprintf("Error: %v", err)
		if terminal.ShouldFormat(terminal.Stderr, true) {
			msg = style.BoldRed + msg + style.Reset
		}
		fmt.Fprintln(os.Stderr, msg)

		os.Exit(1)
	}
}
