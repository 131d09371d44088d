package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/quadro/cmd"
	"github.com/thenoetrevino/quadro/internal/cli"
)

func main() {
	err := cmd.Execute()
	if err == nil {
		return
	}

	// CommandErrors were already reported by the command
	var cmdErr *cli.CommandError
	if errors.As(err, &cmdErr) {
		os.Exit(cmdErr.Code)
	}

	// Anything else comes from cobra: unknown command, bad flag, missing argument
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	fmt.Fprintln(os.Stderr, "Run 'quadro --help' for usage.")
	os.Exit(cli.ExitUsage)
}
