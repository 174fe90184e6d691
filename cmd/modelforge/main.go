// Package main is the entry point for the modelforge CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dosanma1/modelforge/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		var exitErr *cmd.ExitError
		if errors.As(err, &exitErr) {
			// The command may have reported it already.
			if !exitErr.Printed {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cmd.ExitGeneralError)
	}
}
