package main

import (
	"fmt"
	"os"

	"github.com/temirov/authmigrate/cmd/cli"
)

const (
	exitErrorTemplateConstant = "%v\n"
)

// main runs the authmigrate command-line application. Per-file failures do not produce a non-zero exit.
func main() {
	if executionError := cli.Execute(); executionError != nil {
		fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
		os.Exit(1)
	}
}
