package cmds

import (
	"fmt"
	"os"
)

var GlobalExecutor = NewExecutor()

// Define registers a command on the process-wide executor.
// Packages call it from init or package-level vars.
func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs args against the process-wide executor and exits on failure.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		GlobalExecutor.PrintUsage(os.Stderr)
		os.Exit(2)
	}
}
