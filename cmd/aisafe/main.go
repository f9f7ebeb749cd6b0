package main

import (
	"os"

	"github.com/aisafe/aisafe/internal/app"
	"github.com/aisafe/aisafe/internal/errors"
	"github.com/aisafe/aisafe/internal/output"
)

func main() {
	exit := run()
	os.Exit(exit)
}

// run is the main entry point
func run() int {
	// Initialize application
	a := app.New(version, commit, date)
	w := output.New(os.Stdout, os.Stderr)

	// Create root command
	root := NewRootCommand()

	// Add subcommands
	root.AddCommand(NewSetCommand(&w))
	root.AddCommand(NewGetCommand(&w))
	root.AddCommand(NewListCommand(&w))
	root.AddCommand(NewRemoveCommand(&w))
	root.AddCommand(NewPathCommand(&w))
	root.AddCommand(NewVersionCommand(&a, &w))
	root.AddCommand(NewSpecCommand(&a, &w))

	// Execute and handle errors
	if err := root.Execute(); err != nil {
		ae := normalizeErr(err)
		format := resolveFormatForError(GlobalConfig.FormatStr)
		_ = w.WriteError(format, ae)
		return int(errors.ExitCodeFor(ae.Code))
	}

	return int(errors.ExitOK)
}
