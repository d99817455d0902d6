package main

import (
	"fmt"

	"github.com/fwojciec/infobox"
)

// Run executes the dumps command.
func (c *DumpsCmd) Run(deps *Dependencies) error {
	dumps, err := deps.Dumps.FindDumps(deps.Ctx, infobox.DumpFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", infobox.ErrorMessage(err))
		return err
	}

	if len(dumps) == 0 {
		fmt.Fprintln(deps.Stdout, "No dumps found. Use 'infobox extract --dump-name' to store one.")
		return nil
	}

	for _, d := range dumps {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", d.ID, d.Name, d.Template, d.SourcePath)
	}

	return nil
}
