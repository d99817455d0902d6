package main

import (
	"fmt"

	"github.com/fwojciec/infobox"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return infobox.Errorf(infobox.EINVALID, "use --force to confirm deletion")
	}

	dump, err := findDumpByName(deps, c.Name)
	if err != nil {
		return err
	}

	if err := deps.Dumps.DeleteDump(deps.Ctx, dump.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", infobox.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted dump %q\n", dump.Name)
	return nil
}
