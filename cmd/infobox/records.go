package main

import (
	"fmt"

	"github.com/fwojciec/infobox"
	"github.com/fwojciec/infobox/fs"
)

// Run executes the records command.
func (c *RecordsCmd) Run(deps *Dependencies) error {
	dump, err := findDumpByName(deps, c.Name)
	if err != nil {
		return err
	}

	filter := infobox.RecordFilter{DumpID: &dump.ID, Limit: c.Limit}
	if c.Title != "" {
		filter.Title = &c.Title
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", infobox.ErrorMessage(err))
		return err
	}

	data, err := fs.EncodeRecords(records)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	_, err = deps.Stdout.Write(data)
	return err
}

// findDumpByName looks up a stored dump, reporting a missing one on stderr.
func findDumpByName(deps *Dependencies, name string) (*infobox.Dump, error) {
	dumps, err := deps.Dumps.FindDumps(deps.Ctx, infobox.DumpFilter{Name: &name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", infobox.ErrorMessage(err))
		return nil, err
	}

	if len(dumps) == 0 {
		fmt.Fprintf(deps.Stderr, "error: dump %q not found. Use 'infobox dumps' to see stored dumps.\n", name)
		return nil, infobox.Errorf(infobox.ENOTFOUND, "dump %q not found", name)
	}

	return dumps[0], nil
}
