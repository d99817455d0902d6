package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/infobox"
)

// Run executes the duplicates command.
func (c *DuplicatesCmd) Run(deps *Dependencies) error {
	records, err := deps.OpenRecords(c.File).ReadRecords(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", infobox.ErrorMessage(err))
		return err
	}

	params := c.Param
	if len(params) == 0 {
		params = deps.Profile.DuplicateParameters
	}

	report := infobox.FindDuplicates(records, params)
	fmt.Fprint(deps.Stdout, infobox.FormatDuplicateReport(report, filepath.Base(c.File)))
	return nil
}
