package main

import (
	"fmt"

	"github.com/fwojciec/infobox"
)

// Run executes the identifiers command.
func (c *IdentifiersCmd) Run(deps *Dependencies) error {
	records, err := deps.OpenRecords(c.File).ReadRecords(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", infobox.ErrorMessage(err))
		return err
	}

	param := c.Param
	if param == "" {
		param = deps.Profile.IdentifierParameter
	}

	issues := infobox.ValidateIdentifiers(records, param)
	fmt.Fprintln(deps.Stdout, infobox.FormatIdentifierReport(issues))
	return nil
}
