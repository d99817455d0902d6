package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/infobox"
)

// Run executes the init command.
func (c *InitCmd) Run(deps *Dependencies) error {
	if !c.Force {
		if _, err := os.Stat(c.Path); err == nil {
			fmt.Fprintf(deps.Stderr, "error: %s already exists. Use --force to overwrite it.\n", c.Path)
			return infobox.Errorf(infobox.ECONFLICT, "profile %s already exists", c.Path)
		}
	}

	profile := *deps.Profile
	profile.DuplicateParameters = append([]string(nil), deps.Profile.DuplicateParameters...)
	if c.Template != "" {
		profile.Template = c.Template
	}

	if err := deps.SaveProfile(c.Path, &profile); err != nil {
		fmt.Fprintf(deps.Stderr, "error: writing %s: %v\n", c.Path, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Wrote %s\n", c.Path)
	return nil
}
