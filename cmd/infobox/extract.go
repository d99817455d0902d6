package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/infobox"
	"github.com/fwojciec/infobox/extract"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	name := deps.Profile.Template
	if c.Template != "" {
		name = c.Template
	}

	if c.DumpName != "" && deps.Dumps == nil {
		fmt.Fprintln(deps.Stderr, "error: database not available for --dump-name")
		return infobox.Errorf(infobox.EINVALID, "database not available")
	}

	sources := make([]infobox.PageSource, len(c.Dumps))
	for i, path := range c.Dumps {
		sources[i] = deps.OpenDump(path)
	}

	extractor := &extract.Extractor{
		Sources:     sources,
		Template:    infobox.NewTemplate(name),
		Concurrency: c.Concurrency,
		Anonymous:   c.Anonymous,
	}

	progress := func(event extract.ProgressEvent) {
		switch event.Type {
		case extract.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d pages\n", event.Total)
		case extract.ProgressSkipped:
			deps.Logger.Debug("no template", "title", extract.TruncateTitle(event.Title, 60))
		case extract.ProgressExtracted:
			for _, segment := range event.Anonymous {
				fmt.Fprintf(deps.Stdout, "  %s: unnamed segment %q\n", event.Title, segment)
			}
		case extract.ProgressFinished:
		}
	}

	result, err := extractor.Run(deps.Ctx, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error extracting: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Extracted %d infoboxes from %s (%d pages without template, %d repeated titles)\n",
		len(result.Records), extract.FormatBytes(result.Bytes), result.Skipped, result.Repeated)

	if err := deps.CreateJSON(c.Output).WriteRecords(deps.Ctx, result.Records); err != nil {
		fmt.Fprintf(deps.Stderr, "error: writing %s: %v\n", c.Output, err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "  Wrote %s\n", c.Output)

	if c.XLSX != "" {
		if err := deps.CreateXLSX(c.XLSX).WriteRecords(deps.Ctx, result.Records); err != nil {
			fmt.Fprintf(deps.Stderr, "error: writing %s: %v\n", c.XLSX, err)
			return err
		}
		fmt.Fprintf(deps.Stdout, "  Wrote %s\n", c.XLSX)
	}

	if c.DumpName != "" {
		return c.store(deps, extractor.Template, result.Records)
	}

	return nil
}

// store saves the records under a new dump, replacing an existing one when
// Force is set.
func (c *ExtractCmd) store(deps *Dependencies, template *infobox.Template, records []*infobox.Record) error {
	if c.Force {
		existing, err := deps.Dumps.FindDumps(deps.Ctx, infobox.DumpFilter{Name: &c.DumpName})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", infobox.ErrorMessage(err))
			return err
		}
		if len(existing) > 0 {
			if err := deps.Dumps.DeleteDump(deps.Ctx, existing[0].ID); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", infobox.ErrorMessage(err))
				return err
			}
		}
	}

	dump := &infobox.Dump{
		Name:       c.DumpName,
		SourcePath: strings.Join(c.Dumps, ","),
		Template:   template.Name(),
	}
	if err := deps.Dumps.CreateDump(deps.Ctx, dump); err != nil {
		if infobox.ErrorCode(err) == infobox.ECONFLICT {
			fmt.Fprintf(deps.Stderr, "error: dump %q already exists. Use --force to replace it.\n", c.DumpName)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", infobox.ErrorMessage(err))
		return err
	}

	for _, rec := range records {
		rec.DumpID = dump.ID
	}

	if err := deps.Records.CreateRecords(deps.Ctx, records); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", infobox.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Stored %d records as %q (%s)\n", len(records), dump.Name, dump.ID)
	return nil
}
