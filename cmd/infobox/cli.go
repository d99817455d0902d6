package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/infobox"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Profile *infobox.Profile

	// Database-backed services. Nil unless the command needs the database.
	Dumps   infobox.DumpService
	Records infobox.RecordService

	// Factories for file-backed adapters, keyed by path.
	OpenDump    func(path string) infobox.PageSource
	OpenRecords func(path string) infobox.RecordReader
	CreateJSON  func(path string) infobox.RecordWriter
	CreateXLSX  func(path string) infobox.RecordWriter
	SaveProfile func(path string, p *infobox.Profile) error
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"C" type:"path" help:"YAML profile with template and checked parameters"`
	DB      string `name:"db" env:"INFOBOX_DB" type:"path" help:"SQLite database path"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Extract     ExtractCmd     `cmd:"" help:"Extract infobox parameters from MediaWiki XML dumps"`
	Duplicates  DuplicatesCmd  `cmd:"" help:"Report identifier values shared by several pages"`
	Identifiers IdentifiersCmd `cmd:"" help:"Report identifier values with disallowed characters"`
	Dumps       DumpsCmd       `cmd:"" help:"List stored dumps"`
	Records     RecordsCmd     `cmd:"" help:"Print the stored records of a dump as JSON"`
	Delete      DeleteCmd      `cmd:"" help:"Delete a stored dump and its records"`
	Init        InitCmd        `cmd:"" help:"Write a YAML profile to start from"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Dumps       []string `arg:"" name:"dump" help:"MediaWiki XML dump files, read in order"`
	Output      string   `short:"o" required:"" help:"Output JSON file"`
	Template    string   `short:"t" env:"INFOBOX_TEMPLATE" help:"Template name (overrides the profile)"`
	DumpName    string   `name:"dump-name" help:"Also store the records in the database under this name"`
	Force       bool     `short:"f" help:"Replace a stored dump with the same name"`
	XLSX        string   `name:"xlsx" help:"Also export the records to an XLSX workbook"`
	Concurrency int      `short:"c" default:"8" help:"Concurrent extraction limit"`
	Anonymous   bool     `name:"anonymous" help:"List template segments without a parameter name"`
}

// DuplicatesCmd is the "duplicates" subcommand.
type DuplicatesCmd struct {
	File  string   `arg:"" name:"records" help:"Record JSON file produced by extract"`
	Param []string `short:"p" name:"param" help:"Parameter to check (repeatable, defaults to the profile)"`
}

// IdentifiersCmd is the "identifiers" subcommand.
type IdentifiersCmd struct {
	File  string `arg:"" name:"records" help:"Record JSON file produced by extract"`
	Param string `short:"p" name:"param" help:"Parameter to validate (defaults to the profile)"`
}

// DumpsCmd is the "dumps" subcommand.
type DumpsCmd struct{}

// RecordsCmd is the "records" subcommand.
type RecordsCmd struct {
	Name  string `arg:"" help:"Dump name"`
	Title string `help:"Only print the record with this title"`
	Limit int    `short:"n" help:"Maximum number of records to print"`
}

// InitCmd is the "init" subcommand. It writes the active profile, so a
// profile loaded with --config can be copied and edited.
type InitCmd struct {
	Path     string `arg:"" name:"profile" type:"path" help:"Profile file to write"`
	Template string `short:"t" help:"Template name to store instead of the active one"`
	Force    bool   `short:"f" help:"Overwrite an existing file"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Dump name"`
	Force bool   `help:"Confirm deletion"`
}
