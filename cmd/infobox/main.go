package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/infobox"
	"github.com/fwojciec/infobox/etree"
	"github.com/fwojciec/infobox/excelize"
	"github.com/fwojciec/infobox/fs"
	"github.com/fwojciec/infobox/jsonschema"
	ibslog "github.com/fwojciec/infobox/slog"
	"github.com/fwojciec/infobox/sqlite"
	"github.com/fwojciec/infobox/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run(); the --db flag takes precedence.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	DumpService   infobox.DumpService
	RecordService infobox.RecordService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("infobox"),
		kong.Description("Extract wiki infobox parameters from MediaWiki XML dumps."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'infobox --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	profile := infobox.DefaultProfile()
	if cli.Config != "" {
		if profile, err = yaml.LoadProfile(cli.Config); err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
	}
	deps.Profile = profile

	validator, err := jsonschema.NewValidator()
	if err != nil {
		return fmt.Errorf("failed to create record validator: %w", err)
	}

	deps.OpenDump = func(path string) infobox.PageSource {
		return ibslog.NewLoggingPageSource(etree.NewDumpReader(path), path, logger)
	}
	deps.OpenRecords = func(path string) infobox.RecordReader {
		file := fs.NewRecordFile(path)
		file.Validator = validator
		return file
	}
	deps.CreateJSON = func(path string) infobox.RecordWriter {
		return ibslog.NewLoggingRecordWriter(fs.NewRecordFile(path), path, logger)
	}
	deps.CreateXLSX = func(path string) infobox.RecordWriter {
		return ibslog.NewLoggingRecordWriter(excelize.NewWorkbook(path), path, logger)
	}
	deps.SaveProfile = yaml.SaveProfile

	if needsDB(kongCtx.Command(), cli) {
		if cli.DB != "" {
			m.DBPath = cli.DB
		}

		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set INFOBOX_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.DumpService = sqlite.NewDumpService(m.DB)
		m.RecordService = ibslog.NewLoggingRecordService(sqlite.NewRecordService(m.DB), logger)
		deps.Dumps = m.DumpService
		deps.Records = m.RecordService
	}

	return kongCtx.Run(deps)
}

// needsDB reports whether the parsed command uses the database.
func needsDB(command string, cli *CLI) bool {
	name, _, _ := strings.Cut(command, " ")
	switch name {
	case "dumps", "records", "delete":
		return true
	case "extract":
		return cli.Extract.DumpName != ""
	}
	return false
}

func defaultDBPath() string {
	if path := os.Getenv("INFOBOX_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "infobox.db"
	}
	dir := filepath.Join(home, ".infobox")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "infobox.db")
}
