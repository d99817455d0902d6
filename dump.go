package infobox

import (
	"context"
	"time"
)

// Dump represents an extracted MediaWiki XML dump.
type Dump struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	SourcePath string    `json:"sourcePath"`
	Template   string    `json:"template"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Validate returns an error if the dump contains invalid fields.
func (d *Dump) Validate() error {
	if d.Name == "" {
		return Errorf(EINVALID, "dump name required")
	}
	if d.SourcePath == "" {
		return Errorf(EINVALID, "dump source path required")
	}
	if d.Template == "" {
		return Errorf(EINVALID, "dump template required")
	}
	return nil
}

// DumpService represents a service for managing dumps.
type DumpService interface {
	// CreateDump creates a new dump.
	// Returns ECONFLICT if a dump with the same name exists.
	CreateDump(ctx context.Context, dump *Dump) error

	// FindDumpByID retrieves a dump by ID.
	// Returns ENOTFOUND if dump does not exist.
	FindDumpByID(ctx context.Context, id string) (*Dump, error)

	// FindDumps retrieves dumps matching the filter.
	FindDumps(ctx context.Context, filter DumpFilter) ([]*Dump, error)

	// DeleteDump permanently removes a dump and all associated records.
	// Returns ENOTFOUND if dump does not exist.
	DeleteDump(ctx context.Context, id string) error
}

// DumpFilter represents a filter for FindDumps.
type DumpFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
