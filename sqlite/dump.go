package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/fwojciec/infobox"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ infobox.DumpService = (*DumpService)(nil)

// DumpService implements infobox.DumpService using SQLite.
type DumpService struct {
	db *DB
}

// NewDumpService creates a new DumpService.
func NewDumpService(db *DB) *DumpService {
	return &DumpService{db: db}
}

// CreateDump creates a new dump.
func (s *DumpService) CreateDump(ctx context.Context, dump *infobox.Dump) error {
	if err := dump.Validate(); err != nil {
		return err
	}

	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM dumps WHERE name = ?", dump.Name).Scan(&exists)
	if err != nil {
		return err
	}
	if exists > 0 {
		return infobox.Errorf(infobox.ECONFLICT, "dump %q already exists", dump.Name)
	}

	dump.ID = uuid.New().String()
	now := timestamp()
	dump.CreatedAt = now
	dump.UpdatedAt = now

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO dumps (id, name, source_path, template, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, dump.ID, dump.Name, dump.SourcePath, dump.Template,
		formatTime(dump.CreatedAt), formatTime(dump.UpdatedAt))

	return err
}

// FindDumpByID retrieves a dump by ID.
func (s *DumpService) FindDumpByID(ctx context.Context, id string) (*infobox.Dump, error) {
	dumps, err := s.FindDumps(ctx, infobox.DumpFilter{ID: &id, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(dumps) == 0 {
		return nil, infobox.Errorf(infobox.ENOTFOUND, "dump not found")
	}
	return dumps[0], nil
}

// FindDumps retrieves dumps matching the filter.
func (s *DumpService) FindDumps(ctx context.Context, filter infobox.DumpFilter) ([]*infobox.Dump, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, source_path, template, created_at, updated_at FROM dumps WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY created_at DESC, name ASC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dumps []*infobox.Dump
	for rows.Next() {
		dump, err := scanDump(rows)
		if err != nil {
			return nil, err
		}
		dumps = append(dumps, dump)
	}

	return dumps, rows.Err()
}

// DeleteDump permanently removes a dump and, by cascade, its records.
func (s *DumpService) DeleteDump(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM dumps WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return infobox.Errorf(infobox.ENOTFOUND, "dump not found")
	}

	return nil
}

func scanDump(rows *sql.Rows) (*infobox.Dump, error) {
	var dump infobox.Dump
	var createdAt, updatedAt string

	if err := rows.Scan(&dump.ID, &dump.Name, &dump.SourcePath, &dump.Template,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if dump.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if dump.UpdatedAt, err = parseTime(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &dump, nil
}
