package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/infobox"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ infobox.RecordService = (*RecordService)(nil)

// RecordService implements infobox.RecordService using SQLite.
// Infobox parameters are stored as an ordered JSON object.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// execer is satisfied by both *DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// CreateRecord creates a new record.
func (s *RecordService) CreateRecord(ctx context.Context, record *infobox.Record) error {
	id, now := uuid.New().String(), timestamp()
	if err := insertRecord(ctx, s.db, record, id, now); err != nil {
		return err
	}
	record.ID = id
	record.ExtractedAt = now
	return nil
}

// CreateRecords creates all records in a single transaction. IDs and
// extraction times are assigned only once the transaction commits.
func (s *RecordService) CreateRecords(ctx context.Context, records []*infobox.Record) error {
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := timestamp()
	ids := make([]string, len(records))
	for i, rec := range records {
		ids[i] = uuid.New().String()
		if err := insertRecord(ctx, tx, rec, ids[i], now); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	for i, rec := range records {
		rec.ID = ids[i]
		rec.ExtractedAt = now
	}
	return nil
}

// insertRecord stores record under id without modifying it.
func insertRecord(ctx context.Context, db execer, record *infobox.Record, id string, extractedAt time.Time) error {
	if err := record.Validate(); err != nil {
		return err
	}

	params := record.Infobox
	if params == nil {
		params = infobox.NewParameterMap()
	}
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to encode infobox: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO records (id, dump_id, title, infobox, content_hash, position, extracted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, record.DumpID, record.Title, string(data), record.ContentHash,
		record.Position, formatTime(extractedAt))

	return err
}

// FindRecordByID retrieves a record by ID.
func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*infobox.Record, error) {
	records, err := s.FindRecords(ctx, infobox.RecordFilter{ID: &id, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, infobox.Errorf(infobox.ENOTFOUND, "record not found")
	}
	return records[0], nil
}

// FindRecords retrieves records matching the filter, ordered by position.
func (s *RecordService) FindRecords(ctx context.Context, filter infobox.RecordFilter) ([]*infobox.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, dump_id, title, infobox, content_hash, position, extracted_at FROM records WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.DumpID != nil {
		query.WriteString(" AND dump_id = ?")
		args = append(args, *filter.DumpID)
	}
	if filter.Title != nil {
		query.WriteString(" AND title = ?")
		args = append(args, *filter.Title)
	}

	query.WriteString(" ORDER BY dump_id ASC, position ASC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*infobox.Record
	for rows.Next() {
		var rec infobox.Record
		var data, extractedAt string

		if err := rows.Scan(&rec.ID, &rec.DumpID, &rec.Title, &data, &rec.ContentHash,
			&rec.Position, &extractedAt); err != nil {
			return nil, err
		}

		rec.Infobox = infobox.NewParameterMap()
		if err := json.Unmarshal([]byte(data), rec.Infobox); err != nil {
			return nil, fmt.Errorf("failed to decode infobox of %q: %w", rec.Title, err)
		}

		if rec.ExtractedAt, err = parseTime(extractedAt, "extracted_at"); err != nil {
			return nil, err
		}

		records = append(records, &rec)
	}

	return records, rows.Err()
}

// DeleteRecordsByDump removes all records for a dump.
func (s *RecordService) DeleteRecordsByDump(ctx context.Context, dumpID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE dump_id = ?", dumpID)
	return err
}
