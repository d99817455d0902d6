package infobox

import (
	"context"
	"time"
)

// Record pairs a page title with the parameters of its infobox.
// Only Title and Infobox are part of the exchanged JSON; the remaining
// fields are populated by storage.
type Record struct {
	ID          string        `json:"-"`
	DumpID      string        `json:"-"`
	Title       string        `json:"title"`
	Infobox     *ParameterMap `json:"infobox"`
	ContentHash string        `json:"-"`
	Position    int           `json:"-"`
	ExtractedAt time.Time     `json:"-"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.DumpID == "" {
		return Errorf(EINVALID, "record dump ID required")
	}
	if r.Title == "" {
		return Errorf(EINVALID, "record title required")
	}
	return nil
}

// RecordService represents a service for managing extracted records.
type RecordService interface {
	// CreateRecord creates a new record.
	CreateRecord(ctx context.Context, record *Record) error

	// CreateRecords creates multiple records atomically.
	CreateRecords(ctx context.Context, records []*Record) error

	// FindRecordByID retrieves a record by ID.
	// Returns ENOTFOUND if record does not exist.
	FindRecordByID(ctx context.Context, id string) (*Record, error)

	// FindRecords retrieves records matching the filter.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// DeleteRecordsByDump removes all records for a dump.
	DeleteRecordsByDump(ctx context.Context, dumpID string) error
}

// RecordFilter represents a filter for FindRecords.
// Results are always ordered by position within the dump.
type RecordFilter struct {
	ID     *string `json:"id"`
	DumpID *string `json:"dumpId"`
	Title  *string `json:"title"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RecordWriter persists a complete, ordered set of records.
type RecordWriter interface {
	WriteRecords(ctx context.Context, records []*Record) error
}

// RecordReader loads a previously written set of records.
type RecordReader interface {
	ReadRecords(ctx context.Context) ([]*Record, error)
}

// RecordValidator checks a serialized record list against the output
// contract before it is decoded.
type RecordValidator interface {
	ValidateRecords(data []byte) error
}
