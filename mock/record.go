package mock

import (
	"context"

	"github.com/fwojciec/infobox"
)

// Compile-time interface verification.
var (
	_ infobox.RecordService = (*RecordService)(nil)
	_ infobox.RecordWriter  = (*RecordWriter)(nil)
	_ infobox.RecordReader  = (*RecordReader)(nil)
)

// RecordService is a mock implementation of infobox.RecordService.
type RecordService struct {
	CreateRecordFn        func(ctx context.Context, record *infobox.Record) error
	CreateRecordsFn       func(ctx context.Context, records []*infobox.Record) error
	FindRecordByIDFn      func(ctx context.Context, id string) (*infobox.Record, error)
	FindRecordsFn         func(ctx context.Context, filter infobox.RecordFilter) ([]*infobox.Record, error)
	DeleteRecordsByDumpFn func(ctx context.Context, dumpID string) error
}

func (s *RecordService) CreateRecord(ctx context.Context, record *infobox.Record) error {
	return s.CreateRecordFn(ctx, record)
}

func (s *RecordService) CreateRecords(ctx context.Context, records []*infobox.Record) error {
	return s.CreateRecordsFn(ctx, records)
}

func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*infobox.Record, error) {
	return s.FindRecordByIDFn(ctx, id)
}

func (s *RecordService) FindRecords(ctx context.Context, filter infobox.RecordFilter) ([]*infobox.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) DeleteRecordsByDump(ctx context.Context, dumpID string) error {
	return s.DeleteRecordsByDumpFn(ctx, dumpID)
}

// RecordWriter is a mock implementation of infobox.RecordWriter.
type RecordWriter struct {
	WriteRecordsFn func(ctx context.Context, records []*infobox.Record) error
}

func (w *RecordWriter) WriteRecords(ctx context.Context, records []*infobox.Record) error {
	return w.WriteRecordsFn(ctx, records)
}

// RecordReader is a mock implementation of infobox.RecordReader.
type RecordReader struct {
	ReadRecordsFn func(ctx context.Context) ([]*infobox.Record, error)
}

func (r *RecordReader) ReadRecords(ctx context.Context) ([]*infobox.Record, error) {
	return r.ReadRecordsFn(ctx)
}
