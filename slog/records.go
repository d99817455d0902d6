package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/infobox"
)

// Ensure the decorators implement their interfaces.
var (
	_ infobox.RecordService = (*LoggingRecordService)(nil)
	_ infobox.RecordWriter  = (*LoggingRecordWriter)(nil)
)

// LoggingRecordService wraps a RecordService with logging.
type LoggingRecordService struct {
	next   infobox.RecordService
	logger *slog.Logger
}

// NewLoggingRecordService creates a new LoggingRecordService.
func NewLoggingRecordService(next infobox.RecordService, logger *slog.Logger) *LoggingRecordService {
	return &LoggingRecordService{next: next, logger: logger}
}

func (s *LoggingRecordService) CreateRecord(ctx context.Context, record *infobox.Record) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("create record",
			"title", record.Title,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRecord(ctx, record)
}

func (s *LoggingRecordService) CreateRecords(ctx context.Context, records []*infobox.Record) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create records",
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRecords(ctx, records)
}

func (s *LoggingRecordService) FindRecordByID(ctx context.Context, id string) (record *infobox.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find record",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRecordByID(ctx, id)
}

func (s *LoggingRecordService) FindRecords(ctx context.Context, filter infobox.RecordFilter) (records []*infobox.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find records",
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRecords(ctx, filter)
}

func (s *LoggingRecordService) DeleteRecordsByDump(ctx context.Context, dumpID string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete records",
			"dump", dumpID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteRecordsByDump(ctx, dumpID)
}

// LoggingRecordWriter wraps a RecordWriter with logging.
type LoggingRecordWriter struct {
	next   infobox.RecordWriter
	target string
	logger *slog.Logger
}

// NewLoggingRecordWriter creates a new LoggingRecordWriter. target
// identifies the output in log messages.
func NewLoggingRecordWriter(next infobox.RecordWriter, target string, logger *slog.Logger) *LoggingRecordWriter {
	return &LoggingRecordWriter{next: next, target: target, logger: logger}
}

// WriteRecords delegates to the wrapped writer and logs the operation.
func (w *LoggingRecordWriter) WriteRecords(ctx context.Context, records []*infobox.Record) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write records",
			"target", w.target,
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteRecords(ctx, records)
}
