// Package fs provides file-based storage for extracted records.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/infobox"
)

// Ensure RecordFile implements the record interfaces at compile time.
var (
	_ infobox.RecordWriter = (*RecordFile)(nil)
	_ infobox.RecordReader = (*RecordFile)(nil)
)

// RecordFile stores records as a JSON array of {title, infobox} objects.
// Writes go to a temporary file that is renamed into place, so readers never
// observe a partially written file.
type RecordFile struct {
	path string

	// Validator, when set, checks the raw file before it is decoded.
	Validator infobox.RecordValidator
}

// NewRecordFile creates a RecordFile for the given path.
func NewRecordFile(path string) *RecordFile {
	return &RecordFile{path: path}
}

// Path returns the file path.
func (f *RecordFile) Path() string {
	return f.path
}

func (f *RecordFile) tempPath() string {
	return f.path + ".tmp"
}

// WriteRecords writes records in order, replacing any existing file.
func (f *RecordFile) WriteRecords(ctx context.Context, records []*infobox.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := EncodeRecords(records)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if err := os.WriteFile(f.tempPath(), data, 0644); err != nil {
		return err
	}

	if err := os.Rename(f.tempPath(), f.path); err != nil {
		_ = os.Remove(f.tempPath())
		return err
	}

	return nil
}

// ReadRecords reads the records back in file order.
func (f *RecordFile) ReadRecords(ctx context.Context) ([]*infobox.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, infobox.Errorf(infobox.ENOTFOUND, "record file %s not found", f.path)
		}
		return nil, err
	}

	if f.Validator != nil {
		if err := f.Validator.ValidateRecords(data); err != nil {
			return nil, err
		}
	}

	return DecodeRecords(data)
}

// EncodeRecords renders records as an indented JSON array. A record without
// parameters is written with an empty infobox object.
func EncodeRecords(records []*infobox.Record) ([]byte, error) {
	out := make([]*infobox.Record, len(records))
	for i, rec := range records {
		if rec.Infobox == nil {
			cp := *rec
			cp.Infobox = infobox.NewParameterMap()
			rec = &cp
		}
		out[i] = rec
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, fmt.Errorf("failed to encode records: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeRecords parses a JSON array of records.
func DecodeRecords(data []byte) ([]*infobox.Record, error) {
	var records []*infobox.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, infobox.Errorf(infobox.EINVALID, "invalid record file: %v", err)
	}
	for i, rec := range records {
		if rec == nil {
			return nil, infobox.Errorf(infobox.EINVALID, "record %d is null", i)
		}
		if rec.Infobox == nil {
			rec.Infobox = infobox.NewParameterMap()
		}
	}
	return records, nil
}
