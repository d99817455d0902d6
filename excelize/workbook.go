// Package excelize exports extracted records to XLSX workbooks.
package excelize

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/infobox"
	"github.com/xuri/excelize/v2"
)

// Ensure Workbook implements infobox.RecordWriter at compile time.
var _ infobox.RecordWriter = (*Workbook)(nil)

// SheetName is the name of the worksheet holding the records.
const SheetName = "Infoboxy"

// TitleHeader is the header of the first column.
const TitleHeader = "Název"

// Workbook writes records as a spreadsheet: one row per record, the title in
// the first column and one column per parameter name in first-seen order.
type Workbook struct {
	path string
}

// NewWorkbook creates a Workbook that writes to path.
func NewWorkbook(path string) *Workbook {
	return &Workbook{path: path}
}

// WriteRecords renders records and saves the workbook, replacing any
// existing file.
func (w *Workbook) WriteRecords(ctx context.Context, records []*infobox.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := EncodeRecords(records)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	tmp := w.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, w.path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// Columns returns the union of parameter names across records, in the order
// they are first seen.
func Columns(records []*infobox.Record) []string {
	seen := make(map[string]bool)
	var cols []string
	for _, rec := range records {
		for _, key := range rec.Infobox.Keys() {
			if !seen[key] {
				seen[key] = true
				cols = append(cols, key)
			}
		}
	}
	return cols
}

// EncodeRecords returns the XLSX workbook as bytes. Multi-valued parameters
// are joined with a comma.
func EncodeRecords(records []*infobox.Record) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	cols := Columns(records)
	headers := append([]string{TitleHeader}, cols...)

	if err := writeRow(f, 1, headers); err != nil {
		return nil, err
	}

	for i, rec := range records {
		row := make([]string, len(headers))
		row[0] = rec.Title
		for j, key := range cols {
			if v, ok := rec.Infobox.Get(key); ok {
				row[j+1] = v
			}
		}
		if err := writeRow(f, i+2, row); err != nil {
			return nil, err
		}
	}

	_ = f.SetColWidth(SheetName, "A", "A", 32)
	if len(cols) > 0 {
		last, _ := excelize.ColumnNumberToName(len(headers))
		_ = f.SetColWidth(SheetName, "B", last, 20)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, row int, values []string) error {
	for col, v := range values {
		if v == "" {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(SheetName, cell, v); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	return nil
}
