// Package export renders filtered entity lists as XLSX workbooks.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

// Column describes one workbook column for rows of type T.
type Column[T any] struct {
	Header string
	Value  func(T) any
}

// Sheet is a single worksheet ready to be written.
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]any
}

// Build evaluates columns over items.
func Build[T any](name string, columns []Column[T], items []T) Sheet {
	sheet := Sheet{Name: name, Headers: make([]string, len(columns)), Rows: make([][]any, len(items))}
	for i, c := range columns {
		sheet.Headers[i] = c.Header
	}
	for r, item := range items {
		row := make([]any, len(columns))
		for i, c := range columns {
			row[i] = cellValue(c.Value(item))
		}
		sheet.Rows[r] = row
	}
	return sheet
}

// WriteWorkbook streams sheet as an XLSX document to w. The header row is bold.
func WriteWorkbook(w io.Writer, sheet Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	sw, err := f.NewStreamWriter(sheet.Name)
	if err != nil {
		return fmt.Errorf("failed to open sheet writer: %w", err)
	}

	header := make([]any, len(sheet.Headers))
	for i, h := range sheet.Headers {
		header[i] = h
	}
	if err := sw.SetRow("A1", header, excelize.RowOpts{StyleID: bold}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush sheet: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// cellValue dereferences optional values; nil becomes an empty cell.
func cellValue(value any) any {
	switch v := value.(type) {
	case nil:
		return nil
	case *string:
		if v == nil {
			return nil
		}
		return *v
	case *int64:
		if v == nil {
			return nil
		}
		return *v
	case *time.Time:
		if v == nil {
			return nil
		}
		return v.UTC().Format(time.RFC3339)
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	case fmt.Stringer:
		return v.String()
	default:
		return v
	}
}
