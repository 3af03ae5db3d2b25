package spreadsheet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"route-distance-enricher/internal/domain"
	"route-distance-enricher/internal/platform/obs"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const outputTimeLayout = "20060102_150405"

// Return the output file name for a run finishing at now.
func OutputFileName(now time.Time) string {
	return "updated_routes_" + now.Format(outputTimeLayout) + ".xlsx"
}

// WriteRouteSheet persists table as a new workbook in dir and returns its path.
// The file is created exclusively; an existing file is never overwritten.
func WriteRouteSheet(logger *zap.Logger, table *domain.Table, dir string, now time.Time) (_ string, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	defer obs.Time(logger, "spreadsheet.WriteRouteSheet")(&err)

	if table == nil {
		return "", errors.New("write route sheet: table is nil")
	}

	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	if table.SheetName != defaultSheet {
		if err := f.SetSheetName(defaultSheet, table.SheetName); err != nil {
			return "", fmt.Errorf("write route sheet: name sheet %q: %w", table.SheetName, err)
		}
	}

	if err := writeRows(f, table); err != nil {
		return "", fmt.Errorf("write route sheet: %w", err)
	}

	path := filepath.Join(dir, OutputFileName(now))
	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("write route sheet: create %q: %w", path, err)
	}

	if _, err := f.WriteTo(out); err != nil {
		out.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write route sheet: write %q: %w", path, err)
	}

	if err := out.Close(); err != nil {
		return "", fmt.Errorf("write route sheet: close %q: %w", path, err)
	}

	return path, nil
}

// writeRows streams the header and data rows, in order, starting at A1.
// Data cells are written with their original kind and number format.
func writeRows(f *excelize.File, table *domain.Table) error {
	sw, err := f.NewStreamWriter(table.SheetName)
	if err != nil {
		return fmt.Errorf("stream writer: %w", err)
	}

	header := make([]any, len(table.Columns))
	for i, name := range table.Columns {
		header[i] = name
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("header row: %w", err)
	}

	styles := map[domain.CellFormat]int{}
	for i, r := range table.Rows {
		values := make([]any, len(r))
		for j, c := range r {
			styleID, err := styleFor(f, styles, c.Format)
			if err != nil {
				return fmt.Errorf("data row %d: %w", i+1, err)
			}
			values[j] = excelize.Cell{StyleID: styleID, Value: cellValue(c)}
		}

		ref, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("data row %d: %w", i+1, err)
		}
		if err := sw.SetRow(ref, values); err != nil {
			return fmt.Errorf("data row %d: %w", i+1, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush rows: %w", err)
	}

	return nil
}

// styleFor returns the output style carrying cf, creating it on first use.
func styleFor(f *excelize.File, styles map[domain.CellFormat]int, cf domain.CellFormat) (int, error) {
	if cf == (domain.CellFormat{}) {
		return 0, nil
	}
	if id, ok := styles[cf]; ok {
		return id, nil
	}

	style := &excelize.Style{NumFmt: cf.ID}
	if cf.Code != "" {
		code := cf.Code
		style.CustomNumFmt = &code
	}
	id, err := f.NewStyle(style)
	if err != nil {
		return 0, fmt.Errorf("number format %+v: %w", cf, err)
	}
	styles[cf] = id
	return id, nil
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z",
	"20060102T150405Z",
	"20060102T150405.999",
	"2006-01-02",
}

// cellValue converts a stored cell back to the Go value excelize writes with
// the same cell type. Values that no longer parse are kept as text.
func cellValue(c domain.Cell) any {
	switch c.Kind {
	case domain.KindNumber:
		if v, err := strconv.ParseFloat(c.Value, 64); err == nil {
			return v
		}
	case domain.KindBool:
		if v, err := strconv.ParseBool(c.Value); err == nil {
			return v
		}
	case domain.KindDate:
		for _, layout := range dateLayouts {
			if v, err := time.Parse(layout, c.Value); err == nil {
				return v
			}
		}
	}

	if c.Value == "" {
		return nil
	}
	return c.Value
}
