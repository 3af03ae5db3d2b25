package spreadsheet

import (
	"fmt"
	"route-distance-enricher/internal/domain"
	"route-distance-enricher/internal/platform/obs"
	"strconv"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// LoadRouteSheet reads one worksheet and extracts its route requests.
//
// Row 1 is the header. The origin and destination columns are looked up once
// here; an absent column is reported as domain.ErrSchema, an unreadable
// workbook or sheet as domain.ErrDataAccess. Cells are read as stored, with
// their kind and number format, so they can be written back unchanged.
func LoadRouteSheet(logger *zap.Logger, path string, sheet string) (_ *domain.RouteSheet, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	defer obs.Time(logger, "spreadsheet.LoadRouteSheet")(&err)

	table, err := readTable(path, sheet)
	if err != nil {
		return nil, err
	}

	rs, err := domain.NewRouteSheet(table, domain.OriginColumn, domain.DestinationColumn)
	if err != nil {
		return nil, fmt.Errorf("load route sheet %q: %w", path, err)
	}

	return rs, nil
}

func readTable(path string, sheet string) (*domain.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("read table: open %q: %w: %w", path, domain.ErrDataAccess, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read table: sheet %q of %q: %w: %w", sheet, path, domain.ErrDataAccess, err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("read table: sheet %q of %q: %w: no header row", sheet, path, domain.ErrSchema)
	}

	cr := cellReader{f: f, sheet: sheet, formats: map[int]domain.CellFormat{}}
	data := make([][]domain.Cell, 0, len(rows)-1)
	for i, r := range rows[1:] {
		row := make([]domain.Cell, 0, len(r))
		for j, raw := range r {
			// data rows start at sheet row 2
			c, err := cr.read(j+1, i+2, raw)
			if err != nil {
				return nil, fmt.Errorf("read table: sheet %q of %q: %w: %w", sheet, path, domain.ErrDataAccess, err)
			}
			row = append(row, c)
		}
		data = append(data, row)
	}

	return domain.NewTable(sheet, rows[0], data), nil
}

// cellReader resolves the stored kind and number format of single cells.
// Formats are cached per style index.
type cellReader struct {
	f       *excelize.File
	sheet   string
	formats map[int]domain.CellFormat
}

func (r *cellReader) read(col, row int, raw string) (domain.Cell, error) {
	cell := domain.Text(raw)
	if raw == "" {
		return cell, nil
	}

	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return cell, err
	}

	typ, err := r.f.GetCellType(r.sheet, ref)
	if err != nil {
		return cell, fmt.Errorf("cell %s type: %w", ref, err)
	}
	switch typ {
	case excelize.CellTypeBool:
		cell.Kind = domain.KindBool
	case excelize.CellTypeDate:
		cell.Kind = domain.KindDate
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		// numeric cells usually carry no type attribute at all
		if _, err := strconv.ParseFloat(raw, 64); err == nil {
			cell.Kind = domain.KindNumber
		}
	}

	styleID, err := r.f.GetCellStyle(r.sheet, ref)
	if err != nil {
		return cell, fmt.Errorf("cell %s style: %w", ref, err)
	}
	cell.Format, err = r.format(styleID)
	if err != nil {
		return cell, fmt.Errorf("cell %s style: %w", ref, err)
	}

	return cell, nil
}

func (r *cellReader) format(styleID int) (domain.CellFormat, error) {
	if styleID == 0 {
		return domain.CellFormat{}, nil
	}
	if cf, ok := r.formats[styleID]; ok {
		return cf, nil
	}

	style, err := r.f.GetStyle(styleID)
	if err != nil {
		return domain.CellFormat{}, err
	}

	cf := domain.CellFormat{ID: style.NumFmt}
	if style.CustomNumFmt != nil {
		cf.Code = *style.CustomNumFmt
	}
	r.formats[styleID] = cf
	return cf, nil
}
