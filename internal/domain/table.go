package domain

import (
	"fmt"
	"slices"
)

// Table is an ordered, row-oriented copy of one worksheet.
// Every row holds exactly len(Columns) cells.
type Table struct {
	SheetName string
	Columns   []string
	Rows      [][]Cell
}

// Column is a named sequence of text values, one per table row.
type Column struct {
	Name   string
	Values []string
}

func NewTable(sheetName string, columns []string, rows [][]Cell) *Table {
	width := len(columns)
	for _, r := range rows {
		width = max(width, len(r))
	}

	cols := make([]string, width)
	copy(cols, columns)
	for i := len(columns); i < width; i++ {
		cols[i] = fmt.Sprintf("Unnamed: %d", i)
	}

	normalized := make([][]Cell, 0, len(rows))
	for _, r := range rows {
		row := make([]Cell, width)
		copy(row, r)
		normalized = append(normalized, row)
	}

	return &Table{SheetName: sheetName, Columns: cols, Rows: normalized}
}

// Return the position of the named column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	i := slices.Index(t.Columns, name)
	return i, i >= 0
}

// Return the raw values of the named column in row order.
func (t *Table) Column(name string) ([]string, error) {
	idx, ok := t.ColumnIndex(name)
	if !ok {
		return nil, fmt.Errorf("table column %q: %w: column not found in sheet %q", name, ErrSchema, t.SheetName)
	}

	out := make([]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		out = append(out, r[idx].Value)
	}
	return out, nil
}

// WithColumns returns a copy of the table with the given columns added as text.
// A column whose name already exists keeps its position and has its values replaced;
// new columns are appended after the existing ones. Other cells keep their kind and format.
func (t *Table) WithColumns(cols ...Column) (*Table, error) {
	for _, c := range cols {
		if len(c.Values) != len(t.Rows) {
			return nil, fmt.Errorf(
				"table with columns: column %q has %d values, table has %d rows",
				c.Name, len(c.Values), len(t.Rows),
			)
		}
	}

	out := &Table{
		SheetName: t.SheetName,
		Columns:   slices.Clone(t.Columns),
		Rows:      make([][]Cell, len(t.Rows)),
	}
	for i, r := range t.Rows {
		out.Rows[i] = slices.Clone(r)
	}

	for _, c := range cols {
		idx, ok := out.ColumnIndex(c.Name)
		if !ok {
			out.Columns = append(out.Columns, c.Name)
			for i := range out.Rows {
				out.Rows[i] = append(out.Rows[i], Text(c.Values[i]))
			}
			continue
		}

		for i := range out.Rows {
			out.Rows[i][idx] = Text(c.Values[i])
		}
	}

	return out, nil
}
