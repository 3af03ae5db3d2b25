package domain

// CellKind is the stored type of a worksheet value.
type CellKind int

const (
	KindText CellKind = iota
	KindNumber
	KindBool
	KindDate
)

// CellFormat is the number format of a source cell: a built-in format id, or
// a custom format code when Code is set. The zero value is "General".
type CellFormat struct {
	ID   int
	Code string
}

// Cell is one worksheet value as stored in the workbook, not as displayed.
// Value holds the raw text: a plain decimal for numbers and dates-as-serials,
// "1"/"0" for booleans, RFC 3339 for ISO date cells.
type Cell struct {
	Value  string
	Kind   CellKind
	Format CellFormat
}

func Text(v string) Cell {
	return Cell{Value: v}
}

// TextRow builds a row of text cells.
func TextRow(values ...string) []Cell {
	row := make([]Cell, 0, len(values))
	for _, v := range values {
		row = append(row, Text(v))
	}
	return row
}
