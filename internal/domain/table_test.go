package domain

import (
	"errors"
	"slices"
	"testing"
)

func TestNewTablePadsRows(t *testing.T) {
	table := NewTable("Report", []string{"A", "B"}, [][]Cell{
		TextRow("a1"),
		TextRow("a2", "b2", "c2"),
		{},
	})

	wantCols := []string{"A", "B", "Unnamed: 2"}
	if !slices.Equal(table.Columns, wantCols) {
		t.Fatalf("columns = %v, want %v", table.Columns, wantCols)
	}

	for i, r := range table.Rows {
		if len(r) != 3 {
			t.Fatalf("row %d has %d cells, want 3", i, len(r))
		}
	}
	if table.Rows[0][1] != (Cell{}) {
		t.Fatalf("padded cell = %+v, want empty", table.Rows[0][1])
	}
	if table.Rows[1][2] != Text("c2") {
		t.Fatalf("extra cell = %+v, want c2", table.Rows[1][2])
	}
}

func TestTableColumnMissing(t *testing.T) {
	table := NewTable("Report", []string{"A"}, [][]Cell{TextRow("1")})

	_, err := table.Column("B")
	if !errors.Is(err, ErrSchema) {
		t.Fatalf("err = %v, want ErrSchema", err)
	}
}

func TestTableWithColumns(t *testing.T) {
	table := NewTable("Report", []string{"A", "Distance"}, [][]Cell{
		TextRow("1", "old"),
		TextRow("2", "old"),
	})

	out, err := table.WithColumns(
		Column{Name: "Distance", Values: []string{"x", "y"}},
		Column{Name: "Duration", Values: []string{"p", "q"}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantCols := []string{"A", "Distance", "Duration"}
	if !slices.Equal(out.Columns, wantCols) {
		t.Fatalf("columns = %v, want %v", out.Columns, wantCols)
	}
	if !slices.Equal(out.Rows[1], TextRow("2", "y", "q")) {
		t.Fatalf("row 1 = %v", out.Rows[1])
	}

	// source table is untouched
	if table.Rows[0][1] != Text("old") || len(table.Columns) != 2 {
		t.Fatalf("source table mutated: %v %v", table.Columns, table.Rows)
	}
}

func TestTableWithColumnsKeepsTypedCells(t *testing.T) {
	amount := Cell{Value: "1234.5", Kind: KindNumber, Format: CellFormat{ID: 4}}
	shipped := Cell{Value: "45580", Kind: KindNumber, Format: CellFormat{ID: 14}}
	table := NewTable("Report", []string{"Amount", "Shipped"}, [][]Cell{{amount, shipped}})

	out, err := table.WithColumns(Column{Name: "Distance", Values: []string{"3 mi"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Cell{amount, shipped, Text("3 mi")}
	if !slices.Equal(out.Rows[0], want) {
		t.Fatalf("row 0 = %+v, want %+v", out.Rows[0], want)
	}

	values, err := out.Column("Amount")
	if err != nil || !slices.Equal(values, []string{"1234.5"}) {
		t.Fatalf("amount values = %v, %v", values, err)
	}
}

func TestTableWithColumnsLengthMismatch(t *testing.T) {
	table := NewTable("Report", []string{"A"}, [][]Cell{TextRow("1"), TextRow("2")})

	if _, err := table.WithColumns(Column{Name: "B", Values: []string{"x"}}); err == nil {
		t.Fatal("expected error for short column")
	}
}

func TestNewRouteSheet(t *testing.T) {
	table := NewTable("Report", []string{"Id", OriginColumn, DestinationColumn}, [][]Cell{
		TextRow("1", "O1", "D1"),
		TextRow("2", "O2", "D2"),
	})

	sheet, err := NewRouteSheet(table, OriginColumn, DestinationColumn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []RouteRequest{
		{Row: 0, Origin: "O1", Destination: "D1"},
		{Row: 1, Origin: "O2", Destination: "D2"},
	}
	if !slices.Equal(sheet.Requests, want) {
		t.Fatalf("requests = %v, want %v", sheet.Requests, want)
	}

	out, err := sheet.WithResults([]RouteResult{
		{Distance: "10.3 mi", Duration: "18 mins"},
		NotFoundResult(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(out.Rows[0], TextRow("1", "O1", "D1", "10.3 mi", "18 mins")) {
		t.Fatalf("row 0 = %v", out.Rows[0])
	}
	if !slices.Equal(out.Rows[1], TextRow("2", "O2", "D2", NotFound, NotFound)) {
		t.Fatalf("row 1 = %v", out.Rows[1])
	}
}

func TestNewRouteSheetMissingDestination(t *testing.T) {
	table := NewTable("Report", []string{OriginColumn}, [][]Cell{TextRow("O1")})

	_, err := NewRouteSheet(table, OriginColumn, DestinationColumn)
	if !errors.Is(err, ErrSchema) {
		t.Fatalf("err = %v, want ErrSchema", err)
	}
}

func TestRouteResultFound(t *testing.T) {
	if NotFoundResult().Found() {
		t.Fatal("sentinel reported as found")
	}
	if !(RouteResult{Distance: "1 mi", Duration: "2 mins"}).Found() {
		t.Fatal("lookup result reported as not found")
	}
}
