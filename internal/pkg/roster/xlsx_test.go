package roster

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue("Sheet1", cell, val); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return &buf
}

func TestDecode_HeaderMappedRows(t *testing.T) {
	buf := workbook(t, [][]any{
		{"Name", "NIC", "Student_ID"}, // mixed case and underscore
		{"Amara Perera", "991234567V", "IT2021001"},
		{"Bimal Silva", "887654321V", "IT2021002"},
	})

	rows, err := Decode(buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0] != (Row{Name: "Amara Perera", NIC: "991234567V", StudentID: "IT2021001"}) {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
}

func TestDecode_ColumnOrderIrrelevant(t *testing.T) {
	buf := workbook(t, [][]any{
		{"studentId", "name", "nic"},
		{"IT2021001", "Amara Perera", "991234567V"},
	})

	rows, err := Decode(buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if rows[0].StudentID != "IT2021001" || rows[0].NIC != "991234567V" {
		t.Fatalf("columns not mapped by header: %+v", rows[0])
	}
}

func TestDecode_SkipsTrailingBlankRows(t *testing.T) {
	buf := workbook(t, [][]any{
		{"name", "nic", "studentId"},
		{"Amara Perera", "991234567V", "IT2021001"},
		{"", "", ""},
	})

	rows, err := Decode(buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected blank row skipped, got %d rows", len(rows))
	}
}

func TestDecode_MissingColumns(t *testing.T) {
	buf := workbook(t, [][]any{
		{"name", "id"},
		{"Amara Perera", "IT2021001"},
	})

	if _, err := Decode(buf); !errors.Is(err, ErrMissingColumns) {
		t.Fatalf("expected ErrMissingColumns, got %v", err)
	}
}

func TestDecode_NotAWorkbook(t *testing.T) {
	if _, err := Decode(strings.NewReader("plain text")); err == nil {
		t.Fatalf("expected error for non-xlsx input")
	}
}
