// Package roster decodes admin-uploaded student rosters from .xlsx
// workbooks into normalized rows.
package roster

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

var ErrNoSheet = errors.New("workbook has no sheets")
var ErrMissingColumns = errors.New("header row must contain name, nic and studentId columns")

// Row is one normalized roster line.
type Row struct {
	Name      string
	NIC       string
	StudentID string
}

// Decode reads the first sheet of an .xlsx workbook. The first row is
// a header naming the columns (name, nic, studentId; case and
// underscore insensitive); every following non-empty row becomes a Row.
func Decode(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheet
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, ErrMissingColumns
	}

	nameCol, nicCol, idCol := -1, -1, -1
	for i, h := range rows[0] {
		switch normalizeHeader(h) {
		case "name":
			nameCol = i
		case "nic":
			nicCol = i
		case "studentid":
			idCol = i
		}
	}
	if nameCol < 0 || nicCol < 0 || idCol < 0 {
		return nil, ErrMissingColumns
	}

	out := make([]Row, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		row := Row{
			Name:      cell(cells, nameCol),
			NIC:       cell(cells, nicCol),
			StudentID: cell(cells, idCol),
		}
		if row.Name == "" && row.NIC == "" && row.StudentID == "" {
			continue // trailing blank rows are common in exported sheets
		}
		out = append(out, row)
	}
	return out, nil
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.NewReplacer("_", "", " ", "", "-", "").Replace(h)
}

func cell(cells []string, i int) string {
	if i >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[i])
}
