package sheet

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// Table is the raw content of one worksheet: a header row and the data rows
// below it, all as strings. Cell formatting is already applied by excelize,
// so numeric and date cells arrive the way the spreadsheet displays them.
type Table struct {
	Path   string
	Header []string
	Rows   [][]string
}

// Read loads the first worksheet of an xlsx file. A missing file, an
// unreadable workbook, or a sheet without a header row are all fatal to the
// import run.
func Read(path string) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("excel file does not exist: %s", path)
		}
		return nil, fmt.Errorf("stat excel file %s: %w", path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open excel file %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel file has no sheets: %s", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", sheets[0])
	}

	return &Table{
		Path:   path,
		Header: rows[0],
		Rows:   rows[1:],
	}, nil
}

// Cell returns the value at (row, col), or "" when the row is shorter than
// col. excelize trims trailing empty cells, so short rows are normal.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 {
		return ""
	}
	r := t.Rows[row]
	if col >= len(r) {
		return ""
	}
	return r[col]
}

// RowNumber converts a data-row index to the 1-based spreadsheet row number
// humans see (index 0 is row 2: row 1 is the header).
func RowNumber(index int) int {
	return index + 2
}
