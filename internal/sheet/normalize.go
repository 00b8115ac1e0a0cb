package sheet

import (
	"fmt"
	"strings"
)

// ColumnMap resolves canonical field names to 0-based column indexes in one
// particular file.
type ColumnMap map[string]int

// Has reports whether the file supplied a column for the canonical field.
func (m ColumnMap) Has(field string) bool {
	_, ok := m[field]
	return ok
}

// Value reads the cell for a canonical field on one data row, trimmed.
// Returns "" for fields the file did not supply.
func (m ColumnMap) Value(t *Table, row int, field string) string {
	col, ok := m[field]
	if !ok {
		return ""
	}
	return strings.TrimSpace(t.Cell(row, col))
}

// Normalize maps a raw header row onto canonical field names through an alias
// table. Unmapped headers are ignored. Two headers resolving to the same
// canonical field make the whole file ambiguous, so that is an error rather
// than a silent last-one-wins.
func Normalize(header []string, aliases map[string]string) (ColumnMap, error) {
	cols := make(ColumnMap, len(header))
	firstHeader := make(map[string]string, len(header))

	for i, raw := range header {
		name := strings.TrimSpace(raw)
		canonical, ok := aliases[name]
		if !ok {
			continue
		}
		if prev, dup := firstHeader[canonical]; dup {
			return nil, fmt.Errorf(
				"ambiguous columns: %q and %q both map to %s", prev, name, canonical)
		}
		firstHeader[canonical] = name
		cols[canonical] = i
	}

	return cols, nil
}
