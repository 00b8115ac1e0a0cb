package importer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ISODate is the storage form for every date column.
const ISODate = "2006-01-02"

// dateLayouts is the ordered parse cascade for date cells. Each layout is
// tried in turn; the first hit wins and is reformatted to ISODate.
var dateLayouts = []string{
	ISODate,
	"2006/01/02",
	"2006-01-02 15:04:05", // excelize's rendering of datetime cells
	"2006/01/02 15:04:05",
	"01-02-06", // Excel's default short date
	"1/2/06",
}

// ParseDate normalizes a date cell to YYYY-MM-DD. An empty cell yields the
// fallback; a cell no layout understands passes through unmodified, matching
// the legacy importer's leniency.
func ParseDate(raw string, fallback time.Time) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return fallback.Format(ISODate)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(ISODate)
		}
	}
	return s
}

// yearMonthPattern extracts a 4-digit year followed by a 1-2 digit month from
// free text: "2023年5月", "2023-05", "202305".
var yearMonthPattern = regexp.MustCompile(`(\d{4})\D*?(\d{1,2})`)

// ParseYearMonth splits a combined year-month cell. ok is false when the cell
// does not contain a recognizable year+month pair.
func ParseYearMonth(raw string) (year, month int, ok bool) {
	m := yearMonthPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return 0, 0, false
	}
	year, _ = strconv.Atoi(m[1])
	month, _ = strconv.Atoi(m[2])
	return year, month, true
}

// ParseFloat coerces a numeric cell. Blank and unparseable cells default to
// 0 silently; that leniency is intentional, not an error path.
func ParseFloat(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	// Spreadsheets localize thousands separators
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseFloatStrict parses a numeric cell without the silent-zero leniency.
// ok is false when the cell is not a number; callers decide whether that is
// a row error.
func ParseFloatStrict(raw string) (float64, bool) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseInt is ParseFloat's integer sibling for year/month cells, with an
// explicit miss signal so callers can apply their own defaults.
func ParseInt(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v, true
	}
	// Excel renders integer cells as floats often enough ("2024.0")
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f), true
	}
	return 0, false
}

// DefaultPaymentDate is the 10th of the record's month.
func DefaultPaymentDate(year, month int) string {
	return fmt.Sprintf("%d-%02d-10", year, month)
}
