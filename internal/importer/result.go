package importer

import (
	"fmt"
	"io"
)

// RowError is one rejected source row: the 1-based spreadsheet row number and
// the reason it was excluded from the batch.
type RowError struct {
	Row    int
	Reason string
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}

// NewRowError builds a RowError from anything error-shaped.
func NewRowError(row int, err error) RowError {
	return RowError{Row: row, Reason: err.Error()}
}

// Report accumulates the outcome of one import run. Validation rejections and
// persistence failures are tracked separately because only the latter fail
// the run's exit code.
type Report struct {
	ExistingRecords int
	RowsRead        int
	Accepted        int

	RowErrors []RowError

	Inserted      int
	Updated       int
	Failed        int
	PersistErrors []string
}

// Reject records one validation rejection.
func (r *Report) Reject(row int, err error) {
	r.RowErrors = append(r.RowErrors, NewRowError(row, err))
}

// Fail records one persistence failure; key identifies the record.
func (r *Report) Fail(key string, err error) {
	r.Failed++
	r.PersistErrors = append(r.PersistErrors, fmt.Sprintf("%s: %v", key, err))
}

// Ok reports whether the persistence phase completed without failures.
// Validation rejections alone do not make a run fail.
func (r *Report) Ok() bool {
	return r.Failed == 0
}

// Summary writes the human-readable tally the operator reads after a run.
func (r *Report) Summary(w io.Writer) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, "Import result")
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintf(w, "Existing records found: %d\n", r.ExistingRecords)
	fmt.Fprintf(w, "Rows read:              %d\n", r.RowsRead)
	fmt.Fprintf(w, "Rows accepted:          %d\n", r.Accepted)

	if len(r.RowErrors) > 0 {
		fmt.Fprintln(w, "\nValidation errors:")
		for _, e := range r.RowErrors {
			fmt.Fprintf(w, "  - %s\n", e.Error())
		}
	}

	fmt.Fprintf(w, "\nInserted: %d  Updated: %d  Failed: %d\n", r.Inserted, r.Updated, r.Failed)

	if len(r.PersistErrors) > 0 {
		fmt.Fprintln(w, "\nImport errors:")
		for _, msg := range r.PersistErrors {
			fmt.Fprintf(w, "  - %s\n", msg)
		}
	}
}
