package importer_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Rabbit1992/salary-query/internal/importer"

	"github.com/stretchr/testify/assert"
)

func TestReportOk(t *testing.T) {
	r := &importer.Report{}
	assert.True(t, r.Ok())

	// Validation rejections alone never fail a run
	r.Reject(2, errors.New("Name is required"))
	assert.True(t, r.Ok())

	r.Fail("employee E1 2024-01", errors.New("constraint violation"))
	assert.False(t, r.Ok())
	assert.Equal(t, 1, r.Failed)
}

func TestReportSummary(t *testing.T) {
	r := &importer.Report{
		ExistingRecords: 4,
		RowsRead:        3,
		Accepted:        2,
		Inserted:        1,
		Updated:         1,
	}
	r.Reject(3, errors.New("employee ID \"E9\" does not exist in the system"))

	var buf bytes.Buffer
	r.Summary(&buf)
	out := buf.String()

	assert.Contains(t, out, "Existing records found: 4")
	assert.Contains(t, out, "Rows read:              3")
	assert.Contains(t, out, "row 3: employee ID \"E9\" does not exist in the system")
	assert.Contains(t, out, "Inserted: 1  Updated: 1  Failed: 0")
}
