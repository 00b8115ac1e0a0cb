package salary

import (
	"errors"
	"testing"

	salaryerrors "github.com/Rabbit1992/salary-query/internal/salary/errors"

	"github.com/stretchr/testify/assert"
)

func TestMapRepositoryError(t *testing.T) {
	assert.NoError(t, mapRepositoryError(nil))

	assert.ErrorIs(t,
		mapRepositoryError(errors.New("UNIQUE constraint failed: salaries.employee_id, salaries.year, salaries.month")),
		salaryerrors.ErrDuplicatePeriod,
	)

	assert.ErrorIs(t,
		mapRepositoryError(errors.New("FOREIGN KEY constraint failed")),
		salaryerrors.ErrUnknownEmployee,
	)

	opaque := errors.New("database is locked")
	assert.Equal(t, opaque, mapRepositoryError(opaque))
}
