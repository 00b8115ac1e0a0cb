package employee

import (
	"errors"
	"testing"

	employeeerrors "github.com/Rabbit1992/salary-query/internal/employee/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapRepositoryError(t *testing.T) {
	assert.NoError(t, mapRepositoryError(nil))

	assert.ErrorIs(t,
		mapRepositoryError(gorm.ErrRecordNotFound),
		employeeerrors.ErrEmployeeNotFound,
	)

	assert.ErrorIs(t,
		mapRepositoryError(errors.New("UNIQUE constraint failed: employees.username")),
		employeeerrors.ErrUsernameExists,
	)

	assert.ErrorIs(t,
		mapRepositoryError(errors.New("UNIQUE constraint failed: employees.employee_id")),
		employeeerrors.ErrEmployeeIDExists,
	)

	// Anything unrecognized passes through untouched
	opaque := errors.New("disk I/O error")
	assert.Equal(t, opaque, mapRepositoryError(opaque))
}
