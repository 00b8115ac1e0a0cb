package apperror_test

import (
	"testing"

	"github.com/Rabbit1992/salary-query/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

type sampleRecord struct {
	EmployeeID string  `json:"employee_id" validate:"required"`
	Month      int     `json:"month" validate:"min=1,max=12"`
	BaseSalary float64 `json:"base_salary" validate:"gt=0"`
}

func TestValidate(t *testing.T) {
	apperror.Init()

	t.Run("passing struct yields nil", func(t *testing.T) {
		err := apperror.Validate(sampleRecord{EmployeeID: "E1", Month: 5, BaseSalary: 100})
		assert.NoError(t, err)
	})

	t.Run("required field names come from json tags", func(t *testing.T) {
		err := apperror.Validate(sampleRecord{Month: 5, BaseSalary: 100})
		assert.EqualError(t, err, "Employee Id is required")
	})

	t.Run("range violations name the bound", func(t *testing.T) {
		err := apperror.Validate(sampleRecord{EmployeeID: "E1", Month: 13, BaseSalary: 100})
		assert.EqualError(t, err, "Month must be at most 12")

		err = apperror.Validate(sampleRecord{EmployeeID: "E1", Month: 5})
		assert.EqualError(t, err, "Base Salary must be greater than 0")
	})

	t.Run("first failing field wins in declaration order", func(t *testing.T) {
		err := apperror.Validate(sampleRecord{EmployeeID: "E1", Month: 0, BaseSalary: 0})
		assert.EqualError(t, err, "Month must be at least 1")
	})
}

func TestAppError(t *testing.T) {
	base := apperror.New(apperror.CodeConflict, "Username already exists")
	assert.EqualError(t, base, "Username already exists")

	wrapped := apperror.Wrap(assert.AnError, apperror.CodeInternalError, "insert failed")
	assert.ErrorIs(t, wrapped, assert.AnError)
	assert.Contains(t, wrapped.Error(), "insert failed")
}
