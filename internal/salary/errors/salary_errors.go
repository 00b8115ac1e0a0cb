package salaryerrors

import (
	"github.com/Rabbit1992/salary-query/internal/shared/apperror"
)

var (
	ErrUnknownEmployee = apperror.New(
		apperror.CodeForeignKey,
		"Employee ID does not exist in the system",
	)
	ErrDuplicatePeriod = apperror.New(
		apperror.CodeConflict,
		"A salary record already exists for this employee and month",
	)
	ErrNoEmployees = apperror.New(
		apperror.CodeNotFound,
		"No employees could be loaded from the store",
	)
)
