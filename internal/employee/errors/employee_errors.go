package employeeerrors

import (
	"github.com/Rabbit1992/salary-query/internal/shared/apperror"
)

var (
	ErrEmployeeIDExists = apperror.New(
		apperror.CodeConflict,
		"Employee ID already exists",
	)
	ErrUsernameExists = apperror.New(
		apperror.CodeConflict,
		"Username already exists",
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
	)
)
