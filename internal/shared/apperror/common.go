package apperror

import "fmt"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
	)

	ErrStoreUnavailable = New(
		CodeStoreUnavailable,
		"The database is not reachable",
	)
)

// RequiredField builds an INVALID_INPUT error for an empty mandatory field
func RequiredField(field string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s is required", field))
}

// InvalidField builds an INVALID_INPUT error for a field that failed validation
func InvalidField(field string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s is invalid", field))
}

// OutOfRangeField reports a field whose value fell outside its allowed bounds
func OutOfRangeField(field, bounds string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s must be %s", field, bounds))
}
