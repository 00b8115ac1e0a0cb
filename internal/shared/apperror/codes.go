package apperror

const (
	// Input / data errors
	CodeInvalidInput = "INVALID_INPUT"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeForeignKey   = "FOREIGN_KEY_VIOLATION"

	// Environment / store errors
	CodeStoreUnavailable = "STORE_UNAVAILABLE"
	CodeInternalError    = "INTERNAL_ERROR"
)
