package apperror

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// employee_id -> Employee Id
	s = strings.ReplaceAll(s, "_", " ")

	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError translates the first validator failure into an AppError
// with a message a spreadsheet author can act on.
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		e := errs[0]

		// e.Field() is the json tag name thanks to RegisterTagNameFunc in Init()
		humanReadableField := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(humanReadableField)
		case "min", "gte":
			return OutOfRangeField(humanReadableField, "at least "+e.Param())
		case "max", "lte":
			return OutOfRangeField(humanReadableField, "at most "+e.Param())
		case "gt":
			return OutOfRangeField(humanReadableField, "greater than "+e.Param())
		case "oneof":
			return OutOfRangeField(humanReadableField, "one of: "+e.Param())
		default:
			return InvalidField(humanReadableField)
		}
	}

	return New(
		CodeInvalidInput,
		"Invalid input",
	)
}
