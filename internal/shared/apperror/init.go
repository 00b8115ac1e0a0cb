package apperror

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// Init builds the shared validator instance. Field names in validation errors
// come from the json tag so they match the canonical spreadsheet column names.
func Init() {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	validate = v
}

// Validate runs struct validation and maps the first failure to an AppError.
// Returns nil when the value passes.
func Validate(s interface{}) error {
	if validate == nil {
		Init()
	}
	if err := validate.Struct(s); err != nil {
		return MapValidationError(err)
	}
	return nil
}
