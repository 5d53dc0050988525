package apperror

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// contact_no -> Contact No
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError turns validator failures into a user-facing AppError.
// The message reports the first failing field; every failure lands in
// Details keyed by its wire name. Field names come from the json tag
// (see Init).
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		details := make(map[string]string, len(errs))
		for _, fe := range errs {
			switch fe.Tag() {
			case "required":
				details[fe.Field()] = formatFieldName(fe.Field()) + " is required"
			default:
				details[fe.Field()] = formatFieldName(fe.Field()) + " is invalid"
			}
		}

		first := errs[0]
		var appErr *AppError
		if first.Tag() == "required" {
			appErr = RequiredField(formatFieldName(first.Field()))
		} else {
			appErr = InvalidField(formatFieldName(first.Field()))
		}
		appErr.Details = details
		return appErr
	}

	return New(
		CodeValidation,
		"Invalid input",
		http.StatusBadRequest,
	)
}
