package apperror

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// formatFieldName turns a json field name into a label: "hireDate" -> "Hire Date".
func formatFieldName(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	label := strings.ReplaceAll(b.String(), "_", " ")

	caser := cases.Title(language.English)
	return caser.String(label)
}

func RequiredField(field string) *AppError {
	return New(
		CodeValidationError,
		fmt.Sprintf("%s is required", field),
		http.StatusBadRequest,
	)
}

func InvalidField(field string) *AppError {
	return New(
		CodeValidationError,
		fmt.Sprintf("%s is invalid", field),
		http.StatusBadRequest,
	)
}

// MapValidationError converts a binding error into an AppError describing
// the first offending field. The full list goes into Details.
func MapValidationError(err error) error {
	if errors.Is(err, io.EOF) {
		return ErrEmptyBody
	}

	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		e := errs[0]
		field := formatFieldName(e.Field())

		details := make([]string, 0, len(errs))
		for _, fe := range errs {
			details = append(details, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
		}

		switch e.Tag() {
		case "required":
			return RequiredField(field).WithDetails(details)
		default:
			return InvalidField(field).WithDetails(details)
		}
	}

	return Wrap(err, CodeValidationError, "Invalid input", http.StatusBadRequest).WithDetails(err.Error())
}
