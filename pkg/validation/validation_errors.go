package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the JSON names clients send
var FieldLabels = map[string]string{
	// Auth fields
	"Username": "username",
	"Password": "password",

	// Vacancy fields
	"Title":      "title",
	"Text":       "text",
	"Region":     "region",
	"Salary":     "salary",
	"Profession": "profession",

	// Application fields
	"OfferID":      "offerId",
	"Name":         "name",
	"Phone":        "phone",
	"Interest":     "interest",
	"ApplicantID":  "applicantId",
	"Status":       "status",
	"SalaryWorker": "salaryWorker",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// Message joins the formatted errors into one line.
func Message(err error) string {
	return strings.Join(FormatValidationErrors(err), "; ")
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", label)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(e.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return fieldName
}
