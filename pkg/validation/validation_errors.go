package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	// Auth fields
	"Email":       "Email",
	"Password":    "Password",
	"Name":        "Name",
	"Role":        "Role",
	"LinkedIn":    "LinkedIn URL",
	"GitHub":      "GitHub URL",
	"Resume":      "Resume",
	"CompanyName": "Company name",
	"Industry":    "Industry",
	"Brief":       "Company brief",
	"Website":     "Website",
	"Logo":        "Logo",

	// Job fields
	"Title":          "Title",
	"Description":    "Description",
	"Location":       "Location",
	"ApplicationURL": "Application URL",
	"Salary":         "Salary",
	"Skills":         "Skills",
	"Status":         "Status",
	"JobType":        "Job type",

	// Experience fields
	"JobTitle":  "Job title",
	"StartDate": "Start date",
	"EndDate":   "End date",

	// Application fields
	"JobID":  "Job",
	"JobURL": "Job URL",
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

// Message joins FormatValidationErrors into a single response message
func Message(err error) string {
	return strings.Join(FormatValidationErrors(err), "; ")
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required", "required_if":
		return fmt.Sprintf("%s: is required", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at least %s", label, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at most %s", label, param)

	case "oneof":
		return fmt.Sprintf("%s: must be one of: %s", label, strings.Join(strings.Fields(param), ", "))

	case "email":
		return fmt.Sprintf("%s: invalid email format", label)

	case "url":
		return fmt.Sprintf("%s: invalid URL format", label)

	case "numeric":
		return fmt.Sprintf("%s: must be a number", label)

	case "valid_name":
		return fmt.Sprintf("%s: only letters, digits, spaces and common punctuation are allowed", label)

	case "no_emoji":
		return fmt.Sprintf("%s: must not contain emoji or special symbols", label)

	case "job_status":
		return fmt.Sprintf("%s: must be one of: open, closed", label)

	case "job_type":
		return fmt.Sprintf("%s: must be one of: full_time, part_time, internship", label)

	case "application_status":
		return fmt.Sprintf("%s: must be one of: applied, interview, offered, rejected", label)

	case "iso_date":
		return fmt.Sprintf("%s: must be a date in YYYY-MM-DD format", label)

	case "gt":
		return fmt.Sprintf("%s: must be greater than %s", label, param)

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s: failed validation (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
