package validation

import (
	"regexp"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"

	"job-portal-backend/internal/domain"
)

// Regex patterns
var (
	// Allow letters, numbers, spaces, and common professional punctuation: . ' - / & ( ) ,
	nameRegex = regexp.MustCompile(`^[\p{L}0-9 .'/&(),-]+$`)
)

// ISODateLayout is the calendar date format used by experience records
const ISODateLayout = "2006-01-02"

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("no_emoji", NoEmoji)
	_ = v.RegisterValidation("job_status", JobStatus)
	_ = v.RegisterValidation("job_type", JobType)
	_ = v.RegisterValidation("application_status", ApplicationStatus)
	_ = v.RegisterValidation("iso_date", ISODate)
}

// New returns a validator with the custom tags registered
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// ValidName validates that a string contains only valid name characters
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return nameRegex.MatchString(val)
}

// NoEmoji validates that a string does not contain emoji characters
func NoEmoji(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if r > 0x1F000 {
			return false // Supplementary characters (mostly emoji/symbols)
		}
		if unicode.In(r, unicode.So, unicode.Sk) { // Symbol, other / Symbol, modifier
			return false
		}
	}
	return true
}

// JobStatus accepts open or closed. Empty passes so optional fields can omit it.
func JobStatus(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	return val == "" || domain.IsValidJobStatus(val)
}

func JobType(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	return val == "" || domain.IsValidJobType(val)
}

func ApplicationStatus(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	return val == "" || domain.IsValidApplicationStatus(val)
}

// ISODate validates a YYYY-MM-DD calendar date
func ISODate(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	_, err := time.Parse(ISODateLayout, val)
	return err == nil
}
