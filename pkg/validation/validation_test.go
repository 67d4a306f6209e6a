package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type jobInput struct {
	Title   string `validate:"required,no_emoji"`
	Status  string `validate:"job_status"`
	JobType string `validate:"job_type"`
}

type experienceInput struct {
	CompanyName string `validate:"required,valid_name"`
	StartDate   string `validate:"required,iso_date"`
}

type applicationInput struct {
	Status string `validate:"application_status"`
}

func TestCustomValidators(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(jobInput{Title: "Go Developer", Status: "open", JobType: "full_time"}))
	assert.NoError(t, v.Struct(jobInput{Title: "Go Developer"}))
	assert.Error(t, v.Struct(jobInput{Title: "Go Developer", Status: "archived"}))
	assert.Error(t, v.Struct(jobInput{Title: "Go Developer", JobType: "contract"}))
	assert.Error(t, v.Struct(jobInput{Title: "Go Developer 🚀"}))

	assert.NoError(t, v.Struct(experienceInput{CompanyName: "Acme & Co.", StartDate: "2021-03-01"}))
	assert.Error(t, v.Struct(experienceInput{CompanyName: "Acme", StartDate: "2021-13-01"}))
	assert.Error(t, v.Struct(experienceInput{CompanyName: "Acme", StartDate: "01/03/2021"}))
	assert.Error(t, v.Struct(experienceInput{CompanyName: "Acme <script>", StartDate: "2021-03-01"}))

	assert.NoError(t, v.Struct(applicationInput{Status: "interview"}))
	assert.Error(t, v.Struct(applicationInput{Status: "hired"}))
}

func TestFormatValidationErrors(t *testing.T) {
	v := New()

	err := v.Struct(jobInput{Status: "archived"})
	require.Error(t, err)
	msgs := FormatValidationErrors(err)
	assert.Equal(t, []string{
		"Title: is required",
		"Status: must be one of: open, closed",
	}, msgs)

	err = v.Struct(experienceInput{CompanyName: "Acme", StartDate: "yesterday"})
	assert.Equal(t, "Start date: must be a date in YYYY-MM-DD format", Message(err))

	assert.Equal(t, []string{"boom"}, FormatValidationErrors(errors.New("boom")))
}

func TestFormatCamelCase(t *testing.T) {
	assert.Equal(t, "Job type", getFieldLabel("JobType"))
	assert.Equal(t, "Some Field", formatCamelCase("SomeField"))
}
