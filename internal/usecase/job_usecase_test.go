package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"job-portal-backend/internal/domain"
	"job-portal-backend/internal/usecase"
)

func TestCreateJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Should attach the caller's company and default enums", func(t *testing.T) {
		jobs, companies := new(MockJobRepo), new(MockCompanyRepo)
		companies.On("GetByUserID", ctx, int64(2)).Return(&domain.Company{ID: 20, UserID: 2}, nil)
		jobs.On("Create", ctx, mock.AnythingOfType("*domain.Job")).Return(nil)
		uc := usecase.NewJobUsecase(jobs, companies)

		job := &domain.Job{Title: " Go Dev ", Description: "APIs", Location: "Remote", Salary: "85000.50"}
		require.NoError(t, uc.CreateJob(ctx, 2, job))
		assert.Equal(t, int64(20), job.CompanyID)
		assert.Equal(t, "Go Dev", job.Title)
		assert.Equal(t, domain.JobStatusOpen, job.Status)
		assert.Equal(t, domain.JobTypeFullTime, job.JobType)
		assert.Equal(t, "85000.50", job.Salary)
	})

	t.Run("Should normalise salary to two decimal places", func(t *testing.T) {
		companies := new(MockCompanyRepo)
		companies.On("GetByUserID", ctx, int64(2)).Return(&domain.Company{ID: 20, UserID: 2}, nil)
		jobs := new(MockJobRepo)
		jobs.On("Create", ctx, mock.AnythingOfType("*domain.Job")).Return(nil)
		uc := usecase.NewJobUsecase(jobs, companies)

		for raw, want := range map[string]string{
			"85000.5":       "85000.50",
			"120000":        "120000.00",
			"12.340":        "12.34",
			"":              "0.00",
			"9999999999.99": "9999999999.99",
		} {
			job := &domain.Job{Title: "t", Description: "d", Location: "l", Salary: raw}
			require.NoError(t, uc.CreateJob(ctx, 2, job), raw)
			assert.Equal(t, want, job.Salary, raw)
		}
	})

	t.Run("Should fail without a company profile", func(t *testing.T) {
		jobs, companies := new(MockJobRepo), new(MockCompanyRepo)
		companies.On("GetByUserID", ctx, int64(3)).Return(nil, domain.ErrNotFound)
		uc := usecase.NewJobUsecase(jobs, companies)

		err := uc.CreateJob(ctx, 3, &domain.Job{Title: "x"})
		requireAppError(t, err, http.StatusNotFound)
		jobs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject invalid fields", func(t *testing.T) {
		companies := new(MockCompanyRepo)
		companies.On("GetByUserID", ctx, int64(2)).Return(&domain.Company{ID: 20}, nil)
		uc := usecase.NewJobUsecase(new(MockJobRepo), companies)

		cases := []domain.Job{
			{Description: "d", Location: "l"},
			{Title: "t", Description: "d", Location: "l", Status: "archived"},
			{Title: "t", Description: "d", Location: "l", JobType: "contract"},
			{Title: "t", Description: "d", Location: "l", Salary: "-1"},
			{Title: "t", Description: "d", Location: "l", Salary: "12.345"},
			{Title: "t", Description: "d", Location: "l", Salary: "abc"},
			{Title: "t", Description: "d", Location: "l", Salary: "10000000000"},
			{Title: "t", Description: "d", Location: "l", Salary: "1.2.3"},
		}
		for _, c := range cases {
			job := c
			requireAppError(t, uc.CreateJob(ctx, 2, &job), http.StatusBadRequest)
		}
	})
}

func TestUpdateJob_PartialPatch(t *testing.T) {
	ctx := context.Background()
	jobs := new(MockJobRepo)
	existing := &domain.Job{
		ID: 5, CompanyID: 1, Title: "Old", Description: "Desc", Location: "Berlin",
		Salary: "100.00", Status: domain.JobStatusOpen, JobType: domain.JobTypePartTime,
	}
	jobs.On("GetByID", ctx, int64(5)).Return(existing, nil)
	jobs.On("Update", ctx, mock.AnythingOfType("*domain.Job")).Return(nil)
	uc := usecase.NewJobUsecase(jobs, new(MockCompanyRepo))

	closed := domain.JobStatusClosed
	updated, err := uc.UpdateJob(ctx, 5, domain.JobPatch{Title: strPtr("New"), Status: &closed})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, domain.JobStatusClosed, updated.Status)
	assert.Equal(t, "Berlin", updated.Location)
	assert.Equal(t, domain.JobTypePartTime, updated.JobType)
	assert.Equal(t, "100.00", updated.Salary)
}

func TestUpdateJob_NotFound(t *testing.T) {
	ctx := context.Background()
	jobs := new(MockJobRepo)
	jobs.On("GetByID", ctx, int64(404)).Return(nil, domain.ErrNotFound)
	uc := usecase.NewJobUsecase(jobs, new(MockCompanyRepo))

	_, err := uc.UpdateJob(ctx, 404, domain.JobPatch{})
	requireAppError(t, err, http.StatusNotFound)
}

func TestListJobsByCompany_UnknownCompany(t *testing.T) {
	ctx := context.Background()
	companies := new(MockCompanyRepo)
	companies.On("GetByID", ctx, int64(9)).Return(nil, domain.ErrNotFound)
	uc := usecase.NewJobUsecase(new(MockJobRepo), companies)

	_, _, err := uc.ListJobsByCompany(ctx, 9, 1, 10)
	requireAppError(t, err, http.StatusNotFound)
}
