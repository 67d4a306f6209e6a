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

func TestGetApplicant_IncludesHistory(t *testing.T) {
	ctx := context.Background()
	applicants, experiences, applications := new(MockApplicantRepo), new(MockExperienceRepo), new(MockApplicationRepo)
	applicants.On("GetByID", ctx, int64(4)).Return(&domain.Applicant{ID: 4, UserID: 40, Name: "Ada"}, nil)
	experiences.On("ListByApplicant", ctx, int64(4)).Return([]domain.Experience{{ID: 1, ApplicantID: 4}}, nil)
	applications.On("ListByApplicant", ctx, int64(4)).Return([]domain.JobApplication{{ID: 2}, {ID: 3}}, nil)
	uc := usecase.NewApplicantUsecase(applicants, experiences, applications)

	detail, err := uc.GetApplicant(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "Ada", detail.Name)
	assert.Len(t, detail.Experiences, 1)
	assert.Len(t, detail.Applications, 2)
}

func TestUpdateApplicant_OnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	applicants := new(MockApplicantRepo)
	applicants.On("GetByID", ctx, int64(4)).Return(&domain.Applicant{ID: 4, GitHub: "gh/ada", Skills: "go"}, nil)
	applicants.On("Update", ctx, mock.Anything).Return(nil)
	uc := usecase.NewApplicantUsecase(applicants, new(MockExperienceRepo), new(MockApplicationRepo))

	a, err := uc.UpdateApplicant(ctx, 4, domain.ApplicantUpdate{Skills: strPtr("go,sql")})
	require.NoError(t, err)
	assert.Equal(t, "go,sql", a.Skills)
	assert.Equal(t, "gh/ada", a.GitHub)
}

func TestUpdateCompany_RejectsEmptyName(t *testing.T) {
	ctx := context.Background()
	companies := new(MockCompanyRepo)
	companies.On("GetByID", ctx, int64(1)).Return(&domain.Company{ID: 1, Name: "Acme"}, nil)
	uc := usecase.NewCompanyUsecase(companies)

	_, err := uc.UpdateCompany(ctx, 1, domain.CompanyUpdate{Name: strPtr("  ")})
	requireAppError(t, err, http.StatusBadRequest)
	companies.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCreateExperience(t *testing.T) {
	ctx := context.Background()
	applicants, experiences := new(MockApplicantRepo), new(MockExperienceRepo)
	applicants.On("GetByID", ctx, int64(4)).Return(&domain.Applicant{ID: 4}, nil)
	applicants.On("GetByID", ctx, int64(5)).Return(nil, domain.ErrNotFound)
	experiences.On("Create", ctx, mock.Anything).Return(nil)
	uc := usecase.NewExperienceUsecase(experiences, applicants)

	end := "2022-01-31"
	e := &domain.Experience{CompanyName: "Acme", JobTitle: "Engineer", StartDate: "2020-02-01", EndDate: &end}
	require.NoError(t, uc.CreateExperience(ctx, 4, e))
	assert.Equal(t, int64(4), e.ApplicantID)

	before := "2019-01-01"
	err := uc.CreateExperience(ctx, 4, &domain.Experience{CompanyName: "Acme", JobTitle: "Engineer", StartDate: "2020-02-01", EndDate: &before})
	requireAppError(t, err, http.StatusBadRequest)

	err = uc.CreateExperience(ctx, 4, &domain.Experience{CompanyName: "Acme", JobTitle: "Engineer", StartDate: "Feb 2020"})
	requireAppError(t, err, http.StatusBadRequest)

	err = uc.CreateExperience(ctx, 5, &domain.Experience{CompanyName: "Acme", JobTitle: "Engineer", StartDate: "2020-02-01"})
	requireAppError(t, err, http.StatusNotFound)
}

func TestUpdateExperience_ClearsEndDate(t *testing.T) {
	ctx := context.Background()
	experiences := new(MockExperienceRepo)
	end := "2021-01-01"
	experiences.On("GetByID", ctx, int64(1)).Return(&domain.Experience{
		ID: 1, CompanyName: "Acme", JobTitle: "Engineer", StartDate: "2020-01-01", EndDate: &end,
	}, nil)
	experiences.On("Update", ctx, mock.Anything).Return(nil)
	uc := usecase.NewExperienceUsecase(experiences, new(MockApplicantRepo))

	e, err := uc.UpdateExperience(ctx, 1, domain.ExperienceUpdate{EndDate: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, e.EndDate)
}

func TestApply(t *testing.T) {
	ctx := context.Background()

	newUC := func(jobStatus string) (domain.ApplicationUsecase, *MockApplicationRepo) {
		applications, applicants, jobs := new(MockApplicationRepo), new(MockApplicantRepo), new(MockJobRepo)
		applicants.On("GetByUserID", ctx, int64(10)).Return(&domain.Applicant{ID: 4, UserID: 10}, nil)
		applicants.On("GetByUserID", ctx, int64(11)).Return(nil, domain.ErrNotFound)
		jobs.On("GetByIDWithCompany", ctx, int64(7)).Return(&domain.JobWithCompany{
			Job:         domain.Job{ID: 7, Title: "Go Dev", ApplicationURL: "https://acme.example/jobs/7", Status: jobStatus},
			CompanyName: "Acme",
		}, nil)
		applications.On("Create", ctx, mock.Anything).Return(nil)
		return usecase.NewApplicationUsecase(applications, applicants, jobs), applications
	}

	t.Run("Should snapshot job fields for the caller's applicant profile", func(t *testing.T) {
		uc, _ := newUC(domain.JobStatusOpen)
		app := &domain.JobApplication{JobID: 7}
		require.NoError(t, uc.Apply(ctx, 10, app))
		assert.Equal(t, int64(4), app.ApplicantID)
		assert.Equal(t, "Acme", app.CompanyName)
		assert.Equal(t, "Go Dev", app.JobTitle)
		assert.Equal(t, domain.ApplicationStatusApplied, app.Status)
	})

	t.Run("Should refuse closed jobs", func(t *testing.T) {
		uc, applications := newUC(domain.JobStatusClosed)
		err := uc.Apply(ctx, 10, &domain.JobApplication{JobID: 7})
		requireAppError(t, err, http.StatusBadRequest)
		applications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should require an applicant profile", func(t *testing.T) {
		uc, _ := newUC(domain.JobStatusOpen)
		err := uc.Apply(ctx, 11, &domain.JobApplication{JobID: 7})
		requireAppError(t, err, http.StatusNotFound)
	})
}

func TestUpdateApplication_RejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()
	applications := new(MockApplicationRepo)
	applications.On("GetByID", ctx, int64(1)).Return(&domain.JobApplication{ID: 1, Status: domain.ApplicationStatusApplied}, nil)
	uc := usecase.NewApplicationUsecase(applications, new(MockApplicantRepo), new(MockJobRepo))

	_, err := uc.UpdateApplication(ctx, 1, domain.ApplicationUpdate{Status: strPtr("hired")})
	requireAppError(t, err, http.StatusBadRequest)
}
