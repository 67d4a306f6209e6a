package usecase

import (
	"context"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	applicantRepo   domain.ApplicantRepository
	jobRepo         domain.JobRepository
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	applicationRepo domain.ApplicationRepository,
	applicantRepo domain.ApplicantRepository,
	jobRepo domain.JobRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		applicantRepo:   applicantRepo,
		jobRepo:         jobRepo,
	}
}

// Apply files app for the applicant profile owned by userID. Company name,
// title and url default to the job's current values.
func (uc *applicationUsecase) Apply(ctx context.Context, userID int64, app *domain.JobApplication) error {
	// 1. Resolve the caller's applicant profile
	applicant, err := uc.applicantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return notFoundAs(err, "Applicant profile not found")
	}

	// 2. Validate job exists and is open
	job, err := uc.jobRepo.GetByIDWithCompany(ctx, app.JobID)
	if err != nil {
		return notFoundAs(err, "Job not found")
	}
	if job.Status != domain.JobStatusOpen {
		return apperror.BadRequest("Cannot apply to a closed job")
	}

	// 3. Fill snapshot fields
	app.ApplicantID = applicant.ID
	if app.CompanyName == "" {
		app.CompanyName = job.CompanyName
	}
	if app.JobTitle == "" {
		app.JobTitle = job.Title
	}
	if app.JobURL == "" {
		app.JobURL = job.ApplicationURL
	}
	if app.Status == "" {
		app.Status = domain.ApplicationStatusApplied
	}
	if !domain.IsValidApplicationStatus(app.Status) {
		return apperror.BadRequest("Status must be one of: applied, interview, offered, rejected")
	}

	return uc.applicationRepo.Create(ctx, app)
}

func (uc *applicationUsecase) ListApplications(ctx context.Context, page, pageSize int) ([]domain.JobApplication, int64, error) {
	limit, offset := pageBounds(page, pageSize)
	return uc.applicationRepo.List(ctx, limit, offset)
}

func (uc *applicationUsecase) ListByApplicant(ctx context.Context, applicantID int64) ([]domain.JobApplication, error) {
	if _, err := uc.applicantRepo.GetByID(ctx, applicantID); err != nil {
		return nil, notFoundAs(err, "Applicant not found")
	}
	return uc.applicationRepo.ListByApplicant(ctx, applicantID)
}

func (uc *applicationUsecase) GetApplication(ctx context.Context, id int64) (*domain.JobApplication, error) {
	app, err := uc.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Application not found")
	}
	return app, nil
}

func (uc *applicationUsecase) UpdateApplication(ctx context.Context, id int64, upd domain.ApplicationUpdate) (*domain.JobApplication, error) {
	app, err := uc.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Application not found")
	}

	setString(&app.CompanyName, upd.CompanyName)
	setString(&app.JobTitle, upd.JobTitle)
	setString(&app.JobURL, upd.JobURL)
	setString(&app.Status, upd.Status)
	if !domain.IsValidApplicationStatus(app.Status) {
		return nil, apperror.BadRequest("Status must be one of: applied, interview, offered, rejected")
	}

	if err := uc.applicationRepo.Update(ctx, app); err != nil {
		return nil, notFoundAs(err, "Application not found")
	}
	return app, nil
}

func (uc *applicationUsecase) DeleteApplication(ctx context.Context, id int64) error {
	return notFoundAs(uc.applicationRepo.Delete(ctx, id), "Application not found")
}
