package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo     domain.JobRepository
	companyRepo domain.CompanyRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, companyRepo domain.CompanyRepository) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
	}
}

// CreateJob posts a job for the company owned by userID.
func (u *jobUsecase) CreateJob(ctx context.Context, userID int64, job *domain.Job) error {
	company, err := u.companyRepo.GetByUserID(ctx, userID)
	if err != nil {
		return notFoundAs(err, "Company profile not found")
	}
	job.CompanyID = company.ID

	if job.Status == "" {
		job.Status = domain.JobStatusOpen
	}
	if job.JobType == "" {
		job.JobType = domain.JobTypeFullTime
	}
	if err := validateJob(job); err != nil {
		return err
	}

	return u.jobRepo.Create(ctx, job)
}

func (u *jobUsecase) GetJobDetailsWithCompany(ctx context.Context, id int64) (*domain.JobWithCompany, error) {
	job, err := u.jobRepo.GetByIDWithCompany(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Job not found")
	}
	return job, nil
}

func (u *jobUsecase) ListJobsWithCompany(ctx context.Context, page, pageSize int) ([]domain.JobWithCompany, int64, error) {
	limit, offset := pageBounds(page, pageSize)
	return u.jobRepo.FetchWithCompany(ctx, limit, offset)
}

func (u *jobUsecase) ListJobsByCompany(ctx context.Context, companyID int64, page, pageSize int) ([]domain.Job, int64, error) {
	if _, err := u.companyRepo.GetByID(ctx, companyID); err != nil {
		return nil, 0, notFoundAs(err, "Company not found")
	}
	limit, offset := pageBounds(page, pageSize)
	return u.jobRepo.FetchByCompanyID(ctx, companyID, limit, offset)
}

// UpdateJob applies patch; only provided fields change.
func (u *jobUsecase) UpdateJob(ctx context.Context, id int64, patch domain.JobPatch) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Job not found")
	}

	patch.Apply(job)
	if err := validateJob(job); err != nil {
		return nil, err
	}

	if err := u.jobRepo.Update(ctx, job); err != nil {
		return nil, notFoundAs(err, "Job not found")
	}
	return job, nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, id int64) error {
	return notFoundAs(u.jobRepo.Delete(ctx, id), "Job not found")
}

func validateJob(job *domain.Job) error {
	job.Title = strings.TrimSpace(job.Title)
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if strings.TrimSpace(job.Description) == "" {
		return apperror.BadRequest("Description is required")
	}
	if strings.TrimSpace(job.Location) == "" {
		return apperror.BadRequest("Location is required")
	}
	if !domain.IsValidJobStatus(job.Status) {
		return apperror.BadRequest("Status must be one of: open, closed")
	}
	if !domain.IsValidJobType(job.JobType) {
		return apperror.BadRequest("Job type must be one of: full_time, part_time, internship")
	}

	salary, err := normalizeSalary(job.Salary)
	if err != nil {
		return err
	}
	job.Salary = salary
	return nil
}

// maxSalary is the first value NUMERIC(12, 2) cannot hold.
var maxSalary = decimal.New(1, 10)

// normalizeSalary parses a non-negative decimal with at most two fraction
// digits and renders it with exactly two; empty becomes "0.00".
func normalizeSalary(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "0.00", nil
	}
	invalid := apperror.BadRequest("Salary must be a non-negative decimal with at most two decimal places")

	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() || d.GreaterThanOrEqual(maxSalary) {
		return "", invalid
	}
	if !d.Equal(d.Round(2)) {
		return "", invalid
	}
	return d.StringFixed(2), nil
}
