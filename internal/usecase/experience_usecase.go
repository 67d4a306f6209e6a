package usecase

import (
	"context"
	"strings"
	"time"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/validation"
)

type experienceUsecase struct {
	experienceRepo domain.ExperienceRepository
	applicantRepo  domain.ApplicantRepository
}

func NewExperienceUsecase(experienceRepo domain.ExperienceRepository, applicantRepo domain.ApplicantRepository) domain.ExperienceUsecase {
	return &experienceUsecase{
		experienceRepo: experienceRepo,
		applicantRepo:  applicantRepo,
	}
}

func (u *experienceUsecase) ListByApplicant(ctx context.Context, applicantID int64) ([]domain.Experience, error) {
	if _, err := u.applicantRepo.GetByID(ctx, applicantID); err != nil {
		return nil, notFoundAs(err, "Applicant not found")
	}
	return u.experienceRepo.ListByApplicant(ctx, applicantID)
}

func (u *experienceUsecase) CreateExperience(ctx context.Context, applicantID int64, e *domain.Experience) error {
	if _, err := u.applicantRepo.GetByID(ctx, applicantID); err != nil {
		return notFoundAs(err, "Applicant not found")
	}
	e.ApplicantID = applicantID

	if err := validateExperience(e); err != nil {
		return err
	}
	return u.experienceRepo.Create(ctx, e)
}

func (u *experienceUsecase) UpdateExperience(ctx context.Context, id int64, upd domain.ExperienceUpdate) (*domain.Experience, error) {
	e, err := u.experienceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Experience not found")
	}

	setString(&e.CompanyName, upd.CompanyName)
	setString(&e.JobTitle, upd.JobTitle)
	setString(&e.StartDate, upd.StartDate)
	setString(&e.Description, upd.Description)
	setString(&e.Skills, upd.Skills)
	if upd.EndDate != nil {
		if *upd.EndDate == "" {
			e.EndDate = nil
		} else {
			end := *upd.EndDate
			e.EndDate = &end
		}
	}

	if err := validateExperience(e); err != nil {
		return nil, err
	}
	if err := u.experienceRepo.Update(ctx, e); err != nil {
		return nil, notFoundAs(err, "Experience not found")
	}
	return e, nil
}

func (u *experienceUsecase) DeleteExperience(ctx context.Context, id int64) error {
	return notFoundAs(u.experienceRepo.Delete(ctx, id), "Experience not found")
}

func validateExperience(e *domain.Experience) error {
	if strings.TrimSpace(e.CompanyName) == "" || strings.TrimSpace(e.JobTitle) == "" {
		return apperror.BadRequest("Company name and job title are required")
	}
	start, err := time.Parse(validation.ISODateLayout, e.StartDate)
	if err != nil {
		return apperror.BadRequest("Start date must be a date in YYYY-MM-DD format")
	}
	if e.EndDate != nil {
		end, err := time.Parse(validation.ISODateLayout, *e.EndDate)
		if err != nil {
			return apperror.BadRequest("End date must be a date in YYYY-MM-DD format")
		}
		if end.Before(start) {
			return apperror.BadRequest("End date cannot be before start date")
		}
	}
	return nil
}
