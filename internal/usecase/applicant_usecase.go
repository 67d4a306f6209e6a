package usecase

import (
	"context"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
)

type applicantUsecase struct {
	applicantRepo   domain.ApplicantRepository
	experienceRepo  domain.ExperienceRepository
	applicationRepo domain.ApplicationRepository
}

func NewApplicantUsecase(
	applicantRepo domain.ApplicantRepository,
	experienceRepo domain.ExperienceRepository,
	applicationRepo domain.ApplicationRepository,
) domain.ApplicantUsecase {
	return &applicantUsecase{
		applicantRepo:   applicantRepo,
		experienceRepo:  experienceRepo,
		applicationRepo: applicationRepo,
	}
}

func (u *applicantUsecase) ListApplicants(ctx context.Context, page, pageSize int) ([]domain.Applicant, int64, error) {
	limit, offset := pageBounds(page, pageSize)
	return u.applicantRepo.List(ctx, limit, offset)
}

// GetApplicant returns the applicant with their experiences and applications.
func (u *applicantUsecase) GetApplicant(ctx context.Context, id int64) (*domain.ApplicantDetail, error) {
	applicant, err := u.applicantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Applicant not found")
	}

	experiences, err := u.experienceRepo.ListByApplicant(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	applications, err := u.applicationRepo.ListByApplicant(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.ApplicantDetail{
		Applicant:    *applicant,
		Experiences:  experiences,
		Applications: applications,
	}, nil
}

func (u *applicantUsecase) UpdateApplicant(ctx context.Context, id int64, upd domain.ApplicantUpdate) (*domain.Applicant, error) {
	applicant, err := u.applicantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Applicant not found")
	}

	setString(&applicant.LinkedIn, upd.LinkedIn)
	setString(&applicant.GitHub, upd.GitHub)
	setString(&applicant.Resume, upd.Resume)
	setString(&applicant.Skills, upd.Skills)

	if err := u.applicantRepo.Update(ctx, applicant); err != nil {
		return nil, notFoundAs(err, "Applicant not found")
	}
	return applicant, nil
}

func (u *applicantUsecase) DeleteApplicant(ctx context.Context, id int64) error {
	return notFoundAs(u.applicantRepo.Delete(ctx, id), "Applicant not found")
}
