package domain

import "context"

type Experience struct {
	ID            int64   `json:"id"`
	ApplicantID   int64   `json:"applicant_id"`
	ApplicantName string  `json:"applicant_name,omitempty"`
	CompanyName   string  `json:"company_name"`
	JobTitle      string  `json:"job_title"`
	StartDate     string  `json:"start_date"` // YYYY-MM-DD
	EndDate       *string `json:"end_date"`
	Description   string  `json:"description"`
	Skills        string  `json:"skills"`
}

type ExperienceUpdate struct {
	CompanyName *string
	JobTitle    *string
	StartDate   *string
	EndDate     *string
	Description *string
	Skills      *string
}

type ExperienceRepository interface {
	Create(ctx context.Context, e *Experience) error
	GetByID(ctx context.Context, id int64) (*Experience, error)
	ListByApplicant(ctx context.Context, applicantID int64) ([]Experience, error)
	Update(ctx context.Context, e *Experience) error
	Delete(ctx context.Context, id int64) error
}

type ExperienceUsecase interface {
	ListByApplicant(ctx context.Context, applicantID int64) ([]Experience, error)
	CreateExperience(ctx context.Context, applicantID int64, e *Experience) error
	UpdateExperience(ctx context.Context, id int64, upd ExperienceUpdate) (*Experience, error)
	DeleteExperience(ctx context.Context, id int64) error
}
