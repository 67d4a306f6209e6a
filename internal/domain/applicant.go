package domain

import "context"

type Applicant struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Resume   string `json:"resume"`
	Skills   string `json:"skills"`
}

// ApplicantDetail is an applicant with their experience and application history.
type ApplicantDetail struct {
	Applicant
	Experiences  []Experience     `json:"experiences"`
	Applications []JobApplication `json:"applications"`
}

type ApplicantUpdate struct {
	LinkedIn *string
	GitHub   *string
	Resume   *string
	Skills   *string
}

type ApplicantRepository interface {
	GetByID(ctx context.Context, id int64) (*Applicant, error)
	GetByUserID(ctx context.Context, userID int64) (*Applicant, error)
	List(ctx context.Context, limit, offset int) ([]Applicant, int64, error)
	Update(ctx context.Context, a *Applicant) error
	Delete(ctx context.Context, id int64) error
}

type ApplicantUsecase interface {
	ListApplicants(ctx context.Context, page, pageSize int) ([]Applicant, int64, error)
	GetApplicant(ctx context.Context, id int64) (*ApplicantDetail, error)
	UpdateApplicant(ctx context.Context, id int64, upd ApplicantUpdate) (*Applicant, error)
	DeleteApplicant(ctx context.Context, id int64) error
}
