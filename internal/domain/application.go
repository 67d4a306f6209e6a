package domain

import (
	"context"
	"time"
)

// Application status constants
const (
	ApplicationStatusApplied   = "applied"
	ApplicationStatusInterview = "interview"
	ApplicationStatusOffered   = "offered"
	ApplicationStatusRejected  = "rejected"
)

func IsValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusInterview, ApplicationStatusOffered, ApplicationStatusRejected:
		return true
	}
	return false
}

// JobApplication is an applicant's application to a job. Company name, title
// and url are captured at apply time and may be edited by the applicant.
type JobApplication struct {
	ID            int64     `json:"id"`
	ApplicantID   int64     `json:"applicant_id"`
	ApplicantName string    `json:"applicant_name,omitempty"`
	JobID         int64     `json:"job_id"`
	CompanyName   string    `json:"company_name"`
	JobTitle      string    `json:"job_title"`
	JobURL        string    `json:"job_url"`
	Status        string    `json:"status"`
	AppliedAt     time.Time `json:"applied_at"`
}

type ApplicationUpdate struct {
	CompanyName *string
	JobTitle    *string
	JobURL      *string
	Status      *string
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *JobApplication) error
	GetByID(ctx context.Context, id int64) (*JobApplication, error)
	List(ctx context.Context, limit, offset int) ([]JobApplication, int64, error)
	ListByApplicant(ctx context.Context, applicantID int64) ([]JobApplication, error)
	Update(ctx context.Context, app *JobApplication) error
	Delete(ctx context.Context, id int64) error
}

type ApplicationUsecase interface {
	// Apply files an application to jobID on behalf of the applicant owned by userID.
	Apply(ctx context.Context, userID int64, app *JobApplication) error
	ListApplications(ctx context.Context, page, pageSize int) ([]JobApplication, int64, error)
	ListByApplicant(ctx context.Context, applicantID int64) ([]JobApplication, error)
	GetApplication(ctx context.Context, id int64) (*JobApplication, error)
	UpdateApplication(ctx context.Context, id int64, upd ApplicationUpdate) (*JobApplication, error)
	DeleteApplication(ctx context.Context, id int64) error
}
