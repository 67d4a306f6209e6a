package domain

import (
	"context"
	"time"
)

// Job status constants
const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
)

// Job type constants
const (
	JobTypeFullTime   = "full_time"
	JobTypePartTime   = "part_time"
	JobTypeInternship = "internship"
)

func IsValidJobStatus(s string) bool {
	return s == JobStatusOpen || s == JobStatusClosed
}

func IsValidJobType(t string) bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeInternship:
		return true
	}
	return false
}

type Job struct {
	ID             int64  `json:"id"`
	CompanyID      int64  `json:"company_id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Location       string `json:"location"`
	ApplicationURL string `json:"application_url"`
	// Salary is a decimal string ("85000.00") to avoid float rounding.
	Salary    string    `json:"salary"`
	Skills    string    `json:"skills"`
	Status    string    `json:"status"`
	JobType   string    `json:"job_type"`
	CreatedAt time.Time `json:"created_at"`
}

// JobWithCompany extends Job with company profile information
type JobWithCompany struct {
	Job
	CompanyName    string `json:"company_name"`
	CompanyLogo    string `json:"company_logo"`
	CompanyWebsite string `json:"company_website"`
}

// JobPatch is a partial job update. Nil fields are left unchanged.
type JobPatch struct {
	Title          *string
	Description    *string
	Location       *string
	ApplicationURL *string
	Salary         *string
	Skills         *string
	Status         *string
	JobType        *string
}

// Apply copies the set fields of p onto j.
func (p JobPatch) Apply(j *Job) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&j.Title, p.Title)
	set(&j.Description, p.Description)
	set(&j.Location, p.Location)
	set(&j.ApplicationURL, p.ApplicationURL)
	set(&j.Salary, p.Salary)
	set(&j.Skills, p.Skills)
	set(&j.Status, p.Status)
	set(&j.JobType, p.JobType)
}

// JobRepository persists jobs. Create, Update and Delete also record the
// matching search sync task in the same transaction.
type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	GetByIDWithCompany(ctx context.Context, id int64) (*JobWithCompany, error)
	// GetManyWithCompany returns the jobs that still exist among ids, in no particular order.
	GetManyWithCompany(ctx context.Context, ids []int64) ([]JobWithCompany, error)
	FetchWithCompany(ctx context.Context, limit, offset int) ([]JobWithCompany, int64, error)
	FetchByCompanyID(ctx context.Context, companyID int64, limit, offset int) ([]Job, int64, error)
	ListIDs(ctx context.Context) ([]int64, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, userID int64, job *Job) error
	GetJobDetailsWithCompany(ctx context.Context, id int64) (*JobWithCompany, error)
	ListJobsWithCompany(ctx context.Context, page, pageSize int) ([]JobWithCompany, int64, error)
	ListJobsByCompany(ctx context.Context, companyID int64, page, pageSize int) ([]Job, int64, error)
	UpdateJob(ctx context.Context, id int64, patch JobPatch) (*Job, error)
	DeleteJob(ctx context.Context, id int64) error
}
