package domain

import (
	"context"
	"time"
)

// User roles. A user's role is fixed at registration.
const (
	RoleApplicant = "applicant"
	RoleCompany   = "company"
)

func IsValidRole(role string) bool {
	return role == RoleApplicant || role == RoleCompany
}

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserUpdate carries the fields a user may change about themselves. Nil means unchanged.
type UserUpdate struct {
	Email    *string
	Name     *string
	Password *string
	Role     *string
}

// RegisterInput is the payload accepted by registration.
type RegisterInput struct {
	Email    string
	Password string
	Role     string
	Name     string
	// Applicant profile
	LinkedIn string
	GitHub   string
	Resume   string
	Skills   string
	// Company profile
	CompanyName string
	Industry    string
	Brief       string
	Website     string
	Logo        string
}

// UserProfile is the user summary plus the fields of their role profile.
type UserProfile struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`

	ApplicantID *int64  `json:"applicant_id,omitempty"`
	LinkedIn    *string `json:"linkedin,omitempty"`
	GitHub      *string `json:"github,omitempty"`
	Resume      *string `json:"resume,omitempty"`
	Skills      *string `json:"skills,omitempty"`

	CompanyID   *int64  `json:"company_id,omitempty"`
	CompanyName *string `json:"company_name,omitempty"`
	Industry    *string `json:"industry,omitempty"`
	Logo        *string `json:"logo,omitempty"`
	Brief       *string `json:"brief,omitempty"`
	Website     *string `json:"website,omitempty"`
}

// NewUserProfile flattens u and whichever profile it owns.
func NewUserProfile(u *User, a *Applicant, c *Company) *UserProfile {
	p := &UserProfile{ID: u.ID, Email: u.Email, Role: u.Role, Name: u.Name}
	if a != nil {
		p.ApplicantID = &a.ID
		p.LinkedIn = &a.LinkedIn
		p.GitHub = &a.GitHub
		p.Resume = &a.Resume
		p.Skills = &a.Skills
	}
	if c != nil {
		p.CompanyID = &c.ID
		p.CompanyName = &c.Name
		p.Industry = &c.Industry
		p.Logo = &c.Logo
		p.Brief = &c.Brief
		p.Website = &c.Website
	}
	return p
}

// AuthResult is returned by register and login.
type AuthResult struct {
	Token string       `json:"token"`
	User  *UserProfile `json:"user"`
}

type UserRepository interface {
	// CreateWithApplicant inserts u and its applicant profile in one transaction.
	CreateWithApplicant(ctx context.Context, u *User, a *Applicant) error
	// CreateWithCompany inserts u and its company profile in one transaction.
	CreateWithCompany(ctx context.Context, u *User, c *Company) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, limit, offset int) ([]User, int64, error)
	Update(ctx context.Context, u *User) error
	// Delete removes the user with every dependent record and schedules
	// index removal for jobs that go with it.
	Delete(ctx context.Context, id int64) error
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Profile(ctx context.Context, userID int64) (*UserProfile, error)
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
}

type UserUsecase interface {
	ListUsers(ctx context.Context, page, pageSize int) ([]User, int64, error)
	GetUser(ctx context.Context, id int64) (*User, error)
	UpdateUser(ctx context.Context, id int64, upd UserUpdate) (*User, error)
	DeleteUser(ctx context.Context, id int64) error
}
