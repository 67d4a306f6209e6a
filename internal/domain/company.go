package domain

import "context"

type Company struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	Name     string `json:"name"`
	Industry string `json:"industry"`
	Logo     string `json:"logo"`
	Brief    string `json:"brief"`
	Website  string `json:"website"`
}

type CompanyUpdate struct {
	Name     *string
	Industry *string
	Logo     *string
	Brief    *string
	Website  *string
}

type CompanyRepository interface {
	GetByID(ctx context.Context, id int64) (*Company, error)
	GetByUserID(ctx context.Context, userID int64) (*Company, error)
	List(ctx context.Context, limit, offset int) ([]Company, int64, error)
	Update(ctx context.Context, c *Company) error
	// Delete removes the company and its jobs, scheduling index removal for each job.
	Delete(ctx context.Context, id int64) error
}

type CompanyUsecase interface {
	ListCompanies(ctx context.Context, page, pageSize int) ([]Company, int64, error)
	GetCompany(ctx context.Context, id int64) (*Company, error)
	UpdateCompany(ctx context.Context, id int64, upd CompanyUpdate) (*Company, error)
	DeleteCompany(ctx context.Context, id int64) error
}
