package usecase

import (
	"context"
	"strings"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
)

type companyUsecase struct {
	companyRepo domain.CompanyRepository
}

func NewCompanyUsecase(companyRepo domain.CompanyRepository) domain.CompanyUsecase {
	return &companyUsecase{companyRepo: companyRepo}
}

func (u *companyUsecase) ListCompanies(ctx context.Context, page, pageSize int) ([]domain.Company, int64, error) {
	limit, offset := pageBounds(page, pageSize)
	return u.companyRepo.List(ctx, limit, offset)
}

func (u *companyUsecase) GetCompany(ctx context.Context, id int64) (*domain.Company, error) {
	company, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Company not found")
	}
	return company, nil
}

func (u *companyUsecase) UpdateCompany(ctx context.Context, id int64, upd domain.CompanyUpdate) (*domain.Company, error) {
	company, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Company not found")
	}

	setString(&company.Name, upd.Name)
	setString(&company.Industry, upd.Industry)
	setString(&company.Logo, upd.Logo)
	setString(&company.Brief, upd.Brief)
	setString(&company.Website, upd.Website)

	if strings.TrimSpace(company.Name) == "" {
		return nil, apperror.BadRequest("Company name cannot be empty")
	}

	if err := u.companyRepo.Update(ctx, company); err != nil {
		return nil, notFoundAs(err, "Company not found")
	}
	return company, nil
}

// DeleteCompany removes the company and its jobs. The repository schedules
// index removal for every job in the same transaction.
func (u *companyUsecase) DeleteCompany(ctx context.Context, id int64) error {
	return notFoundAs(u.companyRepo.Delete(ctx, id), "Company not found")
}
