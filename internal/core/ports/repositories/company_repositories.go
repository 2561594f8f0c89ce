package repositories

import (
	"context"

	"github.com/alisyos/daily-report-sub000/internal/core/domain"
)

// CompanyReader defines read operations for company data.
type CompanyReader interface {
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
	ListCompanies(ctx context.Context) ([]domain.Company, error)
}

// CompanyWriter defines write operations for company data.
type CompanyWriter interface {
	SaveCompany(ctx context.Context, company domain.Company) error
	UpdateCompany(ctx context.Context, company domain.Company) error
	// DeleteCompany removes a company. The store rejects the delete while
	// employees still reference the company.
	DeleteCompany(ctx context.Context, companyID string) error
}

// CompanyRepository combines all company repository interfaces.
type CompanyRepository interface {
	CompanyReader
	CompanyWriter
}
