package services

import (
	"context"

	"github.com/alisyos/daily-report-sub000/internal/core/domain"
	"github.com/alisyos/daily-report-sub000/internal/dto"
)

// CompanySvcFacade manages companies. Operator only.
type CompanySvcFacade interface {
	CreateCompany(ctx context.Context, principal *domain.Principal, req dto.CreateCompanyRequest) (*domain.Company, error)
	ListCompanies(ctx context.Context, principal *domain.Principal) ([]domain.Company, error)
	GetCompany(ctx context.Context, principal *domain.Principal, companyID string) (*domain.Company, error)
	UpdateCompany(ctx context.Context, principal *domain.Principal, companyID string, req dto.UpdateCompanyRequest) (*domain.Company, error)
	DeleteCompany(ctx context.Context, principal *domain.Principal, companyID string) error
}
