package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/alisyos/daily-report-sub000/internal/core/domain"
	portsrepo "github.com/alisyos/daily-report-sub000/internal/core/ports/repositories"
	portssvc "github.com/alisyos/daily-report-sub000/internal/core/ports/services"
	"github.com/alisyos/daily-report-sub000/internal/dto"
)

// companyService implements the CompanySvcFacade interface.
type companyService struct {
	BaseService
	companyRepo portsrepo.CompanyRepository
}

// NewCompanyService creates a new company service with the provided repository.
func NewCompanyService(companyRepo portsrepo.CompanyRepository) portssvc.CompanySvcFacade {
	return &companyService{companyRepo: companyRepo}
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

func (s *companyService) CreateCompany(ctx context.Context, principal *domain.Principal, req dto.CreateCompanyRequest) (*domain.Company, error) {
	if err := s.RequireRole(ctx, principal, domain.RoleOperator); err != nil {
		return nil, err
	}

	company := domain.Company{
		CompanyID:   uuid.NewString(),
		Name:        req.Name,
		AuditFields: stampAudit(principal),
	}
	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		s.LogError(ctx, err, "Failed to save company", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Company created", slog.String("company_id", company.CompanyID))
	return &company, nil
}

func (s *companyService) ListCompanies(ctx context.Context, principal *domain.Principal) ([]domain.Company, error) {
	if err := s.RequireRole(ctx, principal, domain.RoleOperator); err != nil {
		return nil, err
	}
	companies, err := s.companyRepo.ListCompanies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list companies")
		return nil, err
	}
	return companies, nil
}

func (s *companyService) GetCompany(ctx context.Context, principal *domain.Principal, companyID string) (*domain.Company, error) {
	if err := s.RequireRole(ctx, principal, domain.RoleOperator); err != nil {
		return nil, err
	}
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return company, nil
}

func (s *companyService) UpdateCompany(ctx context.Context, principal *domain.Principal, companyID string, req dto.UpdateCompanyRequest) (*domain.Company, error) {
	if err := s.RequireRole(ctx, principal, domain.RoleOperator); err != nil {
		return nil, err
	}

	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		company.Name = *req.Name
	}
	touchAudit(&company.AuditFields, principal)

	if err := s.companyRepo.UpdateCompany(ctx, *company); err != nil {
		s.LogError(ctx, err, "Failed to update company", slog.String("company_id", companyID))
		return nil, err
	}
	return company, nil
}

func (s *companyService) DeleteCompany(ctx context.Context, principal *domain.Principal, companyID string) error {
	if err := s.RequireRole(ctx, principal, domain.RoleOperator); err != nil {
		return err
	}
	if err := s.companyRepo.DeleteCompany(ctx, companyID); err != nil {
		s.LogError(ctx, err, "Failed to delete company", slog.String("company_id", companyID))
		return err
	}
	s.LogInfo(ctx, "Company deleted", slog.String("company_id", companyID))
	return nil
}
