package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/alisyos/daily-report-sub000/internal/apperrors"
	"github.com/alisyos/daily-report-sub000/internal/core/domain"
	portsrepo "github.com/alisyos/daily-report-sub000/internal/core/ports/repositories"
	portssvc "github.com/alisyos/daily-report-sub000/internal/core/ports/services"
	"github.com/alisyos/daily-report-sub000/internal/utils"
)

// authService implements the AuthSvcFacade interface.
type authService struct {
	BaseService
	employeeRepo portsrepo.EmployeeReader
	companyRepo  portsrepo.CompanyReader
	jwtSecret    string
	jwtExpiry    time.Duration
	jwtIssuer    string
}

// NewAuthService creates a new auth service with the provided dependencies.
func NewAuthService(employeeRepo portsrepo.EmployeeReader, companyRepo portsrepo.CompanyReader, jwtSecret string, jwtExpiry time.Duration, jwtIssuer string) portssvc.AuthSvcFacade {
	return &authService{
		employeeRepo: employeeRepo,
		companyRepo:  companyRepo,
		jwtSecret:    jwtSecret,
		jwtExpiry:    jwtExpiry,
		jwtIssuer:    jwtIssuer,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies the credentials and issues a session token. The principal is
// assembled from the employee record as it exists now and frozen into the
// token; a failed lookup and a failed password check are indistinguishable to
// the caller.
func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.Principal, error) {
	employee, err := s.employeeRepo.FindEmployeeByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to look up employee for login")
			return "", nil, err
		}
		return "", nil, apperrors.ErrUnauthenticated
	}
	if employee.PasswordHash == nil || !utils.CheckPasswordHash(password, *employee.PasswordHash) {
		return "", nil, apperrors.ErrUnauthenticated
	}

	principal := domain.Principal{
		UserID:      employee.EmployeeID,
		Email:       email,
		DisplayName: employee.Name,
		Role:        employee.Role,
		CompanyID:   employee.CompanyID,
		Department:  employee.Department,
	}
	if employee.CompanyID != "" {
		company, err := s.companyRepo.FindCompanyByID(ctx, employee.CompanyID)
		if err == nil {
			principal.CompanyName = company.Name
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to resolve company name for session",
				slog.String("company_id", employee.CompanyID))
		}
	}

	token, err := utils.GenerateSessionJWT(principal, s.jwtSecret, s.jwtExpiry, s.jwtIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign session token",
			slog.String("employee_id", employee.EmployeeID))
		return "", nil, err
	}

	s.LogInfo(ctx, "Employee logged in",
		slog.String("employee_id", employee.EmployeeID),
		slog.String("role", string(employee.Role)))
	return token, &principal, nil
}
