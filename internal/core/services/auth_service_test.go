package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/alisyos/daily-report-sub000/internal/apperrors"
	"github.com/alisyos/daily-report-sub000/internal/core/domain"
	portssvc "github.com/alisyos/daily-report-sub000/internal/core/ports/services"
	"github.com/alisyos/daily-report-sub000/internal/core/services"
	"github.com/alisyos/daily-report-sub000/internal/utils"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockEmployeeRepo *MockEmployeeRepository
	mockCompanyRepo  *MockCompanyRepository
	service          portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.mockCompanyRepo = new(MockCompanyRepository)
	suite.service = services.NewAuthService(suite.mockEmployeeRepo, suite.mockCompanyRepo, "test-secret", time.Hour, "reportd-test")
}

func storedEmployee(password string) *domain.Employee {
	hash, _ := utils.HashPassword(password)
	email := "kim@example.com"
	return &domain.Employee{
		EmployeeID:   "e1",
		Name:         "김철수",
		Email:        &email,
		CompanyID:    "c1",
		Department:   "개발",
		Role:         domain.RoleUser,
		PasswordHash: &hash,
	}
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	employee := storedEmployee("correct-horse")

	suite.mockEmployeeRepo.On("FindEmployeeByEmail", ctx, "kim@example.com").Return(employee, nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, "c1").Return(&domain.Company{CompanyID: "c1", Name: "테스트 주식회사"}, nil).Once()

	token, principal, err := suite.service.Login(ctx, "kim@example.com", "correct-horse")

	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.Equal("e1", principal.UserID)
	suite.Equal(domain.RoleUser, principal.Role)
	suite.Equal("테스트 주식회사", principal.CompanyName)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()

	suite.mockEmployeeRepo.On("FindEmployeeByEmail", ctx, "kim@example.com").Return(storedEmployee("correct-horse"), nil).Once()

	token, principal, err := suite.service.Login(ctx, "kim@example.com", "wrong")

	suite.ErrorIs(err, apperrors.ErrUnauthenticated)
	suite.Empty(token)
	suite.Nil(principal)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	ctx := context.Background()

	suite.mockEmployeeRepo.On("FindEmployeeByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.Login(ctx, "nobody@example.com", "whatever")

	// Indistinguishable from a wrong password.
	suite.ErrorIs(err, apperrors.ErrUnauthenticated)
}

func (suite *AuthServiceTestSuite) TestLogin_NoPasswordSet() {
	ctx := context.Background()
	employee := storedEmployee("x")
	employee.PasswordHash = nil

	suite.mockEmployeeRepo.On("FindEmployeeByEmail", ctx, "kim@example.com").Return(employee, nil).Once()

	_, _, err := suite.service.Login(ctx, "kim@example.com", "x")

	suite.ErrorIs(err, apperrors.ErrUnauthenticated)
}

func (suite *AuthServiceTestSuite) TestLogin_TokenRoundTrip() {
	ctx := context.Background()
	employee := storedEmployee("correct-horse")

	suite.mockEmployeeRepo.On("FindEmployeeByEmail", ctx, "kim@example.com").Return(employee, nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByID", ctx, "c1").Return(&domain.Company{CompanyID: "c1", Name: "테스트 주식회사"}, nil).Once()

	token, _, err := suite.service.Login(ctx, "kim@example.com", "correct-horse")
	suite.Require().NoError(err)

	claims, err := utils.ParseSessionJWT(token, "test-secret")
	suite.Require().NoError(err)
	parsed := claims.Principal()
	suite.Equal("e1", parsed.UserID)
	suite.Equal("개발", parsed.Department)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
