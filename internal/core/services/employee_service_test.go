package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/alisyos/daily-report-sub000/internal/apperrors"
	"github.com/alisyos/daily-report-sub000/internal/core/domain"
	portsrepo "github.com/alisyos/daily-report-sub000/internal/core/ports/repositories"
	portssvc "github.com/alisyos/daily-report-sub000/internal/core/ports/services"
	"github.com/alisyos/daily-report-sub000/internal/core/services"
	"github.com/alisyos/daily-report-sub000/internal/dto"
)

type EmployeeServiceTestSuite struct {
	suite.Suite
	mockRepo *MockEmployeeRepository
	service  portssvc.EmployeeSvcFacade
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockEmployeeRepository)
	suite.service = services.NewEmployeeService(suite.mockRepo)
}

func createRequest(role string) dto.CreateEmployeeRequest {
	return dto.CreateEmployeeRequest{
		EmployeeCode: "EMP-100",
		Name:         "박민수",
		Department:   "영업",
		CompanyID:    "c9",
		Role:         role,
	}
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_ManagerPinsCompanyAndDepartment() {
	ctx := context.Background()

	suite.mockRepo.On("SaveEmployee", ctx, mock.MatchedBy(func(e domain.Employee) bool {
		// The request named company c9 and department 영업; both are overwritten
		// with the manager's own.
		return e.CompanyID == "c1" && e.Department == "개발" && e.Role == domain.RoleUser
	})).Return(nil).Once()

	employee, err := suite.service.CreateEmployee(ctx, managerPrincipal(), createRequest("user"))

	suite.Require().NoError(err)
	suite.Equal("c1", employee.CompanyID)
	suite.Equal("개발", employee.Department)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_OperatorKeepsRequestedCompany() {
	ctx := context.Background()

	suite.mockRepo.On("SaveEmployee", ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return e.CompanyID == "c9" && e.Department == "영업"
	})).Return(nil).Once()

	_, err := suite.service.CreateEmployee(ctx, operatorPrincipal(), createRequest("user"))

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_RoleEscalationForbidden() {
	_, err := suite.service.CreateEmployee(context.Background(), managerPrincipal(), createRequest("company_manager"))

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveEmployee", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_UserRoleForbidden() {
	_, err := suite.service.CreateEmployee(context.Background(), userPrincipal(), createRequest("user"))
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_UnknownRole() {
	_, err := suite.service.CreateEmployee(context.Background(), operatorPrincipal(), createRequest("superuser"))
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *EmployeeServiceTestSuite) TestGetEmployee_OutOfScopeReadsAsMissing() {
	ctx := context.Background()
	stored := &domain.Employee{EmployeeID: "e1", CompanyID: "c2", Department: "개발"}

	suite.mockRepo.On("FindEmployeeByID", ctx, "e1").Return(stored, nil).Once()

	_, err := suite.service.GetEmployee(ctx, managerPrincipal(), "e1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_ManagerCannotMoveDepartment() {
	ctx := context.Background()
	stored := &domain.Employee{EmployeeID: "e1", CompanyID: "c1", Department: "개발", Role: domain.RoleUser}
	newDept := "영업"

	suite.mockRepo.On("FindEmployeeByID", ctx, "e1").Return(stored, nil).Once()
	suite.mockRepo.On("UpdateEmployee", ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return e.Department == "개발"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateEmployee(ctx, managerPrincipal(), "e1", dto.UpdateEmployeeRequest{Department: &newDept})

	suite.Require().NoError(err)
	suite.Equal("개발", updated.Department)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_CannotTouchHigherRole() {
	ctx := context.Background()
	stored := &domain.Employee{EmployeeID: "e1", CompanyID: "c1", Department: "개발", Role: domain.RoleCompanyManager}
	name := "새 이름"

	suite.mockRepo.On("FindEmployeeByID", ctx, "e1").Return(stored, nil).Once()

	_, err := suite.service.UpdateEmployee(ctx, managerPrincipal(), "e1", dto.UpdateEmployeeRequest{Name: &name})

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateEmployee", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestDeleteEmployee_OutOfDepartmentReadsAsMissing() {
	ctx := context.Background()
	stored := &domain.Employee{EmployeeID: "e1", CompanyID: "c1", Department: "영업", Role: domain.RoleUser}

	suite.mockRepo.On("FindEmployeeByID", ctx, "e1").Return(stored, nil).Once()

	err := suite.service.DeleteEmployee(ctx, managerPrincipal(), "e1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteEmployee", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestListEmployees_DepartmentCannotWiden() {
	ctx := context.Background()

	suite.mockRepo.On("ListEmployees", ctx, mock.MatchedBy(func(f portsrepo.EmployeeFilter) bool {
		return f.CompanyID != nil && *f.CompanyID == "c1" &&
			f.Department != nil && *f.Department == "개발"
	})).Return([]domain.Employee{}, nil).Once()

	_, err := suite.service.ListEmployees(ctx, userPrincipal(), "영업")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
