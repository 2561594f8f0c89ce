package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/alisyos/daily-report-sub000/internal/apperrors"
	"github.com/alisyos/daily-report-sub000/internal/core/domain"
	portsrepo "github.com/alisyos/daily-report-sub000/internal/core/ports/repositories"
	portssvc "github.com/alisyos/daily-report-sub000/internal/core/ports/services"
	"github.com/alisyos/daily-report-sub000/internal/core/services"
	"github.com/alisyos/daily-report-sub000/internal/dto"
)

type ReportServiceTestSuite struct {
	suite.Suite
	mockReportRepo   *MockReportRepository
	mockEmployeeRepo *MockEmployeeRepository
	service          portssvc.ReportSvcFacade
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.mockReportRepo = new(MockReportRepository)
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.service = services.NewReportService(suite.mockReportRepo, suite.mockEmployeeRepo)
}

func userPrincipal() *domain.Principal {
	return &domain.Principal{UserID: "u1", Role: domain.RoleUser, CompanyID: "c1", Department: "개발"}
}

func managerPrincipal() *domain.Principal {
	return &domain.Principal{UserID: "m1", Role: domain.RoleManager, CompanyID: "c1", Department: "개발"}
}

func operatorPrincipal() *domain.Principal {
	return &domain.Principal{UserID: "op1", Role: domain.RoleOperator}
}

func (suite *ReportServiceTestSuite) TestSubmitReports_FreshInsert() {
	ctx := context.Background()
	req := dto.SubmitReportsRequest{
		Reports: []dto.ReportEntryRequest{
			{Date: "2026-08-03", EmployeeName: "김철수", WorkOverview: "기능 개발", AchievementRate: 70},
		},
	}

	suite.mockReportRepo.On("InsertReports", ctx, mock.MatchedBy(func(entries []domain.DailyReportEntry) bool {
		return len(entries) == 1 &&
			entries[0].ReportID != "" &&
			entries[0].CompanyID == "c1" &&
			entries[0].Department == "개발" &&
			entries[0].CreatedBy == "u1"
	})).Return(nil).Once()

	entries, err := suite.service.SubmitReports(ctx, userPrincipal(), req)

	suite.Require().NoError(err)
	suite.Len(entries, 1)
	suite.mockReportRepo.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestSubmitReports_UpdateReplacesByID() {
	ctx := context.Background()
	id1, id2 := "e1", "e2"
	req := dto.SubmitReportsRequest{
		IsUpdate: true,
		Reports: []dto.ReportEntryRequest{
			{Date: "2026-08-03", EmployeeName: "김철수", EmployeeID: &id1, WorkOverview: "개발"},
			{Date: "2026-08-03", EmployeeName: "이영희", EmployeeID: &id2, WorkOverview: "리뷰"},
		},
	}

	suite.mockReportRepo.On("ReplaceReportsByEmployeeIDs", ctx, "2026-08-03", []string{"e1", "e2"}, mock.Anything).
		Return(nil).Once()

	_, err := suite.service.SubmitReports(ctx, managerPrincipal(), req)

	suite.Require().NoError(err)
	suite.mockReportRepo.AssertExpectations(suite.T())
	suite.mockReportRepo.AssertNotCalled(suite.T(), "ReplaceReportsByEmployeeNames", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportServiceTestSuite) TestSubmitReports_MixedIdentityFallsBackToNames() {
	ctx := context.Background()
	id1 := "e1"
	req := dto.SubmitReportsRequest{
		IsUpdate: true,
		Reports: []dto.ReportEntryRequest{
			{Date: "2026-08-03", EmployeeName: "김철수", EmployeeID: &id1, WorkOverview: "개발"},
			{Date: "2026-08-03", EmployeeName: "이영희", WorkOverview: "리뷰"},
		},
	}

	// The manager's write scope pins the company on the name-keyed delete.
	suite.mockReportRepo.On("ReplaceReportsByEmployeeNames", ctx, "2026-08-03", "c1", []string{"김철수", "이영희"}, mock.Anything).
		Return(nil).Once()

	_, err := suite.service.SubmitReports(ctx, managerPrincipal(), req)

	suite.Require().NoError(err)
	suite.mockReportRepo.AssertExpectations(suite.T())
	suite.mockReportRepo.AssertNotCalled(suite.T(), "ReplaceReportsByEmployeeIDs", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportServiceTestSuite) TestSubmitReports_BlankEntriesDropped() {
	ctx := context.Background()
	req := dto.SubmitReportsRequest{
		Reports: []dto.ReportEntryRequest{
			{Date: "2026-08-03", EmployeeName: "김철수", WorkOverview: "개발"},
			{Date: "2026-08-03", EmployeeName: "박민수"},
		},
	}

	suite.mockReportRepo.On("InsertReports", ctx, mock.MatchedBy(func(entries []domain.DailyReportEntry) bool {
		return len(entries) == 1 && entries[0].EmployeeName == "김철수"
	})).Return(nil).Once()

	entries, err := suite.service.SubmitReports(ctx, userPrincipal(), req)

	suite.Require().NoError(err)
	suite.Len(entries, 1)
	suite.mockReportRepo.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestSubmitReports_AllBlankRejected() {
	ctx := context.Background()
	req := dto.SubmitReportsRequest{
		Reports: []dto.ReportEntryRequest{
			{Date: "2026-08-03", EmployeeName: "김철수"},
		},
	}

	_, err := suite.service.SubmitReports(ctx, userPrincipal(), req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockReportRepo.AssertNotCalled(suite.T(), "InsertReports", mock.Anything, mock.Anything)
}

func (suite *ReportServiceTestSuite) TestSubmitReports_LeaveConflict() {
	ctx := context.Background()
	req := dto.SubmitReportsRequest{
		Reports: []dto.ReportEntryRequest{
			{Date: "2026-08-03", EmployeeName: "김철수", WorkOverview: domain.WorkOverviewAnnualLeave},
			{Date: "2026-08-03", EmployeeName: "김철수", WorkOverview: "오후 작업"},
		},
	}

	_, err := suite.service.SubmitReports(ctx, userPrincipal(), req)

	suite.Require().Error(err)
	suite.ErrorIs(err, domain.ErrLeaveConflict)
}

func (suite *ReportServiceTestSuite) TestSubmitReports_NoPrincipal() {
	_, err := suite.service.SubmitReports(context.Background(), nil, dto.SubmitReportsRequest{})
	suite.ErrorIs(err, apperrors.ErrUnauthenticated)
}

func (suite *ReportServiceTestSuite) TestCompleteReportList_AddsPlaceholders() {
	ctx := context.Background()
	submittedID := "e1"
	stored := []domain.DailyReportEntry{
		{Date: "2026-08-03", EmployeeName: "김철수", EmployeeID: &submittedID, CompanyID: "c1", Department: "개발", WorkOverview: "개발"},
	}
	employees := []domain.Employee{
		{EmployeeID: "e1", Name: "김철수", CompanyID: "c1", Department: "개발"},
		{EmployeeID: "e2", Name: "이영희", CompanyID: "c1", Department: "개발"},
	}

	suite.mockReportRepo.On("ListReports", ctx, mock.Anything).Return(stored, nil).Once()
	suite.mockEmployeeRepo.On("ListEmployees", ctx, mock.Anything).Return(employees, nil).Once()

	entries, err := suite.service.CompleteReportList(ctx, managerPrincipal(), dto.CompleteListQuery{Date: "2026-08-03"})

	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.True(entries[1].IsPlaceholder())
	suite.Equal("이영희", entries[1].EmployeeName)
}

func (suite *ReportServiceTestSuite) TestDeleteReport_OutOfScopeReadsAsMissing() {
	ctx := context.Background()
	entry := &domain.DailyReportEntry{ReportID: "r1", CompanyID: "c1", Department: "영업"}

	suite.mockReportRepo.On("FindReportByID", ctx, "r1").Return(entry, nil).Once()

	err := suite.service.DeleteReport(ctx, managerPrincipal(), "r1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockReportRepo.AssertNotCalled(suite.T(), "DeleteReportByID", mock.Anything, mock.Anything)
}

func (suite *ReportServiceTestSuite) TestDeleteLegacyReport_ReplacesWithRemainder() {
	ctx := context.Background()
	stored := []domain.DailyReportEntry{
		{ReportID: "r1", Date: "2024-01-15", EmployeeName: "김철수", WorkOverview: "지울 항목"},
		{ReportID: "r2", Date: "2024-01-15", EmployeeName: "김철수", WorkOverview: "남길 항목"},
	}

	suite.mockReportRepo.On("ListReports", ctx, mock.MatchedBy(func(f portsrepo.ReportFilter) bool {
		return f.Date != nil && *f.Date == "2024-01-15" && f.EmployeeName != nil && *f.EmployeeName == "김철수"
	})).Return(stored, nil).Once()
	// The operator's scope is unbounded, so the replace is too.
	suite.mockReportRepo.On("ReplaceReportsByEmployeeNames", ctx, "2024-01-15", "", []string{"김철수"},
		mock.MatchedBy(func(entries []domain.DailyReportEntry) bool {
			return len(entries) == 1 && entries[0].WorkOverview == "남길 항목"
		})).Return(nil).Once()

	err := suite.service.DeleteLegacyReport(ctx, operatorPrincipal(), dto.DeleteLegacyReportRequest{
		Date:         "2024-01-15",
		EmployeeName: "김철수",
		WorkOverview: "지울 항목",
	})

	suite.Require().NoError(err)
	suite.mockReportRepo.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestDeleteLegacyReport_ScopedToCompany() {
	ctx := context.Background()
	stored := []domain.DailyReportEntry{
		{ReportID: "r1", Date: "2024-01-15", EmployeeName: "김철수", CompanyID: "c1", Department: "개발", WorkOverview: "지울 항목"},
		{ReportID: "r2", Date: "2024-01-15", EmployeeName: "김철수", CompanyID: "c1", Department: "개발", WorkOverview: "남길 항목"},
	}

	suite.mockReportRepo.On("ListReports", ctx, mock.MatchedBy(func(f portsrepo.ReportFilter) bool {
		return f.CompanyID != nil && *f.CompanyID == "c1"
	})).Return(stored, nil).Once()
	// A same-named employee in another company must keep their rows: the
	// delete carries the manager's company, never an unscoped name match.
	suite.mockReportRepo.On("ReplaceReportsByEmployeeNames", ctx, "2024-01-15", "c1", []string{"김철수"},
		mock.MatchedBy(func(entries []domain.DailyReportEntry) bool {
			return len(entries) == 1 && entries[0].ReportID == "r2"
		})).Return(nil).Once()

	err := suite.service.DeleteLegacyReport(ctx, managerPrincipal(), dto.DeleteLegacyReportRequest{
		Date:         "2024-01-15",
		EmployeeName: "김철수",
		WorkOverview: "지울 항목",
	})

	suite.Require().NoError(err)
	suite.mockReportRepo.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestDeleteLegacyReport_NoMatch() {
	ctx := context.Background()
	stored := []domain.DailyReportEntry{
		{ReportID: "r1", Date: "2024-01-15", EmployeeName: "김철수", WorkOverview: "다른 내용"},
	}

	suite.mockReportRepo.On("ListReports", ctx, mock.Anything).Return(stored, nil).Once()

	err := suite.service.DeleteLegacyReport(ctx, operatorPrincipal(), dto.DeleteLegacyReportRequest{
		Date:         "2024-01-15",
		EmployeeName: "김철수",
		WorkOverview: "없는 내용",
	})

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockReportRepo.AssertNotCalled(suite.T(), "ReplaceReportsByEmployeeNames", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportServiceTestSuite) TestListReports_UserScopePinned() {
	ctx := context.Background()

	suite.mockReportRepo.On("ListReports", ctx, mock.MatchedBy(func(f portsrepo.ReportFilter) bool {
		// A user asking for another department still only sees their own.
		return f.CompanyID != nil && *f.CompanyID == "c1" &&
			f.Department != nil && *f.Department == "개발"
	})).Return([]domain.DailyReportEntry{}, nil).Once()

	_, err := suite.service.ListReports(ctx, userPrincipal(), dto.ListReportsQuery{Department: "영업"})

	suite.Require().NoError(err)
	suite.mockReportRepo.AssertExpectations(suite.T())
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}

func TestReportService_SubmitStampsAudit(t *testing.T) {
	mockRepo := new(MockReportRepository)
	mockEmployees := new(MockEmployeeRepository)
	svc := services.NewReportService(mockRepo, mockEmployees)
	ctx := context.Background()

	mockRepo.On("InsertReports", ctx, mock.Anything).Return(nil).Once()

	entries, err := svc.SubmitReports(ctx, userPrincipal(), dto.SubmitReportsRequest{
		Reports: []dto.ReportEntryRequest{
			{Date: "2026-08-03", EmployeeName: "김철수", WorkOverview: "개발"},
		},
	})

	assert.NoError(t, err)
	assert.False(t, entries[0].CreatedAt.IsZero())
	assert.Equal(t, "u1", entries[0].LastUpdatedBy)
}
