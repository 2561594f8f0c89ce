package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/alisyos/daily-report-sub000/internal/core/domain"
	portsrepo "github.com/alisyos/daily-report-sub000/internal/core/ports/repositories"
	"github.com/alisyos/daily-report-sub000/internal/platform/llm"
)

// --- Mock ReportRepository ---
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) FindReportByID(ctx context.Context, reportID string) (*domain.DailyReportEntry, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyReportEntry), args.Error(1)
}

func (m *MockReportRepository) ListReports(ctx context.Context, filter portsrepo.ReportFilter) ([]domain.DailyReportEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyReportEntry), args.Error(1)
}

func (m *MockReportRepository) InsertReports(ctx context.Context, entries []domain.DailyReportEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockReportRepository) ReplaceReportsByEmployeeIDs(ctx context.Context, date string, employeeIDs []string, entries []domain.DailyReportEntry) error {
	args := m.Called(ctx, date, employeeIDs, entries)
	return args.Error(0)
}

func (m *MockReportRepository) ReplaceReportsByEmployeeNames(ctx context.Context, date, companyID string, employeeNames []string, entries []domain.DailyReportEntry) error {
	args := m.Called(ctx, date, companyID, employeeNames, entries)
	return args.Error(0)
}

func (m *MockReportRepository) DeleteReportByID(ctx context.Context, reportID string) error {
	args := m.Called(ctx, reportID)
	return args.Error(0)
}

var _ portsrepo.ReportRepository = (*MockReportRepository)(nil)

// --- Mock EmployeeRepository ---
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeeByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) ListEmployees(ctx context.Context, filter portsrepo.EmployeeFilter) ([]domain.Employee, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	args := m.Called(ctx, employeeID)
	return args.Error(0)
}

var _ portsrepo.EmployeeRepository = (*MockEmployeeRepository)(nil)

// --- Mock SummaryRepository ---
type MockSummaryRepository struct {
	mock.Mock
}

func (m *MockSummaryRepository) FindSummary(ctx context.Context, companyID, date, department string) (*domain.DepartmentSummary, error) {
	args := m.Called(ctx, companyID, date, department)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DepartmentSummary), args.Error(1)
}

func (m *MockSummaryRepository) ListSummaries(ctx context.Context, filter portsrepo.SummaryFilter) ([]domain.DepartmentSummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DepartmentSummary), args.Error(1)
}

func (m *MockSummaryRepository) UpsertSummary(ctx context.Context, summary domain.DepartmentSummary) error {
	args := m.Called(ctx, summary)
	return args.Error(0)
}

var _ portsrepo.SummaryRepository = (*MockSummaryRepository)(nil)

// --- Mock PromptRepository ---
type MockPromptRepository struct {
	mock.Mock
}

func (m *MockPromptRepository) FindPromptByName(ctx context.Context, name string) (*domain.Prompt, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prompt), args.Error(1)
}

func (m *MockPromptRepository) ListPrompts(ctx context.Context) ([]domain.Prompt, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Prompt), args.Error(1)
}

func (m *MockPromptRepository) SavePrompt(ctx context.Context, prompt domain.Prompt) error {
	args := m.Called(ctx, prompt)
	return args.Error(0)
}

func (m *MockPromptRepository) UpdatePrompt(ctx context.Context, prompt domain.Prompt) error {
	args := m.Called(ctx, prompt)
	return args.Error(0)
}

func (m *MockPromptRepository) DeletePrompt(ctx context.Context, promptID string) error {
	args := m.Called(ctx, promptID)
	return args.Error(0)
}

var _ portsrepo.PromptRepository = (*MockPromptRepository)(nil)

// --- Mock CompanyRepository ---
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) DeleteCompany(ctx context.Context, companyID string) error {
	args := m.Called(ctx, companyID)
	return args.Error(0)
}

var _ portsrepo.CompanyRepository = (*MockCompanyRepository)(nil)

// --- Mock Generator ---
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, system, user string) (string, error) {
	args := m.Called(ctx, system, user)
	return args.String(0), args.Error(1)
}

var _ llm.Generator = (*MockGenerator)(nil)
