package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/alisyos/daily-report-sub000/internal/apperrors"
	"github.com/alisyos/daily-report-sub000/internal/core/domain"
	portsrepo "github.com/alisyos/daily-report-sub000/internal/core/ports/repositories"
	portssvc "github.com/alisyos/daily-report-sub000/internal/core/ports/services"
	"github.com/alisyos/daily-report-sub000/internal/dto"
	"github.com/alisyos/daily-report-sub000/internal/platform/llm"
)

// defaultSummaryPrompt is used when no operator-managed prompt row exists.
const defaultSummaryPrompt = "당신은 부서의 일일 업무 보고를 요약하는 비서입니다. " +
	"아래 보고 내용을 바탕으로 주요 성과, 진행 상황, 특이사항을 간결하게 정리하세요."

// summaryService implements the SummarySvcFacade interface.
type summaryService struct {
	BaseService
	summaryRepo portsrepo.SummaryRepository
	reportRepo  portsrepo.ReportReader
	promptRepo  portsrepo.PromptReader
	generator   llm.Generator
}

// NewSummaryService creates a new summary service with the provided dependencies.
func NewSummaryService(summaryRepo portsrepo.SummaryRepository, reportRepo portsrepo.ReportReader, promptRepo portsrepo.PromptReader, generator llm.Generator) portssvc.SummarySvcFacade {
	return &summaryService{
		summaryRepo: summaryRepo,
		reportRepo:  reportRepo,
		promptRepo:  promptRepo,
		generator:   generator,
	}
}

var _ portssvc.SummarySvcFacade = (*summaryService)(nil)

// authorizeDepartment gates summary writes. Managers write only their own
// department's summary; company managers and operators any department.
func (s *summaryService) authorizeDepartment(ctx context.Context, principal *domain.Principal, department string) error {
	if err := s.RequireRole(ctx, principal, domain.RoleOperator, domain.RoleCompanyManager, domain.RoleManager); err != nil {
		return err
	}
	if principal.Role == domain.RoleManager && principal.Department != department {
		return apperrors.ErrForbidden
	}
	return nil
}

// UpsertSummary writes the summary for (date, department), inserting or
// overwriting so at most one row exists per key.
func (s *summaryService) UpsertSummary(ctx context.Context, principal *domain.Principal, req dto.UpsertSummaryRequest) (*domain.DepartmentSummary, error) {
	if err := s.authorizeDepartment(ctx, principal, req.Department); err != nil {
		return nil, err
	}

	summary := domain.DepartmentSummary{
		SummaryID:   uuid.NewString(),
		Date:        req.Date,
		CompanyID:   principal.CompanyID,
		Department:  req.Department,
		Summary:     req.Summary,
		AuditFields: stampAudit(principal),
	}
	if err := s.summaryRepo.UpsertSummary(ctx, summary); err != nil {
		s.LogError(ctx, err, "Failed to upsert summary",
			slog.String("date", req.Date),
			slog.String("department", req.Department))
		return nil, err
	}

	s.LogInfo(ctx, "Summary upserted",
		slog.String("date", req.Date),
		slog.String("department", req.Department))
	return &summary, nil
}

// GenerateSummary builds an LLM summary of the department's reports for the
// date and tries to persist it. Generation cost is never wasted: the text is
// returned to the caller even when the upsert afterwards fails, with
// persisted reporting the storage outcome.
func (s *summaryService) GenerateSummary(ctx context.Context, principal *domain.Principal, req dto.GenerateSummaryRequest) (string, bool, error) {
	if err := s.authorizeDepartment(ctx, principal, req.Department); err != nil {
		return "", false, err
	}

	filter := scopeFilter(domain.ResolveScope(*principal).Narrow(req.Department))
	filter.Date = &req.Date
	filter.Department = &req.Department
	entries, err := s.reportRepo.ListReports(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to load reports for summary generation")
		return "", false, err
	}
	if len(entries) == 0 {
		return "", false, fmt.Errorf("%w: no reports for %s %s", apperrors.ErrNotFound, req.Department, req.Date)
	}

	systemPrompt := defaultSummaryPrompt
	prompt, err := s.promptRepo.FindPromptByName(ctx, domain.PromptDepartmentSummary)
	if err == nil {
		systemPrompt = prompt.Content
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to load summary prompt, using default")
	}

	text, err := s.generator.Generate(ctx, systemPrompt, buildReportDigest(req.Date, req.Department, entries))
	if err != nil {
		s.LogError(ctx, err, "Summary generation failed",
			slog.String("date", req.Date),
			slog.String("department", req.Department))
		return "", false, err
	}

	summary := domain.DepartmentSummary{
		SummaryID:   uuid.NewString(),
		Date:        req.Date,
		CompanyID:   principal.CompanyID,
		Department:  req.Department,
		Summary:     text,
		AuditFields: stampAudit(principal),
	}
	if err := s.summaryRepo.UpsertSummary(ctx, summary); err != nil {
		s.LogError(ctx, err, "Generated summary could not be persisted",
			slog.String("date", req.Date),
			slog.String("department", req.Department))
		return text, false, nil
	}

	s.LogInfo(ctx, "Summary generated",
		slog.String("date", req.Date),
		slog.String("department", req.Department))
	return text, true, nil
}

func (s *summaryService) ListSummaries(ctx context.Context, principal *domain.Principal, q dto.ListSummariesQuery) ([]domain.DepartmentSummary, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	scope := domain.ResolveScope(*principal).Narrow(q.Department)
	filter := portsrepo.SummaryFilter{
		CompanyID:  scope.CompanyID,
		Department: scope.Department,
	}
	if q.Date != "" {
		filter.Date = &q.Date
	}
	if q.From != "" {
		filter.From = &q.From
	}
	if q.To != "" {
		filter.To = &q.To
	}

	summaries, err := s.summaryRepo.ListSummaries(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list summaries")
		return nil, err
	}
	return summaries, nil
}

// buildReportDigest flattens the day's entries into the user message handed
// to the model. Leave entries are labelled, placeholders never reach here.
func buildReportDigest(date, department string, entries []domain.DailyReportEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s 일일 업무 보고\n\n", date, department)
	for _, e := range entries {
		if e.IsAnnualLeave() {
			fmt.Fprintf(&b, "- %s: 연차\n", e.EmployeeName)
			continue
		}
		fmt.Fprintf(&b, "- %s (달성률 %d%%)\n", e.EmployeeName, e.AchievementRate)
		if e.WorkOverview != "" {
			fmt.Fprintf(&b, "  업무 개요: %s\n", e.WorkOverview)
		}
		if e.ProgressGoal != "" {
			fmt.Fprintf(&b, "  진행 목표: %s\n", e.ProgressGoal)
		}
		if e.Remarks != "" {
			fmt.Fprintf(&b, "  비고: %s\n", e.Remarks)
		}
	}
	return b.String()
}
