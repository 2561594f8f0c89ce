package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alisyos/daily-report-sub000/internal/core/domain"
)

func entry(date, name, overview string) domain.DailyReportEntry {
	return domain.DailyReportEntry{Date: date, EmployeeName: name, WorkOverview: overview}
}

func entryWithID(date, name, id, overview string) domain.DailyReportEntry {
	e := entry(date, name, overview)
	e.EmployeeID = &id
	return e
}

func TestValidateReportBatch(t *testing.T) {
	t.Run("empty batch rejected", func(t *testing.T) {
		err := domain.ValidateReportBatch(nil)
		assert.ErrorIs(t, err, domain.ErrEmptyReportBatch)
	})

	t.Run("mixed dates rejected", func(t *testing.T) {
		batch := []domain.DailyReportEntry{
			entry("2026-08-01", "김철수", "배포 준비"),
			entry("2026-08-02", "김철수", "배포"),
		}
		assert.ErrorIs(t, domain.ValidateReportBatch(batch), domain.ErrMixedReportDates)
	})

	t.Run("negative achievement rejected", func(t *testing.T) {
		e := entry("2026-08-01", "김철수", "배포 준비")
		e.AchievementRate = -1
		assert.ErrorIs(t, domain.ValidateReportBatch([]domain.DailyReportEntry{e}), domain.ErrNegativeAchievement)
	})

	t.Run("placeholder cannot be submitted", func(t *testing.T) {
		e := entry("2026-08-01", "김철수", domain.WorkOverviewNotSubmitted)
		assert.ErrorIs(t, domain.ValidateReportBatch([]domain.DailyReportEntry{e}), domain.ErrPlaceholderSubmitted)
	})

	t.Run("annual leave must be exclusive", func(t *testing.T) {
		batch := []domain.DailyReportEntry{
			entry("2026-08-01", "김철수", domain.WorkOverviewAnnualLeave),
			entry("2026-08-01", "김철수", "오전 반차 후 작업"),
		}
		assert.ErrorIs(t, domain.ValidateReportBatch(batch), domain.ErrLeaveConflict)
	})

	t.Run("leave for one employee does not block another", func(t *testing.T) {
		batch := []domain.DailyReportEntry{
			entry("2026-08-01", "김철수", domain.WorkOverviewAnnualLeave),
			entry("2026-08-01", "이영희", "API 구현"),
		}
		assert.NoError(t, domain.ValidateReportBatch(batch))
	})

	t.Run("same name different ids are distinct identities", func(t *testing.T) {
		batch := []domain.DailyReportEntry{
			entryWithID("2026-08-01", "김철수", "e1", domain.WorkOverviewAnnualLeave),
			entryWithID("2026-08-01", "김철수", "e2", "문서 작업"),
		}
		assert.NoError(t, domain.ValidateReportBatch(batch))
	})
}

func TestResolveBatchIdentity(t *testing.T) {
	t.Run("all ids picks id matching", func(t *testing.T) {
		batch := []domain.DailyReportEntry{
			entryWithID("2026-08-01", "김철수", "e1", "a"),
			entryWithID("2026-08-01", "김철수", "e1", "b"),
			entryWithID("2026-08-01", "이영희", "e2", "c"),
		}
		identity := domain.ResolveBatchIdentity(batch)
		assert.Equal(t, domain.BatchByEmployeeID, identity.Kind)
		assert.Equal(t, []string{"e1", "e2"}, identity.EmployeeIDs)
	})

	t.Run("one missing id demotes the whole batch to names", func(t *testing.T) {
		batch := []domain.DailyReportEntry{
			entryWithID("2026-08-01", "김철수", "e1", "a"),
			entry("2026-08-01", "이영희", "b"),
		}
		identity := domain.ResolveBatchIdentity(batch)
		assert.Equal(t, domain.BatchByEmployeeName, identity.Kind)
		assert.Equal(t, []string{"김철수", "이영희"}, identity.EmployeeNames)
		assert.Empty(t, identity.EmployeeIDs)
	})

	t.Run("empty batch is name based", func(t *testing.T) {
		identity := domain.ResolveBatchIdentity(nil)
		assert.Equal(t, domain.BatchByEmployeeName, identity.Kind)
	})
}

func TestFilterBlank(t *testing.T) {
	blank := domain.DailyReportEntry{Date: "2026-08-01", EmployeeName: "김철수"}
	filled := entry("2026-08-01", "이영희", "테스트 작성")
	remarksOnly := domain.DailyReportEntry{Date: "2026-08-01", EmployeeName: "박민수", Remarks: "재택"}

	kept := domain.FilterBlank([]domain.DailyReportEntry{blank, filled, remarksOnly})
	require.Len(t, kept, 2)
	assert.Equal(t, "이영희", kept[0].EmployeeName)
	assert.Equal(t, "박민수", kept[1].EmployeeName)
}

func TestEntrySentinels(t *testing.T) {
	assert.True(t, entry("2026-08-01", "김철수", domain.WorkOverviewAnnualLeave).IsAnnualLeave())
	assert.True(t, entry("2026-08-01", "김철수", domain.WorkOverviewNotSubmitted).IsPlaceholder())
	assert.False(t, entry("2026-08-01", "김철수", "일반 업무").IsAnnualLeave())
}
