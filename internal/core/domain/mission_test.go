package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/alisyos/daily-report-sub000/internal/core/domain"
)

func TestMissionKpiAchievementRate(t *testing.T) {
	kpi := domain.MissionKpi{
		TargetValue:  decimal.NewFromInt(200),
		CurrentValue: decimal.NewFromInt(50),
	}
	assert.True(t, kpi.AchievementRate().Equal(decimal.NewFromInt(25)))

	zeroTarget := domain.MissionKpi{CurrentValue: decimal.NewFromInt(10)}
	assert.True(t, zeroTarget.AchievementRate().IsZero(), "zero target must not divide")
}

func TestMissionKpiDisplayBarWidth(t *testing.T) {
	over := domain.MissionKpi{
		TargetValue:  decimal.NewFromInt(100),
		CurrentValue: decimal.NewFromInt(150),
	}
	assert.True(t, over.AchievementRate().Equal(decimal.NewFromInt(150)), "the numeric rate stays unclamped")
	assert.True(t, over.DisplayBarWidth().Equal(decimal.NewFromInt(100)), "the bar width is clamped")

	under := domain.MissionKpi{
		TargetValue:  decimal.NewFromInt(100),
		CurrentValue: decimal.NewFromInt(70),
	}
	assert.True(t, under.DisplayBarWidth().Equal(decimal.NewFromInt(70)))
}

func TestValidMissionStatus(t *testing.T) {
	assert.True(t, domain.ValidMissionStatus(domain.MissionPending))
	assert.True(t, domain.ValidMissionStatus(domain.MissionInProgress))
	assert.True(t, domain.ValidMissionStatus(domain.MissionDone))
	assert.False(t, domain.ValidMissionStatus(domain.MissionStatus("보류")))
}
