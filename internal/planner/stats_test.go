package planner

import (
	"testing"

	"lingua_plan_backend/internal/catalog"
	"lingua_plan_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statsModules() []model.CourseModule {
	rs, _ := catalog.SupplementaryByID("rs_hybrid")
	pron, _ := catalog.SupplementaryByID("pronunciation")
	return []model.CourseModule{
		{
			ID:    model.GenerateUUID(),
			Level: model.LevelA1,
			Topics: []model.Topic{
				{
					ID: "t1", Title: "私教话题",
					MinHours: 2, MaxHours: 4,
					Category: model.CategoryPopular, Mode: model.ModePrivate,
				},
				{
					ID: "t2", Title: "小组话题",
					MinHours: catalog.GroupClassHours, MaxHours: catalog.GroupClassHours,
					FixedDuration: true,
					Category:      model.CategoryOfficial, Mode: model.ModeGroup,
				},
				{
					ID: "t3", Title: rs.Title,
					MinHours: 99, MaxHours: 99, // 故意写错，统计不信任存储值
					FixedDuration: true,
					Category:      model.CategorySupplementary, Mode: model.ModePrivate,
				},
				{
					ID: "t4", Title: pron.Title,
					MinHours: pron.Hours, MaxHours: pron.Hours,
					FixedDuration: true,
					Category:      model.CategorySupplementary, Mode: model.ModePrivate,
				},
			},
		},
	}
}

func TestComputeStatsBuckets(t *testing.T) {
	profile := testProfile(model.LevelA1, model.LevelA2)
	stats := ComputeStats(statsModules(), profile)

	// 私教：中点3小时，90分钟一节 → 2节
	assert.Equal(t, 3.0, stats.PrivateHours)
	// 小组：1.5小时
	assert.Equal(t, 1.5, stats.GroupHours)
	// 线上：RS按 2小时/周×12周 计，发音课按目录时长计
	assert.Equal(t, 24.0+12.0, stats.OnlineHours)
	assert.Equal(t, 3.0+1.5+36.0, stats.TotalHours)

	assert.Equal(t, 1, stats.GroupTopicCount)
	// 私教2节 + 小组1节
	assert.Equal(t, 3.0, stats.SessionCount)
	assert.InDelta(t, 3.0/2/catalog.WeeksPerMonth, stats.EstimatedMonths, 1e-9)
}

func TestComputeStatsIdempotent(t *testing.T) {
	profile := testProfile(model.LevelA1, model.LevelA2)
	modules := statsModules()

	first := ComputeStats(modules, profile)
	second := ComputeStats(modules, profile)
	assert.Equal(t, first, second)
}

func TestComputeStatsReflectsEdits(t *testing.T) {
	profile := testProfile(model.LevelA1, model.LevelA2)
	modules := statsModules()
	before := ComputeStats(modules, profile)

	modules = RemoveTopic(modules, model.LevelA1, "t1")
	after := ComputeStats(modules, profile)

	assert.Equal(t, before.PrivateHours-3.0, after.PrivateHours)
	assert.Equal(t, before.GroupHours, after.GroupHours)
	assert.Equal(t, before.OnlineHours, after.OnlineHours)
}

func TestComputeStatsWeeklyFrequencyClamped(t *testing.T) {
	profile := testProfile(model.LevelA1, model.LevelA2)
	profile.WeeklyFrequency = 0
	stats := ComputeStats(statsModules(), profile)

	// 周频按最小1计
	assert.InDelta(t, stats.SessionCount/1/catalog.WeeksPerMonth, stats.EstimatedMonths, 1e-9)
}

func TestComputeStatsEmptyPlan(t *testing.T) {
	profile := testProfile(model.LevelA1, model.LevelA2)
	stats := ComputeStats(nil, profile)

	assert.Zero(t, stats.TotalHours)
	assert.Zero(t, stats.SessionCount)
	assert.Zero(t, stats.EstimatedMonths)
}

func TestComputeStatsSessionRounding(t *testing.T) {
	profile := testProfile(model.LevelA1, model.LevelA2)
	profile.SessionMinutes = 120
	modules := []model.CourseModule{
		{
			ID:    model.GenerateUUID(),
			Level: model.LevelA1,
			Topics: []model.Topic{
				{
					ID: "p1", Title: "三小时话题",
					MinHours: 3, MaxHours: 3,
					Category: model.CategoryPopular, Mode: model.ModePrivate,
				},
			},
		},
	}

	stats := ComputeStats(modules, profile)
	// 3小时 / 2小时每节 → 向上取整2节
	require.Equal(t, 3.0, stats.PrivateHours)
	assert.Equal(t, 2.0, stats.SessionCount)
}
