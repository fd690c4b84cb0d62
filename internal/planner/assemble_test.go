package planner

import (
	"testing"

	"lingua_plan_backend/internal/catalog"
	"lingua_plan_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile(current, target model.CEFRLevel) *model.StudentProfile {
	return &model.StudentProfile{
		Name:            "测试学员",
		CurrentLevel:    current,
		TargetLevel:     target,
		TeachingMode:    model.TeachingPrivate,
		ContentStrategy: model.StrategyHighFrequency,
		WeeklyFrequency: 2,
		SessionMinutes:  90,
	}
}

func TestBuildPlanLevelRange(t *testing.T) {
	profile := testProfile(model.LevelA1, model.LevelA2Plus)
	modules := BuildPlan(profile)

	require.Len(t, modules, 2)
	assert.Equal(t, model.LevelA1, modules[0].Level)
	assert.Equal(t, model.LevelA2, modules[1].Level)

	// 相邻模块等级连续
	for i := 1; i < len(modules); i++ {
		assert.Equal(t, modules[i-1].Level.Rank()+1, modules[i].Level.Rank())
	}
}

func TestBuildPlanInvalidRange(t *testing.T) {
	assert.Nil(t, BuildPlan(testProfile(model.LevelB2, model.LevelA1)))
	assert.Nil(t, BuildPlan(testProfile(model.LevelB1, model.LevelB1)))
	assert.Nil(t, BuildPlan(testProfile("未知", model.LevelB1)))
}

func TestBuildPlanPrivateDurations(t *testing.T) {
	modules := BuildPlan(testProfile(model.LevelA1, model.LevelA2))

	require.Len(t, modules, 1)
	require.NotEmpty(t, modules[0].Topics)
	for _, topic := range modules[0].Topics {
		assert.Equal(t, model.ModePrivate, topic.Mode)
		assert.Equal(t, catalog.DefaultTopicMinHours, topic.MinHours)
		assert.Equal(t, catalog.DefaultTopicMaxHours, topic.MaxHours)
		assert.False(t, topic.FixedDuration)
		assert.Equal(t, model.CategoryOfficial, topic.Category)
	}
}

func TestBuildPlanGroupDurations(t *testing.T) {
	for _, mode := range []model.TeachingMode{model.TeachingGroup, model.TeachingCombo} {
		profile := testProfile(model.LevelA1, model.LevelA2)
		profile.TeachingMode = mode
		modules := BuildPlan(profile)

		require.Len(t, modules, 1)
		for _, topic := range modules[0].Topics {
			assert.Equal(t, model.ModeGroup, topic.Mode)
			assert.Equal(t, catalog.GroupClassHours, topic.MinHours)
			assert.Equal(t, catalog.GroupClassHours, topic.MaxHours)
			assert.True(t, topic.FixedDuration)
		}
	}
}

func TestBuildPlanPureCustomSeedsEmpty(t *testing.T) {
	profile := testProfile(model.LevelA1, model.LevelB1)
	profile.ContentStrategy = model.StrategyPureCustom
	modules := BuildPlan(profile)

	require.Len(t, modules, 3)
	for _, m := range modules {
		assert.Empty(t, m.Topics)
		assert.Equal(t, model.TrackOfficial, m.StandardTrackMode)
	}
}

func TestBuildPlanAlternateTrackForNonWorking(t *testing.T) {
	profile := testProfile(model.LevelA1, model.LevelA2)
	profile.Role = "学生"
	modules := BuildPlan(profile)

	require.Len(t, modules, 1)
	assert.Equal(t, model.TrackAlternate, modules[0].StandardTrackMode)

	cur, ok := catalog.CurriculumFor(model.LevelA1)
	require.True(t, ok)
	require.NotEmpty(t, modules[0].Topics)
	assert.Equal(t, cur.Alternate[0].Title, modules[0].Topics[0].Title)
}

func TestBuildPlanBusinessDirectionOverridesNonWorking(t *testing.T) {
	profile := testProfile(model.LevelA1, model.LevelA2)
	profile.Role = "学生"
	profile.LearningDirections = []model.LearningDirection{model.DirectionBusiness}
	modules := BuildPlan(profile)

	require.Len(t, modules, 1)
	assert.Equal(t, model.TrackOfficial, modules[0].StandardTrackMode)
}

func TestBuildPlanUniqueIDs(t *testing.T) {
	modules := BuildPlan(testProfile(model.LevelPreA1, model.LevelB2))

	seen := make(map[string]bool)
	for _, m := range modules {
		assert.False(t, seen[m.ID])
		seen[m.ID] = true
		for _, topic := range m.Topics {
			assert.False(t, seen[topic.ID])
			seen[topic.ID] = true
		}
	}
}
