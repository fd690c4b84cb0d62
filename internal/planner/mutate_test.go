package planner

import (
	"testing"

	"lingua_plan_backend/internal/catalog"
	"lingua_plan_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customTopic(title string) model.Topic {
	return model.Topic{
		ID:       model.GenerateUUID(),
		Title:    title,
		MinHours: catalog.DefaultTopicMinHours,
		MaxHours: catalog.DefaultTopicMaxHours,
		Category: model.CategoryPopular,
		Mode:     model.ModePrivate,
		Source:   model.SourceFile,
	}
}

func TestAddTopic(t *testing.T) {
	modules := BuildPlan(testProfile(model.LevelA1, model.LevelA2))
	before := len(modules[0].Topics)

	modules = AddTopic(modules, model.LevelA1, customTopic("面试模拟"))
	assert.Len(t, modules[0].Topics, before+1)

	// 未知等级静默no-op
	modules = AddTopic(modules, model.LevelC2, customTopic("不会出现"))
	assert.Len(t, modules[0].Topics, before+1)
}

func TestRemoveTopic(t *testing.T) {
	modules := BuildPlan(testProfile(model.LevelA1, model.LevelA2))
	topic := customTopic("待删除")
	modules = AddTopic(modules, model.LevelA1, topic)
	count := len(modules[0].Topics)

	modules = RemoveTopic(modules, model.LevelA1, topic.ID)
	assert.Len(t, modules[0].Topics, count-1)
	assert.Equal(t, -1, modules[0].FindTopic(topic.ID))

	// 未知ID静默no-op
	modules = RemoveTopic(modules, model.LevelA1, "no-such-id")
	assert.Len(t, modules[0].Topics, count-1)
}

func TestUpdateTopicHours(t *testing.T) {
	modules := BuildPlan(testProfile(model.LevelA1, model.LevelA2))
	topicID := modules[0].Topics[0].ID

	modules = UpdateTopicHours(modules, model.LevelA1, topicID, 3)
	assert.Equal(t, 3.0, modules[0].Topics[0].MinHours)
	assert.Equal(t, 3.0, modules[0].Topics[0].MaxHours)

	// 非正数拒绝
	modules = UpdateTopicHours(modules, model.LevelA1, topicID, 0)
	assert.Equal(t, 3.0, modules[0].Topics[0].MinHours)
	modules = UpdateTopicHours(modules, model.LevelA1, topicID, -2)
	assert.Equal(t, 3.0, modules[0].Topics[0].MinHours)
}

func TestUpdateTopicHoursRejectsFixedDuration(t *testing.T) {
	profile := testProfile(model.LevelA1, model.LevelA2)
	profile.TeachingMode = model.TeachingGroup
	modules := BuildPlan(profile)
	topicID := modules[0].Topics[0].ID

	modules = UpdateTopicHours(modules, model.LevelA1, topicID, 5)
	assert.Equal(t, catalog.GroupClassHours, modules[0].Topics[0].MinHours)
	assert.True(t, modules[0].Topics[0].FixedDuration)
}

func TestUpdateTopicHoursRejectsSupplementary(t *testing.T) {
	modules := BuildPlan(testProfile(model.LevelA1, model.LevelA2))
	modules = AddSupplementaryCourse(modules, "vocabulary_camp", model.LevelA1, false)

	course, _ := catalog.SupplementaryByID("vocabulary_camp")
	var suppID string
	for _, topic := range modules[0].Topics {
		if topic.Title == course.Title {
			suppID = topic.ID
		}
	}
	require.NotEmpty(t, suppID)

	modules = UpdateTopicHours(modules, model.LevelA1, suppID, 20)
	j := modules[0].FindTopic(suppID)
	assert.Equal(t, course.Hours, modules[0].Topics[j].MinHours)
}

func TestSetAllPrivateDurations(t *testing.T) {
	modules := BuildPlan(testProfile(model.LevelA1, model.LevelA2))
	modules = AddSupplementaryCourse(modules, "vocabulary_camp", model.LevelA1, false)

	modules = SetAllPrivateDurations(modules, model.LevelA1, 3)
	course, _ := catalog.SupplementaryByID("vocabulary_camp")
	for _, topic := range modules[0].Topics {
		if topic.Title == course.Title {
			// 补充课程不受批量设置影响
			assert.Equal(t, course.Hours, topic.MinHours)
			continue
		}
		assert.Equal(t, 3.0, topic.MinHours)
		assert.Equal(t, 3.0, topic.MaxHours)
	}
}

func TestRemoveAllCustomTopics(t *testing.T) {
	modules := BuildPlan(testProfile(model.LevelA1, model.LevelA2))
	official := len(modules[0].Topics)
	modules = AddTopic(modules, model.LevelA1, customTopic("定制1"))
	modules = AddTopic(modules, model.LevelA1, customTopic("定制2"))
	modules = AddSupplementaryCourse(modules, "vocabulary_camp", model.LevelA1, false)

	modules = RemoveAllCustomTopics(modules, model.LevelA1)
	assert.Len(t, modules[0].Topics, official+1)
	for _, topic := range modules[0].Topics {
		assert.Contains(t,
			[]model.TopicCategory{model.CategoryOfficial, model.CategorySupplementary},
			topic.Category)
	}
}

func TestRemoveAllStandardTopics(t *testing.T) {
	modules := BuildPlan(testProfile(model.LevelA1, model.LevelA2))
	custom := customTopic("保留我")
	modules = AddTopic(modules, model.LevelA1, custom)

	modules = RemoveAllStandardTopics(modules, model.LevelA1)
	require.Len(t, modules[0].Topics, 1)
	assert.Equal(t, custom.ID, modules[0].Topics[0].ID)
}

func TestUpdateStandardTrackPreservesCustom(t *testing.T) {
	modules := BuildPlan(testProfile(model.LevelA1, model.LevelA2))
	custom := customTopic("定制保留")
	modules = AddTopic(modules, model.LevelA1, custom)

	cur, ok := catalog.CurriculumFor(model.LevelA1)
	require.True(t, ok)

	modules = UpdateStandardTrack(modules, model.LevelA1, model.TrackAlternate, model.TeachingPrivate)
	assert.Equal(t, model.TrackAlternate, modules[0].StandardTrackMode)
	assert.Len(t, modules[0].Topics, len(cur.Alternate)+1)
	assert.GreaterOrEqual(t, modules[0].FindTopic(custom.ID), 0)

	// combined 为双轨并集
	modules = UpdateStandardTrack(modules, model.LevelA1, model.TrackCombined, model.TeachingPrivate)
	assert.Len(t, modules[0].Topics, len(cur.Official)+len(cur.Alternate)+1)
	assert.GreaterOrEqual(t, modules[0].FindTopic(custom.ID), 0)
}

func TestUpdateStandardTrackUnknownMode(t *testing.T) {
	modules := BuildPlan(testProfile(model.LevelA1, model.LevelA2))
	before := len(modules[0].Topics)
	modules = UpdateStandardTrack(modules, model.LevelA1, model.TrackMode("bogus"), model.TeachingPrivate)
	assert.Len(t, modules[0].Topics, before)
	assert.Equal(t, model.TrackOfficial, modules[0].StandardTrackMode)
}

func TestCanAddSupplementaryLevelBounds(t *testing.T) {
	modules := BuildPlan(testProfile(model.LevelC1, model.LevelC2))
	pron, _ := catalog.SupplementaryByID("pronunciation")

	// pronunciation 上限B2，C1模块不可加
	assert.False(t, CanAddSupplementary(modules, pron, model.LevelC1))

	low := BuildPlan(testProfile(model.LevelA2, model.LevelB1))
	assert.True(t, CanAddSupplementary(low, pron, model.LevelA2))
}

func TestGlobalUniquenessAcrossModules(t *testing.T) {
	modules := BuildPlan(testProfile(model.LevelA1, model.LevelB1))
	pron, _ := catalog.SupplementaryByID("pronunciation")

	modules = AddSupplementaryCourse(modules, "pronunciation", model.LevelA1, false)
	require.True(t, modules[0].HasTopicTitled(pron.Title))

	// 其他模块也被全局唯一约束挡住
	assert.False(t, CanAddSupplementary(modules, pron, model.LevelA2))
	modules = AddSupplementaryCourse(modules, "pronunciation", model.LevelA2, false)
	assert.False(t, modules[1].HasTopicTitled(pron.Title))
}

func TestPerLevelUniqueness(t *testing.T) {
	modules := BuildPlan(testProfile(model.LevelA1, model.LevelB1))
	camp, _ := catalog.SupplementaryByID("vocabulary_camp")

	modules = AddSupplementaryCourse(modules, "vocabulary_camp", model.LevelA1, false)
	require.True(t, modules[0].HasTopicTitled(camp.Title))

	// 同级重复被拒，异级可加
	assert.False(t, CanAddSupplementary(modules, camp, model.LevelA1))
	assert.True(t, CanAddSupplementary(modules, camp, model.LevelA2))
}

func TestAddSupplementaryApplyToAll(t *testing.T) {
	modules := BuildPlan(testProfile(model.LevelA1, model.LevelB1))
	camp, _ := catalog.SupplementaryByID("vocabulary_camp")

	modules = AddSupplementaryCourse(modules, "vocabulary_camp", "", true)
	for i := range modules {
		assert.True(t, modules[i].HasTopicTitled(camp.Title), "level %s missing course", modules[i].Level)
	}

	// 全局唯一课程 applyToAll 只落到首个合格模块
	pron, _ := catalog.SupplementaryByID("pronunciation")
	modules = AddSupplementaryCourse(modules, "pronunciation", "", true)
	count := 0
	for i := range modules {
		if modules[i].HasTopicTitled(pron.Title) {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestWeeklySupplementaryPremultiplied(t *testing.T) {
	modules := BuildPlan(testProfile(model.LevelA1, model.LevelA2))
	rs, _ := catalog.SupplementaryByID("rs_hybrid")

	modules = AddSupplementaryCourse(modules, "rs_hybrid", model.LevelA1, false)
	found := false
	for _, topic := range modules[0].Topics {
		if topic.Title == rs.Title {
			found = true
			assert.Equal(t, rs.HoursPerWeek*catalog.PlanningHorizonWeeks, topic.MinHours)
			assert.True(t, topic.FixedDuration)
			assert.Equal(t, model.CategorySupplementary, topic.Category)
		}
	}
	assert.True(t, found)
}

func TestAddPackTopics(t *testing.T) {
	modules := BuildPlan(testProfile(model.LevelB1, model.LevelB1Plus))
	pack, ok := catalog.PackByName("金融与投资 Finance & Investment")
	require.True(t, ok)
	before := len(modules[0].Topics)

	modules = AddPackTopics(modules, model.LevelB1, pack.Topics, pack.Category)
	require.Len(t, modules[0].Topics, before+len(pack.Topics))

	added := modules[0].Topics[before:]
	for i, topic := range added {
		assert.Equal(t, pack.Topics[i].Title, topic.Title)
		assert.Equal(t, pack.Category, topic.Category)
		assert.Equal(t, model.ModePrivate, topic.Mode)
		assert.Equal(t, catalog.DefaultTopicMinHours, topic.MinHours)
		assert.NotEmpty(t, topic.ID)
	}

	// 重复导入生成全新实例，不去重
	modules = AddPackTopics(modules, model.LevelB1, pack.Topics, pack.Category)
	assert.Len(t, modules[0].Topics, before+2*len(pack.Topics))
}

func TestImportOfficialTopicAsCustom(t *testing.T) {
	modules := BuildPlan(testProfile(model.LevelA1, model.LevelA2))
	official := modules[0].Topics[0]
	before := len(modules[0].Topics)

	modules = ImportOfficialTopicAsCustom(modules, model.LevelA1, official)
	require.Len(t, modules[0].Topics, before+1)

	clone := modules[0].Topics[before]
	assert.Equal(t, official.Title, clone.Title)
	assert.NotEqual(t, official.ID, clone.ID)
	assert.Equal(t, model.CategoryPopular, clone.Category)
	assert.Equal(t, model.ModePrivate, clone.Mode)
	assert.False(t, clone.FixedDuration)

	// 原official话题不受影响
	assert.Equal(t, model.CategoryOfficial, modules[0].Topics[0].Category)
}
