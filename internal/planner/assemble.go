// Package planner 课程规划核心引擎：模块生成、规划编辑、统计聚合与
// 话题包推荐。全部为纯内存运算，不做任何I/O，持久化由service层负责。
package planner

import (
	"lingua_plan_backend/internal/catalog"
	"lingua_plan_backend/internal/model"
)

// BuildPlan 按学员画像生成模块列表：[currentLevel, targetLevel) 区间内
// 每个等级一个模块。画像的等级区间非法时返回空。
// 纯函数，重复调用结果语义一致（话题ID除外）
func BuildPlan(profile *model.StudentProfile) []model.CourseModule {
	levels := model.LevelsBetween(profile.CurrentLevel, profile.TargetLevel)
	if len(levels) == 0 {
		return nil
	}

	useAlternate := profile.NonWorking() && !profile.HasDirection(model.DirectionBusiness)

	modules := make([]model.CourseModule, 0, len(levels))
	for _, level := range levels {
		cur, ok := catalog.CurriculumFor(level)

		trackMode := model.TrackOfficial
		var templates []catalog.TopicTemplate
		if ok {
			templates = cur.Official
			if useAlternate && len(cur.Alternate) > 0 {
				templates = cur.Alternate
				trackMode = model.TrackAlternate
			}
		}

		var topics []model.Topic
		if profile.ContentStrategy != model.StrategyPureCustom {
			topics = seedTopics(templates, profile.TeachingMode)
		}

		modules = append(modules, model.CourseModule{
			ID:                model.GenerateUUID(),
			Level:             level,
			Topics:            topics,
			StandardTrackMode: trackMode,
		})
	}
	return modules
}

// seedTopics 把教材模板实例化为official类话题，并按授课模式归一化时长
func seedTopics(templates []catalog.TopicTemplate, mode model.TeachingMode) []model.Topic {
	topics := make([]model.Topic, 0, len(templates))
	for _, tpl := range templates {
		t := model.Topic{
			ID:                model.GenerateUUID(),
			Title:             tpl.Title,
			Description:       tpl.Description,
			PracticalScenario: tpl.PracticalScenario,
			Category:          model.CategoryOfficial,
			Source:            model.SourceSystem,
		}
		normalizeDuration(&t, mode)
		topics = append(topics, t)
	}
	return topics
}

// normalizeDuration 授课模式决定话题时长形态：
// 小组/混合模式固定为标准小组课时长且不可编辑，私教模式给可编辑区间
func normalizeDuration(t *model.Topic, mode model.TeachingMode) {
	switch mode {
	case model.TeachingGroup, model.TeachingCombo:
		t.Mode = model.ModeGroup
		t.MinHours = catalog.GroupClassHours
		t.MaxHours = catalog.GroupClassHours
		t.FixedDuration = true
	default:
		t.Mode = model.ModePrivate
		t.MinHours = catalog.DefaultTopicMinHours
		t.MaxHours = catalog.DefaultTopicMaxHours
		t.FixedDuration = false
	}
}
