package planner

import (
	"github.com/samber/lo"

	"lingua_plan_backend/internal/catalog"
	"lingua_plan_backend/internal/model"
)

// 所有编辑操作对非法目标（未知等级、未知话题ID）一律静默no-op，
// 不设错误通道；前端通过按钮可用性预先拦截非法操作

// AddTopic 向指定等级的模块追加话题
func AddTopic(modules []model.CourseModule, level model.CEFRLevel, topic model.Topic) []model.CourseModule {
	if i := moduleIndex(modules, level); i >= 0 {
		modules[i].Topics = append(modules[i].Topics, topic)
	}
	return modules
}

// RemoveTopic 按ID移除话题
func RemoveTopic(modules []model.CourseModule, level model.CEFRLevel, topicID string) []model.CourseModule {
	if i := moduleIndex(modules, level); i >= 0 {
		modules[i].Topics = lo.Filter(modules[i].Topics, func(t model.Topic, _ int) bool {
			return t.ID != topicID
		})
	}
	return modules
}

// UpdateTopicHours 把话题时长上下界同时设为 hours。
// 固定时长或补充课程话题不可改，原样保留
func UpdateTopicHours(modules []model.CourseModule, level model.CEFRLevel, topicID string, hours float64) []model.CourseModule {
	i := moduleIndex(modules, level)
	if i < 0 || hours <= 0 {
		return modules
	}
	j := modules[i].FindTopic(topicID)
	if j < 0 || !modules[i].Topics[j].DurationEditable() {
		return modules
	}
	modules[i].Topics[j].MinHours = hours
	modules[i].Topics[j].MaxHours = hours
	return modules
}

// SetAllPrivateDurations 批量设置模块内所有私教、非固定、
// 非补充课程话题的时长
func SetAllPrivateDurations(modules []model.CourseModule, level model.CEFRLevel, hours float64) []model.CourseModule {
	i := moduleIndex(modules, level)
	if i < 0 || hours <= 0 {
		return modules
	}
	for j := range modules[i].Topics {
		t := &modules[i].Topics[j]
		if t.Mode == model.ModePrivate && t.DurationEditable() {
			t.MinHours = hours
			t.MaxHours = hours
		}
	}
	return modules
}

// RemoveAllCustomTopics 只保留official与补充课程话题
func RemoveAllCustomTopics(modules []model.CourseModule, level model.CEFRLevel) []model.CourseModule {
	if i := moduleIndex(modules, level); i >= 0 {
		modules[i].Topics = lo.Filter(modules[i].Topics, func(t model.Topic, _ int) bool {
			return t.Category == model.CategoryOfficial || t.Category == model.CategorySupplementary
		})
	}
	return modules
}

// RemoveAllStandardTopics 移除全部official类话题（切换教材轨前用）
func RemoveAllStandardTopics(modules []model.CourseModule, level model.CEFRLevel) []model.CourseModule {
	if i := moduleIndex(modules, level); i >= 0 {
		modules[i].Topics = lo.Filter(modules[i].Topics, func(t model.Topic, _ int) bool {
			return t.Category != model.CategoryOfficial
		})
	}
	return modules
}

// UpdateStandardTrack 按新的轨模式从教材目录重算official类话题，
// 只替换official子集，定制/AI/补充话题原样保留
func UpdateStandardTrack(modules []model.CourseModule, level model.CEFRLevel, trackMode model.TrackMode, teaching model.TeachingMode) []model.CourseModule {
	i := moduleIndex(modules, level)
	if i < 0 {
		return modules
	}
	cur, ok := catalog.CurriculumFor(level)
	if !ok {
		return modules
	}

	var templates []catalog.TopicTemplate
	switch trackMode {
	case model.TrackAlternate:
		templates = cur.Alternate
	case model.TrackCombined:
		templates = append(append([]catalog.TopicTemplate{}, cur.Official...), cur.Alternate...)
	case model.TrackOfficial:
		templates = cur.Official
	default:
		return modules
	}

	kept := lo.Filter(modules[i].Topics, func(t model.Topic, _ int) bool {
		return t.Category != model.CategoryOfficial
	})
	modules[i].Topics = append(seedTopics(templates, teaching), kept...)
	modules[i].StandardTrackMode = trackMode
	return modules
}

// CanAddSupplementary 补充课程添加资格的纯谓词：等级区间匹配，
// 全局唯一课程在整个规划内未出现，级内唯一课程在该模块内未出现。
// 出现与否按话题标题判定
func CanAddSupplementary(modules []model.CourseModule, course catalog.SupplementaryCourse, level model.CEFRLevel) bool {
	i := moduleIndex(modules, level)
	if i < 0 {
		return false
	}
	if r := level.Rank(); r < course.MinLevel.Rank() || r > course.MaxLevel.Rank() {
		return false
	}
	switch course.Uniqueness {
	case catalog.UniqueGlobal:
		for j := range modules {
			if modules[j].HasTopicTitled(course.Title) {
				return false
			}
		}
	case catalog.UniquePerLevel:
		if modules[i].HasTopicTitled(course.Title) {
			return false
		}
	}
	return true
}

// AddSupplementaryCourse 向模块添加补充课程。applyToAll 为真时对每个
// 模块独立尝试，各自做唯一性检查。周费率课程写入预乘后的总时长
func AddSupplementaryCourse(modules []model.CourseModule, courseID string, level model.CEFRLevel, applyToAll bool) []model.CourseModule {
	course, ok := catalog.SupplementaryByID(courseID)
	if !ok {
		return modules
	}
	if applyToAll {
		for i := range modules {
			if CanAddSupplementary(modules, course, modules[i].Level) {
				modules[i].Topics = append(modules[i].Topics, supplementaryTopic(course))
			}
		}
		return modules
	}
	if CanAddSupplementary(modules, course, level) {
		i := moduleIndex(modules, level)
		modules[i].Topics = append(modules[i].Topics, supplementaryTopic(course))
	}
	return modules
}

func supplementaryTopic(course catalog.SupplementaryCourse) model.Topic {
	hours := course.Hours
	if course.IsWeekly {
		hours = course.HoursPerWeek * catalog.PlanningHorizonWeeks
	}
	return model.Topic{
		ID:            model.GenerateUUID(),
		Title:         course.Title,
		MinHours:      hours,
		MaxHours:      hours,
		FixedDuration: true,
		Category:      model.CategorySupplementary,
		Mode:          model.ModePrivate,
		Source:        model.SourceSystem,
	}
}

// AddPackTopics 导入话题包：每个条目实例化一个全新的私教话题，
// 默认时长区间，来源标记为system
func AddPackTopics(modules []model.CourseModule, level model.CEFRLevel, packTopics []catalog.PackTopic, category model.TopicCategory) []model.CourseModule {
	i := moduleIndex(modules, level)
	if i < 0 {
		return modules
	}
	for _, pt := range packTopics {
		modules[i].Topics = append(modules[i].Topics, model.Topic{
			ID:                model.GenerateUUID(),
			Title:             pt.Title,
			PracticalScenario: pt.Scenario,
			MinHours:          catalog.DefaultTopicMinHours,
			MaxHours:          catalog.DefaultTopicMaxHours,
			Category:          category,
			Mode:              model.ModePrivate,
			Source:            model.SourceSystem,
		})
	}
	return modules
}

// ImportOfficialTopicAsCustom 把official话题克隆为可自由编辑的定制
// 话题：新ID、私教模式、非固定时长，与教材轨重算规则脱钩
func ImportOfficialTopicAsCustom(modules []model.CourseModule, level model.CEFRLevel, official model.Topic) []model.CourseModule {
	i := moduleIndex(modules, level)
	if i < 0 {
		return modules
	}
	clone := official
	clone.ID = model.GenerateUUID()
	clone.Category = model.CategoryPopular
	clone.Mode = model.ModePrivate
	clone.FixedDuration = false
	if clone.MinHours <= 0 || clone.MaxHours <= 0 {
		clone.MinHours = catalog.DefaultTopicMinHours
		clone.MaxHours = catalog.DefaultTopicMaxHours
	}
	clone.Syllabus = nil
	modules[i].Topics = append(modules[i].Topics, clone)
	return modules
}

func moduleIndex(modules []model.CourseModule, level model.CEFRLevel) int {
	for i := range modules {
		if modules[i].Level == level {
			return i
		}
	}
	return -1
}
