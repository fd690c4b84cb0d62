package catalog

import "lingua_plan_backend/internal/model"

// Uniqueness 补充课程的唯一性约束级别
type Uniqueness int

const (
	UniqueNone     Uniqueness = iota // 不限
	UniquePerLevel                   // 每个模块最多一次
	UniqueGlobal                     // 整个规划最多一次
)

// SupplementaryCourse 补充课程目录条目。IsWeekly 为真时 Hours 为 0，
// 实际时长按 HoursPerWeek × PlanningHorizonWeeks 预乘后写入话题
type SupplementaryCourse struct {
	ID           string
	Title        string
	Hours        float64
	HoursPerWeek float64
	IsWeekly     bool
	MinLevel     model.CEFRLevel
	MaxLevel     model.CEFRLevel
	Uniqueness   Uniqueness
}

// SupplementaryByID 按ID取补充课程
func SupplementaryByID(id string) (SupplementaryCourse, bool) {
	for _, s := range SupplementaryCourses {
		if s.ID == id {
			return s, true
		}
	}
	return SupplementaryCourse{}, false
}

// SupplementaryCourses 补充课程目录。pronunciation 与 rs_hybrid
// 全局唯一；vocabulary_camp 与 grammar_clinic 每级唯一
var SupplementaryCourses = []SupplementaryCourse{
	{
		ID: "pronunciation", Title: "语音纠音专项 Pronunciation Clinic",
		Hours: 12, MinLevel: model.LevelPreA1, MaxLevel: model.LevelB2,
		Uniqueness: UniqueGlobal,
	},
	{
		ID: "rs_hybrid", Title: "RS混合式线上课 RS Hybrid",
		IsWeekly: true, HoursPerWeek: 2, MinLevel: model.LevelA1, MaxLevel: model.LevelC1,
		Uniqueness: UniqueGlobal,
	},
	{
		ID: "vocabulary_camp", Title: "词汇训练营 Vocabulary Camp",
		Hours: 8, MinLevel: model.LevelPreA1, MaxLevel: model.LevelC1Plus,
		Uniqueness: UniquePerLevel,
	},
	{
		ID: "grammar_clinic", Title: "语法诊所 Grammar Clinic",
		Hours: 6, MinLevel: model.LevelPreA1, MaxLevel: model.LevelB2Plus,
		Uniqueness: UniquePerLevel,
	},
	{
		ID: "listening_lab", Title: "听力实验室 Listening Lab",
		IsWeekly: true, HoursPerWeek: 1.5, MinLevel: model.LevelA1, MaxLevel: model.LevelC2,
	},
	{
		ID: "reading_club", Title: "原版阅读俱乐部 Reading Club",
		Hours: 10, MinLevel: model.LevelB1, MaxLevel: model.LevelC2,
	},
	{
		ID: "writing_workshop", Title: "写作工坊 Writing Workshop",
		Hours: 8, MinLevel: model.LevelA2Plus, MaxLevel: model.LevelC2,
	},
	{
		ID: "exam_sprint", Title: "考试冲刺 Exam Sprint",
		Hours: 16, MinLevel: model.LevelA2, MaxLevel: model.LevelC1,
	},
}

// WeeklySupplementaryByTitle 按标题反查周费率课程，统计聚合时
// 用于识别需要按 周费率×固定周期 计的两门线上课
func WeeklySupplementaryByTitle(title string) (SupplementaryCourse, bool) {
	for _, s := range SupplementaryCourses {
		if s.IsWeekly && s.Title == title {
			return s, true
		}
	}
	return SupplementaryCourse{}, false
}
