package model

// TopicCategory 话题分类标签，标记来源/归类，不构成类型层级
type TopicCategory string

const (
	CategoryOfficial       TopicCategory = "official"        // 官方教材话题
	CategoryLife           TopicCategory = "life"            // 生活话题
	CategoryBusinessSkills TopicCategory = "business_skills" // 商务技能
	CategoryIndustry       TopicCategory = "industry"        // 行业话题
	CategoryJobRole        TopicCategory = "job_role"        // 岗位话题
	CategoryAIGenerated    TopicCategory = "ai_generated"    // AI定制话题
	CategorySupplementary  TopicCategory = "supplementary"   // 补充课程
	CategoryPopular        TopicCategory = "popular"         // 热门话题
)

// TopicMode 授课形式
type TopicMode string

const (
	ModePrivate TopicMode = "private" // 一对一私教，时长可调
	ModeGroup   TopicMode = "group"   // 小组课，固定时长
)

// TopicSource 内容来源，仅用于审计和前端角标展示
type TopicSource string

const (
	SourceFile   TopicSource = "file"
	SourceSystem TopicSource = "system"
	SourceAI     TopicSource = "ai"
)

// SyllabusPhase 教案的一个教学阶段
type SyllabusPhase struct {
	Name       string   `json:"name"`
	Minutes    int      `json:"minutes"`
	Activities []string `json:"activities"`
}

// Syllabus 单个话题的详细教案，由AI生成后延迟挂载；
// 挂载前该话题视为"未生成"
type Syllabus struct {
	Vocabulary     []string        `json:"vocabulary"`
	Sentences      []string        `json:"sentences"`
	Expressions    []string        `json:"expressions"`
	CommonMistakes []string        `json:"commonMistakes"`
	CulturalNote   string          `json:"culturalNote"`
	Phases         []SyllabusPhase `json:"phases"`
}

// Topic 教学内容的原子单元
type Topic struct {
	ID                string        `json:"id"`
	Title             string        `json:"title"`
	Description       string        `json:"description,omitempty"`
	PracticalScenario string        `json:"practicalScenario,omitempty"`
	MinHours          float64       `json:"minHours"`
	MaxHours          float64       `json:"maxHours"`
	FixedDuration     bool          `json:"fixedDuration"`
	Category          TopicCategory `json:"category"`
	Mode              TopicMode     `json:"mode"`
	Source            TopicSource   `json:"source"`
	Syllabus          *Syllabus     `json:"syllabus,omitempty"`
}

// MidpointHours 话题时长取上下界中点，统计口径统一按此计算
func (t Topic) MidpointHours() float64 {
	return (t.MinHours + t.MaxHours) / 2
}

// DurationEditable 补充课程和固定时长话题不允许自由改时长
func (t Topic) DurationEditable() bool {
	return !t.FixedDuration && t.Category != CategorySupplementary
}

// SyllabusEligible 补充课程和固定时长话题不参与教案生成
func (t Topic) SyllabusEligible() bool {
	return !t.FixedDuration && t.Category != CategorySupplementary
}
