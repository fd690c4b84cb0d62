package model

// TeachingMode 整体授课模式
type TeachingMode string

const (
	TeachingPrivate TeachingMode = "private" // 纯一对一
	TeachingGroup   TeachingMode = "group"   // 纯小组课
	TeachingCombo   TeachingMode = "combo"   // 混合
)

// ContentStrategy 定制内容策略
type ContentStrategy string

const (
	StrategyHighFrequency ContentStrategy = "high_frequency" // 高频场景优先
	StrategyPureCustom    ContentStrategy = "pure_custom"    // 纯定制（不铺官方话题）
	StrategyHybrid        ContentStrategy = "hybrid"         // 官方+定制混合
)

// LearningDirection 学习方向
type LearningDirection string

const (
	DirectionLife     LearningDirection = "life"
	DirectionBusiness LearningDirection = "business"
)

// swagger:model StudentProfile
type StudentProfile struct {
	BaseModel
	Name               string              `gorm:"size:100;not null" json:"name"`
	CurrentLevel       CEFRLevel           `gorm:"size:10;not null" json:"currentLevel"`
	TargetLevel        CEFRLevel           `gorm:"size:10;not null" json:"targetLevel"`
	LearningDirections []LearningDirection `gorm:"type:varchar(255);serializer:json" json:"learningDirections"`
	Industry           string              `gorm:"size:100" json:"industry"`
	Role               string              `gorm:"size:100" json:"role"`
	JobDescription     string              `gorm:"type:text" json:"jobDescription"`
	Interests          []string            `gorm:"type:text;serializer:json" json:"interests"`
	Goals              []string            `gorm:"type:text;serializer:json" json:"goals"`
	TeachingMode       TeachingMode        `gorm:"size:20;default:'private'" json:"teachingMode"`
	ContentStrategy    ContentStrategy     `gorm:"size:20;default:'high_frequency'" json:"contentStrategy"`
	WeeklyFrequency    int                 `gorm:"default:2" json:"weeklyFrequency"`
	SessionMinutes     int                 `gorm:"default:90" json:"sessionMinutes"`
	ConsultantID       uint                `gorm:"index;type:bigint unsigned" json:"consultantId"`
}

func (StudentProfile) TableName() string {
	return "student_profiles"
}

func (p *StudentProfile) HasDirection(d LearningDirection) bool {
	for _, dir := range p.LearningDirections {
		if dir == d {
			return true
		}
	}
	return false
}

// 非在职身份，选生活轨的判断依据之一
var nonWorkingRoles = map[string]bool{
	"学生":        true,
	"student":   true,
	"退休":        true,
	"retired":   true,
	"家庭主妇":      true,
	"homemaker": true,
	"自由职业":      true,
	"无业":        true,
}

// NonWorking 判断学员身份是否为非在职人群
func (p *StudentProfile) NonWorking() bool {
	return nonWorkingRoles[p.Role]
}

// SessionHours 单节课时长（小时），最小钳制到0.5避免除零
func (p *StudentProfile) SessionHours() float64 {
	if p.SessionMinutes <= 0 {
		return 0.5
	}
	return float64(p.SessionMinutes) / 60
}
