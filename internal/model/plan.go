package model

// swagger:model CoursePlan
type CoursePlan struct {
	BaseModel
	ProfileID uint           `gorm:"index;not null;type:bigint unsigned" json:"profileId"`
	Profile   StudentProfile `gorm:"foreignKey:ProfileID" json:"profile"`
	Modules   []CourseModule `gorm:"type:longtext;serializer:json" json:"modules"`
}

func (CoursePlan) TableName() string {
	return "course_plans"
}

// ModuleAt 按等级定位模块，未找到返回 -1
func (p *CoursePlan) ModuleAt(level CEFRLevel) int {
	for i := range p.Modules {
		if p.Modules[i].Level == level {
			return i
		}
	}
	return -1
}

// PlanStats 课程规划统计，每次读取时从话题列表现算，不落库
// swagger:model PlanStats
type PlanStats struct {
	PrivateHours    float64 `json:"privateHours"`
	GroupHours      float64 `json:"groupHours"`
	OnlineHours     float64 `json:"onlineHours"`
	TotalHours      float64 `json:"totalHours"`
	SessionCount    float64 `json:"sessionCount"`
	GroupTopicCount int     `json:"groupTopicCount"`
	EstimatedMonths float64 `json:"estimatedMonths"`
}
