package planner

import (
	"math"

	"lingua_plan_backend/internal/catalog"
	"lingua_plan_backend/internal/model"
)

// ComputeStats 从当前话题列表全量重算统计。幂等，禁止缓存结果——
// 任何编辑操作之后的读取都必须反映最新话题列表。
// 分类规则按首个命中生效：补充课程→线上课时；小组课或固定时长→
// 小组课时；其余→私教课时并累计等效课节数
func ComputeStats(modules []model.CourseModule, profile *model.StudentProfile) model.PlanStats {
	var stats model.PlanStats
	sessionHours := profile.SessionHours()

	var privateSessions float64
	for i := range modules {
		for _, t := range modules[i].Topics {
			duration := t.MidpointHours()
			switch {
			case t.Category == model.CategorySupplementary:
				// 周费率线上课按 周费率×固定周期 计，不信任存储值
				if course, ok := catalog.WeeklySupplementaryByTitle(t.Title); ok {
					stats.OnlineHours += course.HoursPerWeek * catalog.PlanningHorizonWeeks
				} else {
					stats.OnlineHours += duration
				}
			case t.Mode == model.ModeGroup || t.FixedDuration:
				stats.GroupHours += duration
			default:
				stats.PrivateHours += duration
				privateSessions += math.Ceil(duration / sessionHours)
			}
		}
	}

	stats.TotalHours = stats.PrivateHours + stats.GroupHours + stats.OnlineHours
	stats.GroupTopicCount = int(math.Round(stats.GroupHours / catalog.GroupClassHours))
	stats.SessionCount = privateSessions + stats.GroupHours/catalog.GroupClassHours

	weekly := float64(profile.WeeklyFrequency)
	if weekly < 1 {
		weekly = 1
	}
	if stats.SessionCount > 0 {
		stats.EstimatedMonths = stats.SessionCount / weekly / catalog.WeeksPerMonth
	}
	return stats
}
