// Package catalog 承载静态课程目录数据：各等级教材轨、话题包、补充课程。
// 数据在进程启动时一次性加载，运行期只读共享，无需加锁。
package catalog

import (
	"fmt"

	"lingua_plan_backend/internal/model"
)

const (
	// GroupClassHours 标准小组课单节时长（小时）
	GroupClassHours = 1.5

	// DefaultTopicMinHours / DefaultTopicMaxHours 私教话题默认时长区间
	DefaultTopicMinHours = 2.0
	DefaultTopicMaxHours = 4.0

	// PlanningHorizonWeeks 周费率类补充课程的固定规划周期（周）
	PlanningHorizonWeeks = 12

	// WeeksPerMonth 月均周数，预估学习周期用
	WeeksPerMonth = 4.33
)

// Validate 校验目录数据自洽：教材轨等级合法、话题包最低等级合法、
// 补充课程等级区间正序。启动时调一次，数据错误直接报出来
func Validate() error {
	seen := make(map[model.CEFRLevel]bool)
	for _, c := range Curriculum {
		if !c.Level.Valid() {
			return fmt.Errorf("curriculum: unknown level %q", c.Level)
		}
		if seen[c.Level] {
			return fmt.Errorf("curriculum: duplicate level %q", c.Level)
		}
		seen[c.Level] = true
	}
	for _, p := range Packs {
		if !p.MinLevel.Valid() {
			return fmt.Errorf("pack %q: unknown min level %q", p.Name, p.MinLevel)
		}
		if len(p.Topics) == 0 {
			return fmt.Errorf("pack %q: empty topic list", p.Name)
		}
	}
	for _, s := range SupplementaryCourses {
		if !s.MinLevel.Valid() || !s.MaxLevel.Valid() {
			return fmt.Errorf("supplementary %q: unknown level bounds", s.ID)
		}
		if s.MinLevel.Rank() > s.MaxLevel.Rank() {
			return fmt.Errorf("supplementary %q: inverted level range", s.ID)
		}
		if s.IsWeekly && s.HoursPerWeek <= 0 {
			return fmt.Errorf("supplementary %q: weekly course without weekly rate", s.ID)
		}
	}
	return nil
}
