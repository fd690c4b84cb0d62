package service

import (
	"context"
	"fmt"
	"time"

	"lingua_plan_backend/internal/model"
	"lingua_plan_backend/internal/planner"
	"lingua_plan_backend/internal/repository"
	"lingua_plan_backend/internal/util"
	"lingua_plan_backend/pkg/logger"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ExportService 把规划快照渲染成xlsx工作簿并交给存储层
type ExportService struct {
	PlanRepo *repository.PlanRepository
	Storage  *StorageService
}

func NewExportService(planRepo *repository.PlanRepository, storage *StorageService) *ExportService {
	return &ExportService{
		PlanRepo: planRepo,
		Storage:  storage,
	}
}

type ExportResult struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

var topicModeLabels = map[model.TopicMode]string{
	model.ModePrivate: "私教",
	model.ModeGroup:   "小组课",
}

var categoryLabels = map[model.TopicCategory]string{
	model.CategoryOfficial:       "官方教材",
	model.CategoryLife:           "生活话题",
	model.CategoryBusinessSkills: "商务技能",
	model.CategoryIndustry:       "行业话题",
	model.CategoryJobRole:        "岗位话题",
	model.CategoryAIGenerated:    "AI定制",
	model.CategorySupplementary:  "补充课程",
	model.CategoryPopular:        "热门话题",
}

// ExportPlan 导出课程规划为xlsx，返回可访问的文件URL
func (s *ExportService) ExportPlan(ctx context.Context, planID uint) (*ExportResult, error) {
	plan, err := s.PlanRepo.FindByID(planID)
	if err != nil {
		return nil, util.ErrPlanNotFound
	}
	stats := planner.ComputeStats(plan.Modules, &plan.Profile)

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logger.Log.Warn("failed to close workbook", zap.Error(err))
		}
	}()

	if err := s.writePlanSheet(f, plan); err != nil {
		return nil, err
	}
	if err := s.writeStatsSheet(f, plan, stats); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("plans/%d_%s_%s.xlsx", plan.ID, plan.Profile.Name, time.Now().Format("20060102150405"))
	url, err := s.Storage.Upload(ctx, filename, buf, int64(buf.Len()), util.MimeXLSX)
	if err != nil {
		return nil, err
	}

	return &ExportResult{Filename: filename, URL: url}, nil
}

func (s *ExportService) writePlanSheet(f *excelize.File, plan *model.CoursePlan) error {
	const sheet = "课程规划"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	header := []interface{}{"等级", "话题", "说明", "实用场景", "分类", "形式", "最小课时", "最大课时", "固定时长"}
	for col, v := range header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}

	row := 2
	for _, m := range plan.Modules {
		for _, t := range m.Topics {
			values := []interface{}{
				string(m.Level),
				t.Title,
				t.Description,
				t.PracticalScenario,
				categoryLabels[t.Category],
				topicModeLabels[t.Mode],
				t.MinHours,
				t.MaxHours,
				t.FixedDuration,
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return err
				}
			}
			row++
		}
	}
	return nil
}

func (s *ExportService) writeStatsSheet(f *excelize.File, plan *model.CoursePlan, stats model.PlanStats) error {
	const sheet = "统计"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"学员", plan.Profile.Name},
		{"等级区间", fmt.Sprintf("%s → %s", plan.Profile.CurrentLevel, plan.Profile.TargetLevel)},
		{"私教课时", stats.PrivateHours},
		{"小组课时", stats.GroupHours},
		{"线上课时", stats.OnlineHours},
		{"总课时", stats.TotalHours},
		{"等效课节数", stats.SessionCount},
		{"小组话题数", stats.GroupTopicCount},
		{"预估周期（月）", stats.EstimatedMonths},
		{"导出时间", time.Now().Format(util.TimeFormat)},
	}
	for i, r := range rows {
		for col, v := range r {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+1)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}
