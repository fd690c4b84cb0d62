package service

import (
	"lingua_plan_backend/internal/catalog"
	"lingua_plan_backend/internal/model"
	"lingua_plan_backend/internal/planner"
	"lingua_plan_backend/internal/repository"
	"lingua_plan_backend/internal/util"
)

type PlanService struct {
	PlanRepo    *repository.PlanRepository
	ProfileRepo *repository.ProfileRepository
}

func NewPlanService(planRepo *repository.PlanRepository, profileRepo *repository.ProfileRepository) *PlanService {
	return &PlanService{
		PlanRepo:    planRepo,
		ProfileRepo: profileRepo,
	}
}

// CreateForProfile 按画像生成规划并落库，一个画像对应一份规划
func (s *PlanService) CreateForProfile(profile *model.StudentProfile) (*model.CoursePlan, error) {
	plan := &model.CoursePlan{
		ProfileID: profile.ID,
		Modules:   planner.BuildPlan(profile),
	}
	if err := s.PlanRepo.Create(plan); err != nil {
		return nil, err
	}
	plan.Profile = *profile
	return plan, nil
}

// Rebuild 画像的等级/授课模式/内容策略变更后全量重建模块列表。
// 既有的手工编辑会被丢弃，与前端交互约定一致
func (s *PlanService) Rebuild(profileID uint) (*model.CoursePlan, error) {
	plan, err := s.PlanRepo.FindByProfileID(profileID)
	if err != nil {
		return nil, util.ErrPlanNotFound
	}
	plan.Modules = planner.BuildPlan(&plan.Profile)
	if err := s.PlanRepo.Update(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *PlanService) GetPlan(id uint) (*model.CoursePlan, error) {
	plan, err := s.PlanRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrPlanNotFound
	}
	return plan, nil
}

// GetStats 统计永远现算，不缓存，避免编辑后读到脏数据
func (s *PlanService) GetStats(id uint) (*model.PlanStats, error) {
	plan, err := s.PlanRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrPlanNotFound
	}
	stats := planner.ComputeStats(plan.Modules, &plan.Profile)
	return &stats, nil
}

// mutate 加载-变换-保存。核心操作对非法目标是no-op，
// 这里不区分"没改动"与"改动了"，统一落库并返回最新规划
func (s *PlanService) mutate(planID uint, op func(*model.CoursePlan)) (*model.CoursePlan, error) {
	plan, err := s.PlanRepo.FindByID(planID)
	if err != nil {
		return nil, util.ErrPlanNotFound
	}
	op(plan)
	if err := s.PlanRepo.Update(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

type AddTopicRequest struct {
	Title             string  `json:"title" binding:"required"`
	Description       string  `json:"description"`
	PracticalScenario string  `json:"practicalScenario"`
	MinHours          float64 `json:"minHours"`
	MaxHours          float64 `json:"maxHours"`
}

// AddCustomTopic 顾问手工添加定制话题
func (s *PlanService) AddCustomTopic(planID uint, level model.CEFRLevel, req AddTopicRequest) (*model.CoursePlan, error) {
	if req.MinHours <= 0 {
		req.MinHours = catalog.DefaultTopicMinHours
	}
	if req.MaxHours < req.MinHours {
		req.MaxHours = req.MinHours
	}
	topic := model.Topic{
		ID:                model.GenerateUUID(),
		Title:             req.Title,
		Description:       req.Description,
		PracticalScenario: req.PracticalScenario,
		MinHours:          req.MinHours,
		MaxHours:          req.MaxHours,
		Category:          model.CategoryPopular,
		Mode:              model.ModePrivate,
		Source:            model.SourceFile,
	}
	return s.mutate(planID, func(p *model.CoursePlan) {
		p.Modules = planner.AddTopic(p.Modules, level, topic)
	})
}

func (s *PlanService) RemoveTopic(planID uint, level model.CEFRLevel, topicID string) (*model.CoursePlan, error) {
	return s.mutate(planID, func(p *model.CoursePlan) {
		p.Modules = planner.RemoveTopic(p.Modules, level, topicID)
	})
}

func (s *PlanService) UpdateTopicHours(planID uint, level model.CEFRLevel, topicID string, hours float64) (*model.CoursePlan, error) {
	return s.mutate(planID, func(p *model.CoursePlan) {
		p.Modules = planner.UpdateTopicHours(p.Modules, level, topicID, hours)
	})
}

func (s *PlanService) SetAllPrivateDurations(planID uint, level model.CEFRLevel, hours float64) (*model.CoursePlan, error) {
	return s.mutate(planID, func(p *model.CoursePlan) {
		p.Modules = planner.SetAllPrivateDurations(p.Modules, level, hours)
	})
}

func (s *PlanService) RemoveAllCustomTopics(planID uint, level model.CEFRLevel) (*model.CoursePlan, error) {
	return s.mutate(planID, func(p *model.CoursePlan) {
		p.Modules = planner.RemoveAllCustomTopics(p.Modules, level)
	})
}

func (s *PlanService) RemoveAllStandardTopics(planID uint, level model.CEFRLevel) (*model.CoursePlan, error) {
	return s.mutate(planID, func(p *model.CoursePlan) {
		p.Modules = planner.RemoveAllStandardTopics(p.Modules, level)
	})
}

func (s *PlanService) UpdateStandardTrack(planID uint, level model.CEFRLevel, trackMode model.TrackMode) (*model.CoursePlan, error) {
	return s.mutate(planID, func(p *model.CoursePlan) {
		p.Modules = planner.UpdateStandardTrack(p.Modules, level, trackMode, p.Profile.TeachingMode)
	})
}

// AddSupplementary 添加补充课程。单模块添加时先用纯谓词检查资格，
// 不合格返回业务错误；applyToAll 时逐模块独立尝试，不报错
func (s *PlanService) AddSupplementary(planID uint, courseID string, level model.CEFRLevel, applyToAll bool) (*model.CoursePlan, error) {
	course, ok := catalog.SupplementaryByID(courseID)
	if !ok {
		return nil, util.ErrCourseNotFound
	}

	plan, err := s.PlanRepo.FindByID(planID)
	if err != nil {
		return nil, util.ErrPlanNotFound
	}

	if !applyToAll && !planner.CanAddSupplementary(plan.Modules, course, level) {
		return nil, util.ErrCourseNotEligible
	}

	plan.Modules = planner.AddSupplementaryCourse(plan.Modules, courseID, level, applyToAll)
	if err := s.PlanRepo.Update(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *PlanService) AddPack(planID uint, level model.CEFRLevel, packName string) (*model.CoursePlan, error) {
	pack, ok := catalog.PackByName(packName)
	if !ok {
		return nil, util.ErrPackNotFound
	}
	return s.mutate(planID, func(p *model.CoursePlan) {
		p.Modules = planner.AddPackTopics(p.Modules, level, pack.Topics, pack.Category)
	})
}

// ImportOfficialTopic 把模块内的official话题克隆为可编辑的定制话题
func (s *PlanService) ImportOfficialTopic(planID uint, level model.CEFRLevel, topicID string) (*model.CoursePlan, error) {
	plan, err := s.PlanRepo.FindByID(planID)
	if err != nil {
		return nil, util.ErrPlanNotFound
	}
	i := plan.ModuleAt(level)
	if i < 0 {
		return nil, util.ErrTopicNotFound
	}
	j := plan.Modules[i].FindTopic(topicID)
	if j < 0 || plan.Modules[i].Topics[j].Category != model.CategoryOfficial {
		return nil, util.ErrTopicNotFound
	}

	plan.Modules = planner.ImportOfficialTopicAsCustom(plan.Modules, level, plan.Modules[i].Topics[j])
	if err := s.PlanRepo.Update(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// Recommend 按规划对应的画像推荐话题包
func (s *PlanService) Recommend(planID uint, activeLevel model.CEFRLevel) ([]planner.PackSuggestion, error) {
	plan, err := s.PlanRepo.FindByID(planID)
	if err != nil {
		return nil, util.ErrPlanNotFound
	}
	return planner.RecommendPacks(&plan.Profile, activeLevel), nil
}
