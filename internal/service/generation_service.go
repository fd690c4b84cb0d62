package service

import (
	"context"
	"encoding/json"
	"time"

	"lingua_plan_backend/internal/catalog"
	"lingua_plan_backend/internal/model"
	"lingua_plan_backend/internal/planner"
	"lingua_plan_backend/internal/repository"
	"lingua_plan_backend/internal/util"
	"lingua_plan_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// GenerationService 把AI生成结果作为原子批次写入规划。
// 生成失败时规划保持原状，不存在部分插入
type GenerationService struct {
	AI       *AIService
	PlanRepo *repository.PlanRepository
	Redis    *redis.Client
}

func NewGenerationService(ai *AIService, planRepo *repository.PlanRepository, rdb *redis.Client) *GenerationService {
	return &GenerationService{
		AI:       ai,
		PlanRepo: planRepo,
		Redis:    rdb,
	}
}

const syllabusCacheTTL = 7 * 24 * time.Hour

// GenerateTopics 生成count个AI定制话题并整批追加到指定模块
func (s *GenerationService) GenerateTopics(ctx context.Context, planID uint, level model.CEFRLevel, instruction string, count int) (*model.CoursePlan, error) {
	plan, err := s.PlanRepo.FindByID(planID)
	if err != nil {
		return nil, util.ErrPlanNotFound
	}
	if plan.ModuleAt(level) < 0 {
		return nil, util.ErrPlanNotFound
	}

	generated, err := s.AI.GenerateTopics(instruction, level, count)
	if err != nil {
		return nil, err
	}

	// AI调用成功后才开始改规划，保证失败时状态不变
	for _, g := range generated {
		topic := model.Topic{
			ID:                model.GenerateUUID(),
			Title:             g.Title,
			Description:       g.Description,
			PracticalScenario: g.PracticalScenario,
			MinHours:          catalog.DefaultTopicMinHours,
			MaxHours:          catalog.DefaultTopicMaxHours,
			Category:          model.CategoryAIGenerated,
			Mode:              model.ModePrivate,
			Source:            model.SourceAI,
		}
		plan.Modules = planner.AddTopic(plan.Modules, level, topic)
	}

	if err := s.PlanRepo.Update(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// GenerateSyllabus 为话题生成教案并挂载。结果按话题ID缓存，
// 同一话题重复请求直接回缓存
func (s *GenerationService) GenerateSyllabus(ctx context.Context, planID uint, level model.CEFRLevel, topicID string) (*model.Syllabus, error) {
	plan, err := s.PlanRepo.FindByID(planID)
	if err != nil {
		return nil, util.ErrPlanNotFound
	}
	i := plan.ModuleAt(level)
	if i < 0 {
		return nil, util.ErrTopicNotFound
	}
	j := plan.Modules[i].FindTopic(topicID)
	if j < 0 {
		return nil, util.ErrTopicNotFound
	}
	topic := plan.Modules[i].Topics[j]
	if !topic.SyllabusEligible() {
		return nil, util.ErrSyllabusNotEligible
	}

	if cached := s.cachedSyllabus(ctx, topicID); cached != nil {
		s.attachSyllabus(plan, i, j, cached)
		return cached, nil
	}

	syllabus, err := s.AI.GenerateSyllabus(topic.Title, topic.PracticalScenario, plan.Modules[i].Level)
	if err != nil {
		return nil, err
	}

	s.attachSyllabus(plan, i, j, syllabus)
	s.cacheSyllabus(ctx, topicID, syllabus)
	return syllabus, nil
}

func (s *GenerationService) attachSyllabus(plan *model.CoursePlan, moduleIdx, topicIdx int, syllabus *model.Syllabus) {
	plan.Modules[moduleIdx].Topics[topicIdx].Syllabus = syllabus
	if err := s.PlanRepo.Update(plan); err != nil {
		logger.Log.Error("failed to persist syllabus", zap.Error(err))
	}
}

func (s *GenerationService) cachedSyllabus(ctx context.Context, topicID string) *model.Syllabus {
	if s.Redis == nil {
		return nil
	}
	raw, err := s.Redis.Get(ctx, "syllabus:"+topicID).Result()
	if err != nil {
		return nil
	}
	var syllabus model.Syllabus
	if err := json.Unmarshal([]byte(raw), &syllabus); err != nil {
		return nil
	}
	return &syllabus
}

func (s *GenerationService) cacheSyllabus(ctx context.Context, topicID string, syllabus *model.Syllabus) {
	if s.Redis == nil {
		return
	}
	raw, err := json.Marshal(syllabus)
	if err != nil {
		return
	}
	if err := s.Redis.Set(ctx, "syllabus:"+topicID, raw, syllabusCacheTTL).Err(); err != nil {
		logger.Log.Warn("syllabus cache write failed", zap.Error(err))
	}
}
