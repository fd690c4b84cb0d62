package service

import (
	"lingua_plan_backend/internal/model"
	"lingua_plan_backend/internal/repository"
	"lingua_plan_backend/internal/util"
)

type ProfileService struct {
	ProfileRepo *repository.ProfileRepository
	PlanSvc     *PlanService
}

func NewProfileService(profileRepo *repository.ProfileRepository, planSvc *PlanService) *ProfileService {
	return &ProfileService{
		ProfileRepo: profileRepo,
		PlanSvc:     planSvc,
	}
}

type ProfileRequest struct {
	Name               string                    `json:"name" binding:"required"`
	CurrentLevel       model.CEFRLevel           `json:"currentLevel" binding:"required"`
	TargetLevel        model.CEFRLevel           `json:"targetLevel" binding:"required"`
	LearningDirections []model.LearningDirection `json:"learningDirections"`
	Industry           string                    `json:"industry"`
	Role               string                    `json:"role"`
	JobDescription     string                    `json:"jobDescription"`
	Interests          []string                  `json:"interests"`
	Goals              []string                  `json:"goals"`
	TeachingMode       model.TeachingMode        `json:"teachingMode"`
	ContentStrategy    model.ContentStrategy     `json:"contentStrategy"`
	WeeklyFrequency    int                       `json:"weeklyFrequency"`
	SessionMinutes     int                       `json:"sessionMinutes"`
}

func (r *ProfileRequest) apply(p *model.StudentProfile) {
	p.Name = r.Name
	p.CurrentLevel = r.CurrentLevel
	p.TargetLevel = r.TargetLevel
	p.LearningDirections = r.LearningDirections
	p.Industry = r.Industry
	p.Role = r.Role
	p.JobDescription = r.JobDescription
	p.Interests = r.Interests
	p.Goals = r.Goals
	if r.TeachingMode != "" {
		p.TeachingMode = r.TeachingMode
	}
	if r.ContentStrategy != "" {
		p.ContentStrategy = r.ContentStrategy
	}
	if r.WeeklyFrequency > 0 {
		p.WeeklyFrequency = r.WeeklyFrequency
	}
	if r.SessionMinutes > 0 {
		p.SessionMinutes = r.SessionMinutes
	}
}

func (r *ProfileRequest) validate() error {
	if r.CurrentLevel.Rank() < 0 || r.TargetLevel.Rank() < 0 ||
		r.CurrentLevel.Rank() >= r.TargetLevel.Rank() {
		return util.ErrInvalidLevelRange
	}
	return nil
}

// CreateProfile 建档并立即生成初始课程规划
func (s *ProfileService) CreateProfile(consultantID uint, req ProfileRequest) (*model.StudentProfile, *model.CoursePlan, error) {
	if err := req.validate(); err != nil {
		return nil, nil, err
	}

	profile := &model.StudentProfile{
		TeachingMode:    model.TeachingPrivate,
		ContentStrategy: model.StrategyHighFrequency,
		WeeklyFrequency: 2,
		SessionMinutes:  90,
		ConsultantID:    consultantID,
	}
	req.apply(profile)

	if err := s.ProfileRepo.Create(profile); err != nil {
		return nil, nil, err
	}

	plan, err := s.PlanSvc.CreateForProfile(profile)
	if err != nil {
		return nil, nil, err
	}
	return profile, plan, nil
}

// UpdateProfile 更新画像。等级区间、授课模式或内容策略发生变化时
// 全量重建模块列表（既有编辑丢弃）；其余字段变更不动规划。
// consultantID 为 0 时跳过归属校验（管理员）
func (s *ProfileService) UpdateProfile(id uint, consultantID uint, req ProfileRequest) (*model.StudentProfile, *model.CoursePlan, error) {
	if err := req.validate(); err != nil {
		return nil, nil, err
	}

	profile, err := s.ProfileRepo.FindByID(id)
	if err != nil {
		return nil, nil, util.ErrProfileNotFound
	}
	if consultantID != 0 && profile.ConsultantID != consultantID {
		return nil, nil, util.ErrPermissionDenied
	}

	needsRebuild := profile.CurrentLevel != req.CurrentLevel ||
		profile.TargetLevel != req.TargetLevel ||
		(req.TeachingMode != "" && profile.TeachingMode != req.TeachingMode) ||
		(req.ContentStrategy != "" && profile.ContentStrategy != req.ContentStrategy)

	req.apply(profile)
	if err := s.ProfileRepo.Update(profile); err != nil {
		return nil, nil, err
	}

	var plan *model.CoursePlan
	if needsRebuild {
		plan, err = s.PlanSvc.Rebuild(profile.ID)
		if err != nil {
			return nil, nil, err
		}
	}
	return profile, plan, nil
}

func (s *ProfileService) GetProfile(id uint, consultantID uint) (*model.StudentProfile, error) {
	profile, err := s.ProfileRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrProfileNotFound
	}
	if consultantID != 0 && profile.ConsultantID != consultantID {
		return nil, util.ErrPermissionDenied
	}
	return profile, nil
}

func (s *ProfileService) ListProfiles(consultantID uint, page, limit int) ([]model.StudentProfile, int64, error) {
	return s.ProfileRepo.List(consultantID, page, limit)
}
