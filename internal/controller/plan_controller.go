package controller

import (
	"errors"
	"strconv"

	"lingua_plan_backend/internal/model"
	"lingua_plan_backend/internal/service"
	"lingua_plan_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PlanController struct {
	PlanService *service.PlanService
}

func NewPlanController(planService *service.PlanService) *PlanController {
	return &PlanController{PlanService: planService}
}

func parsePlanID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "无效的规划ID")
		return 0, false
	}
	return uint(id), true
}

func parseLevel(ctx *gin.Context) (model.CEFRLevel, bool) {
	level := model.CEFRLevel(ctx.Param("level"))
	if !level.Valid() {
		util.BadRequest(ctx, "无效的等级")
		return "", false
	}
	return level, true
}

func respondPlan(ctx *gin.Context, plan *model.CoursePlan, err error) {
	if err != nil {
		switch {
		case errors.Is(err, util.ErrPlanNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPackNotFound),
			errors.Is(err, util.ErrCourseNotFound),
			errors.Is(err, util.ErrTopicNotFound):
			util.Error(ctx, 404, err.Error())
		case errors.Is(err, util.ErrCourseNotEligible):
			util.Error(ctx, 409, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, plan)
}

// GetPlan godoc
// @Summary 获取课程规划
// @Tags 课程规划
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "规划ID"
// @Success 200 {object} util.Response{data=model.CoursePlan} "成功"
// @Failure 404 {object} util.Response "规划不存在"
// @Router /api/plans/{id} [get]
func (c *PlanController) GetPlan(ctx *gin.Context) {
	id, ok := parsePlanID(ctx)
	if !ok {
		return
	}
	plan, err := c.PlanService.GetPlan(id)
	respondPlan(ctx, plan, err)
}

// GetStats godoc
// @Summary 规划统计
// @Description 按当前规划内容实时计算课时、课节与周期，不做缓存
// @Tags 课程规划
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "规划ID"
// @Success 200 {object} util.Response{data=model.PlanStats} "成功"
// @Failure 404 {object} util.Response "规划不存在"
// @Router /api/plans/{id}/stats [get]
func (c *PlanController) GetStats(ctx *gin.Context) {
	id, ok := parsePlanID(ctx)
	if !ok {
		return
	}
	stats, err := c.PlanService.GetStats(id)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, stats)
}

// AddTopic godoc
// @Summary 添加定制话题
// @Tags 课程规划
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "规划ID"
// @Param   level path string true "等级"
// @Param   body body service.AddTopicRequest true "话题信息"
// @Success 200 {object} util.Response{data=model.CoursePlan} "成功"
// @Router /api/plans/{id}/modules/{level}/topics [post]
func (c *PlanController) AddTopic(ctx *gin.Context) {
	id, ok := parsePlanID(ctx)
	if !ok {
		return
	}
	level, ok := parseLevel(ctx)
	if !ok {
		return
	}
	var req service.AddTopicRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	plan, err := c.PlanService.AddCustomTopic(id, level, req)
	respondPlan(ctx, plan, err)
}

// RemoveTopic godoc
// @Summary 移除话题
// @Tags 课程规划
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "规划ID"
// @Param   level path string true "等级"
// @Param   topicId path string true "话题ID"
// @Success 200 {object} util.Response{data=model.CoursePlan} "成功"
// @Router /api/plans/{id}/modules/{level}/topics/{topicId} [delete]
func (c *PlanController) RemoveTopic(ctx *gin.Context) {
	id, ok := parsePlanID(ctx)
	if !ok {
		return
	}
	level, ok := parseLevel(ctx)
	if !ok {
		return
	}
	plan, err := c.PlanService.RemoveTopic(id, level, ctx.Param("topicId"))
	respondPlan(ctx, plan, err)
}

type UpdateHoursRequest struct {
	Hours float64 `json:"hours" binding:"required,gt=0"`
}

// UpdateTopicHours godoc
// @Summary 调整话题课时
// @Description 仅对可编辑时长的私教话题生效
// @Tags 课程规划
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "规划ID"
// @Param   level path string true "等级"
// @Param   topicId path string true "话题ID"
// @Param   body body UpdateHoursRequest true "课时"
// @Success 200 {object} util.Response{data=model.CoursePlan} "成功"
// @Router /api/plans/{id}/modules/{level}/topics/{topicId}/hours [put]
func (c *PlanController) UpdateTopicHours(ctx *gin.Context) {
	id, ok := parsePlanID(ctx)
	if !ok {
		return
	}
	level, ok := parseLevel(ctx)
	if !ok {
		return
	}
	var req UpdateHoursRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	plan, err := c.PlanService.UpdateTopicHours(id, level, ctx.Param("topicId"), req.Hours)
	respondPlan(ctx, plan, err)
}

// SetAllDurations godoc
// @Summary 批量设置模块私教课时
// @Tags 课程规划
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "规划ID"
// @Param   level path string true "等级"
// @Param   body body UpdateHoursRequest true "课时"
// @Success 200 {object} util.Response{data=model.CoursePlan} "成功"
// @Router /api/plans/{id}/modules/{level}/durations [put]
func (c *PlanController) SetAllDurations(ctx *gin.Context) {
	id, ok := parsePlanID(ctx)
	if !ok {
		return
	}
	level, ok := parseLevel(ctx)
	if !ok {
		return
	}
	var req UpdateHoursRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	plan, err := c.PlanService.SetAllPrivateDurations(id, level, req.Hours)
	respondPlan(ctx, plan, err)
}

// RemoveAllCustomTopics godoc
// @Summary 清空模块定制话题
// @Description 保留官方话题与补充课程
// @Tags 课程规划
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "规划ID"
// @Param   level path string true "等级"
// @Success 200 {object} util.Response{data=model.CoursePlan} "成功"
// @Router /api/plans/{id}/modules/{level}/custom-topics [delete]
func (c *PlanController) RemoveAllCustomTopics(ctx *gin.Context) {
	id, ok := parsePlanID(ctx)
	if !ok {
		return
	}
	level, ok := parseLevel(ctx)
	if !ok {
		return
	}
	plan, err := c.PlanService.RemoveAllCustomTopics(id, level)
	respondPlan(ctx, plan, err)
}

// RemoveAllStandardTopics godoc
// @Summary 清空模块官方话题
// @Tags 课程规划
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "规划ID"
// @Param   level path string true "等级"
// @Success 200 {object} util.Response{data=model.CoursePlan} "成功"
// @Router /api/plans/{id}/modules/{level}/standard-topics [delete]
func (c *PlanController) RemoveAllStandardTopics(ctx *gin.Context) {
	id, ok := parsePlanID(ctx)
	if !ok {
		return
	}
	level, ok := parseLevel(ctx)
	if !ok {
		return
	}
	plan, err := c.PlanService.RemoveAllStandardTopics(id, level)
	respondPlan(ctx, plan, err)
}

type UpdateTrackRequest struct {
	TrackMode model.TrackMode `json:"trackMode" binding:"required,oneof=official alternate combined"`
}

// UpdateStandardTrack godoc
// @Summary 切换官方教材轨道
// @Description 替换模块官方话题为目标轨道内容，定制话题不受影响
// @Tags 课程规划
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "规划ID"
// @Param   level path string true "等级"
// @Param   body body UpdateTrackRequest true "轨道"
// @Success 200 {object} util.Response{data=model.CoursePlan} "成功"
// @Router /api/plans/{id}/modules/{level}/track [put]
func (c *PlanController) UpdateStandardTrack(ctx *gin.Context) {
	id, ok := parsePlanID(ctx)
	if !ok {
		return
	}
	level, ok := parseLevel(ctx)
	if !ok {
		return
	}
	var req UpdateTrackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	plan, err := c.PlanService.UpdateStandardTrack(id, level, req.TrackMode)
	respondPlan(ctx, plan, err)
}

type AddSupplementaryRequest struct {
	CourseID   string          `json:"courseId" binding:"required"`
	Level      model.CEFRLevel `json:"level"`
	ApplyToAll bool            `json:"applyToAll"`
}

// AddSupplementary godoc
// @Summary 添加补充课程
// @Description 支持加到单个等级或全部适配等级，唯一性课程不可重复添加
// @Tags 课程规划
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "规划ID"
// @Param   body body AddSupplementaryRequest true "补充课程"
// @Success 200 {object} util.Response{data=model.CoursePlan} "成功"
// @Failure 404 {object} util.Response "课程不存在"
// @Failure 409 {object} util.Response "不满足添加条件"
// @Router /api/plans/{id}/supplementary [post]
func (c *PlanController) AddSupplementary(ctx *gin.Context) {
	id, ok := parsePlanID(ctx)
	if !ok {
		return
	}
	var req AddSupplementaryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if !req.ApplyToAll && !req.Level.Valid() {
		util.BadRequest(ctx, "无效的等级")
		return
	}
	plan, err := c.PlanService.AddSupplementary(id, req.CourseID, req.Level, req.ApplyToAll)
	respondPlan(ctx, plan, err)
}

type AddPackRequest struct {
	PackName string `json:"packName" binding:"required"`
}

// AddPack godoc
// @Summary 添加话题包
// @Description 将话题包内全部话题实例化到指定模块
// @Tags 课程规划
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "规划ID"
// @Param   level path string true "等级"
// @Param   body body AddPackRequest true "话题包"
// @Success 200 {object} util.Response{data=model.CoursePlan} "成功"
// @Failure 404 {object} util.Response "话题包不存在"
// @Router /api/plans/{id}/modules/{level}/packs [post]
func (c *PlanController) AddPack(ctx *gin.Context) {
	id, ok := parsePlanID(ctx)
	if !ok {
		return
	}
	level, ok := parseLevel(ctx)
	if !ok {
		return
	}
	var req AddPackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	plan, err := c.PlanService.AddPack(id, level, req.PackName)
	respondPlan(ctx, plan, err)
}

type ImportOfficialRequest struct {
	TopicID string `json:"topicId" binding:"required"`
}

// ImportOfficialTopic godoc
// @Summary 官方话题转定制
// @Description 复制一份官方话题为可编辑的定制话题
// @Tags 课程规划
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "规划ID"
// @Param   level path string true "等级"
// @Param   body body ImportOfficialRequest true "官方话题"
// @Success 200 {object} util.Response{data=model.CoursePlan} "成功"
// @Failure 404 {object} util.Response "话题不存在"
// @Router /api/plans/{id}/modules/{level}/import-official [post]
func (c *PlanController) ImportOfficialTopic(ctx *gin.Context) {
	id, ok := parsePlanID(ctx)
	if !ok {
		return
	}
	level, ok := parseLevel(ctx)
	if !ok {
		return
	}
	var req ImportOfficialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	plan, err := c.PlanService.ImportOfficialTopic(id, level, req.TopicID)
	respondPlan(ctx, plan, err)
}

// Recommend godoc
// @Summary 话题包推荐
// @Description 按学员画像与当前等级推荐话题包，附推荐理由
// @Tags 课程规划
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "规划ID"
// @Param   level query string true "当前浏览等级"
// @Success 200 {object} util.Response{data=object} "成功"
// @Router /api/plans/{id}/recommendations [get]
func (c *PlanController) Recommend(ctx *gin.Context) {
	id, ok := parsePlanID(ctx)
	if !ok {
		return
	}
	level := model.CEFRLevel(ctx.Query("level"))
	if !level.Valid() {
		util.BadRequest(ctx, "无效的等级")
		return
	}
	suggestions, err := c.PlanService.Recommend(id, level)
	if err != nil {
		if errors.Is(err, util.ErrPlanNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"suggestions": suggestions})
}
