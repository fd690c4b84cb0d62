package controller

import (
	"errors"

	"lingua_plan_backend/internal/service"
	"lingua_plan_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GenerationController struct {
	GenerationService *service.GenerationService
}

func NewGenerationController(generationService *service.GenerationService) *GenerationController {
	return &GenerationController{GenerationService: generationService}
}

type GenerateTopicsRequest struct {
	Instruction string `json:"instruction" binding:"required"`
	Count       int    `json:"count"`
}

// GenerateTopics godoc
// @Summary AI生成定制话题
// @Description 根据顾问指令生成话题并批量写入模块，生成失败不改动规划
// @Tags AI生成
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "规划ID"
// @Param   level path string true "等级"
// @Param   body body GenerateTopicsRequest true "生成指令"
// @Success 200 {object} util.Response{data=model.CoursePlan} "成功"
// @Failure 404 {object} util.Response "规划不存在"
// @Failure 502 {object} util.Response "生成失败"
// @Router /api/plans/{id}/modules/{level}/topics/generate [post]
func (c *GenerationController) GenerateTopics(ctx *gin.Context) {
	id, ok := parsePlanID(ctx)
	if !ok {
		return
	}
	level, ok := parseLevel(ctx)
	if !ok {
		return
	}
	var req GenerateTopicsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	plan, err := c.GenerationService.GenerateTopics(ctx.Request.Context(), id, level, req.Instruction, req.Count)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrPlanNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrGenerationMalformed):
			util.Error(ctx, 502, "AI返回内容解析失败，请重试")
		case errors.Is(err, util.ErrGenerationFailed):
			util.Error(ctx, 502, "AI生成失败，请稍后重试")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, plan)
}

// GenerateSyllabus godoc
// @Summary AI生成话题大纲
// @Description 为AI定制话题生成教学大纲，结果缓存7天
// @Tags AI生成
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "规划ID"
// @Param   level path string true "等级"
// @Param   topicId path string true "话题ID"
// @Success 200 {object} util.Response{data=model.Syllabus} "成功"
// @Failure 404 {object} util.Response "话题不存在"
// @Failure 409 {object} util.Response "话题不支持大纲"
// @Failure 502 {object} util.Response "生成失败"
// @Router /api/plans/{id}/modules/{level}/topics/{topicId}/syllabus [post]
func (c *GenerationController) GenerateSyllabus(ctx *gin.Context) {
	id, ok := parsePlanID(ctx)
	if !ok {
		return
	}
	level, ok := parseLevel(ctx)
	if !ok {
		return
	}

	syllabus, err := c.GenerationService.GenerateSyllabus(ctx.Request.Context(), id, level, ctx.Param("topicId"))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrPlanNotFound), errors.Is(err, util.ErrTopicNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrSyllabusNotEligible):
			util.Error(ctx, 409, err.Error())
		case errors.Is(err, util.ErrGenerationMalformed):
			util.Error(ctx, 502, "AI返回内容解析失败，请重试")
		case errors.Is(err, util.ErrGenerationFailed):
			util.Error(ctx, 502, "AI生成失败，请稍后重试")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, syllabus)
}
