package controller

import (
	"errors"
	"strconv"

	"lingua_plan_backend/internal/model"
	"lingua_plan_backend/internal/service"
	"lingua_plan_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	ProfileService *service.ProfileService
}

func NewProfileController(profileService *service.ProfileService) *ProfileController {
	return &ProfileController{ProfileService: profileService}
}

// ownerID 归属校验用：管理员返回0（不限制），顾问返回自己的ID
func ownerID(claims *util.Claims) uint {
	if claims.Role == model.Admin {
		return 0
	}
	return claims.UserID
}

// CreateProfile godoc
// @Summary 创建学员档案
// @Description 录入学员信息，同时生成初始课程规划
// @Tags 学员档案
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.ProfileRequest true "学员信息"
// @Success 201 {object} util.Response{data=object} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/profiles [post]
func (c *ProfileController) CreateProfile(ctx *gin.Context) {
	var req service.ProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, plan, err := c.ProfileService.CreateProfile(claims.UserID, req)
	if err != nil {
		if errors.Is(err, util.ErrInvalidLevelRange) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"profile": profile, "plan": plan})
}

// UpdateProfile godoc
// @Summary 更新学员档案
// @Description 修改学员信息；等级、授课模式或内容策略变化会触发规划重建
// @Tags 学员档案
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "档案ID"
// @Param   body body service.ProfileRequest true "学员信息"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 404 {object} util.Response "档案不存在"
// @Router /api/profiles/{id} [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "无效的档案ID")
		return
	}

	var req service.ProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, plan, err := c.ProfileService.UpdateProfile(uint(id), ownerID(claims), req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrProfileNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		case errors.Is(err, util.ErrInvalidLevelRange):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"profile": profile, "plan": plan})
}

// GetProfile godoc
// @Summary 获取学员档案
// @Tags 学员档案
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "档案ID"
// @Success 200 {object} util.Response{data=model.StudentProfile} "成功"
// @Failure 404 {object} util.Response "档案不存在"
// @Router /api/profiles/{id} [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, "无效的档案ID")
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.ProfileService.GetProfile(uint(id), ownerID(claims))
	if err != nil {
		if errors.Is(err, util.ErrPermissionDenied) {
			util.Forbidden(ctx)
		} else {
			util.NotFound(ctx)
		}
		return
	}

	util.Success(ctx, profile)
}

// ListProfiles godoc
// @Summary 学员档案列表
// @Description 分页查询当前顾问名下的学员档案
// @Tags 学员档案
// @Produce  json
// @Security ApiKeyAuth
// @Param   page query int false "页码" default(1)
// @Param   limit query int false "每页数量" default(10)
// @Success 200 {object} util.Response{data=util.PageResponse} "成功"
// @Router /api/profiles [get]
func (c *ProfileController) ListProfiles(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	profiles, total, err := c.ProfileService.ListProfiles(ownerID(claims), page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  profiles,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}
