package controller

import (
	"errors"

	"lingua_plan_backend/internal/service"
	"lingua_plan_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ExportController struct {
	ExportService *service.ExportService
}

func NewExportController(exportService *service.ExportService) *ExportController {
	return &ExportController{ExportService: exportService}
}

// ExportPlan godoc
// @Summary 导出课程规划
// @Description 生成xlsx报表并返回下载地址
// @Tags 导出
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "规划ID"
// @Success 200 {object} util.Response{data=service.ExportResult} "成功"
// @Failure 404 {object} util.Response "规划不存在"
// @Router /api/plans/{id}/export [post]
func (c *ExportController) ExportPlan(ctx *gin.Context) {
	id, ok := parsePlanID(ctx)
	if !ok {
		return
	}

	result, err := c.ExportService.ExportPlan(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, util.ErrPlanNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}
