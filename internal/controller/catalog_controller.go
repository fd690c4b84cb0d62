package controller

import (
	"lingua_plan_backend/internal/catalog"
	"lingua_plan_backend/internal/model"
	"lingua_plan_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// CatalogController 暴露内置目录数据，全部只读
type CatalogController struct{}

func NewCatalogController() *CatalogController {
	return &CatalogController{}
}

// GetLevels godoc
// @Summary 等级阶梯
// @Description 返回从低到高的全部等级
// @Tags 目录
// @Produce  json
// @Success 200 {object} util.Response{data=object} "成功"
// @Router /api/catalog/levels [get]
func (c *CatalogController) GetLevels(ctx *gin.Context) {
	util.Success(ctx, gin.H{"levels": model.LevelLadder})
}

// GetCurriculum godoc
// @Summary 等级官方教材
// @Description 返回指定等级的官方与替代轨道话题模板
// @Tags 目录
// @Produce  json
// @Param   level path string true "等级"
// @Success 200 {object} util.Response{data=catalog.LevelCurriculum} "成功"
// @Failure 404 {object} util.Response "等级不存在"
// @Router /api/catalog/curriculum/{level} [get]
func (c *CatalogController) GetCurriculum(ctx *gin.Context) {
	level := model.CEFRLevel(ctx.Param("level"))
	cur, ok := catalog.CurriculumFor(level)
	if !ok {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, cur)
}

// GetPacks godoc
// @Summary 话题包目录
// @Tags 目录
// @Produce  json
// @Success 200 {object} util.Response{data=object} "成功"
// @Router /api/catalog/packs [get]
func (c *CatalogController) GetPacks(ctx *gin.Context) {
	util.Success(ctx, gin.H{"packs": catalog.Packs})
}

// GetSupplementary godoc
// @Summary 补充课程目录
// @Tags 目录
// @Produce  json
// @Success 200 {object} util.Response{data=object} "成功"
// @Router /api/catalog/supplementary [get]
func (c *CatalogController) GetSupplementary(ctx *gin.Context) {
	util.Success(ctx, gin.H{"courses": catalog.SupplementaryCourses})
}
