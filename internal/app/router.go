package app

import (
	"lingua_plan_backend/docs"
	"lingua_plan_backend/internal/config"
	"lingua_plan_backend/internal/middleware"

	"lingua_plan_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerConsultantRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// 目录全部只读，允许未登录浏览
		catalogGroup := public.Group("/catalog")
		{
			catalogGroup.GET("/levels", c.catalog.GetLevels)
			catalogGroup.GET("/curriculum/:level", c.catalog.GetCurriculum)
			catalogGroup.GET("/packs", c.catalog.GetPacks)
			catalogGroup.GET("/supplementary", c.catalog.GetSupplementary)
		}
	}
}

func (a *App) registerConsultantRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/me", c.auth.GetProfile)

	// 学员档案
	rg.POST("/profiles", c.profile.CreateProfile)
	rg.GET("/profiles", c.profile.ListProfiles)
	rg.GET("/profiles/:id", c.profile.GetProfile)
	rg.PUT("/profiles/:id", c.profile.UpdateProfile)

	// 课程规划
	plans := rg.Group("/plans/:id")
	{
		plans.GET("", c.plan.GetPlan)
		plans.GET("/stats", c.plan.GetStats)
		plans.GET("/recommendations", c.plan.Recommend)
		plans.POST("/supplementary", c.plan.AddSupplementary)
		plans.POST("/export", c.export.ExportPlan)

		modules := plans.Group("/modules/:level")
		{
			modules.POST("/topics", c.plan.AddTopic)
			modules.DELETE("/topics/:topicId", c.plan.RemoveTopic)
			modules.PUT("/topics/:topicId/hours", c.plan.UpdateTopicHours)
			modules.PUT("/durations", c.plan.SetAllDurations)
			modules.DELETE("/custom-topics", c.plan.RemoveAllCustomTopics)
			modules.DELETE("/standard-topics", c.plan.RemoveAllStandardTopics)
			modules.PUT("/track", c.plan.UpdateStandardTrack)
			modules.POST("/packs", c.plan.AddPack)
			modules.POST("/import-official", c.plan.ImportOfficialTopic)

			// AI生成
			modules.POST("/topics/generate", c.generation.GenerateTopics)
			modules.POST("/topics/:topicId/syllabus", c.generation.GenerateSyllabus)
		}
	}
}
