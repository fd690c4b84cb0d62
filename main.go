// @title LinguaPlan 后端 API
// @version 1.0
// @description 语言培训课程规划系统的后端服务器。

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"log"

	"lingua_plan_backend/internal/app"
	"lingua_plan_backend/internal/config"
	"lingua_plan_backend/pkg/configwatcher"
	"lingua_plan_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 配置热更新
	go configwatcher.WatchConfig("configs/config.yaml", application.ApplyConfig)

	application.Run()
}
