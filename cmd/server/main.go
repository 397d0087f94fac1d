package main

import (
	"log"

	"github.com/aajna-shetty/DietVeda/internal/config"
	"github.com/aajna-shetty/DietVeda/internal/db"
	"github.com/aajna-shetty/DietVeda/internal/handler"
	"github.com/aajna-shetty/DietVeda/internal/router"
	"github.com/aajna-shetty/DietVeda/internal/service"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// 菜品目录启动期一次性载入，缺失或缺列直接拒绝启动
	catalog, err := service.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("failed to load dish catalog: %v", err)
	}
	log.Printf("dish catalog loaded: %d dishes", catalog.Len())

	api := handler.NewAPI(db.DB, catalog, cfg)

	// 设置并运行 Gin 服务器
	r := router.SetupRouter(api, cfg.SessionSecret)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
