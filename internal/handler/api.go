package handler

import (
	"github.com/aajna-shetty/DietVeda/internal/config"
	"github.com/aajna-shetty/DietVeda/internal/service"
	"gorm.io/gorm"
)

// API 汇聚各 handler 共享的服务依赖
type API struct {
	db         *gorm.DB
	catalog    *service.Catalog
	recommends *service.RecommendService
	classifier *service.DoshaClassifierService
	progress   *service.ProgressService
	routines   *service.RoutineService
	insights   *service.InsightService
	lifestyle  *service.LifestyleService
	chat       *service.ChatService
}

// NewAPI 构造 handler 集合及其共享服务。
// 目录为启动期载入的只读对象，由这里显式持有并传给推荐服务。
func NewAPI(gdb *gorm.DB, catalog *service.Catalog, cfg config.AppConfig) *API {
	progressService := service.NewProgressService(gdb)

	return &API{
		db:         gdb,
		catalog:    catalog,
		recommends: service.NewRecommendService(catalog),
		classifier: service.NewDoshaClassifierService(service.NewHTTPDoshaModel(cfg.DoshaModelURL)),
		progress:   progressService,
		routines:   service.NewRoutineService(progressService),
		insights:   service.NewInsightService(),
		lifestyle:  service.NewLifestyleService(),
		chat:       service.NewChatService(cfg.GeminiAPIKey),
	}
}

// DB 暴露底层 gorm 实例，测试用
func (a *API) DB() *gorm.DB {
	return a.db
}
