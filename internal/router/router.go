package router

import (
	"github.com/aajna-shetty/DietVeda/internal/handler"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, sessionSecret string) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件，用于在请求之间记住诊断出的体质
	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("dietveda_session", store))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/status", api.Status)

		apiGroup.POST("/dosha/predict", api.PredictDosha)
		apiGroup.POST("/diet/recommend", api.RecommendDiet)

		apiGroup.GET("/yoga", api.GetYogaPlan)
		apiGroup.GET("/lifestyle/routine", api.GetDailyRoutine)

		apiGroup.GET("/routine", api.GetRoutineChecklist)
		apiGroup.POST("/routine/track", api.TrackRoutine)

		apiGroup.GET("/progress/series", api.GetProgressSeries)
		apiGroup.GET("/progress/insights", api.GetProgressInsights)

		apiGroup.POST("/chat", api.AskDrVeda)
	}

	return r
}
