package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetYogaPlan 返回体质对应的瑜伽方案
func (a *API) GetYogaPlan(c *gin.Context) {
	dosha := resolveDosha(c, c.Query("dosha"))
	if dosha == "" {
		respondError(c, http.StatusBadRequest, "dosha is required")
		return
	}

	plan := a.lifestyle.YogaPlanFor(dosha)
	c.JSON(http.StatusOK, plan)
}

// GetDailyRoutine 返回体质对应的建议作息
func (a *API) GetDailyRoutine(c *gin.Context) {
	dosha := resolveDosha(c, c.Query("dosha"))
	if dosha == "" {
		respondError(c, http.StatusBadRequest, "dosha is required")
		return
	}

	routine := a.lifestyle.DailyRoutineFor(dosha)
	c.JSON(http.StatusOK, gin.H{
		"dosha":   dosha,
		"routine": routine,
	})
}
