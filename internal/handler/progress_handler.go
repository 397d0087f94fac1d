package handler

import (
	"net/http"
	"time"

	"github.com/aajna-shetty/DietVeda/internal/service"
	"github.com/gin-gonic/gin"
)

type trackRequest struct {
	Dosha  string   `json:"dosha"`
	Habits []string `json:"habits"`
}

// GetRoutineChecklist 返回体质对应的打卡清单（通用 + 专属）
func (a *API) GetRoutineChecklist(c *gin.Context) {
	dosha := resolveDosha(c, c.Query("dosha"))
	if dosha == "" {
		respondError(c, http.StatusBadRequest, "dosha is required")
		return
	}

	primary, checklist := service.ChecklistFor(dosha)
	c.JSON(http.StatusOK, gin.H{
		"dosha":     primary,
		"checklist": checklist,
	})
}

// TrackRoutine 按勾选的打卡项计算当日纯净度评分并写入历史
func (a *API) TrackRoutine(c *gin.Context) {
	var payload trackRequest
	if !bindJSON(c, &payload, "invalid track request") {
		return
	}

	dosha := resolveDosha(c, payload.Dosha)
	if dosha == "" {
		respondError(c, http.StatusBadRequest, "dosha is required")
		return
	}

	result, err := a.routines.Track(dosha, payload.Habits)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save routine score")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dosha":        result.Dosha,
		"total":        result.Total,
		"max_possible": result.MaxPossible,
		"percentage":   result.Percentage,
		"rank":         result.Rank,
		"date":         result.Entry.Date,
	})
}

// GetProgressSeries 返回归一化后的 30 天评分序列（空缺日保留为 null）
func (a *API) GetProgressSeries(c *gin.Context) {
	series, err := a.progress.Series()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load progress history")
		return
	}

	slots := make([]gin.H, 0, len(series))
	for _, slot := range series {
		slots = append(slots, gin.H{
			"date":  slot.Date,
			"score": slot.Score,
			"dosha": slot.Dosha,
		})
	}

	c.JSON(http.StatusOK, gin.H{"series": slots})
}

// GetProgressInsights 在最近 30 天历史上运行趋势探测器并返回洞察
func (a *API) GetProgressInsights(c *gin.Context) {
	entries, err := a.progress.RecentEntries()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load progress history")
		return
	}

	lines := a.insights.Generate(entries, time.Now())
	c.JSON(http.StatusOK, gin.H{"insights": lines})
}
