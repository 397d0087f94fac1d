package handler

import (
	"net/http"
	"time"

	"github.com/aajna-shetty/DietVeda/internal/service"
	"github.com/gin-gonic/gin"
)

type dietRequest struct {
	Dosha string `json:"dosha"`
	Meal  string `json:"meal"`
}

// RecommendDiet 返回按体质与当前季节排序的菜品推荐（最多 10 条）。
// 空列表是合法结果，表示目录里没有符合条件的菜。
func (a *API) RecommendDiet(c *gin.Context) {
	var payload dietRequest
	if !bindJSON(c, &payload, "invalid diet request") {
		return
	}

	dosha := resolveDosha(c, payload.Dosha)
	if dosha == "" {
		respondError(c, http.StatusBadRequest, "dosha is required")
		return
	}

	season := service.ResolveSeason(time.Now())
	results := a.recommends.RecommendForSeason(dosha, payload.Meal, season)

	items := make([]gin.H, 0, len(results))
	for _, item := range results {
		items = append(items, scoredDishToPayload(item))
	}

	c.JSON(http.StatusOK, gin.H{
		"dosha":           dosha,
		"meal":            payload.Meal,
		"season":          season,
		"recommendations": items,
	})
}

func scoredDishToPayload(item service.ScoredDish) gin.H {
	return gin.H{
		"dish_name":   item.Name,
		"dish_type":   item.Type,
		"ingredients": item.Ingredients,
		"season":      item.Season,
		"taste":       item.Taste,
		"effect":      item.Effect,
		"score":       item.Score,
	}
}
