package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aajna-shetty/DietVeda/internal/service"
	"github.com/gin-gonic/gin"
)

// PredictDosha 根据问卷预测体质。
// 成功后把标签写入会话，后续 diet/yoga/routine 请求可省略 dosha。
func (a *API) PredictDosha(c *gin.Context) {
	var payload map[string]string
	if !bindJSON(c, &payload, "invalid profile payload") {
		return
	}

	// 问卷取值统一小写去空格，对齐训练集的录入格式
	profile := make(map[string]string, len(payload))
	for feature, value := range payload {
		profile[strings.ToLower(strings.TrimSpace(feature))] = strings.ToLower(strings.TrimSpace(value))
	}

	prediction, err := a.classifier.Classify(c.Request.Context(), profile)
	if err != nil {
		handleClassifyError(c, err)
		return
	}

	rememberDosha(c, prediction.Dosha)

	c.JSON(http.StatusOK, gin.H{
		"type":       prediction.Type,
		"dosha":      prediction.Dosha,
		"confidence": prediction.Confidence,
		"breakdown":  prediction.Breakdown,
	})
}

func handleClassifyError(c *gin.Context, err error) {
	var unknownValue *service.UnknownValueError
	var missingFeature *service.MissingFeatureError

	switch {
	case errors.As(err, &unknownValue):
		respondError(c, http.StatusBadRequest, unknownValue.Error())
	case errors.As(err, &missingFeature):
		respondError(c, http.StatusBadRequest, missingFeature.Error())
	case errors.Is(err, service.ErrModelUnavailable):
		respondError(c, http.StatusServiceUnavailable, "dosha model is not configured")
	default:
		respondError(c, http.StatusBadGateway, "dosha model request failed")
	}
}
