package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aajna-shetty/DietVeda/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type chatRequest struct {
	Question       string `json:"question"`
	Dosha          string `json:"dosha"`
	ConversationID string `json:"conversation_id"`
}

// AskDrVeda 把用户提问转给 Gemini 问诊人设并返回回答。
// 回答同时给出原始 markdown 和净化后的 HTML 两种形式。
func (a *API) AskDrVeda(c *gin.Context) {
	var payload chatRequest
	if !bindJSON(c, &payload, "invalid chat request") {
		return
	}

	question := strings.TrimSpace(payload.Question)
	if question == "" {
		respondError(c, http.StatusBadRequest, "question is required")
		return
	}

	conversationID := strings.TrimSpace(payload.ConversationID)
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	dosha := resolveDosha(c, payload.Dosha)

	answer, err := a.chat.Ask(c.Request.Context(), question, dosha)
	if err != nil {
		if errors.Is(err, service.ErrChatAPIKeyMissing) {
			respondError(c, http.StatusServiceUnavailable, "chat service is not configured")
			return
		}
		respondError(c, http.StatusBadGateway, "chat service request failed")
		return
	}

	answerHTML, err := service.RenderAnswerHTML(answer)
	if err != nil {
		// 渲染失败时仍返回纯文本回答
		answerHTML = ""
	}

	c.JSON(http.StatusOK, gin.H{
		"conversation_id": conversationID,
		"answer":          answer,
		"answer_html":     answerHTML,
	})
}
