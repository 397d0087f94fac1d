package handler

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// sessionDoshaKey 会话中缓存的诊断结果键名
const sessionDoshaKey = "dosha"

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

// sessionOf 取当前请求的会话。未挂会话中间件时返回 nil，调用方需自行跳过
func sessionOf(c *gin.Context) sessions.Session {
	value, exists := c.Get(sessions.DefaultKey)
	if !exists {
		return nil
	}
	session, ok := value.(sessions.Session)
	if !ok {
		return nil
	}
	return session
}

// resolveDosha 取请求里的体质标签，缺省时回退到会话中上次诊断的结果
func resolveDosha(c *gin.Context, requested string) string {
	requested = strings.TrimSpace(requested)
	if requested != "" {
		return requested
	}

	session := sessionOf(c)
	if session == nil {
		return ""
	}
	if cached, ok := session.Get(sessionDoshaKey).(string); ok {
		return cached
	}
	return ""
}

// rememberDosha 把诊断结果写入会话，后续请求可省略 dosha 参数
func rememberDosha(c *gin.Context, dosha string) {
	session := sessionOf(c)
	if session == nil {
		return
	}
	session.Set(sessionDoshaKey, dosha)
	// 会话写失败不影响本次响应
	_ = session.Save()
}
