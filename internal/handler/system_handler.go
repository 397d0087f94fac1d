package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Status 返回服务自检信息
func (a *API) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "Online",
		"project": "DietVeda AI",
		"version": "1.0",
		"dishes":  a.catalog.Len(),
	})
}
