package auditlog

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	logs := r.Group("/logs")
	{
		logs.GET("", h.GetLatest)
		logs.POST("", h.Record)
	}
}
