package attendance

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, idempotency gin.HandlerFunc) {
	attendances := r.Group("/attendance")
	{
		attendances.GET("", h.Query)
		if idempotency != nil {
			attendances.POST("", idempotency, h.Upsert)
		} else {
			attendances.POST("", h.Upsert)
		}
		attendances.DELETE("/:id", h.Delete)
	}
}
