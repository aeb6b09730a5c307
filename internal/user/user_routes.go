package user

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	users := r.Group("/users")
	{
		users.GET("", h.GetAll)
		users.POST("", h.Create)
		users.PUT("/:username", h.Update)
		users.PATCH("/:username/status", h.UpdateStatus)
		users.POST("/:username/reset-password", h.ResetPassword)
		users.DELETE("/:username", h.Delete)
	}
}
