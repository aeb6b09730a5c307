package timesheet

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	timesheets := r.Group("/timesheet")
	{
		timesheets.GET("/summary", h.Summary)
	}
}
