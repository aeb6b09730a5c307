package timesheet

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Summary handles GET /api/timesheet/summary?employeeCode=&from=&to=
func (h *Handler) Summary(c *gin.Context) {
	employeeCode := c.Query("employeeCode")
	from := c.Query("from")
	to := c.Query("to")

	resp, err := h.service.Summarize(c.Request.Context(), employeeCode, from, to)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
