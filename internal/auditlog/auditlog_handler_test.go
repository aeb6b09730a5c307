package auditlog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrm/internal/auditlog"
	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	recordFn    func(ctx context.Context, req auditlog.CreateLogRequest) (auditlog.LogResponse, error)
	getLatestFn func(ctx context.Context, page, limit int) ([]auditlog.LogResponse, response.PaginationMeta, error)
}

func (f *fakeService) Record(ctx context.Context, req auditlog.CreateLogRequest) (auditlog.LogResponse, error) {
	return f.recordFn(ctx, req)
}
func (f *fakeService) GetLatest(ctx context.Context, page, limit int) ([]auditlog.LogResponse, response.PaginationMeta, error) {
	return f.getLatestFn(ctx, page, limit)
}

func TestHandler_GetLatest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		getLatestFn: func(ctx context.Context, page, limit int) ([]auditlog.LogResponse, response.PaginationMeta, error) {
			assert.Equal(t, 2, page)
			assert.Equal(t, 25, limit)
			return []auditlog.LogResponse{{ID: uuid.NewString(), Actor: "system", Action: "x"}},
				response.NewPaginationMeta(60, page, limit), nil
		},
	}
	h := auditlog.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/logs?page=2&limit=25", nil)
	h.GetLatest(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"meta"`)
	assert.Contains(t, w.Body.String(), `"total":60`)
}

func TestHandler_GetLatest_BadPage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := auditlog.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/logs?page=abc", nil)
	h.GetLatest(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Record(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		recordFn: func(ctx context.Context, req auditlog.CreateLogRequest) (auditlog.LogResponse, error) {
			return auditlog.LogResponse{ID: uuid.NewString(), Actor: req.Actor, Action: req.Action}, nil
		},
	}
	h := auditlog.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/logs", strings.NewReader(`{"actor":"admin","action":"updated department IT"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Record(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}
