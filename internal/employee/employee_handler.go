package employee

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	employeeerrors "go-hrm/internal/employee/errors"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/response"
	"go-hrm/internal/storage"

	"github.com/gin-gonic/gin"
)

const maxAvatarSize = 2 << 20 // 2MB

var allowedAvatarExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

type Handler struct {
	service Service
	storage storage.Storage
}

func NewHandler(service Service, store storage.Storage) *Handler {
	return &Handler{service: service, storage: store}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Message)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetOptions(c *gin.Context) {
	resp, err := h.service.GetOptions(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	response.SuccessMessage(c, http.StatusOK, "Employee deleted")
}

func (h *Handler) Statistics(c *gin.Context) {
	stats, err := h.service.Statistics(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats, nil)
}

// UploadAvatar handles POST /api/employees/:id/avatar. Size and
// content-type are rejected before the storage driver is touched.
func (h *Handler) UploadAvatar(c *gin.Context) {
	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		writeServiceError(c, employeeerrors.ErrMissingAvatarFile)
		return
	}

	if fileHeader.Size > maxAvatarSize {
		writeServiceError(c, employeeerrors.ErrAvatarTooLarge)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		writeServiceError(c, employeeerrors.ErrAvatarNotImage)
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedAvatarExts[ext] {
		ext = ".jpg"
	}
	filename := fmt.Sprintf("avatar_%d%s", time.Now().UnixMilli(), ext)

	file, err := fileHeader.Open()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	defer file.Close()

	avatarURL, err := h.storage.Save(c.Request.Context(), filename, contentType, file)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if err := h.service.UpdateAvatar(c.Request.Context(), c.Param("id"), avatarURL); err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, AvatarResponse{AvatarURL: avatarURL}, nil)
}
