package user_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrm/internal/user"
	usererrors "go-hrm/internal/user/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	createFn        func(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error)
	getAllFn        func(ctx context.Context) ([]user.UserResponse, error)
	updateFn        func(ctx context.Context, username string, req user.UpdateUserRequest) (user.UserResponse, error)
	updateStatusFn  func(ctx context.Context, username string, req user.UpdateStatusRequest) (user.UserResponse, error)
	resetPasswordFn func(ctx context.Context, username string, req user.ResetPasswordRequest) error
	deleteFn        func(ctx context.Context, username string) error
}

func (f *fakeService) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeService) GetAll(ctx context.Context) ([]user.UserResponse, error) {
	return f.getAllFn(ctx)
}
func (f *fakeService) Update(ctx context.Context, username string, req user.UpdateUserRequest) (user.UserResponse, error) {
	return f.updateFn(ctx, username, req)
}
func (f *fakeService) UpdateStatus(ctx context.Context, username string, req user.UpdateStatusRequest) (user.UserResponse, error) {
	return f.updateStatusFn(ctx, username, req)
}
func (f *fakeService) ResetPassword(ctx context.Context, username string, req user.ResetPasswordRequest) error {
	return f.resetPasswordFn(ctx, username, req)
}
func (f *fakeService) Delete(ctx context.Context, username string) error {
	return f.deleteFn(ctx, username)
}

func TestHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		createFn: func(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
			assert.Equal(t, "alice", req.Username)
			return user.UserResponse{Username: "alice", FullName: req.FullName, Role: req.Role, Active: true, LastLogin: "-"}, nil
		},
	}
	h := user.NewHandler(svc)

	body := `{"username":"alice","fullName":"Alice Nguyen","role":"admin"}`
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
	assert.Contains(t, w.Body.String(), `"lastLogin":"-"`)
}

func TestHandler_Create_MissingRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := user.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"username":"alice","fullName":"Alice"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		updateStatusFn: func(ctx context.Context, username string, req user.UpdateStatusRequest) (user.UserResponse, error) {
			assert.Equal(t, "alice", username)
			assert.NotNil(t, req.Active)
			assert.False(t, *req.Active)
			return user.UserResponse{Username: username, Active: false}, nil
		},
	}
	h := user.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "username", Value: "alice"}}
	c.Request = httptest.NewRequest(http.MethodPatch, "/users/alice/status", strings.NewReader(`{"active":false}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.UpdateStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"active":false`)
}

func TestHandler_ResetPassword_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		resetPasswordFn: func(ctx context.Context, username string, req user.ResetPasswordRequest) error {
			return usererrors.ErrUserNotFound
		},
	}
	h := user.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "username", Value: "ghost"}}
	c.Request = httptest.NewRequest(http.MethodPost, "/users/ghost/reset-password", strings.NewReader(`{"newPassword":"x"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.ResetPassword(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
