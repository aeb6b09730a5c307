package usererrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrUsernameAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Username already exists",
		http.StatusConflict,
	)
	ErrMissingRequiredFields = apperror.New(
		apperror.CodeInvalidInput,
		"Username, full name and role are required",
		http.StatusBadRequest,
	)
	ErrMissingNewPassword = apperror.New(
		apperror.CodeInvalidInput,
		"New password is required",
		http.StatusBadRequest,
	)
)
