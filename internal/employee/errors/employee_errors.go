package employeeerrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeCodeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee code already exists",
		http.StatusConflict,
	)
	ErrMissingRequiredFields = apperror.New(
		apperror.CodeInvalidInput,
		"Employee code and full name are required",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidBirthDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid birthDate format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrMissingAvatarFile = apperror.New(
		apperror.CodeInvalidInput,
		"No image file provided",
		http.StatusBadRequest,
	)
	ErrAvatarNotImage = apperror.New(
		apperror.CodeInvalidInput,
		"Only image uploads are allowed",
		http.StatusBadRequest,
	)
	ErrAvatarTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"Image exceeds the 2MB limit",
		http.StatusBadRequest,
	)
)
