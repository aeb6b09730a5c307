package auditlogerrors

import (
	"net/http"

	"go-hrm/internal/shared/apperror"
)

var (
	ErrMissingRequiredFields = apperror.New(
		apperror.CodeInvalidInput,
		"Actor and action are required",
		http.StatusBadRequest,
	)
	ErrInvalidPagination = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid pagination parameters",
		http.StatusBadRequest,
	)
)
