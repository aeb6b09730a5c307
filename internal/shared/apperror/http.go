package apperror

import (
	"errors"
	"net/http"
)

// HTTPError is the flattened form handed to the response layer.
type HTTPError struct {
	Status  int
	Code    string
	Message string
}

// ToHTTP translates any error into status/code/message for the handler
// edge. Unknown errors become 500 with the underlying message passed
// through, so storage failures surface as the driver reported them.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}
	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: err.Error(),
	}
}
