package apperror

import (
	"net/http"

	"github.com/FarazAhsan11/candidate-management/pkg/validation"
)

// AppError is the boundary error type: every internal failure is translated
// into one of these before it reaches the HTTP layer. Err is kept for
// server-side logging only and never serialized.
type AppError struct {
	Code    int                     `json:"code"`
	Message string                  `json:"message"`
	Fields  []validation.FieldIssue `json:"fields,omitempty"`
	// Detail is the error string exposed to the client on storage failures.
	// Empty means the response is a bare message.
	Detail string `json:"-"`
	Err    error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// ValidationFailed carries per-field issues for a malformed payload.
func ValidationFailed(issues []validation.FieldIssue) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: "Invalid request data",
		Fields:  issues,
	}
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

// UploadFailed signals a blob-store rejection. The write was aborted and the
// record is unchanged.
func UploadFailed(err error) *AppError {
	return New(http.StatusInternalServerError, "Failed to upload resume", err)
}

// Storage wraps a persistence failure. The error string is exposed on the
// wire, matching the store-error contract.
func Storage(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: message,
		Detail:  err.Error(),
		Err:     err,
	}
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}
