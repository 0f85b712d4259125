package pkg

import (
	"fmt"
	"net/http"
)

// AppError is the application-level error envelope returned by HTTP handlers.
//
// Code is a stable machine-readable identifier, Message a human-readable
// summary, Reasons the business-rule violations (when any) and HTTPStatus the
// status the boundary layer should answer with.

type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
	Reasons    []string
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

// NewValidationError wraps business-rule violations into the 422 envelope the
// service uses for every validation failure.
func NewValidationError(reasons []string) *AppError {
	return &AppError{
		Code:       "VALIDATION_FAILED",
		Message:    "Business validation failed",
		HTTPStatus: http.StatusUnprocessableEntity,
		Reasons:    reasons,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPError is the serialized error body. Errors always carries at least one
// entry so clients can render a reason list unconditionally.

type HTTPError struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

func (e *AppError) ToHTTPError() HTTPError {
	errs := e.Reasons
	if len(errs) == 0 {
		errs = []string{e.Message}
	}
	return HTTPError{Code: e.Code, Message: e.Message, Errors: errs}
}
