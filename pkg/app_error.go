package pkg

import (
	"fmt"
	"net/http"
)

// AppError is the error envelope returned by HTTP handlers.
//
// Code is a stable, machine readable identifier (e.g. CHECKLIST_LOCKED).
// Err keeps the underlying cause for logs; it is never serialized.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

// HTTPError is the JSON body written for an AppError.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Err: err}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetails returns a copy carrying a user-facing detail string, typically the
// message reported by the remote store.
func (e *AppError) WithDetails(details string) *AppError {
	cp := *e
	cp.Err = fmt.Errorf("%s", details)
	return &cp
}

// ToHTTPError hides the cause of server errors. Bad gateway errors keep it so
// the message reported by the remote store reaches the user.
func (e *AppError) ToHTTPError() HTTPError {
	out := HTTPError{Code: e.Code, Message: e.Message}
	if e.Err != nil && (e.HTTPStatus < 500 || e.HTTPStatus == http.StatusBadGateway) {
		out.Details = e.Err.Error()
	}
	return out
}
