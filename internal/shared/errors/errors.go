// Package errors provides application-level error types and utilities.
// It defines the error kinds the intake workflows surface: validation,
// not found, access denied, invalid/expired OTP, and internal failures.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation      ErrorType = "validation_error"
	ErrorTypeNotFound        ErrorType = "not_found"
	ErrorTypeAccessDenied    ErrorType = "access_denied"
	ErrorTypeInvalidCode     ErrorType = "invalid_code"
	ErrorTypeExpired         ErrorType = "expired"
	ErrorTypeInternal        ErrorType = "internal_error"
	ErrorTypeBadRequest      ErrorType = "bad_request"
	ErrorTypeInvalidEmployee ErrorType = "invalid_employee"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, message, http.StatusBadRequest, details...)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, message, http.StatusNotFound, details...)
}

// NewAccessDeniedError creates an error for employees without the access flag.
// Maps to 401 rather than 403 to match the client contract.
func NewAccessDeniedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeAccessDenied, message, http.StatusUnauthorized, details...)
}

// NewInvalidCodeError creates an error for an OTP that does not match the stored code
func NewInvalidCodeError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInvalidCode, message, http.StatusUnauthorized, details...)
}

// NewExpiredError creates an error for an OTP past its expiry timestamp
func NewExpiredError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeExpired, message, http.StatusGone, details...)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, message, http.StatusInternalServerError, details...)
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeBadRequest, message, http.StatusBadRequest, details...)
}

// NewInvalidEmployeeError creates an error for a submission referencing
// an unknown employee ID
func NewInvalidEmployeeError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInvalidEmployee, message, http.StatusBadRequest, details...)
}

func newAppError(errType ErrorType, message string, code int, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    errType,
		Message: message,
		Code:    code,
		Details: detail,
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeNotFound
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeValidation
}

// IsExpiredError checks if the error is an expired-OTP error
func IsExpiredError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeExpired
}

// IsInvalidCodeError checks if the error is an invalid-OTP error
func IsInvalidCodeError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeInvalidCode
}
