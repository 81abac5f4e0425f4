// Package errors provides standardized error handling for demo agents and their transports.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidPayload   ErrorCode = "INVALID_PAYLOAD"
	ErrCodeAgentNotFound    ErrorCode = "AGENT_NOT_FOUND"
	ErrCodeAgentDisabled    ErrorCode = "AGENT_DISABLED"
	ErrCodeRequestCancelled ErrorCode = "REQUEST_CANCELLED"
	ErrCodeUnexpected       ErrorCode = "UNEXPECTED_ERROR"
)

// UnexpectedMessage is the only text callers ever see for unexpected failures.
const UnexpectedMessage = "An unexpected error occurred. Please try again later."

// FieldError describes one failed input constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Fields    []FieldError           `json:"fields,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// PublicMessage is the message safe to hand back to an end user.
func (e *StandardError) PublicMessage() string {
	if e.Code == ErrCodeUnexpected {
		return UnexpectedMessage
	}
	return e.Message
}

// HTTPStatus maps the error code onto a response status.
func (e *StandardError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeValidationFailed, ErrCodeInvalidPayload:
		return http.StatusBadRequest
	case ErrCodeAgentNotFound:
		return http.StatusNotFound
	case ErrCodeAgentDisabled:
		return http.StatusServiceUnavailable
	case ErrCodeRequestCancelled:
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError builds a non-retryable error from failed field constraints.
// The message is the first field's message, e.g. "emailContent must be at least 10 characters".
func NewValidationError(fields []FieldError) *StandardError {
	msg := "input validation failed"
	if len(fields) > 0 {
		msg = fields[0].Message
	}
	details := make([]string, len(fields))
	for i, f := range fields {
		details[i] = f.Message
	}
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   msg,
		Details:   strings.Join(details, "; "),
		Retryable: false,
		Fields:    fields,
		Timestamp: time.Now().UTC(),
	}
}

func NewInvalidPayloadError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidPayload,
		Message:   "request body must be a valid JSON object",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewAgentNotFoundError(agentID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeAgentNotFound,
		Message:   fmt.Sprintf("unknown agent %q", agentID),
		Details:   fmt.Sprintf("agentId: %s", agentID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewAgentDisabledError(agentID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeAgentDisabled,
		Message:   fmt.Sprintf("agent %q is currently disabled", agentID),
		Details:   fmt.Sprintf("agentId: %s", agentID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewCancelledError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRequestCancelled,
		Message:   "request was cancelled before the demo finished",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnexpectedError wraps any failure raised inside classification or composition.
// Details are kept for logs only; PublicMessage never exposes them.
func NewUnexpectedError(cause interface{}) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnexpected,
		Message:   UnexpectedMessage,
		Details:   fmt.Sprintf("%v", cause),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// Normalize converts any error into a StandardError, treating unknown errors as unexpected.
func Normalize(err error) *StandardError {
	if err == nil {
		return nil
	}
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr
	}
	return NewUnexpectedError(err)
}

// Code extracts the error code, or ErrCodeUnexpected for foreign errors.
func Code(err error) ErrorCode {
	if stdErr := Normalize(err); stdErr != nil {
		return stdErr.Code
	}
	return ""
}

// IsValidation reports whether err is a validation or payload error.
func IsValidation(err error) bool {
	code := Code(err)
	return code == ErrCodeValidationFailed || code == ErrCodeInvalidPayload
}

func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "VALIDATION") || strings.Contains(codeStr, "PAYLOAD"):
		return "VALIDATION"
	case strings.Contains(codeStr, "AGENT"):
		return "ROUTING"
	case strings.Contains(codeStr, "CANCELLED"):
		return "CLIENT"
	default:
		return "INTERNAL"
	}
}

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}
	for k, v := range e.ErrorVariables {
		vars[k] = v
	}
	return vars
}

// ConvertToBPMNError maps a StandardError onto workflow error variables.
// Demo runs are cheap and stateless, so nothing is ever retried.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	message := stdErr.PublicMessage()
	vars := map[string]interface{}{
		"originalErrorCode": string(stdErr.Code),
		"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
	}
	if len(stdErr.Fields) > 0 {
		vars["fieldErrors"] = stdErr.Fields
	}
	return &BPMNError{
		Code:           string(stdErr.Code),
		Message:        message,
		Details:        stdErr.Details,
		Retryable:      false,
		Retries:        0,
		ErrorVariables: vars,
	}
}
