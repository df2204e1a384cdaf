// Package apierror provides the error response envelope for the directory
// API. Every 4xx/5xx the clients see goes through it, so internal details
// (stack traces, SQL, storage responses) never leak.
package apierror

// APIError is the canonical single-message error envelope.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError carries per-field errors from the registration form so the
// frontend can mark the offending inputs. Detail is the banner text shown
// above the form.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(detail string, fields map[string]string) *ValidationError {
	return &ValidationError{Detail: detail, Fields: fields}
}
