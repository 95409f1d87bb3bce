package model

import "fmt"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeQueryRequired    = "QUERY_REQUIRED"
	ErrCodeQueryTooLong     = "QUERY_TOO_LONG"
	ErrCodeInvalidParameter = "INVALID_PARAMETER"
	ErrCodeProductNotFound  = "PRODUCT_NOT_FOUND"
	ErrCodeSearchFailed     = "SEARCH_FAILED"
	ErrCodeAIAnalysisFailed = "AI_ANALYSIS_FAILED"
	ErrCodeUnauthorised     = "UNAUTHORIZED"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrQueryRequired    = NewDomainError(ErrCodeQueryRequired, "query required")
	ErrQueryTooLong     = NewDomainError(ErrCodeQueryTooLong, fmt.Sprintf("query must be at most %d characters", MaxQueryLength))
	ErrProductNotFound  = NewDomainError(ErrCodeProductNotFound, "product not found")
	ErrSearchFailed     = NewDomainError(ErrCodeSearchFailed, "search failed")
	ErrAIAnalysisFailed = NewDomainError(ErrCodeAIAnalysisFailed, "AI analysis failed, please try regular search")
)
