package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorCode represents standardized error codes for the API
type ErrorCode string

const (
	// Client Error Codes (4xx)
	ErrorCodeValidationFailed  ErrorCode = "VALIDATION_FAILED"
	ErrorCodeInvalidRequest    ErrorCode = "INVALID_REQUEST"
	ErrorCodeInvalidJSON       ErrorCode = "INVALID_JSON"
	ErrorCodeInvalidQuery      ErrorCode = "INVALID_QUERY"
	ErrorCodeQuestionNotFound  ErrorCode = "QUESTION_NOT_FOUND"
	ErrorCodeFeedbackNotFound  ErrorCode = "FEEDBACK_NOT_FOUND"
	ErrorCodeRequestBodyTooBig ErrorCode = "REQUEST_TOO_LARGE"

	// Server Error Codes (5xx)
	ErrorCodeInternalError  ErrorCode = "INTERNAL_ERROR"
	ErrorCodeNoData         ErrorCode = "NO_DATA_AVAILABLE"
	ErrorCodeReloadFailed   ErrorCode = "RELOAD_FAILED"
	ErrorCodeSearchFailed   ErrorCode = "SEARCH_FAILED"
	ErrorCodeFeedbackFailed ErrorCode = "FEEDBACK_FAILED"
)

// ErrorDetail provides additional context for an error
type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// APIError represents a standardized API error response
type APIError struct {
	Error     string        `json:"error"`
	Code      ErrorCode     `json:"code"`
	Message   string        `json:"message"`
	Details   []ErrorDetail `json:"details,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
	RequestID string        `json:"request_id,omitempty"`
}

// APIErrorResponse creates a standardized error response
func APIErrorResponse(code ErrorCode, message string, details ...ErrorDetail) *APIError {
	return &APIError{
		Error:     "Request failed",
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now(),
	}
}

// SendError sends a standardized error response
func SendError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...ErrorDetail) {
	errorResponse := APIErrorResponse(code, message, details...)

	if requestID, exists := c.Get(requestIDKey); exists {
		if id, ok := requestID.(string); ok {
			errorResponse.RequestID = id
		}
	}

	c.JSON(statusCode, errorResponse)
}

// SendStructuredValidationError sends a validation error with structured details
func SendStructuredValidationError(c *gin.Context, result *ValidationResult) {
	details := make([]ErrorDetail, len(result.Errors))
	for i, err := range result.Errors {
		details[i] = ErrorDetail{
			Field:   err.Field,
			Message: err.Message,
			Code:    "VALIDATION_ERROR",
		}
	}

	SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, "Request validation failed", details...)
}

// SendNoDataError tells the caller that no FAQ table is loaded, as opposed to a query with no matches
func SendNoDataError(c *gin.Context) {
	SendError(c, http.StatusServiceUnavailable, ErrorCodeNoData,
		"No FAQ data is loaded; check the data source and reload")
}

// SendQuestionNotFoundError sends a standardized unknown question error
func SendQuestionNotFoundError(c *gin.Context, question string) {
	SendError(c, http.StatusNotFound, ErrorCodeQuestionNotFound,
		"Question '"+question+"' is not part of the loaded FAQ table")
}

// SendFeedbackNotFoundError sends a standardized feedback not found error
func SendFeedbackNotFoundError(c *gin.Context, question string) {
	SendError(c, http.StatusNotFound, ErrorCodeFeedbackNotFound,
		"No feedback recorded for question '"+question+"'")
}

// SendInvalidJSONError sends a standardized invalid JSON error
func SendInvalidJSONError(c *gin.Context, err error) {
	SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON,
		"Invalid JSON in request body: "+err.Error())
}

// SendInternalError sends a standardized internal server error
func SendInternalError(c *gin.Context, operation string, err error) {
	SendError(c, http.StatusInternalServerError, ErrorCodeInternalError,
		"Internal error during "+operation+": "+err.Error())
}

// SendReloadError sends a standardized reload failure
func SendReloadError(c *gin.Context, err error) {
	SendError(c, http.StatusBadGateway, ErrorCodeReloadFailed,
		"Failed to reload FAQ data; the previous table is still served: "+err.Error())
}

// SendSearchError sends a standardized search error
func SendSearchError(c *gin.Context, err error) {
	SendError(c, http.StatusInternalServerError, ErrorCodeSearchFailed,
		"Search failed: "+err.Error())
}
