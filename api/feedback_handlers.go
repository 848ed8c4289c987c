package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/gcbaptista/go-faq-matcher/internal/errors"
)

// FeedbackRequest acknowledges that a recommended answer resolved a query.
type FeedbackRequest struct {
	QueryID  string `json:"query_id"`
	Question string `json:"question"`
}

// RecordFeedbackHandler handles POST /feedback. Repeats for the same query
// and question are acknowledged with 200 and not counted again.
func (api *API) RecordFeedbackHandler(c *gin.Context) {
	if api.feedback == nil {
		SendError(c, http.StatusServiceUnavailable, ErrorCodeFeedbackFailed, "Feedback storage is not configured")
		return
	}

	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}
	if result := ValidateFeedbackRequest(&req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	entries, err := api.matcher.Entries()
	if err != nil {
		if errors.Is(err, internalErrors.ErrNoData) {
			SendNoDataError(c)
			return
		}
		SendInternalError(c, "list entries", err)
		return
	}
	known := false
	for _, entry := range entries {
		if entry.Question == req.Question {
			known = true
			break
		}
	}
	if !known {
		SendQuestionNotFoundError(c, req.Question)
		return
	}

	event, created, err := api.feedback.RecordSatisfied(req.QueryID, req.Question)
	if err != nil {
		if errors.Is(err, internalErrors.ErrInvalidInput) {
			SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, err.Error())
			return
		}
		SendError(c, http.StatusInternalServerError, ErrorCodeFeedbackFailed, "Failed to record feedback: "+err.Error())
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{
		"event":   event,
		"created": created,
	})
}

// ListFeedbackHandler handles GET /feedback.
func (api *API) ListFeedbackHandler(c *gin.Context) {
	if api.feedback == nil {
		SendError(c, http.StatusServiceUnavailable, ErrorCodeFeedbackFailed, "Feedback storage is not configured")
		return
	}
	summaries, err := api.feedback.ListSummaries()
	if err != nil {
		SendInternalError(c, "list feedback", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"summaries": summaries,
		"total":     len(summaries),
	})
}

// GetFeedbackHandler handles GET /feedback/summary?question=...
func (api *API) GetFeedbackHandler(c *gin.Context) {
	if api.feedback == nil {
		SendError(c, http.StatusServiceUnavailable, ErrorCodeFeedbackFailed, "Feedback storage is not configured")
		return
	}
	question := c.Query("question")
	if question == "" {
		result := &ValidationResult{Valid: true}
		result.AddError("question", "Question is required")
		SendValidationError(c, result)
		return
	}
	summary, err := api.feedback.Summary(question)
	if err != nil {
		if errors.Is(err, internalErrors.ErrFeedbackNotFound) {
			SendFeedbackNotFoundError(c, question)
			return
		}
		SendInternalError(c, "get feedback", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
