package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	internalErrors "github.com/gcbaptista/go-faq-matcher/internal/errors"
	"github.com/gcbaptista/go-faq-matcher/model"
	"github.com/gcbaptista/go-faq-matcher/services"
)

// SearchRequest defines the structure for search queries.
type SearchRequest struct {
	Query string `json:"query"`
	TopN  *int   `json:"top_n,omitempty"` // Optional: defaults to the configured top-N, clamped to the configured maximum
}

// SearchHandler handles POST /search.
func (api *API) SearchHandler(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, "Invalid request body: "+err.Error())
		return
	}
	api.search(c, req)
}

// SearchGetHandler handles GET /search?q=...&top_n=...
func (api *API) SearchGetHandler(c *gin.Context) {
	req := SearchRequest{Query: c.Query("q")}
	if raw := c.Query("top_n"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			result := &ValidationResult{Valid: true}
			result.AddError("top_n", "top_n must be an integer")
			SendValidationError(c, result)
			return
		}
		req.TopN = &n
	}
	api.search(c, req)
}

func (api *API) search(c *gin.Context, req SearchRequest) {
	startTime := time.Now()
	topN := ResolveTopN(req.TopN, api.settings.DefaultTopN, api.settings.MaxTopN)

	result, info, err := api.matcher.Query(req.Query, topN)
	if err != nil {
		if errors.Is(err, internalErrors.ErrNoData) {
			SendNoDataError(c)
			return
		}
		SendSearchError(c, err)
		return
	}

	responseTime := time.Since(startTime)
	response := services.SearchResponse{
		QueryResult: result,
		Query:       req.Query,
		TopN:        topN,
		Took:        responseTime.Microseconds(),
		QueryID:     uuid.New().String(),
		SnapshotID:  info.ID,
	}

	if api.tracker != nil {
		api.tracker.TrackQuery(model.QueryEvent{
			MatchCount:   len(result.Matches),
			ExactMatch:   result.ExactMatch != nil,
			TopN:         topN,
			ResponseTime: responseTime,
			Timestamp:    startTime,
		})
	}

	c.JSON(http.StatusOK, response)
}
