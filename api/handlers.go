package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-faq-matcher/config"
	internalErrors "github.com/gcbaptista/go-faq-matcher/internal/errors"
	"github.com/gcbaptista/go-faq-matcher/services"
)

// API holds dependencies for API handlers.
type API struct {
	matcher  services.Matcher
	feedback services.FeedbackRecorder
	tracker  services.QueryTracker
	settings config.Settings
}

// NewAPI creates a new API handler structure. feedback may be nil, in which
// case the feedback routes answer 503.
func NewAPI(matcher services.Matcher, feedback services.FeedbackRecorder, tracker services.QueryTracker, settings config.Settings) *API {
	settings.ApplyDefaults()
	return &API{
		matcher:  matcher,
		feedback: feedback,
		tracker:  tracker,
		settings: settings,
	}
}

// SetupRoutes defines all the API routes for the FAQ matcher.
func SetupRoutes(router *gin.Engine, apiHandler *API) {
	router.Use(RequestIDMiddleware())
	router.Use(RequestSizeLimitMiddleware(apiHandler.settings.MaxRequestBytes))

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	// Search routes
	router.GET("/search", apiHandler.SearchGetHandler)
	router.POST("/search", apiHandler.SearchHandler)

	// FAQ table routes
	router.GET("/entries", apiHandler.ListEntriesHandler)
	router.POST("/reload", apiHandler.ReloadHandler)

	// Feedback routes
	feedbackRoutes := router.Group("/feedback")
	{
		feedbackRoutes.POST("", apiHandler.RecordFeedbackHandler) // Acknowledge a helpful answer
		feedbackRoutes.GET("", apiHandler.ListFeedbackHandler)    // Satisfaction counts per question
		feedbackRoutes.GET("/summary", apiHandler.GetFeedbackHandler)
	}

	// Analytics route
	router.GET("/stats", apiHandler.StatsHandler)
}

// HealthCheckHandler provides a simple health check endpoint
func (api *API) HealthCheckHandler(c *gin.Context) {
	response := gin.H{
		"status":    "healthy",
		"service":   "go-faq-matcher",
		"timestamp": fmt.Sprintf("%d", time.Now().Unix()),
	}
	if info, ok := api.matcher.SnapshotInfo(); ok {
		response["snapshot"] = info
	} else {
		response["status"] = "degraded"
	}
	c.JSON(http.StatusOK, response)
}

// ListEntriesHandler returns the loaded FAQ table with pagination.
func (api *API) ListEntriesHandler(c *gin.Context) {
	var req struct {
		Page     int `form:"page" json:"page"`
		PageSize int `form:"page_size" json:"page_size"`
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "Invalid pagination parameters: "+err.Error())
		return
	}

	page, pageSize, result := ValidatePagination(req.Page, req.PageSize)
	if result.HasErrors() {
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

	total := len(entries)
	start, end := pageBounds(page, pageSize, total)

	c.JSON(http.StatusOK, gin.H{
		"entries":   entries[start:end],
		"total":     total,
		"page":      page,
		"page_size": pageSize,
		"pages":     (total + pageSize - 1) / pageSize,
	})
}

// pageBounds returns the slice bounds of page within total items. Pages past
// the end yield an empty range; the comparison runs before the multiplication
// so huge page numbers cannot overflow.
func pageBounds(page, pageSize, total int) (int, int) {
	if page-1 >= (total+pageSize-1)/pageSize {
		return total, total
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}
	return start, end
}

// ReloadHandler re-reads the data source and swaps in the new table.
// On failure the previous table keeps serving.
func (api *API) ReloadHandler(c *gin.Context) {
	info, err := api.matcher.Reload(c.Request.Context())
	if err != nil {
		log.Printf("Warning: Reload failed, keeping previous snapshot: %v", err)
		SendReloadError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "reloaded",
		"snapshot": info,
	})
}

// StatsHandler returns aggregated query counters.
func (api *API) StatsHandler(c *gin.Context) {
	if api.tracker == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, api.tracker.Stats())
}
