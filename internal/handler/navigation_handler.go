package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/SHARMA1525/v0-campus-map-integration/internal/application"
	"github.com/SHARMA1525/v0-campus-map-integration/internal/auth"
	"github.com/SHARMA1525/v0-campus-map-integration/internal/metrics"
	"github.com/SHARMA1525/v0-campus-map-integration/internal/middleware"
	"github.com/SHARMA1525/v0-campus-map-integration/internal/response"
)

// NavigationHandler handles HTTP requests for routes, locations and
// route history.
type NavigationHandler struct {
	service *application.NavigationService
}

// NewNavigationHandler creates a new NavigationHandler.
func NewNavigationHandler(service *application.NavigationService) *NavigationHandler {
	return &NavigationHandler{service: service}
}

// RegisterRoutes registers all navigation routes on the given router
// group. Route planning and location lookups are public; history needs
// a token.
func (h *NavigationHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	api := r.Group("/api/v1")

	routes := api.Group("/routes")
	routes.Use(middleware.OptionalAuthMiddleware(jwtManager))
	{
		routes.POST("", h.PlanRoute)
	}

	locations := api.Group("/locations")
	{
		locations.GET("", h.ListLocations)
		locations.GET("/search", h.SearchLocations)
		locations.GET("/:name", h.GetLocation)
	}

	history := api.Group("/history")
	history.Use(middleware.AuthMiddleware(jwtManager))
	{
		history.GET("", h.GetHistory)
	}
}

// PlanRoute handles POST /api/v1/routes.
func (h *NavigationHandler) PlanRoute(c *gin.Context) {
	var req application.PlanRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var userID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		userID = &id
	}

	result, err := h.service.PlanRoute(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	metrics.RoutesPlannedTotal.WithLabelValues(strconv.FormatBool(result.Found)).Inc()
	response.Success(c, result)
}

// ListLocations handles GET /api/v1/locations, optionally filtered by
// ?category=.
func (h *NavigationHandler) ListLocations(c *gin.Context) {
	reg := h.service.Registry()

	if category := c.Query("category"); category != "" {
		response.Success(c, gin.H{
			"count":     len(reg.ByCategory(category)),
			"locations": reg.ByCategory(category),
		})
		return
	}

	response.Success(c, gin.H{
		"count":     reg.Len(),
		"locations": reg.All(),
	})
}

// GetLocation handles GET /api/v1/locations/:name (exact,
// case-sensitive).
func (h *NavigationHandler) GetLocation(c *gin.Context) {
	name := c.Param("name")

	loc, ok := h.service.Registry().Get(name)
	if !ok {
		response.Error(c, notFoundLocation(name))
		return
	}
	response.Success(c, loc)
}

// SearchLocations handles GET /api/v1/locations/search?q= with a
// case-insensitive substring match over names and keywords.
func (h *NavigationHandler) SearchLocations(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "missing search query")
		return
	}

	results := searchRegistry(h.service.Registry(), query)
	response.Success(c, gin.H{
		"query":   query,
		"count":   len(results),
		"results": results,
	})
}

// GetHistory handles GET /api/v1/history.
func (h *NavigationHandler) GetHistory(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, unauthorized())
		return
	}

	page, limit := parsePagination(c)
	result, err := h.service.GetHistory(c.Request.Context(), userID, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, result.Items, result.Total, result.Page, result.Limit)
}

// parsePagination extracts page and limit query parameters with
// defaults.
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	return page, limit
}
