package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SHARMA1525/v0-campus-map-integration/internal/application"
	"github.com/SHARMA1525/v0-campus-map-integration/internal/metrics"
	"github.com/SHARMA1525/v0-campus-map-integration/internal/response"
)

// AssistantHandler handles HTTP requests for the chat-style navigator.
type AssistantHandler struct {
	service *application.AssistantService
}

// NewAssistantHandler creates a new AssistantHandler.
func NewAssistantHandler(service *application.AssistantService) *AssistantHandler {
	return &AssistantHandler{service: service}
}

// RegisterRoutes registers the assistant routes.
func (h *AssistantHandler) RegisterRoutes(r *gin.RouterGroup) {
	assistant := r.Group("/api/v1/assistant")
	{
		assistant.POST("/query", h.Query)
	}
}

// Query handles POST /api/v1/assistant/query.
func (h *AssistantHandler) Query(c *gin.Context) {
	var req application.AssistantQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Ask(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	metrics.AssistantQueriesTotal.WithLabelValues(strconv.FormatBool(result.Matched)).Inc()
	response.Success(c, result)
}
