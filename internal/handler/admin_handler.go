package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/SHARMA1525/v0-campus-map-integration/internal/application"
	"github.com/SHARMA1525/v0-campus-map-integration/internal/auth"
	"github.com/SHARMA1525/v0-campus-map-integration/internal/domain/user"
	"github.com/SHARMA1525/v0-campus-map-integration/internal/middleware"
	"github.com/SHARMA1525/v0-campus-map-integration/internal/response"
)

// AdminHandler handles admin-only endpoints.
type AdminHandler struct {
	service *application.NavigationService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(service *application.NavigationService) *AdminHandler {
	return &AdminHandler{service: service}
}

// RegisterRoutes registers the admin routes behind auth and the admin
// role.
func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	admin := r.Group("/api/v1/admin")
	admin.Use(middleware.AuthMiddleware(jwtManager), middleware.RequireRole(user.RoleAdmin))
	{
		admin.GET("/stats", h.GetStats)
	}
}

// GetStats handles GET /api/v1/admin/stats.
func (h *AdminHandler) GetStats(c *gin.Context) {
	result, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
