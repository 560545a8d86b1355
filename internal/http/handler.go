package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"property-analytics-service/internal/http/middleware"
	"property-analytics-service/internal/model"
	"property-analytics-service/internal/service"
)

type Handler struct {
	analytics *service.AnalyticsService
	log       zerolog.Logger
}

func NewHandler(analytics *service.AnalyticsService, log zerolog.Logger) *Handler {
	return &Handler{analytics: analytics, log: log}
}

func (h *Handler) Register(r *gin.Engine, authMiddleware gin.HandlerFunc) {
	protected := r.Group("/analytics")
	protected.Use(authMiddleware)

	protected.GET("/overview", h.getOverview)
	protected.GET("/revenue", h.getRevenueAnalytics)
	protected.GET("/properties", h.getPropertyAnalytics)
	protected.GET("/maintenance", h.getMaintenanceAnalytics)
	protected.GET("/tenants", h.getTenantAnalytics)
	protected.GET("/communication", h.getCommunicationAnalytics)
}

func (h *Handler) getOverview(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	filter := parseAnalyticsFilter(c)

	stats, err := h.analytics.GetOverview(c.Request.Context(), principal, filter)
	if err != nil {
		h.handleError(c, err, "Failed to get analytics overview")
		return
	}

	c.JSON(http.StatusOK, successResponse(stats))
}

func (h *Handler) getRevenueAnalytics(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	filter := parseAnalyticsFilter(c)

	analytics, err := h.analytics.GetRevenueAnalytics(c.Request.Context(), principal, filter)
	if err != nil {
		h.handleError(c, err, "Failed to get revenue analytics")
		return
	}

	c.JSON(http.StatusOK, successResponse(analytics))
}

func (h *Handler) getPropertyAnalytics(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	filter := parseAnalyticsFilter(c)

	analytics, err := h.analytics.GetPropertyAnalytics(c.Request.Context(), principal, filter)
	if err != nil {
		h.handleError(c, err, "Failed to get property analytics")
		return
	}

	c.JSON(http.StatusOK, successResponse(analytics))
}

func (h *Handler) getMaintenanceAnalytics(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	filter := parseAnalyticsFilter(c)

	analytics, err := h.analytics.GetMaintenanceAnalytics(c.Request.Context(), principal, filter)
	if err != nil {
		h.handleError(c, err, "Failed to get maintenance analytics")
		return
	}

	c.JSON(http.StatusOK, successResponse(analytics))
}

func (h *Handler) getTenantAnalytics(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	filter := parseAnalyticsFilter(c)

	analytics, err := h.analytics.GetTenantAnalytics(c.Request.Context(), principal, filter)
	if err != nil {
		h.handleError(c, err, "Failed to get tenant analytics")
		return
	}

	c.JSON(http.StatusOK, successResponse(analytics))
}

func (h *Handler) getCommunicationAnalytics(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	filter := parseAnalyticsFilter(c)

	analytics, err := h.analytics.GetCommunicationAnalytics(c.Request.Context(), principal, filter)
	if err != nil {
		h.handleError(c, err, "Failed to get communication analytics")
		return
	}

	c.JSON(http.StatusOK, successResponse(analytics))
}

func parseAnalyticsFilter(c *gin.Context) model.AnalyticsFilter {
	filter := model.AnalyticsFilter{}

	if fromStr := strings.TrimSpace(c.Query("from")); fromStr != "" {
		if parsed, err := time.Parse(time.RFC3339, fromStr); err == nil {
			filter.Range.From = parsed
		}
	}
	if toStr := strings.TrimSpace(c.Query("to")); toStr != "" {
		if parsed, err := time.Parse(time.RFC3339, toStr); err == nil {
			filter.Range.To = parsed
		}
	}

	filter.PropertyIDs = parseIDList(c.Query("property_ids"))
	filter.TenantIDs = parseIDList(c.Query("tenant_ids"))

	return filter
}

func parseIDList(raw string) []uuid.UUID {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for _, part := range parts {
		if id, err := uuid.Parse(strings.TrimSpace(part)); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

func (h *Handler) handleError(c *gin.Context, err error, message string) {
	if errors.Is(err, service.ErrPermissionDenied) {
		c.JSON(http.StatusForbidden, errorResponse("permission denied"))
		return
	}
	h.log.Error().Err(err).Msg("handler error")
	c.JSON(http.StatusInternalServerError, errorResponse(message))
}

func successResponse(data interface{}) gin.H {
	return gin.H{"success": true, "data": data}
}

func errorResponse(message string) gin.H {
	return gin.H{"success": false, "message": message}
}
