package handler

import (
	"time"

	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/domain"
	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/middleware"
	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

// AnalyticsHandler handles HTTP requests for nutrition analytics
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
	now              func() time.Time
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		now:              time.Now,
	}
}

// GetWeekly handles GET /api/analytics/weekly
func (h *AnalyticsHandler) GetWeekly(c *fiber.Ctx) error {
	weekly, err := h.analyticsService.GetWeeklyAnalytics(c.UserContext(), middleware.GetUserID(c), h.now())
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, weekly, "")
}

// GetMacros handles GET /api/analytics/macros?period=week|month
func (h *AnalyticsHandler) GetMacros(c *fiber.Ctx) error {
	period := domain.ParseAnalyticsPeriod(c.Query("period"))

	dist, err := h.analyticsService.GetMacroDistribution(c.UserContext(), middleware.GetUserID(c), period, h.now())
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, dist, "")
}

// GetInsights handles GET /api/analytics/insights
func (h *AnalyticsHandler) GetInsights(c *fiber.Ctx) error {
	report, err := h.analyticsService.GetInsights(c.UserContext(), middleware.GetUserID(c), h.now())
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, report, "")
}
