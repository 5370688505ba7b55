package handlers

import (
	"log"
	"time"

	"github.com/budun/backoffice/app/dto"
	businessflow "github.com/budun/backoffice/business_flow"
	"github.com/gofiber/fiber/v3"
)

// DashboardHandlerInterface defines the contract for dashboard handlers
type DashboardHandlerInterface interface {
	Snapshot(c fiber.Ctx) error
}

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardFlow businessflow.DashboardFlow
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardFlow businessflow.DashboardFlow) *DashboardHandler {
	return &DashboardHandler{
		dashboardFlow: dashboardFlow,
	}
}

func (h *DashboardHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *DashboardHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Snapshot returns the portfolio snapshot used on the landing screen
// @Summary Dashboard Snapshot
// @Description Policy totals, premium sum, remaining debt and policies expiring within 30 days
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardSnapshotResponse} "Snapshot retrieved"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) Snapshot(c fiber.Ctx) error {
	ctx := createRequestContextWithTimeout(c, "/api/v1/dashboard", 30*time.Second)
	result, err := h.dashboardFlow.Snapshot(ctx)
	if err != nil {
		log.Println("Dashboard snapshot failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load dashboard", "DASHBOARD_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Snapshot retrieved", result)
}
