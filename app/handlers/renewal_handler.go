package handlers

import (
	"log"
	"strconv"
	"time"

	"github.com/budun/backoffice/app/dto"
	businessflow "github.com/budun/backoffice/business_flow"
	"github.com/gofiber/fiber/v3"
)

// RenewalHandlerInterface defines the contract for renewal handlers
type RenewalHandlerInterface interface {
	ListRenewals(c fiber.Ctx) error
}

// RenewalHandler handles renewal tracking HTTP requests
type RenewalHandler struct {
	renewalFlow businessflow.RenewalFlow
}

// NewRenewalHandler creates a new renewal handler
func NewRenewalHandler(renewalFlow businessflow.RenewalFlow) *RenewalHandler {
	return &RenewalHandler{
		renewalFlow: renewalFlow,
	}
}

func (h *RenewalHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *RenewalHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ListRenewals returns policies ending inside a date window
// @Summary List Renewals
// @Description List policies ending inside [from, to] with days remaining and severity
// @Tags Renewals
// @Produce json
// @Security BearerAuth
// @Param from query string false "Window start (2006-01-02)"
// @Param to query string false "Window end (2006-01-02)"
// @Param lookahead_days query int false "Shorthand for [today, today+N], one of 30/60/90/180"
// @Success 200 {object} dto.APIResponse{data=dto.RenewalListResponse} "Renewals retrieved"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/renewals [get]
func (h *RenewalHandler) ListRenewals(c fiber.Ctx) error {
	var from, to *time.Time
	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "from must be a date in 2006-01-02 format", "VALIDATION_ERROR", nil)
		}
		from = &parsed
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "to must be a date in 2006-01-02 format", "VALIDATION_ERROR", nil)
		}
		to = &parsed
	}

	lookaheadDays := 0
	if v := c.Query("lookahead_days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "lookahead_days must be a number", "VALIDATION_ERROR", nil)
		}
		lookaheadDays = parsed
	}

	ctx := createRequestContextWithTimeout(c, "/api/v1/renewals", 30*time.Second)
	result, err := h.renewalFlow.ListRenewals(ctx, from, to, lookaheadDays)
	if err != nil {
		if businessflow.IsInvalidLookaheadDays(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "lookahead_days must be one of 30, 60, 90, 180", "VALIDATION_ERROR", nil)
		}
		if businessflow.IsStartDateAfterEndDate(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "from cannot be after to", "VALIDATION_ERROR", nil)
		}

		log.Println("List renewals failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list renewals", "RENEWAL_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Renewals retrieved", result)
}
