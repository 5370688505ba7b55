package handlers

import (
	"log"
	"time"

	"github.com/budun/backoffice/app/dto"
	businessflow "github.com/budun/backoffice/business_flow"
	"github.com/gofiber/fiber/v3"
)

// FinanceHandlerInterface defines the contract for finance handlers
type FinanceHandlerInterface interface {
	Summary(c fiber.Ctx) error
	ListCashPolicies(c fiber.Ctx) error
}

// FinanceHandler handles collection tracking HTTP requests
type FinanceHandler struct {
	financeFlow businessflow.FinanceFlow
}

// NewFinanceHandler creates a new finance handler
func NewFinanceHandler(financeFlow businessflow.FinanceFlow) *FinanceHandler {
	return &FinanceHandler{
		financeFlow: financeFlow,
	}
}

func (h *FinanceHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *FinanceHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Summary returns collection totals over cash policies
// @Summary Finance Summary
// @Description Premium, collected and outstanding totals over cash policies
// @Tags Finance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.FinanceSummaryResponse} "Summary computed"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/finance/summary [get]
func (h *FinanceHandler) Summary(c fiber.Ctx) error {
	ctx := createRequestContextWithTimeout(c, "/api/v1/finance/summary", 30*time.Second)
	result, err := h.financeFlow.Summary(ctx)
	if err != nil {
		log.Println("Finance summary failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to compute finance summary", "FINANCE_SUMMARY_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Summary computed", result)
}

// ListCashPolicies returns cash policies with outstanding balances
// @Summary List Cash Policies
// @Description List cash policies with per-row outstanding balances, newest first
// @Tags Finance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.FinancePolicyListResponse} "Policies retrieved"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/finance/policies [get]
func (h *FinanceHandler) ListCashPolicies(c fiber.Ctx) error {
	ctx := createRequestContextWithTimeout(c, "/api/v1/finance/policies", 30*time.Second)
	result, err := h.financeFlow.ListCashPolicies(ctx)
	if err != nil {
		log.Println("List cash policies failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list cash policies", "FINANCE_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Policies retrieved", result)
}
