package handlers

import (
	"log"
	"time"

	"github.com/budun/backoffice/app/dto"
	businessflow "github.com/budun/backoffice/business_flow"
	"github.com/gofiber/fiber/v3"
)

// CrossSellHandlerInterface defines the contract for cross-sell handlers
type CrossSellHandlerInterface interface {
	ListOpportunities(c fiber.Ctx) error
}

// CrossSellHandler handles cross-sell HTTP requests
type CrossSellHandler struct {
	crossSellFlow businessflow.CrossSellFlow
}

// NewCrossSellHandler creates a new cross-sell handler
func NewCrossSellHandler(crossSellFlow businessflow.CrossSellFlow) *CrossSellHandler {
	return &CrossSellHandler{
		crossSellFlow: crossSellFlow,
	}
}

func (h *CrossSellHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *CrossSellHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ListOpportunities returns customers with complementary product suggestions
// @Summary Cross-Sell Opportunities
// @Description Customers whose owned products imply complementary products they do not hold yet
// @Tags CrossSell
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CrossSellListResponse} "Opportunities retrieved"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/cross-sell/opportunities [get]
func (h *CrossSellHandler) ListOpportunities(c fiber.Ctx) error {
	ctx := createRequestContextWithTimeout(c, "/api/v1/cross-sell/opportunities", 30*time.Second)
	result, err := h.crossSellFlow.ListOpportunities(ctx)
	if err != nil {
		log.Println("Cross-sell listing failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list opportunities", "CROSS_SELL_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Opportunities retrieved", result)
}
