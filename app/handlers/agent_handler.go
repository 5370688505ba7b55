package handlers

import (
	"log"
	"time"

	"github.com/budun/backoffice/app/dto"
	businessflow "github.com/budun/backoffice/business_flow"
	"github.com/gofiber/fiber/v3"
)

// AgentHandlerInterface defines the contract for sales agent handlers
type AgentHandlerInterface interface {
	ListAgents(c fiber.Ctx) error
}

// AgentHandler handles sales agent HTTP requests
type AgentHandler struct {
	agentFlow businessflow.AgentFlow
}

// NewAgentHandler creates a new agent handler
func NewAgentHandler(agentFlow businessflow.AgentFlow) *AgentHandler {
	return &AgentHandler{
		agentFlow: agentFlow,
	}
}

func (h *AgentHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *AgentHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ListAgents returns sales agents, active ones by default
// @Summary List Sales Agents
// @Description List sales agents filtered by status
// @Tags Agents
// @Produce json
// @Security BearerAuth
// @Param status query string false "Agent status" default(Aktif)
// @Success 200 {object} dto.APIResponse{data=dto.AgentListResponse} "Agents retrieved"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/agents [get]
func (h *AgentHandler) ListAgents(c fiber.Ctx) error {
	status := c.Query("status")

	ctx := createRequestContextWithTimeout(c, "/api/v1/agents", 30*time.Second)
	result, err := h.agentFlow.ListAgents(ctx, status)
	if err != nil {
		log.Println("List agents failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list agents", "AGENT_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Agents retrieved", result)
}
