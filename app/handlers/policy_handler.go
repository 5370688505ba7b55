package handlers

import (
	"log"
	"strconv"
	"time"

	"github.com/budun/backoffice/app/dto"
	businessflow "github.com/budun/backoffice/business_flow"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// PolicyHandlerInterface defines the contract for policy handlers
type PolicyHandlerInterface interface {
	CreatePolicy(c fiber.Ctx) error
	ListPolicies(c fiber.Ctx) error
	QuoteCommission(c fiber.Ctx) error
	ListCommissionRates(c fiber.Ctx) error
}

// PolicyHandler handles policy-related HTTP requests
type PolicyHandler struct {
	policyFlow businessflow.PolicyFlow
	validator  *validator.Validate
}

// NewPolicyHandler creates a new policy handler
func NewPolicyHandler(policyFlow businessflow.PolicyFlow) *PolicyHandler {
	return &PolicyHandler{
		policyFlow: policyFlow,
		validator:  validator.New(),
	}
}

func (h *PolicyHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *PolicyHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// CreatePolicy handles policy entry
// @Summary Create Policy
// @Description Register a policy, creating the customer on the fly when absent
// @Tags Policies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePolicyRequest true "Policy data"
// @Success 201 {object} dto.APIResponse{data=dto.PolicyDTO} "Policy created"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 409 {object} dto.APIResponse "Policy number already exists"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/policies [post]
func (h *PolicyHandler) CreatePolicy(c fiber.Ctx) error {
	var req dto.CreatePolicyRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	ipAddress := c.IP()
	userAgent := c.Get("User-Agent")
	metadata := businessflow.NewClientMetadata(ipAddress, userAgent)

	ctx := createRequestContextWithTimeout(c, "/api/v1/policies", 30*time.Second)
	result, err := h.policyFlow.CreatePolicy(ctx, &req, metadata)
	if err != nil {
		if businessflow.IsNationalIDInvalid(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "National id must be exactly 11 digits", "NATIONAL_ID_INVALID", nil)
		}
		if businessflow.IsPremiumInvalid(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Premium must be greater than zero", "PREMIUM_INVALID", nil)
		}
		if businessflow.IsEndDateBeforeStartDate(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "End date cannot be before start date", "END_DATE_INVALID", nil)
		}
		if businessflow.IsAgentNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Sales agent not found", "AGENT_NOT_FOUND", nil)
		}
		if businessflow.IsAgentInactive(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Sales agent is inactive", "AGENT_INACTIVE", nil)
		}
		if businessflow.IsPolicyNumberAlreadyExists(err) {
			return h.ErrorResponse(c, fiber.StatusConflict, "Policy number already exists", "POLICY_NUMBER_EXISTS", nil)
		}

		log.Println("Create policy failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create policy", "POLICY_CREATE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusCreated, "Policy created", result)
}

// ListPolicies returns policies ordered by registration date
// @Summary List Policies
// @Description List policies, newest first
// @Tags Policies
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.PolicyListResponse} "Policies retrieved"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/policies [get]
func (h *PolicyHandler) ListPolicies(c fiber.Ctx) error {
	limit := 0
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			offset = parsed
		}
	}

	ctx := createRequestContextWithTimeout(c, "/api/v1/policies", 30*time.Second)
	result, err := h.policyFlow.ListPolicies(ctx, limit, offset)
	if err != nil {
		log.Println("List policies failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list policies", "POLICY_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Policies retrieved", result)
}

// QuoteCommission previews the commission for a premium and product type
// @Summary Quote Commission
// @Description Preview the commission for a premium without persisting anything
// @Tags Policies
// @Produce json
// @Security BearerAuth
// @Param premium query number true "Premium amount"
// @Param product_type query string true "Product type"
// @Success 200 {object} dto.APIResponse{data=dto.CommissionQuoteResponse} "Quote computed"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/policies/quote [get]
func (h *PolicyHandler) QuoteCommission(c fiber.Ctx) error {
	productType := c.Query("product_type")
	if productType == "" {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "product_type is required", "VALIDATION_ERROR", nil)
	}

	premium, err := strconv.ParseFloat(c.Query("premium"), 64)
	if err != nil || premium <= 0 {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "premium must be a positive number", "VALIDATION_ERROR", nil)
	}

	ctx := createRequestContextWithTimeout(c, "/api/v1/policies/quote", 30*time.Second)
	result, err := h.policyFlow.QuoteCommission(ctx, productType, premium)
	if err != nil {
		if businessflow.IsPremiumInvalid(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Premium must be greater than zero", "PREMIUM_INVALID", nil)
		}

		log.Println("Quote commission failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to compute quote", "QUOTE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Quote computed", result)
}

// ListCommissionRates returns the effective rate table
// @Summary List Commission Rates
// @Description List the effective commission rate per product type
// @Tags Policies
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CommissionRateListResponse} "Rates retrieved"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/commission-rates [get]
func (h *PolicyHandler) ListCommissionRates(c fiber.Ctx) error {
	ctx := createRequestContextWithTimeout(c, "/api/v1/commission-rates", 30*time.Second)
	result, err := h.policyFlow.ListCommissionRates(ctx)
	if err != nil {
		log.Println("List commission rates failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list commission rates", "RATE_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Rates retrieved", result)
}
