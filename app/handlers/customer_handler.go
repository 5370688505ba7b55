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

// CustomerHandlerInterface defines the contract for customer handlers
type CustomerHandlerInterface interface {
	ListCustomers(c fiber.Ctx) error
	CreateCustomer(c fiber.Ctx) error
}

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerFlow businessflow.CustomerFlow
	validator    *validator.Validate
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerFlow businessflow.CustomerFlow) *CustomerHandler {
	return &CustomerHandler{
		customerFlow: customerFlow,
		validator:    validator.New(),
	}
}

func (h *CustomerHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *CustomerHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ListCustomers returns all customers ordered alphabetically
// @Summary List Customers
// @Description List customers ordered by full name
// @Tags Customers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CustomerListResponse} "Customers retrieved"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/customers [get]
func (h *CustomerHandler) ListCustomers(c fiber.Ctx) error {
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

	ctx := createRequestContextWithTimeout(c, "/api/v1/customers", 30*time.Second)
	result, err := h.customerFlow.ListCustomers(ctx, limit, offset)
	if err != nil {
		log.Println("List customers failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list customers", "CUSTOMER_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Customers retrieved", result)
}

// CreateCustomer registers a new customer
// @Summary Create Customer
// @Description Register a customer with an 11 digit national id
// @Tags Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCustomerRequest true "Customer data"
// @Success 201 {object} dto.APIResponse{data=dto.CustomerDTO} "Customer created"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 409 {object} dto.APIResponse "National id already exists"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/customers [post]
func (h *CustomerHandler) CreateCustomer(c fiber.Ctx) error {
	var req dto.CreateCustomerRequest
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

	ctx := createRequestContextWithTimeout(c, "/api/v1/customers", 30*time.Second)
	result, err := h.customerFlow.CreateCustomer(ctx, &req, metadata)
	if err != nil {
		if businessflow.IsNationalIDInvalid(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "National id must be exactly 11 digits", "NATIONAL_ID_INVALID", nil)
		}
		if businessflow.IsNationalIDAlreadyExists(err) {
			return h.ErrorResponse(c, fiber.StatusConflict, "National id already exists", "NATIONAL_ID_EXISTS", nil)
		}

		log.Println("Create customer failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create customer", "CUSTOMER_CREATE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusCreated, "Customer created", result)
}
