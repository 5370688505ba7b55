package handlers

import (
	"log"
	"time"

	"github.com/budun/backoffice/app/dto"
	businessflow "github.com/budun/backoffice/business_flow"
	"github.com/gofiber/fiber/v3"
)

// ReportHandlerInterface defines the contract for report handlers
type ReportHandlerInterface interface {
	Summary(c fiber.Ctx) error
	ExportCSV(c fiber.Ctx) error
	ExportXLSX(c fiber.Ctx) error
}

// ReportHandler handles reporting HTTP requests
type ReportHandler struct {
	reportFlow businessflow.ReportFlow
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportFlow businessflow.ReportFlow) *ReportHandler {
	return &ReportHandler{
		reportFlow: reportFlow,
	}
}

func (h *ReportHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *ReportHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Summary returns portfolio-wide aggregates
// @Summary Report Summary
// @Description Policy count, premium and commission sums, customer count, company and product breakdowns
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ReportSummaryResponse} "Summary computed"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/reports/summary [get]
func (h *ReportHandler) Summary(c fiber.Ctx) error {
	ctx := createRequestContextWithTimeout(c, "/api/v1/reports/summary", 30*time.Second)
	result, err := h.reportFlow.Summary(ctx)
	if err != nil {
		log.Println("Report summary failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to compute report summary", "REPORT_SUMMARY_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Summary computed", result)
}

// ExportCSV streams the portfolio as a CSV download
// @Summary Export Report CSV
// @Description Download the portfolio as UTF-8 CSV with BOM
// @Tags Reports
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file "CSV file"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/reports/export.csv [get]
func (h *ReportHandler) ExportCSV(c fiber.Ctx) error {
	ctx := createRequestContextWithTimeout(c, "/api/v1/reports/export.csv", 60*time.Second)
	filename, data, err := h.reportFlow.ExportCSV(ctx)
	if err != nil {
		log.Println("Report CSV export failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to export report", "REPORT_EXPORT_FAILED", nil)
	}

	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", "attachment; filename="+filename)
	return c.Send(data)
}

// ExportXLSX streams the portfolio as a spreadsheet download
// @Summary Export Report XLSX
// @Description Download the portfolio as an Excel workbook
// @Tags Reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file "XLSX file"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/reports/export.xlsx [get]
func (h *ReportHandler) ExportXLSX(c fiber.Ctx) error {
	ctx := createRequestContextWithTimeout(c, "/api/v1/reports/export.xlsx", 60*time.Second)
	filename, data, err := h.reportFlow.ExportXLSX(ctx)
	if err != nil {
		log.Println("Report XLSX export failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to export report", "REPORT_EXPORT_FAILED", nil)
	}

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", "attachment; filename="+filename)
	return c.Send(data)
}
