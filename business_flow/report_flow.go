package businessflow

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/budun/backoffice/app/dto"
	"github.com/budun/backoffice/app/services"
	"github.com/budun/backoffice/models"
	"github.com/budun/backoffice/repository"
	"github.com/budun/backoffice/utils"
	"github.com/xuri/excelize/v2"
)

// reportHeader is the export column set, fixed by the reporting format
var reportHeader = []string{"Poliçe No", "Müşteri", "Tür", "Şirket", "Prim", "Komisyon", "Başlangıç", "Bitiş"}

// ReportFlow handles portfolio aggregation and file exports
type ReportFlow interface {
	Summary(ctx context.Context) (*dto.ReportSummaryResponse, error)
	ExportCSV(ctx context.Context) (filename string, data []byte, err error)
	ExportXLSX(ctx context.Context) (filename string, data []byte, err error)
}

// ReportFlowImpl implements the reporting business flow
type ReportFlowImpl struct {
	policyRepo repository.PolicyRepository
}

// NewReportFlow creates a new report flow instance
func NewReportFlow(policyRepo repository.PolicyRepository) ReportFlow {
	return &ReportFlowImpl{
		policyRepo: policyRepo,
	}
}

// Summary computes portfolio-wide aggregates with buckets sorted by descending count
func (rf *ReportFlowImpl) Summary(ctx context.Context) (*dto.ReportSummaryResponse, error) {
	policies, err := rf.policyRepo.ListRecent(ctx, 0, 0)
	if err != nil {
		return nil, NewBusinessError("REPORT_SUMMARY_FAILED", "Failed to compute report summary", err)
	}

	summary := SummarizePolicies(policies)
	return &summary, nil
}

// SummarizePolicies aggregates counts, sums and per-company / per-product buckets
func SummarizePolicies(policies []*models.Policy) dto.ReportSummaryResponse {
	byCompany := make(map[string]int)
	byProduct := make(map[string]int)
	customers := make(map[uint]bool)

	summary := dto.ReportSummaryResponse{
		TotalPolicies: len(policies),
	}
	for _, policy := range policies {
		summary.TotalPremium += policy.Premium
		summary.TotalCommission += policy.Commission
		byCompany[policy.Company]++
		byProduct[policy.ProductType]++
		customers[policy.CustomerID] = true
	}

	summary.TotalPremium = services.Round2(summary.TotalPremium)
	summary.TotalCommission = services.Round2(summary.TotalCommission)
	summary.CustomerCount = len(customers)
	summary.ByCompany = sortedBuckets(byCompany)
	summary.ByProductType = sortedBuckets(byProduct)
	return summary
}

// ExportCSV renders the portfolio as UTF-8 CSV with a BOM and fully quoted fields
func (rf *ReportFlowImpl) ExportCSV(ctx context.Context) (string, []byte, error) {
	policies, err := rf.policyRepo.ListRecent(ctx, 0, 0)
	if err != nil {
		return "", nil, NewBusinessError("REPORT_EXPORT_FAILED", "Failed to export report", err)
	}

	var sb strings.Builder
	sb.WriteString("\uFEFF")
	writeCSVRow(&sb, reportHeader)
	for _, policy := range policies {
		writeCSVRow(&sb, reportRow(policy))
	}

	filename := fmt.Sprintf("budun-rapor-%s.csv", utils.TodayUTC().Format("2006-01-02"))
	return filename, []byte(sb.String()), nil
}

// ExportXLSX renders the same rows as a spreadsheet
func (rf *ReportFlowImpl) ExportXLSX(ctx context.Context) (string, []byte, error) {
	policies, err := rf.policyRepo.ListRecent(ctx, 0, 0)
	if err != nil {
		return "", nil, NewBusinessError("REPORT_EXPORT_FAILED", "Failed to export report", err)
	}

	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	sheet := "Rapor"
	xl.SetSheetName(xl.GetSheetName(0), sheet)

	header := make([]any, len(reportHeader))
	for i, h := range reportHeader {
		header[i] = h
	}
	if err := xl.SetSheetRow(sheet, "A1", &header); err != nil {
		return "", nil, NewBusinessError("REPORT_EXPORT_FAILED", "Failed to export report", err)
	}

	for ri, policy := range policies {
		fields := reportRow(policy)
		row := make([]any, len(fields))
		for i, f := range fields {
			row[i] = f
		}

		cell, err := excelize.CoordinatesToCellName(1, ri+2)
		if err != nil {
			return "", nil, NewBusinessError("REPORT_EXPORT_FAILED", "Failed to export report", err)
		}
		if err := xl.SetSheetRow(sheet, cell, &row); err != nil {
			return "", nil, NewBusinessError("REPORT_EXPORT_FAILED", "Failed to export report", err)
		}
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return "", nil, NewBusinessError("REPORT_EXPORT_FAILED", "Failed to export report", err)
	}

	filename := fmt.Sprintf("budun-rapor-%s.xlsx", utils.TodayUTC().Format("2006-01-02"))
	return filename, buf.Bytes(), nil
}

// reportRow renders one policy as export fields, dates in dd.MM.yyyy
func reportRow(policy *models.Policy) []string {
	customerName := "Bilinmiyor"
	if policy.Customer.ID != 0 {
		customerName = policy.Customer.FullName
	}

	return []string{
		policy.PolicyNumber,
		customerName,
		policy.ProductType,
		policy.Company,
		fmt.Sprintf("%.2f", policy.Premium),
		fmt.Sprintf("%.2f", policy.Commission),
		utils.FormatTurkishDate(policy.StartDate),
		utils.FormatTurkishDate(policy.EndDate),
	}
}

// writeCSVRow writes one comma-separated line with every field double-quoted
func writeCSVRow(sb *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('"')
		sb.WriteString(strings.ReplaceAll(field, `"`, `""`))
		sb.WriteByte('"')
	}
	sb.WriteByte('\n')
}

// sortedBuckets converts a count map to a slice sorted by descending count, name asc on ties
func sortedBuckets(counts map[string]int) []dto.ReportBucketDTO {
	buckets := make([]dto.ReportBucketDTO, 0, len(counts))
	for name, count := range counts {
		buckets = append(buckets, dto.ReportBucketDTO{Name: name, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return buckets[i].Name < buckets[j].Name
	})
	return buckets
}
