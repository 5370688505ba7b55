package businessflow

import (
	"context"
	"time"

	"github.com/budun/backoffice/app/dto"
	"github.com/budun/backoffice/repository"
	"github.com/budun/backoffice/utils"
)

// Renewal severity buckets
const (
	SeverityLapsed = "lapsed"
	SeverityDue    = "due"
	SeverityOK     = "ok"
)

// allowed lookahead shorthands for the renewal window
var validLookaheadDays = map[int]bool{30: true, 60: true, 90: true, 180: true}

// RenewalFlow handles expiry tracking over a date window
type RenewalFlow interface {
	ListRenewals(ctx context.Context, from, to *time.Time, lookaheadDays int) (*dto.RenewalListResponse, error)
}

// RenewalFlowImpl implements the renewal business flow
type RenewalFlowImpl struct {
	policyRepo   repository.PolicyRepository
	pastDays     int
	upcomingDays int
}

// NewRenewalFlow creates a new renewal flow instance
func NewRenewalFlow(policyRepo repository.PolicyRepository, pastDays, upcomingDays int) RenewalFlow {
	return &RenewalFlowImpl{
		policyRepo:   policyRepo,
		pastDays:     pastDays,
		upcomingDays: upcomingDays,
	}
}

// DaysRemaining computes whole days until the end date, rounding partial days up.
// Negative means the policy already lapsed, zero means it ends today.
func DaysRemaining(end, today time.Time) int {
	diff := utils.DateOnly(end).Sub(utils.DateOnly(today))
	days := diff / (24 * time.Hour)
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return int(days)
}

// Severity buckets days remaining into lapsed, due and ok
func Severity(daysRemaining int) string {
	switch {
	case daysRemaining < 0:
		return SeverityLapsed
	case daysRemaining <= utils.RenewalDueThresholdDays:
		return SeverityDue
	default:
		return SeverityOK
	}
}

// ListRenewals returns policies ending inside the window ordered by end date.
// When from/to are absent the window defaults to [today-pastDays, today+upcomingDays];
// a lookahead shorthand of 30/60/90/180 selects [today, today+N] instead.
func (rf *RenewalFlowImpl) ListRenewals(ctx context.Context, from, to *time.Time, lookaheadDays int) (*dto.RenewalListResponse, error) {
	today := utils.TodayUTC()

	windowFrom := today.AddDate(0, 0, -rf.pastDays)
	windowTo := today.AddDate(0, 0, rf.upcomingDays)

	if lookaheadDays != 0 {
		if !validLookaheadDays[lookaheadDays] {
			return nil, NewBusinessError("RENEWAL_VALIDATION_FAILED", "Renewal validation failed", ErrInvalidLookaheadDays)
		}
		windowFrom = today
		windowTo = today.AddDate(0, 0, lookaheadDays)
	}
	if from != nil {
		windowFrom = utils.DateOnly(*from)
	}
	if to != nil {
		windowTo = utils.DateOnly(*to)
	}
	if windowFrom.After(windowTo) {
		return nil, NewBusinessError("RENEWAL_VALIDATION_FAILED", "Renewal validation failed", ErrStartDateAfterEndDate)
	}

	policies, err := rf.policyRepo.ListExpiringBetween(ctx, windowFrom, windowTo)
	if err != nil {
		return nil, NewBusinessError("RENEWAL_LIST_FAILED", "Failed to list renewals", err)
	}

	response := &dto.RenewalListResponse{
		From:  windowFrom.Format("2006-01-02"),
		To:    windowTo.Format("2006-01-02"),
		Items: make([]dto.RenewalItemDTO, 0, len(policies)),
	}

	for _, policy := range policies {
		days := DaysRemaining(policy.EndDate, today)
		severity := Severity(days)

		customerName := "Bilinmiyor"
		if policy.Customer.ID != 0 {
			customerName = policy.Customer.FullName
		}

		response.Items = append(response.Items, dto.RenewalItemDTO{
			PolicyID:      policy.ID,
			PolicyNumber:  policy.PolicyNumber,
			CustomerName:  customerName,
			ProductType:   policy.ProductType,
			Company:       policy.Company,
			EndDate:       policy.EndDate.Format("2006-01-02"),
			Premium:       policy.Premium,
			RenewalStatus: policy.RenewalStatus,
			DaysRemaining: days,
			Severity:      severity,
		})

		if days < 0 {
			response.LapsedCount++
		} else {
			response.UpcomingCount++
		}
	}
	response.Total = len(response.Items)

	return response, nil
}
