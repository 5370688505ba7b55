package repository

import (
	"context"
	"time"

	"github.com/budun/backoffice/models"
	"gorm.io/gorm"
)

// PolicyRepositoryImpl implements PolicyRepository interface
type PolicyRepositoryImpl struct {
	*BaseRepository[models.Policy, models.PolicyFilter]
}

// NewPolicyRepository creates a new policy repository
func NewPolicyRepository(db *gorm.DB) PolicyRepository {
	return &PolicyRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Policy, models.PolicyFilter](db),
	}
}

// ListRecent returns policies by registration time, newest first, with customer and agent preloaded
func (r *PolicyRepositoryImpl) ListRecent(ctx context.Context, limit, offset int) ([]*models.Policy, error) {
	db := r.getDB(ctx)
	var policies []*models.Policy

	query := db.Model(&models.Policy{}).
		Preload("Customer").
		Preload("Agent").
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	err := query.Find(&policies).Error
	if err != nil {
		return nil, err
	}
	return policies, nil
}

// ListByPaymentMethod returns policies paid with the given method, newest first
func (r *PolicyRepositoryImpl) ListByPaymentMethod(ctx context.Context, method string) ([]*models.Policy, error) {
	db := r.getDB(ctx)
	var policies []*models.Policy

	err := db.Model(&models.Policy{}).
		Preload("Customer").
		Where("payment_method = ?", method).
		Order("created_at DESC").
		Find(&policies).Error
	if err != nil {
		return nil, err
	}
	return policies, nil
}

// ListExpiringBetween returns policies whose end date falls inside [from, to], soonest first
func (r *PolicyRepositoryImpl) ListExpiringBetween(ctx context.Context, from, to time.Time) ([]*models.Policy, error) {
	db := r.getDB(ctx)
	var policies []*models.Policy

	err := db.Model(&models.Policy{}).
		Preload("Customer").
		Where("end_date >= ? AND end_date <= ?", from, to).
		Order("end_date ASC").
		Find(&policies).Error
	if err != nil {
		return nil, err
	}
	return policies, nil
}

// CountExpiringBetween counts policies whose end date falls inside [from, to]
func (r *PolicyRepositoryImpl) CountExpiringBetween(ctx context.Context, from, to time.Time) (int64, error) {
	db := r.getDB(ctx)
	var count int64

	err := db.Model(&models.Policy{}).
		Where("end_date >= ? AND end_date <= ?", from, to).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ByFilter retrieves policies based on filter criteria
func (r *PolicyRepositoryImpl) ByFilter(ctx context.Context, filter models.PolicyFilter, orderBy string, limit, offset int) ([]*models.Policy, error) {
	db := r.getDB(ctx)
	var policies []*models.Policy

	query := db.Model(&models.Policy{})
	query = r.applyFilter(query, filter)

	if orderBy != "" {
		query = query.Order(orderBy)
	} else {
		query = query.Order("id DESC")
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	err := query.Find(&policies).Error
	if err != nil {
		return nil, err
	}
	return policies, nil
}

// Count returns the number of policies matching the filter
func (r *PolicyRepositoryImpl) Count(ctx context.Context, filter models.PolicyFilter) (int64, error) {
	db := r.getDB(ctx)
	var count int64

	query := db.Model(&models.Policy{})
	query = r.applyFilter(query, filter)

	err := query.Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Exists checks if any policy matching the filter exists
func (r *PolicyRepositoryImpl) Exists(ctx context.Context, filter models.PolicyFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter applies the filter to the query
func (r *PolicyRepositoryImpl) applyFilter(query *gorm.DB, filter models.PolicyFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.UUID != nil {
		query = query.Where("uuid = ?", *filter.UUID)
	}
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.AgentID != nil {
		query = query.Where("agent_id = ?", *filter.AgentID)
	}
	if filter.PolicyNumber != nil {
		query = query.Where("policy_number = ?", *filter.PolicyNumber)
	}
	if filter.ProductType != nil {
		query = query.Where("product_type = ?", *filter.ProductType)
	}
	if filter.Company != nil {
		query = query.Where("company = ?", *filter.Company)
	}
	if filter.PaymentMethod != nil {
		query = query.Where("payment_method = ?", *filter.PaymentMethod)
	}
	if filter.RenewalStatus != nil {
		query = query.Where("renewal_status = ?", *filter.RenewalStatus)
	}
	if filter.EndDateAfter != nil {
		query = query.Where("end_date >= ?", *filter.EndDateAfter)
	}
	if filter.EndDateBefore != nil {
		query = query.Where("end_date <= ?", *filter.EndDateBefore)
	}
	if filter.CreatedAfter != nil {
		query = query.Where("created_at >= ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		query = query.Where("created_at <= ?", *filter.CreatedBefore)
	}
	return query
}
