package repository

import (
	"context"
	"errors"

	"github.com/budun/backoffice/models"
	"gorm.io/gorm"
)

// CommissionRateRepositoryImpl implements CommissionRateRepository interface
type CommissionRateRepositoryImpl struct {
	*BaseRepository[models.CommissionRate, models.CommissionRateFilter]
}

// NewCommissionRateRepository creates a new commission rate repository
func NewCommissionRateRepository(db *gorm.DB) CommissionRateRepository {
	return &CommissionRateRepositoryImpl{
		BaseRepository: NewBaseRepository[models.CommissionRate, models.CommissionRateFilter](db),
	}
}

// ListAll returns every configured rate ordered by product type
func (r *CommissionRateRepositoryImpl) ListAll(ctx context.Context) ([]*models.CommissionRate, error) {
	return r.ByFilter(ctx, models.CommissionRateFilter{}, "product_type ASC", 0, 0)
}

// ByProductType finds the rate configured for a product type
func (r *CommissionRateRepositoryImpl) ByProductType(ctx context.Context, productType string) (*models.CommissionRate, error) {
	db := r.getDB(ctx)
	var rate models.CommissionRate
	err := db.Where("product_type = ?", productType).Last(&rate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rate, nil
}

// ByFilter retrieves rates based on filter criteria
func (r *CommissionRateRepositoryImpl) ByFilter(ctx context.Context, filter models.CommissionRateFilter, orderBy string, limit, offset int) ([]*models.CommissionRate, error) {
	db := r.getDB(ctx)
	var rates []*models.CommissionRate

	query := db.Model(&models.CommissionRate{})
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

	err := query.Find(&rates).Error
	if err != nil {
		return nil, err
	}
	return rates, nil
}

// Count returns the number of rates matching the filter
func (r *CommissionRateRepositoryImpl) Count(ctx context.Context, filter models.CommissionRateFilter) (int64, error) {
	db := r.getDB(ctx)
	var count int64

	query := db.Model(&models.CommissionRate{})
	query = r.applyFilter(query, filter)

	err := query.Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Exists checks if any rate matching the filter exists
func (r *CommissionRateRepositoryImpl) Exists(ctx context.Context, filter models.CommissionRateFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter applies the filter to the query
func (r *CommissionRateRepositoryImpl) applyFilter(query *gorm.DB, filter models.CommissionRateFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.UUID != nil {
		query = query.Where("uuid = ?", *filter.UUID)
	}
	if filter.ProductType != nil {
		query = query.Where("product_type = ?", *filter.ProductType)
	}
	if filter.Percent != nil {
		query = query.Where("percent = ?", *filter.Percent)
	}
	return query
}
