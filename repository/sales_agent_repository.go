package repository

import (
	"context"

	"github.com/budun/backoffice/models"
	"gorm.io/gorm"
)

// SalesAgentRepositoryImpl implements SalesAgentRepository interface
type SalesAgentRepositoryImpl struct {
	*BaseRepository[models.SalesAgent, models.SalesAgentFilter]
}

// NewSalesAgentRepository creates a new sales agent repository
func NewSalesAgentRepository(db *gorm.DB) SalesAgentRepository {
	return &SalesAgentRepositoryImpl{
		BaseRepository: NewBaseRepository[models.SalesAgent, models.SalesAgentFilter](db),
	}
}

// ListByStatus returns agents with the given status, all agents when status is empty
func (r *SalesAgentRepositoryImpl) ListByStatus(ctx context.Context, status string, limit, offset int) ([]*models.SalesAgent, error) {
	filter := models.SalesAgentFilter{}
	if status != "" {
		filter.Status = &status
	}
	return r.ByFilter(ctx, filter, "full_name ASC", limit, offset)
}

// ByFilter retrieves agents based on filter criteria
func (r *SalesAgentRepositoryImpl) ByFilter(ctx context.Context, filter models.SalesAgentFilter, orderBy string, limit, offset int) ([]*models.SalesAgent, error) {
	db := r.getDB(ctx)
	var agents []*models.SalesAgent

	query := db.Model(&models.SalesAgent{})
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

	err := query.Find(&agents).Error
	if err != nil {
		return nil, err
	}
	return agents, nil
}

// Count returns the number of agents matching the filter
func (r *SalesAgentRepositoryImpl) Count(ctx context.Context, filter models.SalesAgentFilter) (int64, error) {
	db := r.getDB(ctx)
	var count int64

	query := db.Model(&models.SalesAgent{})
	query = r.applyFilter(query, filter)

	err := query.Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Exists checks if any agent matching the filter exists
func (r *SalesAgentRepositoryImpl) Exists(ctx context.Context, filter models.SalesAgentFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter applies the filter to the query
func (r *SalesAgentRepositoryImpl) applyFilter(query *gorm.DB, filter models.SalesAgentFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.UUID != nil {
		query = query.Where("uuid = ?", *filter.UUID)
	}
	if filter.FullName != nil {
		query = query.Where("full_name ILIKE ?", "%"+*filter.FullName+"%")
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Email != nil {
		query = query.Where("email = ?", *filter.Email)
	}
	return query
}
