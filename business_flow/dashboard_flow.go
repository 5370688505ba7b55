package businessflow

import (
	"context"
	"encoding/json"
	"time"

	"github.com/budun/backoffice/app/dto"
	"github.com/budun/backoffice/app/services"
	"github.com/budun/backoffice/config"
	"github.com/budun/backoffice/models"
	"github.com/budun/backoffice/repository"
	"github.com/budun/backoffice/utils"
	"github.com/redis/go-redis/v9"
)

// DashboardFlow serves the landing page aggregates
type DashboardFlow interface {
	Snapshot(ctx context.Context) (*dto.DashboardSnapshotResponse, error)
	Refresh(ctx context.Context) (*dto.DashboardSnapshotResponse, error)
}

// DashboardFlowImpl implements the dashboard business flow
type DashboardFlowImpl struct {
	policyRepo  repository.PolicyRepository
	cacheConfig *config.CacheConfig
	rc          *redis.Client
}

// NewDashboardFlow creates a new dashboard flow instance
func NewDashboardFlow(policyRepo repository.PolicyRepository, cacheConfig *config.CacheConfig, rc *redis.Client) DashboardFlow {
	return &DashboardFlowImpl{
		policyRepo:  policyRepo,
		cacheConfig: cacheConfig,
		rc:          rc,
	}
}

// Snapshot serves the cached aggregates, falling back to direct computation on miss
func (df *DashboardFlowImpl) Snapshot(ctx context.Context) (*dto.DashboardSnapshotResponse, error) {
	if df.rc != nil && df.cacheConfig != nil && df.cacheConfig.Enabled {
		cacheKey := redisKey(*df.cacheConfig, utils.DashboardSnapshotCacheKey)
		if bs, err := df.rc.Get(ctx, cacheKey).Bytes(); err == nil && len(bs) > 0 {
			var snapshot dto.DashboardSnapshotResponse
			if err := json.Unmarshal(bs, &snapshot); err == nil {
				return &snapshot, nil
			}
		}
	}

	return df.compute(ctx)
}

// Refresh recomputes the aggregates and replaces the cached snapshot.
// On computation failure the previous snapshot stays in place.
func (df *DashboardFlowImpl) Refresh(ctx context.Context) (*dto.DashboardSnapshotResponse, error) {
	snapshot, err := df.compute(ctx)
	if err != nil {
		return nil, err
	}

	if df.rc != nil && df.cacheConfig != nil && df.cacheConfig.Enabled {
		cacheKey := redisKey(*df.cacheConfig, utils.DashboardSnapshotCacheKey)
		if bs, err := json.Marshal(snapshot); err == nil {
			_ = df.rc.Set(ctx, cacheKey, bs, 0).Err()
		}
	}

	return snapshot, nil
}

// compute derives the dashboard counters from the live portfolio
func (df *DashboardFlowImpl) compute(ctx context.Context) (*dto.DashboardSnapshotResponse, error) {
	total, err := df.policyRepo.Count(ctx, models.PolicyFilter{})
	if err != nil {
		return nil, NewBusinessError("DASHBOARD_FAILED", "Failed to compute dashboard snapshot", err)
	}

	today := utils.TodayUTC()
	expiring, err := df.policyRepo.CountExpiringBetween(ctx, today, today.AddDate(0, 0, utils.DashboardWindowDays))
	if err != nil {
		return nil, NewBusinessError("DASHBOARD_FAILED", "Failed to compute dashboard snapshot", err)
	}

	policies, err := df.policyRepo.ByFilter(ctx, models.PolicyFilter{}, "", 0, 0)
	if err != nil {
		return nil, NewBusinessError("DASHBOARD_FAILED", "Failed to compute dashboard snapshot", err)
	}

	var totalPremium, remainingDebt float64
	for _, policy := range policies {
		totalPremium += policy.Premium
		remainingDebt += policy.RemainingDebt()
	}

	return &dto.DashboardSnapshotResponse{
		TotalPolicies: total,
		ExpiringSoon:  expiring,
		TotalPremium:  services.Round2(totalPremium),
		RemainingDebt: services.Round2(remainingDebt),
		GeneratedAt:   utils.UTCNow().Format(time.RFC3339),
	}, nil
}

// redisKey prefixes a cache key with the configured namespace
func redisKey(cfg config.CacheConfig, key string) string {
	return cfg.RedisPrefix + key
}
