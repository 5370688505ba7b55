package utils

import (
	"time"
)

// Token and session time constants
const (
	// AccessTokenTTL is the time-to-live for access tokens (24 hours)
	AccessTokenTTL = 24 * time.Hour

	// AccessTokenTTLSeconds is the time-to-live for access tokens in seconds (86400 seconds = 24 hours)
	AccessTokenTTLSeconds = 86400

	// SessionTimeout is the default session timeout (24 hours)
	SessionTimeout = 24 * time.Hour
)

// CORS and security constants
const (
	// CORSMaxAge is the maximum age for CORS preflight requests (24 hours)
	CORSMaxAge = 86400
)

// Commission and renewal constants
const (
	// DefaultCommissionRate applies to product types missing from the rate table
	DefaultCommissionRate = 0.15

	// RenewalPastDays is how many days back the default renewal window reaches
	RenewalPastDays = 5

	// RenewalUpcomingDays is how many days forward the default renewal window reaches
	RenewalUpcomingDays = 18

	// RenewalDueThresholdDays separates "due" renewals from comfortably distant ones
	RenewalDueThresholdDays = 18

	// DashboardWindowDays is the expiry lookahead shown on the dashboard
	DashboardWindowDays = 30
)

// Cache key constants
const (
	// DashboardSnapshotCacheKey stores the periodically refreshed dashboard aggregates
	DashboardSnapshotCacheKey = "dashboard:snapshot"
)
