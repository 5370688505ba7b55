package businessflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysRemaining(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		end      time.Time
		expected int
	}{
		{"ends today", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), 0},
		{"ends tomorrow", time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), 1},
		{"lapsed yesterday", time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), -1},
		{"ends in a month", time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC), 31},
		{"time of day ignored", time.Date(2026, 3, 11, 23, 59, 0, 0, time.UTC), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysRemaining(tt.end, today))
		})
	}
}

func TestDaysRemainingIgnoresTodayClock(t *testing.T) {
	// an afternoon "today" must not shift the day count
	today := time.Date(2026, 3, 10, 16, 30, 0, 0, time.UTC)
	end := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 2, DaysRemaining(end, today))
}

func TestSeverity(t *testing.T) {
	tests := []struct {
		name          string
		daysRemaining int
		expected      string
	}{
		{"lapsed", -1, SeverityLapsed},
		{"long lapsed", -200, SeverityLapsed},
		{"ends today", 0, SeverityDue},
		{"inside due window", 10, SeverityDue},
		{"due boundary", 18, SeverityDue},
		{"just past boundary", 19, SeverityOK},
		{"far out", 180, SeverityOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Severity(tt.daysRemaining))
		})
	}
}
