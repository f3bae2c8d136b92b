package adminController

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriodStart(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, now.AddDate(0, 0, -7), PeriodStart("week", now))
	assert.Equal(t, now.AddDate(0, -1, 0), PeriodStart("month", now))
	assert.Equal(t, now.AddDate(-1, 0, 0), PeriodStart("year", now))

	// Unknown periods fall back to a month.
	assert.Equal(t, now.AddDate(0, -1, 0), PeriodStart("", now))
	assert.Equal(t, now.AddDate(0, -1, 0), PeriodStart("quarter", now))
}

func TestPeriodStartWeekLowerBound(t *testing.T) {
	now := time.Now()
	start := PeriodStart("week", now)
	assert.False(t, start.After(now.AddDate(0, 0, -7)),
		"weekly window must begin no later than now - 7 days")
	assert.True(t, start.Equal(now.AddDate(0, 0, -7)))
}
