package service

import (
	"context"
	"errors"
	"time"

	"envmonitor/internal/repository"
)

const metricHumidity = "humidity"

// Common lookback horizons used by the dashboard.
const (
	LookbackShort = 30 * time.Minute
	LookbackLong  = 3 * time.Hour
)

var errInvalidLookback = errors.New("lookback must be positive")

// RollingService answers trailing-average queries against the store rather
// than an in-memory sequence, since the lookback can exceed what a client
// holds. Both the service and the store speak UTC; the store writes UTC
// timestamps and the bounds passed here are converted before querying.
type RollingService struct {
	repo repository.ReadingRepo
}

func NewRollingService(repo repository.ReadingRepo) *RollingService {
	return &RollingService{repo: repo}
}

// Average returns the mean humidity over [now-lookback, now]. An empty
// range yields 0, never an error, so the report always renders a number.
func (s *RollingService) Average(ctx context.Context, lookback time.Duration) (float64, error) {
	if lookback <= 0 {
		return 0, errInvalidLookback
	}
	now := time.Now().UTC()
	return s.repo.RangeAverage(ctx, metricHumidity, now.Add(-lookback), now)
}
