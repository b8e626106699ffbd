package service

import (
	"context"
	"time"

	"envmonitor/internal/metrics"
	"envmonitor/internal/models"
	"envmonitor/internal/repository"

	"github.com/google/uuid"
)

const (
	defaultFetchLimit = 100
	maxFetchLimit     = 1000
)

// ReadingService owns the reading stream: it stamps and persists new
// samples and serves the newest-first query shapes. Range validation is
// deliberately absent; out-of-range sensor values pass through untouched.
type ReadingService struct {
	repo repository.ReadingRepo
}

func NewReadingService(repo repository.ReadingRepo) *ReadingService {
	return &ReadingService{repo: repo}
}

// Ingest stamps a fresh id and UTC timestamp onto the sample and persists
// it. The committed reading is returned so callers can echo it back.
func (s *ReadingService) Ingest(ctx context.Context, p IngestParams) (models.Reading, error) {
	reading := models.Reading{
		ID:             uuid.NewString(),
		Timestamp:      time.Now().UTC().Truncate(time.Second),
		Temperature:    p.Temperature,
		Humidity:       p.Humidity,
		LightIntensity: p.LightIntensity,
	}
	if err := s.repo.Insert(ctx, reading); err != nil {
		return models.Reading{}, err
	}
	metrics.ReadingsIngested.Inc()
	return reading, nil
}

// LatestN returns up to limit readings, newest first. Non-positive limits
// fall back to the default page size; FetchAll bypasses the cap for
// full-history consumers like the statistics endpoint.
func (s *ReadingService) LatestN(ctx context.Context, limit int) ([]models.Reading, error) {
	if limit <= 0 {
		limit = defaultFetchLimit
	}
	if limit > maxFetchLimit {
		limit = maxFetchLimit
	}
	return s.repo.LatestN(ctx, limit)
}

// FetchAll returns the entire stored history, newest first.
func (s *ReadingService) FetchAll(ctx context.Context) ([]models.Reading, error) {
	return s.repo.LatestN(ctx, 0)
}

// Latest returns the newest stored reading, or repository.ErrNoReadings.
func (s *ReadingService) Latest(ctx context.Context) (models.Reading, error) {
	return s.repo.Latest(ctx)
}
