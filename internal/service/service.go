package service

import (
	"context"
	"time"

	"envmonitor/internal/models"
	"envmonitor/internal/repository"
)

// IngestParams is a raw sample as delivered by a sensor; id and timestamp
// are stamped by the service on the way to the store.
type IngestParams struct {
	Temperature    float64
	Humidity       float64
	LightIntensity int
}

// Readings exposes the stored reading stream: ingestion plus the two query
// shapes the live channel and bulk poll consume.
type Readings interface {
	Ingest(ctx context.Context, p IngestParams) (models.Reading, error)
	LatestN(ctx context.Context, limit int) ([]models.Reading, error)
	FetchAll(ctx context.Context) ([]models.Reading, error)
	Latest(ctx context.Context) (models.Reading, error)
}

// Stats is the windowed statistics engine: pure over a reading sequence and
// a window specifier.
type Stats interface {
	Compute(readings []models.Reading, w models.WindowSpec) models.AggregateReport
}

// Rolling computes a trailing average ending at wall-clock "now".
type Rolling interface {
	Average(ctx context.Context, lookback time.Duration) (float64, error)
}

// Simulator runs the background loop that fabricates sensor samples.
// Stop via context cancellation in main() for graceful shutdown.
type Simulator interface {
	Run(ctx context.Context, tick time.Duration)
}

type Service struct {
	Readings
	Stats
	Rolling
	Simulator
}

// NewService wires the repository layer into concrete services. loc is the
// deployment's fixed location for calendar-date window filtering.
func NewService(repos *repository.Repository, loc *time.Location) *Service {
	readings := NewReadingService(repos.Readings)
	return &Service{
		Readings:  readings,
		Stats:     NewStatsService(loc),
		Rolling:   NewRollingService(repos.Readings),
		Simulator: NewSimulatorService(readings),
	}
}
