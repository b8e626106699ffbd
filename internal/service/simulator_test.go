package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"envmonitor/internal/models"
)

// simReadingsStub is a local, uniquely named stub that satisfies Readings.
type simReadingsStub struct {
	mu       sync.Mutex
	ingested []IngestParams
}

func (s *simReadingsStub) Ingest(ctx context.Context, p IngestParams) (models.Reading, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ingested = append(s.ingested, p)
	return models.Reading{}, nil
}
func (s *simReadingsStub) LatestN(ctx context.Context, limit int) ([]models.Reading, error) {
	return nil, nil
}
func (s *simReadingsStub) FetchAll(ctx context.Context) ([]models.Reading, error) { return nil, nil }
func (s *simReadingsStub) Latest(ctx context.Context) (models.Reading, error) {
	return models.Reading{}, nil
}

func (s *simReadingsStub) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ingested)
}

func TestSimulator_SampleStaysInSensorRange(t *testing.T) {
	t.Parallel()

	sim := NewSimulatorService(&simReadingsStub{})

	// sweep a full day in 10-minute steps
	day := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	for m := 0; m < 24*60; m += 10 {
		p := sim.sample(day.Add(time.Duration(m) * time.Minute))

		if p.LightIntensity < 0 || p.LightIntensity > models.MaxLightIntensity {
			t.Fatalf("light out of sensor range at +%dm: %d", m, p.LightIntensity)
		}
		if p.Humidity < 0 || p.Humidity > 100 {
			t.Fatalf("humidity out of range at +%dm: %v", m, p.Humidity)
		}
		if p.Temperature < simBaseTempC-simTempSwingC-simTempJitterC ||
			p.Temperature > simBaseTempC+simTempSwingC+simTempJitterC {
			t.Fatalf("temperature outside envelope at +%dm: %v", m, p.Temperature)
		}
	}
}

func TestSimulator_RunIngestsUntilCanceled(t *testing.T) {
	t.Parallel()

	stub := &simReadingsStub{}
	sim := NewSimulatorService(stub)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sim.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for stub.count() < 3 {
		select {
		case <-deadline:
			t.Fatal("simulator produced no samples")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("simulator did not stop on cancel")
	}
}
