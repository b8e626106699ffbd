package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"envmonitor/internal/models"
)

// readingsRepoStub is a local, uniquely named test stub that satisfies
// repository.ReadingRepo.
type readingsRepoStub struct {
	inserted  []models.Reading
	insertErr error
	latestN   []models.Reading
	lastLimit int
}

func (s *readingsRepoStub) Insert(ctx context.Context, r models.Reading) error {
	s.inserted = append(s.inserted, r)
	return s.insertErr
}
func (s *readingsRepoStub) LatestN(ctx context.Context, limit int) ([]models.Reading, error) {
	s.lastLimit = limit
	return s.latestN, nil
}
func (s *readingsRepoStub) Latest(ctx context.Context) (models.Reading, error) {
	if len(s.latestN) == 0 {
		return models.Reading{}, errors.New("empty")
	}
	return s.latestN[0], nil
}
func (s *readingsRepoStub) RangeAverage(ctx context.Context, metric string, from, to time.Time) (float64, error) {
	return 0, nil
}

func TestReadings_Ingest_StampsIDAndUTCTimestamp(t *testing.T) {
	t.Parallel()

	stub := &readingsRepoStub{}
	svc := NewReadingService(stub)

	before := time.Now().UTC().Add(-time.Second)
	got, err := svc.Ingest(context.Background(), IngestParams{
		Temperature:    26.4,
		Humidity:       71.2,
		LightIntensity: 2830,
	})
	after := time.Now().UTC().Add(time.Second)
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	if got.ID == "" {
		t.Error("expected a generated id")
	}
	if got.Timestamp.Location() != time.UTC {
		t.Errorf("timestamp must be UTC, got %v", got.Timestamp.Location())
	}
	if got.Timestamp.Before(before) || got.Timestamp.After(after) {
		t.Errorf("timestamp not stamped at ingest time: %v", got.Timestamp)
	}
	if got.Temperature != 26.4 || got.Humidity != 71.2 || got.LightIntensity != 2830 {
		t.Errorf("values must pass through untouched: %+v", got)
	}

	if len(stub.inserted) != 1 {
		t.Fatalf("want 1 insert, got %d", len(stub.inserted))
	}
	if stub.inserted[0].ID != got.ID {
		t.Error("persisted reading differs from returned reading")
	}
}

func TestReadings_Ingest_NoValidation(t *testing.T) {
	t.Parallel()

	// out-of-range values belong to the ingestion boundary upstream; this
	// layer passes them through
	stub := &readingsRepoStub{}
	got, err := NewReadingService(stub).Ingest(context.Background(), IngestParams{
		Temperature:    -80,
		Humidity:       140,
		LightIntensity: 9999,
	})
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if got.LightIntensity != 9999 {
		t.Fatalf("value was mangled: %+v", got)
	}
}

func TestReadings_Ingest_PropagatesInsertError(t *testing.T) {
	t.Parallel()

	stub := &readingsRepoStub{insertErr: errors.New("locked")}
	if _, err := NewReadingService(stub).Ingest(context.Background(), IngestParams{}); err == nil {
		t.Fatal("expected insert error to surface")
	}
}

func TestReadings_LatestN_Limits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"zero falls back to default", 0, 100},
		{"negative falls back to default", -5, 100},
		{"explicit limit passes through", 250, 250},
		{"oversized limit is capped", 100000, 1000},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			stub := &readingsRepoStub{}
			if _, err := NewReadingService(stub).LatestN(context.Background(), tc.limit); err != nil {
				t.Fatalf("LatestN: %v", err)
			}
			if stub.lastLimit != tc.wantLimit {
				t.Fatalf("repo limit: want %d, got %d", tc.wantLimit, stub.lastLimit)
			}
		})
	}
}

func TestReadings_FetchAll_Unbounded(t *testing.T) {
	t.Parallel()

	stub := &readingsRepoStub{lastLimit: -1}
	if _, err := NewReadingService(stub).FetchAll(context.Background()); err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if stub.lastLimit != 0 {
		t.Fatalf("FetchAll must query without a limit, got %d", stub.lastLimit)
	}
}
