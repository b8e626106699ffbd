package viewmodel

import (
	"sync"
	"testing"
	"time"

	"envmonitor/internal/models"
)

func reading(ts time.Time, light int) models.Reading {
	return models.Reading{
		ID:             ts.Format(time.RFC3339Nano),
		Timestamp:      ts,
		Temperature:    25,
		Humidity:       60,
		LightIntensity: light,
	}
}

func timestamps(rs []models.Reading) []time.Time {
	out := make([]time.Time, len(rs))
	for i, r := range rs {
		out[i] = r.Timestamp
	}
	return out
}

func assertSortedNewestFirst(t *testing.T, rs []models.Reading) {
	t.Helper()
	for i := 1; i < len(rs); i++ {
		if !rs[i-1].Timestamp.After(rs[i].Timestamp) {
			t.Fatalf("not sorted newest-first at %d: %v", i, timestamps(rs))
		}
	}
}

func TestReplaceAll_SortsAndDeduplicates(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	vm := New()
	vm.ReplaceAll([]models.Reading{
		reading(base, 100),
		reading(base.Add(10*time.Minute), 300),
		reading(base.Add(5*time.Minute), 200),
		reading(base.Add(10*time.Minute), 999), // duplicate timestamp dropped
	})

	got := vm.Snapshot()
	if len(got) != 3 {
		t.Fatalf("want 3 readings, got %d: %v", len(got), timestamps(got))
	}
	assertSortedNewestFirst(t, got)
	if got[0].LightIntensity != 300 {
		t.Fatalf("first occurrence must win a duplicate: %+v", got[0])
	}
}

func TestReplaceAll_IsWholesale(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	vm := New()
	vm.ReplaceAll([]models.Reading{reading(base, 1), reading(base.Add(time.Minute), 2)})

	// the poll result is authoritative: older contents vanish
	vm.ReplaceAll([]models.Reading{reading(base.Add(2*time.Minute), 3)})

	got := vm.Snapshot()
	if len(got) != 1 || !got[0].Timestamp.Equal(base.Add(2*time.Minute)) {
		t.Fatalf("replace was not wholesale: %v", timestamps(got))
	}
}

func TestMergePush_Idempotent(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	vm := New()
	vm.ReplaceAll([]models.Reading{reading(base, 100)})

	r := reading(base.Add(time.Minute), 200)
	if !vm.MergePush(r) {
		t.Fatal("first push must be added")
	}
	if vm.MergePush(r) {
		t.Fatal("second push of the same timestamp must be a no-op")
	}

	got := vm.Snapshot()
	if len(got) != 2 {
		t.Fatalf("want 2 readings after duplicate push, got %d", len(got))
	}
	assertSortedNewestFirst(t, got)
}

func TestMergePush_OutOfOrderLandsInPosition(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	vm := New()
	vm.ReplaceAll([]models.Reading{
		reading(base.Add(10*time.Minute), 1),
		reading(base.Add(5*time.Minute), 2),
		reading(base, 3),
	})

	// older than the head, not matching any existing timestamp
	if !vm.MergePush(reading(base.Add(7*time.Minute), 4)) {
		t.Fatal("push should be added")
	}

	got := vm.Snapshot()
	if len(got) != 4 {
		t.Fatalf("want 4 readings, got %d", len(got))
	}
	assertSortedNewestFirst(t, got)
	if !got[1].Timestamp.Equal(base.Add(7 * time.Minute)) {
		t.Fatalf("push not inserted in sorted position: %v", timestamps(got))
	}
}

func TestMergePush_NewestBecomesHeadAndLightLevel(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	vm := New()
	vm.ReplaceAll([]models.Reading{reading(base, 0)})

	vm.MergePush(reading(base.Add(time.Minute), models.MaxLightIntensity))

	if lv := vm.LightLevel(); lv != 1 {
		t.Fatalf("light level must follow the newest entry: got %v", lv)
	}
}

func TestLightLevel_EmptyModelIsZero(t *testing.T) {
	t.Parallel()

	if lv := New().LightLevel(); lv != 0 {
		t.Fatalf("empty model light level: want 0, got %v", lv)
	}
}

func TestConcurrentProducersKeepInvariant(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	vm := New()

	var wg sync.WaitGroup
	// a poller replacing wholesale and a pusher inserting, racing
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			batch := []models.Reading{
				reading(base.Add(time.Duration(i)*time.Second), i),
				reading(base.Add(time.Duration(i+1)*time.Second), i),
			}
			vm.ReplaceAll(batch)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			vm.MergePush(reading(base.Add(time.Duration(i)*time.Second+500*time.Millisecond), i))
		}
	}()
	wg.Wait()

	got := vm.Snapshot()
	assertSortedNewestFirst(t, got)
	seen := map[int64]bool{}
	for _, r := range got {
		k := r.Timestamp.UnixNano()
		if seen[k] {
			t.Fatalf("duplicate timestamp survived: %v", r.Timestamp)
		}
		seen[k] = true
	}
}
