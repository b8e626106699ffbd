// Package viewmodel holds the client's reconciled working set of readings.
// Three producers feed it (initial bulk load, periodic poll, live push
// channel) and every mutation goes through the single mutex,
// so a poll result and a concurrent push can never interleave into a
// partial state.
package viewmodel

import (
	"sort"
	"sync"

	"envmonitor/internal/models"
)

// ViewModel owns an ordered, duplicate-free reading timeline, newest first.
// Readers get copies; the internal slice is never shared.
type ViewModel struct {
	mu       sync.Mutex
	readings []models.Reading
}

func New() *ViewModel {
	return &ViewModel{}
}

// ReplaceAll installs a poll result wholesale: a full ordered batch is
// authoritative for everything it contains. The batch is copied, sorted
// newest first and deduplicated by timestamp (first occurrence wins).
func (v *ViewModel) ReplaceAll(batch []models.Reading) {
	next := make([]models.Reading, len(batch))
	copy(next, batch)
	sort.SliceStable(next, func(i, j int) bool {
		return next[i].Timestamp.After(next[j].Timestamp)
	})

	dedup := next[:0]
	for _, r := range next {
		if len(dedup) > 0 && dedup[len(dedup)-1].Timestamp.Equal(r.Timestamp) {
			continue
		}
		dedup = append(dedup, r)
	}

	v.mu.Lock()
	v.readings = dedup
	v.mu.Unlock()
}

// MergePush inserts one pushed reading at its sorted position. A timestamp
// already present makes the push a no-op, so re-delivery is harmless; a
// push older than the current head still lands in correct order instead of
// being blindly prepended. Reports whether the reading was added.
func (v *ViewModel) MergePush(r models.Reading) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	// first index whose timestamp is strictly older than r
	i := sort.Search(len(v.readings), func(i int) bool {
		return v.readings[i].Timestamp.Before(r.Timestamp)
	})
	if i > 0 && v.readings[i-1].Timestamp.Equal(r.Timestamp) {
		return false
	}

	v.readings = append(v.readings, models.Reading{})
	copy(v.readings[i+1:], v.readings[i:])
	v.readings[i] = r
	return true
}

// Snapshot returns a copy of the current timeline, newest first.
func (v *ViewModel) Snapshot() []models.Reading {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]models.Reading, len(v.readings))
	copy(out, v.readings)
	return out
}

// Len reports the number of readings held.
func (v *ViewModel) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.readings)
}

// LightLevel is the most recent light intensity normalized to [0, 1],
// recomputed from the merged set; 0 when the model is empty.
func (v *ViewModel) LightLevel() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.readings) == 0 {
		return 0
	}
	return v.readings[0].LightLevel()
}
