package service

import (
	"math"
	"time"

	"envmonitor/internal/models"
)

// StatsService computes aggregate reports over reading sequences. It is
// pure: no stores, no side effects, safe to call from any goroutine.
type StatsService struct {
	loc *time.Location
}

// NewStatsService returns a statistics engine whose calendar-date windows
// (today, explicit date) are evaluated in loc. Pass time.UTC when the
// deployment has no fixed local zone.
func NewStatsService(loc *time.Location) *StatsService {
	if loc == nil {
		loc = time.UTC
	}
	return &StatsService{loc: loc}
}

// Compute filters readings through w and aggregates each metric.
// The reference "now" is captured once here so the window boundary cannot
// shift between entries within a single pass.
func (s *StatsService) Compute(readings []models.Reading, w models.WindowSpec) models.AggregateReport {
	now := time.Now().In(s.loc)
	filtered := s.filter(readings, w, now)

	report := models.AggregateReport{
		Count:  len(filtered),
		Window: w.String(),
	}
	if len(filtered) == 0 {
		return report
	}

	report.HasData = true
	report.Temperature = computeMetric(filtered, func(r models.Reading) float64 { return r.Temperature })
	report.Humidity = computeMetric(filtered, func(r models.Reading) float64 { return r.Humidity })
	report.LightIntensity = computeMetric(filtered, func(r models.Reading) float64 { return float64(r.LightIntensity) })
	return report
}

func (s *StatsService) filter(readings []models.Reading, w models.WindowSpec, now time.Time) []models.Reading {
	switch w.Kind {
	case models.WindowToday:
		return s.filterByDate(readings, now)
	case models.WindowDate:
		// w.Date carries only a calendar date; converting it into s.loc
		// would shift it across midnight for zones west of its own.
		return s.filterByDate(readings, w.Date)
	case models.WindowLastNDays:
		cutoff := now.AddDate(0, 0, -w.Days)
		out := make([]models.Reading, 0, len(readings))
		for _, r := range readings {
			if !r.Timestamp.Before(cutoff) {
				out = append(out, r)
			}
		}
		return out
	default:
		return readings
	}
}

// filterByDate keeps readings whose calendar date in the engine's location
// equals day's calendar date.
func (s *StatsService) filterByDate(readings []models.Reading, day time.Time) []models.Reading {
	wantY, wantM, wantD := day.Date()
	out := make([]models.Reading, 0, len(readings))
	for _, r := range readings {
		y, m, d := r.Timestamp.In(s.loc).Date()
		if y == wantY && m == wantM && d == wantD {
			out = append(out, r)
		}
	}
	return out
}

// computeMetric aggregates one metric in a single scan. Extrema ties go to
// the earliest occurrence in sequence order. The variance uses the
// full-precision mean; only the reported average and deviation are rounded.
func computeMetric(readings []models.Reading, value func(models.Reading) float64) models.MetricStats {
	first := value(readings[0])
	stats := models.MetricStats{
		Min:   first,
		Max:   first,
		MinAt: readings[0].Timestamp,
		MaxAt: readings[0].Timestamp,
	}

	var sum float64
	for _, r := range readings {
		v := value(r)
		sum += v
		if v < stats.Min {
			stats.Min = v
			stats.MinAt = r.Timestamp
		}
		if v > stats.Max {
			stats.Max = v
			stats.MaxAt = r.Timestamp
		}
	}

	mean := sum / float64(len(readings))

	var sqDiff float64
	for _, r := range readings {
		d := value(r) - mean
		sqDiff += d * d
	}
	// population standard deviation: divide by N
	stdDev := math.Sqrt(sqDiff / float64(len(readings)))

	stats.Average = round2(mean)
	stats.StdDev = round2(stdDev)
	return stats
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
