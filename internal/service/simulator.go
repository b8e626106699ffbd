package service

import (
	"context"
	"math"
	"math/rand"
	"time"

	"envmonitor/internal/models"
)

// ----------- Simulation constants -----------
const (
	simBaseTempC     = 27.0 // diurnal mean temperature °C
	simTempSwingC    = 4.0  // day/night amplitude °C
	simBaseHumidity  = 65.0 // mean relative humidity %
	simHumiditySwing = 12.0
	simTempJitterC   = 0.4
	simHumidityJit   = 1.5
	simLightJitter   = 120
	simDayMinutes    = 24 * 60
)

// SimulatorService fabricates plausible sensor samples on a tick and feeds
// them through the normal ingestion path, so the rest of the pipeline sees
// no difference from hardware input.
type SimulatorService struct {
	readings Readings
	rng      *rand.Rand
}

// NewSimulatorService returns a simulator with its own seeded source.
func NewSimulatorService(readings Readings) *SimulatorService {
	return &SimulatorService{
		readings: readings,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run ticks at the given interval until ctx is canceled. A failed insert is
// skipped; the next tick tries again.
func (s *SimulatorService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			_, _ = s.readings.Ingest(ctx, s.sample(now))
		}
	}
}

// sample derives a reading from the time of day plus jitter: warm bright
// afternoons, cool humid nights.
func (s *SimulatorService) sample(now time.Time) IngestParams {
	minuteOfDay := float64(now.Hour()*60 + now.Minute())
	// phase peaks mid-afternoon (~14:30)
	phase := math.Sin(2 * math.Pi * (minuteOfDay - 510) / simDayMinutes)

	temp := simBaseTempC + simTempSwingC*phase + s.rng.Float64()*simTempJitterC*2 - simTempJitterC
	hum := simBaseHumidity - simHumiditySwing*phase + s.rng.Float64()*simHumidityJit*2 - simHumidityJit

	light := 0
	if phase > 0 {
		light = int(phase*3500) + s.rng.Intn(simLightJitter)
	} else {
		light = s.rng.Intn(40) // moon/streetlight floor
	}
	if light > models.MaxLightIntensity {
		light = models.MaxLightIntensity
	}

	return IngestParams{
		Temperature:    math.Round(temp*10) / 10,
		Humidity:       math.Round(hum*10) / 10,
		LightIntensity: light,
	}
}
