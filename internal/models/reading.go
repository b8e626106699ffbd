package models

import "time"

// MaxLightIntensity is the sensor's native full-scale ADC value.
const MaxLightIntensity = 4095

// Reading is a single environmental sensor sample. Readings are immutable
// once ingested; Timestamp is the source of truth for ordering and
// deduplication.
type Reading struct {
	ID             string    `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	Temperature    float64   `json:"temperature"`     // °C
	Humidity       float64   `json:"humidity"`        // %, nominal 0–100
	LightIntensity int       `json:"light_intensity"` // raw ADC, 0–4095
}

// LightLevel returns the light intensity normalized to [0, 1].
func (r Reading) LightLevel() float64 {
	return float64(r.LightIntensity) / MaxLightIntensity
}
