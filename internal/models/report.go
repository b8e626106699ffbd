package models

import "time"

// MetricStats holds the aggregates for one metric over a filtered window.
// Average and StdDev are rounded to two decimals for display; the
// computation behind them runs at full precision.
type MetricStats struct {
	Average float64   `json:"average"`
	Min     float64   `json:"min"`
	Max     float64   `json:"max"`
	StdDev  float64   `json:"std_dev"`
	MinAt   time.Time `json:"min_at"`
	MaxAt   time.Time `json:"max_at"`
}

// AggregateReport is the derived statistics for a filtered reading set.
// HasData=false is the "no data" sentinel: an empty window produces this,
// never NaN or a zero that looks like a real measurement.
type AggregateReport struct {
	HasData        bool        `json:"has_data"`
	Count          int         `json:"count"`
	Window         string      `json:"window"`
	Temperature    MetricStats `json:"temperature"`
	Humidity       MetricStats `json:"humidity"`
	LightIntensity MetricStats `json:"light_intensity"`
}
