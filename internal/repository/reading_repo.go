package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"envmonitor/internal/models"
)

// sqliteTimeLayout is the stored timestamp format; always UTC.
const sqliteTimeLayout = "2006-01-02 15:04:05"

const selectReadingColumns = `SELECT id, timestamp, temperature, humidity, light_intensity FROM environment_data`

// metricColumns whitelists metric names against table columns so a metric
// coming from a query string can never reach the SQL as raw text.
var metricColumns = map[string]string{
	"temperature":     "temperature",
	"humidity":        "humidity",
	"light_intensity": "light_intensity",
}

type ReadingSQLite struct {
	db *sql.DB
}

func NewReadingSQLite(conn *sql.DB) *ReadingSQLite { return &ReadingSQLite{db: conn} }

// Insert persists one reading. The caller owns id and timestamp stamping;
// the timestamp is normalized to UTC text on the way in.
func (r *ReadingSQLite) Insert(ctx context.Context, reading models.Reading) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO environment_data (id, timestamp, temperature, humidity, light_intensity)
		VALUES (?, ?, ?, ?, ?)
	`,
		reading.ID,
		reading.Timestamp.UTC().Format(sqliteTimeLayout),
		reading.Temperature,
		reading.Humidity,
		reading.LightIntensity,
	)
	return err
}

// LatestN returns readings ordered newest first. limit <= 0 means no limit.
func (r *ReadingSQLite) LatestN(ctx context.Context, limit int) ([]models.Reading, error) {
	q := selectReadingColumns + ` ORDER BY timestamp DESC`
	if limit > 0 {
		q += ` LIMIT ` + strconv.Itoa(limit)
	}

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Reading, 0, 64)
	for rows.Next() {
		reading, err := scanReading(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, reading)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Latest returns the single newest reading, or ErrNoReadings on an empty table.
func (r *ReadingSQLite) Latest(ctx context.Context) (models.Reading, error) {
	row := r.db.QueryRowContext(ctx, selectReadingColumns+` ORDER BY timestamp DESC LIMIT 1`)

	reading, err := scanReading(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Reading{}, ErrNoReadings
		}
		return models.Reading{}, err
	}
	return reading, nil
}

// RangeAverage computes the SQL average of one metric over [from, to],
// inclusive. Both bounds are interpreted as UTC. An empty range yields 0,
// not an error.
func (r *ReadingSQLite) RangeAverage(ctx context.Context, metric string, from, to time.Time) (float64, error) {
	column, ok := metricColumns[metric]
	if !ok {
		return 0, fmt.Errorf("unknown metric %q", metric)
	}

	q := `SELECT COALESCE(AVG(` + column + `), 0) FROM environment_data WHERE timestamp >= ? AND timestamp <= ?`

	var avg float64
	err := r.db.QueryRowContext(ctx, q,
		from.UTC().Format(sqliteTimeLayout),
		to.UTC().Format(sqliteTimeLayout),
	).Scan(&avg)
	if err != nil {
		return 0, err
	}
	return avg, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanReading(s scanner) (models.Reading, error) {
	var (
		reading models.Reading
		ts      string
	)
	if err := s.Scan(&reading.ID, &ts, &reading.Temperature, &reading.Humidity, &reading.LightIntensity); err != nil {
		return models.Reading{}, err
	}
	parsed, err := time.ParseInLocation(sqliteTimeLayout, ts, time.UTC)
	if err != nil {
		return models.Reading{}, fmt.Errorf("parse stored timestamp %q: %w", ts, err)
	}
	reading.Timestamp = parsed
	return reading, nil
}
