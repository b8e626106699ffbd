package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"envmonitor/internal/models"
	"envmonitor/internal/repository/db"
)

// ErrNoReadings is returned when the store holds no rows for a query that
// needs at least one.
var ErrNoReadings = errors.New("no readings recorded")

// ReadingRepo translates query shapes against the environment_data table
// into result sets. It carries no aggregation or filtering logic of its own
// beyond what the SQL expresses.
type ReadingRepo interface {
	Insert(ctx context.Context, r models.Reading) error
	LatestN(ctx context.Context, limit int) ([]models.Reading, error)
	Latest(ctx context.Context) (models.Reading, error)
	RangeAverage(ctx context.Context, metric string, from, to time.Time) (float64, error)
}

type Repository struct {
	Readings ReadingRepo
}

func NewRepository(conn *sql.DB) *Repository {
	return &Repository{
		Readings: NewReadingSQLite(conn),
	}
}

// InitDB re-exports the db package bootstrap so callers wire one package.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
