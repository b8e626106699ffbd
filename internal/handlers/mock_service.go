package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"envmonitor/internal/models"
	"envmonitor/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockReadings struct {
	latestN    []models.Reading
	latestNErr error
	latest     models.Reading
	latestErr  error
	ingested   models.Reading
	ingestErr  error

	lastLimit  int
	lastParams service.IngestParams
	fetchAlls  int
}

func (m *mockReadings) Ingest(ctx context.Context, p service.IngestParams) (models.Reading, error) {
	m.lastParams = p
	return m.ingested, m.ingestErr
}
func (m *mockReadings) LatestN(ctx context.Context, limit int) ([]models.Reading, error) {
	m.lastLimit = limit
	return m.latestN, m.latestNErr
}
func (m *mockReadings) FetchAll(ctx context.Context) ([]models.Reading, error) {
	m.fetchAlls++
	return m.latestN, m.latestNErr
}
func (m *mockReadings) Latest(ctx context.Context) (models.Reading, error) {
	return m.latest, m.latestErr
}

type mockStats struct {
	report     models.AggregateReport
	lastWindow models.WindowSpec
}

func (m *mockStats) Compute(readings []models.Reading, w models.WindowSpec) models.AggregateReport {
	m.lastWindow = w
	return m.report
}

type mockRolling struct {
	avg          float64
	err          error
	lastLookback time.Duration
}

func (m *mockRolling) Average(ctx context.Context, lookback time.Duration) (float64, error) {
	m.lastLookback = lookback
	return m.avg, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func testService(r *mockReadings, st *mockStats, ro *mockRolling) *service.Service {
	if r == nil {
		r = &mockReadings{}
	}
	if st == nil {
		st = &mockStats{}
	}
	if ro == nil {
		ro = &mockRolling{}
	}
	return &service.Service{Readings: r, Stats: st, Rolling: ro}
}

func testGinContext(req *http.Request) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	return c
}
