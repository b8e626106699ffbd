package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"envmonitor/internal/metrics"
	"envmonitor/internal/models"
	"envmonitor/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK = "ok"

	errFetchReadings  = "failed to load readings"
	errIngestReading  = "failed to store reading"
	errComputeStats   = "failed to compute statistics"
	errRollingAverage = "failed to compute rolling average"

	defaultLookback = 30 * time.Minute
	maxLookback     = 24 * time.Hour

	layoutDate = "2006-01-02"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// Request DTO for ingesting a reading. Pointers so a legitimate zero value
// still satisfies the required binding.
type readingRequest struct {
	Temperature    *float64 `json:"temperature" binding:"required"`
	Humidity       *float64 `json:"humidity" binding:"required"`
	LightIntensity *int     `json:"light_intensity" binding:"required"`
}

// IngestRequest is an exported model for Swagger docs of the ingest payload.
type IngestRequest struct {
	// Temperature in Celsius
	Temperature float64 `json:"temperature" example:"26.4"`
	// Relative humidity percentage
	Humidity float64 `json:"humidity" example:"71.2"`
	// Raw light sensor value (0-4095)
	LightIntensity int `json:"light_intensity" example:"2830"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Latest readings
// @Description  Returns up to 'limit' readings ordered newest first.
// @Tags         readings
// @Produce      json
// @Param        limit  query  int  false  "Max readings to return (default 100, cap 1000)"
// @Success      200  {array}   models.Reading
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/readings [get]
func (h *Handler) getReadings(c *gin.Context) {
	ctx := c.Request.Context()

	limit := 0
	if qs := c.Query("limit"); qs != "" {
		if v, err := strconv.Atoi(qs); err == nil && v > 0 {
			limit = v
		}
	}

	readings, err := h.services.Readings.LatestN(ctx, limit)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errFetchReadings, "readings_fetch_failed", err)
		return
	}
	metrics.BulkFetches.Inc()
	c.JSON(http.StatusOK, readings)
}

// @Summary      Ingest a reading
// @Description  Stamps server-side id and UTC timestamp, then persists.
// @Tags         readings
// @Accept       json
// @Produce      json
// @Param        body  body  IngestRequest  true  "Sensor sample"
// @Success      201  {object}  models.Reading
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/readings [post]
func (h *Handler) postReading(c *gin.Context) {
	var req readingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	reading, err := h.services.Readings.Ingest(ctx, service.IngestParams{
		Temperature:    *req.Temperature,
		Humidity:       *req.Humidity,
		LightIntensity: *req.LightIntensity,
	})
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errIngestReading, "reading_ingest_failed", err)
		return
	}
	c.JSON(http.StatusCreated, reading)
}

// @Summary      Windowed statistics
// @Description  Aggregate report (avg/min/max/stddev + extrema timestamps) per metric. Window: all, today, last{N}d, or YYYY-MM-DD.
// @Tags         insights
// @Produce      json
// @Param        window  query  string  false  "Time window"  example(last7d)
// @Success      200  {object}  models.AggregateReport
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	ctx := c.Request.Context()

	window, err := parseWindow(c.Query("window"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	readings, err := h.services.Readings.FetchAll(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errComputeStats, "stats_fetch_failed", err, "window", window.String())
		return
	}

	c.JSON(http.StatusOK, h.services.Stats.Compute(readings, window))
}

// @Summary      Rolling humidity average
// @Description  Average humidity over [now-lookback, now]. Returns {"average": 0} when no rows match.
// @Tags         insights
// @Produce      json
// @Param        lookback  query  string  false  "Trailing duration, e.g. 30m or 3h (default 30m, cap 24h)"
// @Success      200  {object}  map[string]float64
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/humidity/average [get]
func (h *Handler) getRollingAverage(c *gin.Context) {
	ctx := c.Request.Context()

	lookback := parseLookback(c)
	avg, err := h.services.Rolling.Average(ctx, lookback)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errRollingAverage, "rolling_average_failed", err, "lookback", lookback)
		return
	}
	c.JSON(http.StatusOK, gin.H{"average": avg})
}

// parseLookback reads ?lookback=30m with bounds; bad input falls back to
// the default rather than failing the report.
func parseLookback(c *gin.Context) time.Duration {
	if qs := c.Query("lookback"); qs != "" {
		if d, err := time.ParseDuration(qs); err == nil && d > 0 && d <= maxLookback {
			return d
		}
	}
	return defaultLookback
}

// parseWindow maps the query form to a window specifier:
// "" or "all", "today", "last{N}d", or an explicit "YYYY-MM-DD" date.
func parseWindow(s string) (models.WindowSpec, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "all":
		return models.WindowSpec{Kind: models.WindowAll}, nil
	case "today":
		return models.WindowSpec{Kind: models.WindowToday}, nil
	}

	if rest, ok := strings.CutPrefix(s, "last"); ok {
		if days, ok := strings.CutSuffix(rest, "d"); ok {
			if n, err := strconv.Atoi(days); err == nil && n > 0 {
				return models.WindowSpec{Kind: models.WindowLastNDays, Days: n}, nil
			}
		}
		return models.WindowSpec{}, errBadWindow(s)
	}

	if d, err := time.Parse(layoutDate, s); err == nil {
		return models.WindowSpec{Kind: models.WindowDate, Date: d}, nil
	}
	return models.WindowSpec{}, errBadWindow(s)
}

type errBadWindow string

func (e errBadWindow) Error() string {
	return "invalid window " + strconv.Quote(string(e)) + ": use all, today, last{N}d, or YYYY-MM-DD"
}
