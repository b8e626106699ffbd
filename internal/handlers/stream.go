package handlers

import (
	"errors"
	"time"

	"envmonitor/internal/metrics"
	"envmonitor/internal/repository"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"
)

const (
	minStreamInterval = 1 * time.Second
	maxStreamInterval = 60 * time.Second
)

// @Summary      Live reading stream (SSE)
// @Description  Sends the newest reading immediately, then pushes again whenever a tick finds a reading with a new timestamp. One event = one full reading.
// @Tags         readings
// @Produce      text/event-stream
// @Param        interval  query  string  false  "Sampling interval, e.g. 5s (default 10s, 1s-60s)"
// @Success      200  {object}  models.Reading
// @Router       /api/v1/readings/stream [get]
func (h *Handler) streamReadings(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Flush()

	metrics.LiveSubscribers.Inc()
	defer metrics.LiveSubscribers.Dec()

	// Each connection owns its ticker and samples the store independently;
	// a stalled subscriber never holds up another.
	ticker := time.NewTicker(h.parseStreamInterval(c))
	defer ticker.Stop()

	var lastSent time.Time

	push := func() error {
		reading, err := h.services.Readings.Latest(c.Request.Context())
		if err != nil {
			// Empty store or a transient read failure: skip this tick and
			// keep the channel open.
			if !errors.Is(err, repository.ErrNoReadings) && h.log != nil {
				h.log.Warnw("stream_sample_failed", "err", err)
			}
			return nil
		}
		if reading.Timestamp.Equal(lastSent) {
			// nothing new; comparison is by timestamp, not arrival
			return nil
		}
		if err := sse.Encode(c.Writer, sse.Event{Data: reading}); err != nil {
			return err
		}
		c.Writer.Flush()
		lastSent = reading.Timestamp
		metrics.LivePushes.Inc()
		return nil
	}

	if err := push(); err != nil {
		return
	}

	for {
		select {
		case <-c.Request.Context().Done():
			// client disconnected; ticker released via defer
			return
		case <-ticker.C:
			if err := push(); err != nil {
				if h.log != nil {
					h.log.Infow("stream_write_failed", "err", err)
				}
				return
			}
		}
	}
}

// parseStreamInterval reads ?interval=5s with bounds, defaulting to the
// configured cadence.
func (h *Handler) parseStreamInterval(c *gin.Context) time.Duration {
	if qs := c.Query("interval"); qs != "" {
		if d, err := time.ParseDuration(qs); err == nil && d >= minStreamInterval && d <= maxStreamInterval {
			return d
		}
	}
	return h.streamInterval
}
