package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"envmonitor/internal/metrics"
	"envmonitor/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 1 << 12 // 4 KB
)

// Envelope used for WebSocket messages.
type wsEnvelope struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// Upgrader for HTTP -> WebSocket. Consider tightening CheckOrigin in production.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // TODO: restrict origins for production
}

// wsConnect serves the same live feed as the SSE stream over a websocket,
// for clients behind proxies that buffer event streams.
func (h *Handler) wsConnect(c *gin.Context) {
	interval := h.parseStreamInterval(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	metrics.LiveSubscribers.Inc()
	defer metrics.LiveSubscribers.Dec()

	// Configure read limits and pong handler to extend read deadline.
	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Reader goroutine to handle control frames and detect disconnects.
	done := make(chan struct{})
	go h.startReader(conn, done)

	ticker := time.NewTicker(interval)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ping.Stop()
	}()

	var lastSent time.Time

	// Send the newest reading immediately.
	if err := h.sendLatest(c.Request.Context(), conn, &lastSent); err != nil {
		if h.log != nil {
			h.log.Infow("ws_write_failed_initial", "err", err)
		}
		return
	}

	// Writer/select loop.
	for {
		select {
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if h.log != nil {
					h.log.Infow("ws_ping_failed", "err", err)
				}
				return
			}
		case <-ticker.C:
			if err := h.sendLatest(c.Request.Context(), conn, &lastSent); err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "err", err)
				}
				return
			}
		}
	}
}

// Helper: startReader drains incoming messages to handle control frames and detect closure.
func (h *Handler) startReader(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if h.log != nil {
				h.log.Infow("ws_read_closed", "err", err)
			}
			return
		}
	}
}

// Helper: sendLatest samples the store and writes the reading when its
// timestamp moved. Store failures skip the tick rather than dropping the
// connection.
func (h *Handler) sendLatest(ctx context.Context, conn *websocket.Conn, lastSent *time.Time) error {
	reading, err := h.services.Readings.Latest(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrNoReadings) && h.log != nil {
			h.log.Warnw("ws_sample_failed", "err", err)
		}
		return nil
	}
	if reading.Timestamp.Equal(*lastSent) {
		return nil
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(wsEnvelope{Type: "reading", Data: reading}); err != nil {
		return err
	}
	*lastSent = reading.Timestamp
	metrics.LivePushes.Inc()
	return nil
}
