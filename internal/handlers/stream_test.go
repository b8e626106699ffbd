package handlers

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"envmonitor/internal/models"
	"envmonitor/internal/repository"
)

// readEvent reads one SSE event (up to the blank separator line) and
// returns the decoded data payload.
func readEvent(t *testing.T, r *bufio.Reader) models.Reading {
	t.Helper()
	var data string
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			t.Fatalf("read event: %v", err)
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			if data != "" {
				break
			}
			continue
		}
		if payload, ok := strings.CutPrefix(line, "data:"); ok {
			data = strings.TrimSpace(payload)
		}
	}

	var reading models.Reading
	if err := json.Unmarshal([]byte(data), &reading); err != nil {
		t.Fatalf("decode event %q: %v", data, err)
	}
	return reading
}

func TestStream_SendsLatestImmediately(t *testing.T) {
	t.Parallel()

	latest := models.Reading{
		ID:             "head",
		Timestamp:      time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		Temperature:    21.5,
		Humidity:       64,
		LightIntensity: 1800,
	}
	srv := httptest.NewServer(newTestRouter(testService(&mockReadings{latest: latest}, nil, nil)))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/readings/stream", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
		t.Fatalf("content type: got %q", ct)
	}

	got := readEvent(t, bufio.NewReader(resp.Body))
	if got.ID != "head" || got.Temperature != 21.5 {
		t.Fatalf("unexpected first event: %+v", got)
	}
}

func TestStream_EmptyStoreKeepsChannelOpen(t *testing.T) {
	t.Parallel()

	readings := &mockReadings{latestErr: repository.ErrNoReadings}
	srv := httptest.NewServer(newTestRouter(testService(readings, nil, nil)))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/readings/stream", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer resp.Body.Close()

	// the channel stays open with no events until the client hangs up
	buf := make([]byte, 1)
	if _, err := resp.Body.Read(buf); err == nil {
		t.Fatal("expected no event from an empty store")
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: want 200, got %d", resp.StatusCode)
	}
}

func TestParseStreamInterval_Bounds(t *testing.T) {
	t.Parallel()

	h := NewHandler(testService(nil, nil, nil), nil)

	tests := []struct {
		query string
		want  time.Duration
	}{
		{"", defaultStreamInterval},
		{"interval=5s", 5 * time.Second},
		{"interval=500ms", defaultStreamInterval}, // below floor
		{"interval=2m", defaultStreamInterval},    // above ceiling
		{"interval=nope", defaultStreamInterval},
	}
	for _, tc := range tests {
		req := httptest.NewRequest(http.MethodGet, "/stream?"+tc.query, nil)
		c := testGinContext(req)
		if got := h.parseStreamInterval(c); got != tc.want {
			t.Errorf("query %q: want %v, got %v", tc.query, tc.want, got)
		}
	}
}
