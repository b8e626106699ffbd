// Package client is the Go dashboard client: it bootstraps from the bulk
// endpoint, keeps polling it as a durability backstop, and listens on the
// SSE feed, reconciling all three sources through one ViewModel.
package client

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"envmonitor/internal/logger"
	"envmonitor/internal/models"
	"envmonitor/internal/viewmodel"
)

const (
	readingsPath = "/api/v1/readings"
	streamPath   = "/api/v1/readings/stream"

	defaultBulkLimit  = 100
	streamRedialPause = 2 * time.Second
	requestTimeout    = 5 * time.Second
)

// Client feeds a ViewModel from one monitor server.
type Client struct {
	baseURL string
	httpc   *http.Client
	vm      *viewmodel.ViewModel
	log     *logger.Logger
}

func New(baseURL string, vm *viewmodel.ViewModel, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
		vm:      vm,
		log:     log,
	}
}

// Bootstrap performs the one-time initial bulk load.
func (c *Client) Bootstrap(ctx context.Context) error {
	batch, err := c.fetchLatest(ctx, defaultBulkLimit)
	if err != nil {
		return fmt.Errorf("initial load: %w", err)
	}
	c.vm.ReplaceAll(batch)
	return nil
}

// RunPoller re-fetches the latest readings at the given interval until ctx
// is canceled. A failed poll keeps the previous view model; the display
// never blinks to empty on a transient error.
func (c *Client) RunPoller(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			batch, err := c.fetchLatest(ctx, defaultBulkLimit)
			if err != nil {
				if c.log != nil {
					c.log.Warnw("poll_failed", "err", err)
				}
				continue
			}
			c.vm.ReplaceAll(batch)
		}
	}
}

// RunStream consumes the SSE feed until ctx is canceled, redialing after
// a dropped connection. Missed pushes are recovered by the poller.
func (c *Client) RunStream(ctx context.Context) {
	for {
		if err := c.consumeStream(ctx); err != nil && c.log != nil {
			c.log.Warnw("stream_disconnected", "err", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(streamRedialPause):
		}
	}
}

func (c *Client) consumeStream(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+streamPath, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("stream status %s", resp.Status)
	}

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		payload, ok := strings.CutPrefix(scanner.Text(), "data:")
		if !ok {
			continue
		}
		var reading models.Reading
		if err := json.Unmarshal([]byte(strings.TrimSpace(payload)), &reading); err != nil {
			if c.log != nil {
				c.log.Warnw("stream_decode_failed", "err", err)
			}
			continue
		}
		c.vm.MergePush(reading)
	}
	return scanner.Err()
}

func (c *Client) fetchLatest(ctx context.Context, limit int) ([]models.Reading, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	url := fmt.Sprintf("%s%s?limit=%d", c.baseURL, readingsPath, limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var batch []models.Reading
	if err := json.Unmarshal(body, &batch); err != nil {
		return nil, err
	}
	return batch, nil
}
