package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

var ErrRequestRejected = errors.New("scheduler rejected request")

// Client talks to a running scheduler api.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	log     *slog.Logger
}

func NewClient(baseURL string, log *slog.Logger) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

// Schedule posts the jobs to the endpoint of the given algorithm.
func (c *Client) Schedule(ctx context.Context, algorithm schedulers.Algorithm, request requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	var response responses.ScheduleResponse
	if !algorithm.Valid() {
		return response, fmt.Errorf("%w: %d", schedulers.ErrUnknownAlgorithm, int(algorithm))
	}

	body, err := json.Marshal(request)
	if err != nil {
		return response, fmt.Errorf("encoding request: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/%s", c.BaseURL, algorithm.Slug())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return response, err
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Debug("sending schedule request",
		slog.String("url", url),
		slog.Int("jobs", len(request.Jobs)),
	)
	if err := c.do(req, &response); err != nil {
		return response, err
	}
	return response, nil
}

// Algorithms returns the algorithm labels the server supports.
func (c *Client) Algorithms(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/v1/algorithms", nil)
	if err != nil {
		return nil, err
	}

	var body struct {
		Algorithms []string `json:"algorithms"`
	}
	if err := c.do(req, &body); err != nil {
		return nil, err
	}
	return body.Algorithms, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", req.URL, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		c.log.Warn("scheduler request failed",
			slog.String("url", req.URL.String()),
			slog.Int("status", resp.StatusCode),
			slog.String("error", apiErr.Error),
		)
		return fmt.Errorf("%w: status %d: %s", ErrRequestRejected, resp.StatusCode, apiErr.Error)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
