// Package client is a typed HTTP client for the birdwatch API.
//
// Every method is synchronous and honours its context. Wrap a call with
// Async to run it without blocking and deliver the result on an Executor.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mrlokans/birdwatch/internal/dto"
)

const (
	defaultTimeout = 30 * time.Second
	apiPrefix      = "/api"

	headerAPIKey = "X-API-Key"
)

// Config configures a Client. Only BaseURL is required.
type Config struct {
	// BaseURL is the server root, e.g. http://localhost:8080.
	BaseURL string
	// Timeout bounds each request. Zero means 30s. Ignored when HTTPClient is set.
	Timeout    time.Duration
	APIKey     string
	HTTPClient *http.Client
}

// Client calls the birdwatch API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New creates a Client from cfg.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", cfg.BaseURL)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}, nil
}

// BirdInput holds every field of a bird. Updates replace the whole record.
type BirdInput struct {
	Name   string
	Color  string
	Weight float64
	Height float64
}

// SightingInput holds every field of a sighting.
type SightingInput struct {
	BirdID       uint
	Location     string
	SightingDate time.Time
}

// SightingQuery filters SearchSightings. Zero fields are omitted.
type SightingQuery struct {
	BirdName  string
	Location  string
	StartDate time.Time
	EndDate   time.Time
}

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
	Counts  map[string]int64  `json:"counts,omitempty"`
}

func (in BirdInput) request() dto.BirdRequest {
	weight, height := in.Weight, in.Height
	return dto.BirdRequest{Name: in.Name, Color: in.Color, Weight: &weight, Height: &height}
}

func (in SightingInput) request() dto.SightingRequest {
	return dto.SightingRequest{
		BirdID:       in.BirdID,
		Location:     in.Location,
		SightingDate: dto.NewLocalDateTime(in.SightingDate),
	}
}

// --- Birds ---

func (c *Client) ListBirds(ctx context.Context) ([]dto.BirdDTO, error) {
	var birds []dto.BirdDTO
	err := c.do(ctx, http.MethodGet, apiPrefix+"/birds", nil, &birds)
	return birds, err
}

// SearchBirds matches name and color case-insensitively. Empty arguments
// are not sent.
func (c *Client) SearchBirds(ctx context.Context, name, color string) ([]dto.BirdDTO, error) {
	path := apiPrefix + "/birds/search" + buildQuery(
		queryParam{"name", name},
		queryParam{"color", color},
	)
	var birds []dto.BirdDTO
	err := c.do(ctx, http.MethodGet, path, nil, &birds)
	return birds, err
}

func (c *Client) GetBird(ctx context.Context, id uint) (*dto.BirdDTO, error) {
	var bird dto.BirdDTO
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/birds/%d", apiPrefix, id), nil, &bird); err != nil {
		return nil, err
	}
	return &bird, nil
}

func (c *Client) CreateBird(ctx context.Context, in BirdInput) (*dto.BirdRecord, error) {
	var rec dto.BirdRecord
	if err := c.do(ctx, http.MethodPost, apiPrefix+"/birds", in.request(), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *Client) UpdateBird(ctx context.Context, id uint, in BirdInput) (*dto.BirdRecord, error) {
	var rec dto.BirdRecord
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/birds/%d", apiPrefix, id), in.request(), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// DeleteBird removes a bird and all of its sightings.
func (c *Client) DeleteBird(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/birds/%d", apiPrefix, id), nil, nil)
}

// --- Sightings ---

func (c *Client) ListSightings(ctx context.Context) ([]dto.SightingDTO, error) {
	var sightings []dto.SightingDTO
	err := c.do(ctx, http.MethodGet, apiPrefix+"/sightings", nil, &sightings)
	return sightings, err
}

func (c *Client) SearchSightings(ctx context.Context, q SightingQuery) ([]dto.SightingDTO, error) {
	path := apiPrefix + "/sightings/search" + buildQuery(
		queryParam{"birdName", q.BirdName},
		queryParam{"location", q.Location},
		queryParam{"startDate", formatDate(q.StartDate)},
		queryParam{"endDate", formatDate(q.EndDate)},
	)
	var sightings []dto.SightingDTO
	err := c.do(ctx, http.MethodGet, path, nil, &sightings)
	return sightings, err
}

func (c *Client) GetSighting(ctx context.Context, id uint) (*dto.SightingDTO, error) {
	var sighting dto.SightingDTO
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/sightings/%d", apiPrefix, id), nil, &sighting); err != nil {
		return nil, err
	}
	return &sighting, nil
}

func (c *Client) CreateSighting(ctx context.Context, in SightingInput) (*dto.SightingDTO, error) {
	var sighting dto.SightingDTO
	if err := c.do(ctx, http.MethodPost, apiPrefix+"/sightings", in.request(), &sighting); err != nil {
		return nil, err
	}
	return &sighting, nil
}

func (c *Client) UpdateSighting(ctx context.Context, id uint, in SightingInput) (*dto.SightingDTO, error) {
	var sighting dto.SightingDTO
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/sightings/%d", apiPrefix, id), in.request(), &sighting); err != nil {
		return nil, err
	}
	return &sighting, nil
}

func (c *Client) DeleteSighting(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/sightings/%d", apiPrefix, id), nil, nil)
}

// Health fetches the server health report. An unhealthy server answers
// 503, which surfaces as a *ServerError.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var status HealthStatus
	if err := c.do(ctx, http.MethodGet, "/health", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// --- Transport ---

type queryParam struct {
	name  string
	value string
}

// buildQuery escapes each non-empty value and joins them in order. It
// returns "" when no value is set.
func buildQuery(params ...queryParam) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		if p.value == "" {
			continue
		}
		parts = append(parts, p.name+"="+url.QueryEscape(p.value))
	}
	if len(parts) == 0 {
		return ""
	}
	return "?" + strings.Join(parts, "&")
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return dto.NewLocalDateTime(t).String()
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: failed to encode request: %w", op, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: failed to create request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set(headerAPIKey, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ServerError{StatusCode: resp.StatusCode, Message: errorMessage(payload)}
	}

	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return &DecodeError{Op: op, Err: err}
	}
	return nil
}

// errorMessage extracts the "error" field of an API error body, falling
// back to the raw text.
const maxErrorMessageRunes = 200

func errorMessage(payload []byte) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(payload, &body); err == nil && body.Error != "" {
		return body.Error
	}
	msg := []rune(strings.TrimSpace(string(payload)))
	if len(msg) > maxErrorMessageRunes {
		msg = msg[:maxErrorMessageRunes]
	}
	return string(msg)
}
