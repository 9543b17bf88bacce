package tripclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Temutjin2k/solotrip-connect/internal/domain/models"
	"github.com/Temutjin2k/solotrip-connect/pkg/logger"
	wrap "github.com/Temutjin2k/solotrip-connect/pkg/logger/wrapper"
	"github.com/Temutjin2k/solotrip-connect/pkg/metrics"
)

const (
	tripsPath  = "/api/trips"
	searchPath = "/api/trips/search"
	loginPath  = "/api/auth/login"

	DefaultTimeout  = 10 * time.Second
	RequestIDHeader = "X-Request-Id"

	// Error bodies are kept for display and logs only.
	maxErrorBody = 4096
)

// ErrNotFound matches a StatusError carrying 404.
var ErrNotFound = errors.New("trip api: not found")

// StatusError is returned for every non-2xx response.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("trip api returned status %d", e.Status)
	}
	return fmt.Sprintf("trip api returned status %d: %s", e.Status, e.Body)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

// TokenSource supplies the credentials injected into every trip request.
type TokenSource interface {
	Token() (scheme, token string, ok bool)
}

// Client talks to the trip REST backend. It keeps no state between calls.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logger.Logger
}

// NewClient builds a client for baseURL. A nil httpClient gets DefaultTimeout.
// tokens may be nil, in which case requests are sent without Authorization.
func NewClient(baseURL string, httpClient *http.Client, tokens TokenSource, log logger.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", baseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	return &Client{
		baseURL: strings.TrimRight(u.String(), "/"),
		http:    httpClient,
		tokens:  tokens,
		log:     log,
	}, nil
}

// SetTokenSource replaces the token source used by later calls.
func (c *Client) SetTokenSource(tokens TokenSource) {
	c.tokens = tokens
}

func (c *Client) List(ctx context.Context) ([]models.Trip, error) {
	var trips []models.Trip
	if err := c.do(ctx, "list", http.MethodGet, tripsPath, nil, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

func (c *Client) Get(ctx context.Context, id int64) (*models.Trip, error) {
	var trip models.Trip
	if err := c.do(ctx, "get", http.MethodGet, tripPath(id), nil, &trip); err != nil {
		return nil, err
	}
	return &trip, nil
}

// Create sends trip without its id and returns the stored trip.
func (c *Client) Create(ctx context.Context, trip models.Trip) (*models.Trip, error) {
	trip.ID = nil

	var created models.Trip
	if err := c.do(ctx, "create", http.MethodPost, tripsPath, trip, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) Update(ctx context.Context, id int64, trip models.Trip) (*models.Trip, error) {
	trip.ID = nil

	var updated models.Trip
	if err := c.do(ctx, "update", http.MethodPut, tripPath(id), trip, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, "delete", http.MethodDelete, tripPath(id), nil, nil)
}

// Search returns the trips whose destination contains the given fragment.
func (c *Client) Search(ctx context.Context, destination string) ([]models.Trip, error) {
	q := url.Values{}
	q.Set("destination", destination)

	var trips []models.Trip
	if err := c.do(ctx, "search", http.MethodGet, searchPath+"?"+q.Encode(), nil, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

// Login exchanges credentials for a session. It never sends a token.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	var session models.Session
	if err := c.send(ctx, "login", http.MethodPost, loginPath, creds, &session, false); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, body, dst any) error {
	return c.send(ctx, op, method, path, body, dst, true)
}

func (c *Client) send(ctx context.Context, op, method, path string, body, dst any, authorize bool) (err error) {
	start := time.Now()
	defer func() {
		metrics.RecordClientCall(op, err, time.Since(start))
	}()

	var reader io.Reader
	if body != nil {
		js, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", op, err)
		}
		reader = bytes.NewReader(js)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if rid := wrap.FromContext(ctx).RequestID; rid != "" {
		req.Header.Set(RequestIDHeader, rid)
	}
	if authorize && c.tokens != nil {
		if scheme, token, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", scheme+" "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(ctx, "trip api request failed", "operation", op, "method", method, "path", path, "error", err.Error())
		return fmt.Errorf("trip api request failed: %w", err)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "trip api call", "operation", op, "method", method, "path", path,
		"status", resp.StatusCode, "duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Status: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if dst == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode %s response: %w", op, err)
	}
	return nil
}

func tripPath(id int64) string {
	return tripsPath + "/" + strconv.FormatInt(id, 10)
}
