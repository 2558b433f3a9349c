// Package recordstore is the HTTP client for the external driver record
// store, the single source of truth for drivers, vehicles and training
// content. The gateway holds no copy of its state beyond a per-request read.
package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Credential is the per-request record-store token. It is carried explicitly
// from the session into every call instead of living in ambient storage.
type Credential struct {
	Token string
}

func (c Credential) empty() bool { return c.Token == "" }

type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
	locks   *keyedLocks
}

// New creates a client for the record store at baseURL (e.g.
// "http://localhost:8001/api").
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
		locks:   newKeyedLocks(),
	}
}

// errorBody is the union of the store's error shapes: DRF uses {detail},
// custom views use {error} or {message}.
type errorBody struct {
	Detail  string `json:"detail"`
	ErrMsg  string `json:"error"`
	Message string `json:"message"`
}

func (b errorBody) first() string {
	switch {
	case b.Detail != "":
		return b.Detail
	case b.ErrMsg != "":
		return b.ErrMsg
	default:
		return b.Message
	}
}

// do performs one JSON round-trip. A nil out discards the response body; a
// nil body sends no payload. cred may be zero for unauthenticated endpoints.
func (c *Client) do(ctx context.Context, method, path string, cred Credential, body, out any) error {
	op := method + " " + path

	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode body: %w", op, err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if !cred.empty() {
		req.Header.Set("Authorization", "Token "+cred.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var eb errorBody
		_ = json.Unmarshal(raw, &eb)
		detail := eb.first()
		if c.logger != nil {
			c.logger.Warn("record store error",
				zap.String("op", op),
				zap.Int("status", resp.StatusCode),
				zap.String("detail", detail),
			)
		}
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return ErrUnauthorized
		case http.StatusNotFound:
			return ErrNotFound
		case http.StatusConflict:
			return &ConflictError{Detail: detail}
		default:
			return &StatusError{Code: resp.StatusCode, Detail: detail}
		}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}
