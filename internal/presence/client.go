// Package presence polls the realtime driver service for the set of drivers
// currently online. The snapshot is display-only and never persisted.
package presence

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Amaspm/driver-management/internal/domain"
)

// Snapshot maps driver id (as the realtime service keys it, a decimal
// string) to the driver's presence entry.
type Snapshot map[string]domain.PresenceEntry

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type onlineResponse struct {
	OnlineDrivers Snapshot `json:"online_drivers"`
}

// FetchOnline retrieves the current wholesale snapshot of online drivers.
func (c *Client) FetchOnline(ctx context.Context) (Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/drivers/online", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("presence fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("presence service returned %d", resp.StatusCode)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("presence fetch: %w", err)
	}
	var out onlineResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("presence decode: %w", err)
	}
	if out.OnlineDrivers == nil {
		out.OnlineDrivers = Snapshot{}
	}
	return out.OnlineDrivers, nil
}
