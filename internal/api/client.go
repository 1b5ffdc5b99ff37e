// Package api is the bulk-fetch client used once at startup to hydrate
// the store before streamed updates take over.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"fleet-monitor/dashboard/internal/domain"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchVehicles returns the full current vehicle list.
func (c *Client) FetchVehicles(ctx context.Context) ([]domain.VehicleState, error) {
	var out []domain.VehicleState
	if err := c.get(ctx, c.baseURL+"/vehicles", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchVehicle returns one vehicle snapshot by identifier.
func (c *Client) FetchVehicle(ctx context.Context, vehicleID string) (domain.VehicleState, error) {
	var out domain.VehicleState
	err := c.get(ctx, c.baseURL+"/vehicles/"+url.PathEscape(vehicleID), &out)
	return out, err
}

// FetchAlerts returns the most recent alerts, newest first, optionally
// restricted to one type. The AlertTypeAll sentinel means no filter.
func (c *Client) FetchAlerts(ctx context.Context, t domain.AlertType, limit int) ([]domain.Alert, error) {
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	if t != domain.AlertTypeAll && t != "" {
		q.Set("type", string(t))
	}

	var out []domain.Alert
	if err := c.get(ctx, c.baseURL+"/alerts?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchTelemetry returns the recent telemetry history for one vehicle.
func (c *Client) FetchTelemetry(ctx context.Context, vehicleID string, limit int) ([]domain.TelemetrySample, error) {
	q := url.Values{"limit": {strconv.Itoa(limit)}}

	var out []domain.TelemetrySample
	err := c.get(ctx, c.baseURL+"/telemetry/"+url.PathEscape(vehicleID)+"?"+q.Encode(), &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("bulk fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bulk fetch returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
