// Package wttr fetches forecasts from a wttr.in-compatible endpoint.
package wttr

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/wttrbot/internal/domain"
	"github.com/bnema/wttrbot/internal/ports"
)

const DefaultBaseURL = "https://wttr.in"

const maxResponseBytes = 1 << 20

type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var _ ports.ForecastProvider = (*Client)(nil)

// Fetch requests the structured (j1) payload for query and maps it into
// the typed forecast, applying all field defaults at this boundary.
func (c *Client) Fetch(ctx context.Context, query domain.Query) (domain.Forecast, error) {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	endpoint := fmt.Sprintf("%s/%s?format=j1", strings.TrimSuffix(base, "/"), query)

	requestCtx := ctx
	if c.RequestTimeout > 0 {
		var cancel context.CancelFunc
		requestCtx, cancel = context.WithTimeout(ctx, c.RequestTimeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Forecast{}, fmt.Errorf("create forecast request: %w", err)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return domain.Forecast{}, fmt.Errorf("request forecast: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return domain.Forecast{}, fmt.Errorf("%w: status %d for %q", domain.ErrForecastUnavailable, resp.StatusCode, query)
	}

	var payload response
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return domain.Forecast{}, fmt.Errorf("decode forecast response: %w", err)
	}

	return payload.toForecast(string(query)), nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}
