// Package catalog is the HTTP client for the upstream product catalog
// service.
package catalog

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/nhalm/canonlog"
	"github.com/nhalm/search-gateway/internal/apperrors"
	"github.com/nhalm/search-gateway/internal/models"
)

const serviceName = "catalog"

type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// Search issues an authenticated GET for the query and returns the catalog's
// hit list. The body is decoded leniently: a payload without a well-formed
// `products` array yields an empty list, not an error. Only transport
// failures and non-2xx statuses are reported as errors.
func (c *Client) Search(ctx context.Context, query string) ([]models.Product, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, apperrors.NewUpstreamError(serviceName, 0, err)
	}
	q := u.Query()
	q.Set("query", query)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, apperrors.NewUpstreamError(serviceName, 0, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamError(serviceName, 0, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.NewUpstreamError(serviceName, resp.StatusCode, nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewUpstreamError(serviceName, 0, err)
	}

	var envelope struct {
		Products []models.Product `json:"products"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		// Malformed payloads are treated as an empty result set. The
		// canonical log line records that it happened.
		canonlog.AddRequestFields(ctx, map[string]any{
			"catalog_malformed_payload": true,
		})
		return nil, nil
	}

	return envelope.Products, nil
}
