package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"gimie/internal/domain"
)

const userAgent = "Gimie-API/2.0.0"

// MetadataClient reads page metadata from a microlink compatible API.
type MetadataClient struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

type metadataResponse struct {
	Status string `json:"status"`
	Data   struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		Image       *struct {
			URL string `json:"url"`
		} `json:"image"`
	} `json:"data"`
}

func (c *MetadataClient) Fetch(ctx context.Context, pageURL string) (domain.Metadata, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return domain.Metadata{}, fmt.Errorf("failed to parse base URL: %w", err)
	}
	q := u.Query()
	q.Set("url", pageURL)
	if c.apiKey != "" {
		q.Set("apiKey", c.apiKey)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.Metadata{}, fmt.Errorf("failed to create metadata request for %q: %w", pageURL, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Metadata{}, fmt.Errorf("%w: %w", domain.ErrMetadataUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return domain.Metadata{}, domain.ErrMetadataRateLimited
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.Metadata{}, fmt.Errorf("%w: unexpected status code %d for %q", domain.ErrMetadataUnavailable, resp.StatusCode, pageURL)
	}

	var body metadataResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Metadata{}, fmt.Errorf("%w: failed to decode response for %q: %v", domain.ErrMetadataUnavailable, pageURL, err)
	}
	if body.Status != "" && body.Status != "success" {
		return domain.Metadata{}, fmt.Errorf("%w: api returned status %q for %q", domain.ErrMetadataUnavailable, body.Status, pageURL)
	}

	md := domain.Metadata{
		Title:       body.Data.Title,
		Description: body.Data.Description,
		URL:         body.Data.URL,
	}
	if body.Data.Image != nil {
		md.ImageURL = body.Data.Image.URL
	}
	return md, nil
}

func NewMetadataClient(httpClient *http.Client, baseURL, apiKey string) *MetadataClient {
	return &MetadataClient{http: httpClient, baseURL: baseURL, apiKey: apiKey}
}
