package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"gimie/internal/domain"

	"github.com/shopspring/decimal"
)

var ErrEmptyRates = errors.New("response contains no rates")

type ExchangeRateClient struct {
	http    *http.Client
	baseURL string
}

type apiResponse struct {
	Base  string                     `json:"base"`
	Date  string                     `json:"date"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// GetExchangeRates requests <baseURL>/<BASE> and returns the rates keyed by
// currency. Keys that are not ISO codes are skipped.
func (c *ExchangeRateClient) GetExchangeRates(ctx context.Context, base domain.Code) (map[domain.Code]decimal.Decimal, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + base.String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for currency %q: %w", base, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request for currency %q: %w", base, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code %d for currency %q: %s", resp.StatusCode, base, resp.Status)
	}

	var body apiResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response for currency %q: %w", base, err)
	}

	if body.Base != "" && !strings.EqualFold(body.Base, base.String()) {
		return nil, fmt.Errorf("api answered base %q for currency %q", body.Base, base)
	}

	rates := make(map[domain.Code]decimal.Decimal, len(body.Rates))
	for raw, value := range body.Rates {
		code, parseErr := domain.ParseCode(raw)
		if parseErr != nil {
			continue
		}
		rates[code] = value
	}
	if len(rates) == 0 {
		return nil, fmt.Errorf("currency %q: %w", base, ErrEmptyRates)
	}

	return rates, nil
}

func NewExchangeRateClient(httpClient *http.Client, baseURL string) *ExchangeRateClient {
	return &ExchangeRateClient{http: httpClient, baseURL: baseURL}
}
