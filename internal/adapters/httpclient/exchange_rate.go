package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"fxconvert/internal/domain"
)

const (
	maxBodyBytes     = 1 << 20
	unknownAPIError  = "unknown api error"
	serverErrorValue = "server responded with an error"
	maskedKey        = "***"
)

type upstreamObserver interface {
	ObserveUpstream(statusCode int, elapsed time.Duration)
}

// ExchangeRateClient talks to the exchangerate-api.com v6 "latest" endpoint.
type ExchangeRateClient struct {
	http     *http.Client
	baseURL  string
	apiKey   string
	observer upstreamObserver
}

type apiResponse struct {
	Result          string           `json:"result"`
	BaseCode        string           `json:"base_code"`
	ErrorType       string           `json:"error-type"`
	ErrorTypeLegacy string           `json:"error_type"`
	ConversionRates domain.RateTable `json:"conversion_rates"`
}

func (r apiResponse) errorType(fallback string) string {
	switch {
	case r.ErrorType != "":
		return r.ErrorType
	case r.ErrorTypeLegacy != "":
		return r.ErrorTypeLegacy
	default:
		return fallback
	}
}

// GetExchangeRates fetches the rate table for base. The api key is checked before any request is made.
func (c *ExchangeRateClient) GetExchangeRates(ctx context.Context, base string) (domain.RateTable, error) {
	if c.apiKey == "" {
		return nil, domain.ErrMissingAPIKey
	}
	base = strings.ToUpper(base)

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	// JoinPath treats its elements as escaped path text
	u = u.JoinPath(url.PathEscape(c.apiKey), "latest", url.PathEscape(base))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for currency %q: %w", base, c.redact(err))
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.observe(0, started)
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, c.redact(err))
	}
	defer resp.Body.Close()
	c.observe(resp.StatusCode, started)

	var body apiResponse
	decodeErr := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &domain.APIError{StatusCode: resp.StatusCode, ErrorType: body.errorType(serverErrorValue)}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("failed to decode response for currency %q: %w", base, decodeErr)
	}
	if body.Result != "success" {
		return nil, &domain.APIError{StatusCode: resp.StatusCode, ErrorType: body.errorType(unknownAPIError)}
	}

	if body.ConversionRates == nil {
		body.ConversionRates = domain.RateTable{}
	}
	return body.ConversionRates, nil
}

func (c *ExchangeRateClient) observe(statusCode int, started time.Time) {
	if c.observer != nil {
		c.observer.ObserveUpstream(statusCode, time.Since(started))
	}
}

// redact hides the api key, which is part of the request path, from error messages.
func (c *ExchangeRateClient) redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		for _, form := range c.keyForms() {
			urlErr.URL = strings.ReplaceAll(urlErr.URL, form, maskedKey)
		}
	}
	return err
}

// keyForms lists the api key as it may appear in a request URL: raw and percent-escaped.
func (c *ExchangeRateClient) keyForms() []string {
	forms := []string{
		(&url.URL{Path: c.apiKey}).EscapedPath(),
		url.PathEscape(c.apiKey),
		c.apiKey,
	}
	return slices.Compact(forms)
}

func NewExchangeRateClient(httpClient *http.Client, baseURL, apiKey string, observer upstreamObserver) *ExchangeRateClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ExchangeRateClient{http: httpClient, baseURL: baseURL, apiKey: apiKey, observer: observer}
}
