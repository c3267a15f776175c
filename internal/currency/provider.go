// Package currency converts base-currency amounts into the currency a
// customer paid in, using live exchange rates.
package currency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrConversionUnavailable indicates the rate service could not be reached
// or returned an unusable response.
var ErrConversionUnavailable = errors.New("currency conversion unavailable")

// Rates maps ISO currency codes to the number of units per one unit of the base.
type Rates map[string]decimal.Decimal

// RateProvider fetches the current rates for a base currency
type RateProvider interface {
	GetRates(ctx context.Context, base string) (Rates, error)
}

// HTTPRateProvider reads rates from an open.er-api.com compatible endpoint
// (GET {baseURL}/{BASE}).
type HTTPRateProvider struct {
	client  *http.Client
	baseURL string
}

// NewHTTPRateProvider creates a provider with the given request timeout
func NewHTTPRateProvider(baseURL string, timeout time.Duration) *HTTPRateProvider {
	return &HTTPRateProvider{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

type ratesResponse struct {
	Rates    map[string]decimal.Decimal `json:"rates"`
	Result   string                     `json:"result"`
	BaseCode string                     `json:"base_code"`
}

// GetRates fetches the latest rates for base
func (p *HTTPRateProvider) GetRates(ctx context.Context, base string) (Rates, error) {
	base = strings.ToUpper(base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/"+base, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConversionUnavailable, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConversionUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: rate service returned status %d", ErrConversionUnavailable, resp.StatusCode)
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode rates: %v", ErrConversionUnavailable, err)
	}
	if body.Result != "" && body.Result != "success" {
		return nil, fmt.Errorf("%w: rate service result %q", ErrConversionUnavailable, body.Result)
	}

	rates := make(Rates, len(body.Rates))
	for code, rate := range body.Rates {
		rates[strings.ToUpper(code)] = rate
	}
	return rates, nil
}
