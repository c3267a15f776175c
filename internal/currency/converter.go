package currency

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// defaultFetchTimeout bounds a shared provider fetch, which runs detached
// from any one caller's context.
const defaultFetchTimeout = 10 * time.Second

// Conversion is the outcome of converting an amount. When no rate could be
// used, Amount is the input and Converted is false.
type Conversion struct {
	Rate      decimal.Decimal
	From      string
	To        string
	Amount    int64
	Converted bool
}

// Converter converts integer minor-unit amounts between currencies.
// Failures never surface as errors: the unconverted amount is returned
// and a warning is logged.
type Converter struct {
	provider RateProvider
	cache    RateCache
	logger   *slog.Logger
	group    singleflight.Group
	ttl      time.Duration

	fetchTimeout time.Duration
}

// NewConverter creates a Converter. cache may be nil.
func NewConverter(provider RateProvider, cache RateCache, ttl time.Duration, logger *slog.Logger) *Converter {
	return &Converter{
		provider: provider,
		cache:    cache,
		ttl:      ttl,
		logger:   logger,

		fetchTimeout: defaultFetchTimeout,
	}
}

// Convert converts amount from one currency into another, rounding half away
// from zero to the nearest minor unit.
func (c *Converter) Convert(ctx context.Context, amount int64, from, to string) Conversion {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)

	result := Conversion{Amount: amount, From: from, To: to, Rate: decimal.NewFromInt(1)}
	if from == to {
		return result
	}

	rates, err := c.rates(ctx, from)
	if err != nil {
		c.logger.Warn("exchange rate lookup failed, using unconverted amount",
			"from", from,
			"to", to,
			"amount", amount,
			"error", err,
		)
		return result
	}

	rate, ok := rates[to]
	if !ok || !rate.IsPositive() {
		c.logger.Warn("no exchange rate available, using unconverted amount",
			"from", from,
			"to", to,
			"amount", amount,
		)
		return result
	}

	result.Rate = rate
	result.Amount = decimal.NewFromInt(amount).Mul(rate).Round(0).IntPart()
	result.Converted = true
	return result
}

// rates returns the rate table for base, consulting the cache first and
// collapsing concurrent provider fetches for the same base.
func (c *Converter) rates(ctx context.Context, base string) (Rates, error) {
	if c.cache != nil {
		rates, ok, err := c.cache.Get(ctx, base)
		if err != nil {
			c.logger.Warn("rate cache read failed", "base", base, "error", err)
		}
		if ok {
			return rates, nil
		}
	}

	// the fetch is shared by every waiting caller, so it must not die
	// with whichever caller happened to start it
	v, err, _ := c.group.Do(base, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.fetchTimeout)
		defer cancel()

		rates, err := c.provider.GetRates(fetchCtx, base)
		if err != nil {
			return nil, err
		}
		if c.cache != nil {
			if err := c.cache.Set(fetchCtx, base, rates, c.ttl); err != nil {
				c.logger.Warn("rate cache write failed", "base", base, "error", err)
			}
		}
		return rates, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(Rates), nil
}
