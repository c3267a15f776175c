package currency

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubProvider struct {
	rates Rates
	err   error
	calls atomic.Int32
	delay time.Duration
}

func (p *stubProvider) GetRates(_ context.Context, _ string) (Rates, error) {
	p.calls.Add(1)
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
	return p.rates, p.err
}

// ctxProvider fails the way a real HTTP fetch does once its context is done
type ctxProvider struct {
	rates       Rates
	hang        bool
	hadDeadline atomic.Bool
}

func (p *ctxProvider) GetRates(ctx context.Context, _ string) (Rates, error) {
	_, ok := ctx.Deadline()
	p.hadDeadline.Store(ok)
	if p.hang {
		<-ctx.Done()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.rates, nil
}

type memoryCache struct {
	mu      sync.Mutex
	entries map[string]Rates
	getErr  error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]Rates)}
}

func (c *memoryCache) Get(_ context.Context, base string) (Rates, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	r, ok := c.entries[base]
	return r, ok, nil
}

func (c *memoryCache) Set(_ context.Context, base string, rates Rates, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[base] = rates
	return nil
}

func TestConverter_Convert(t *testing.T) {
	ctx := context.Background()

	t.Run("same currency is returned unchanged", func(t *testing.T) {
		provider := &stubProvider{}
		c := NewConverter(provider, nil, time.Hour, testLogger())

		got := c.Convert(ctx, 10001, "CAD", "cad")

		assert.Equal(t, int64(10001), got.Amount)
		assert.False(t, got.Converted)
		assert.Zero(t, provider.calls.Load(), "no rate lookup for identical currencies")
	})

	t.Run("converts and rounds to nearest minor unit", func(t *testing.T) {
		provider := &stubProvider{rates: Rates{"INR": decimal.RequireFromString("62.5")}}
		c := NewConverter(provider, nil, time.Hour, testLogger())

		got := c.Convert(ctx, 10000, "CAD", "INR")

		assert.Equal(t, int64(625000), got.Amount)
		assert.True(t, got.Converted)
		assert.True(t, decimal.RequireFromString("62.5").Equal(got.Rate))
	})

	t.Run("rounds half away from zero", func(t *testing.T) {
		provider := &stubProvider{rates: Rates{"USD": decimal.RequireFromString("0.735")}}
		c := NewConverter(provider, nil, time.Hour, testLogger())

		// 10 * 0.735 = 7.35 -> 7
		assert.Equal(t, int64(7), c.Convert(ctx, 10, "CAD", "USD").Amount)
		// 100 * 0.735 = 73.5 -> 74
		assert.Equal(t, int64(74), c.Convert(ctx, 100, "CAD", "USD").Amount)
	})

	t.Run("missing rate falls back to unconverted amount", func(t *testing.T) {
		provider := &stubProvider{rates: Rates{"USD": decimal.RequireFromString("0.73")}}
		c := NewConverter(provider, nil, time.Hour, testLogger())

		got := c.Convert(ctx, 10000, "CAD", "JPY")

		assert.Equal(t, int64(10000), got.Amount)
		assert.False(t, got.Converted)
	})

	t.Run("provider outage falls back to unconverted amount", func(t *testing.T) {
		provider := &stubProvider{err: ErrConversionUnavailable}
		c := NewConverter(provider, nil, time.Hour, testLogger())

		got := c.Convert(ctx, 10000, "CAD", "INR")

		assert.Equal(t, int64(10000), got.Amount)
		assert.False(t, got.Converted)
	})
}

func TestConverter_Cache(t *testing.T) {
	ctx := context.Background()

	t.Run("second lookup is served from cache", func(t *testing.T) {
		provider := &stubProvider{rates: Rates{"INR": decimal.RequireFromString("62.5")}}
		cache := newMemoryCache()
		c := NewConverter(provider, cache, time.Hour, testLogger())

		c.Convert(ctx, 100, "CAD", "INR")
		c.Convert(ctx, 200, "CAD", "INR")

		assert.Equal(t, int32(1), provider.calls.Load())
	})

	t.Run("cache read failure still reaches provider", func(t *testing.T) {
		provider := &stubProvider{rates: Rates{"INR": decimal.RequireFromString("62.5")}}
		cache := newMemoryCache()
		cache.getErr = errors.New("redis down")
		c := NewConverter(provider, cache, time.Hour, testLogger())

		got := c.Convert(ctx, 100, "CAD", "INR")

		assert.Equal(t, int64(6250), got.Amount)
	})

	t.Run("concurrent lookups share one fetch", func(t *testing.T) {
		provider := &stubProvider{
			rates: Rates{"INR": decimal.RequireFromString("62.5")},
			delay: 50 * time.Millisecond,
		}
		c := NewConverter(provider, nil, time.Hour, testLogger())

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				c.Convert(ctx, 100, "CAD", "INR")
			}()
		}
		wg.Wait()

		assert.Less(t, provider.calls.Load(), int32(10))
	})

	t.Run("shared fetch outlives a cancelled caller", func(t *testing.T) {
		provider := &ctxProvider{rates: Rates{"INR": decimal.RequireFromString("62.5")}}
		cache := newMemoryCache()
		c := NewConverter(provider, cache, time.Hour, testLogger())

		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		got := c.Convert(cancelled, 100, "CAD", "INR")

		assert.True(t, got.Converted)
		assert.Equal(t, int64(6250), got.Amount)
		assert.True(t, provider.hadDeadline.Load())
		_, cached, err := cache.Get(context.Background(), "CAD")
		require.NoError(t, err)
		assert.True(t, cached)
	})

	t.Run("hung provider is cut off by the fetch timeout", func(t *testing.T) {
		provider := &ctxProvider{rates: Rates{"INR": decimal.RequireFromString("62.5")}, hang: true}
		c := NewConverter(provider, nil, time.Hour, testLogger())
		c.fetchTimeout = 20 * time.Millisecond

		got := c.Convert(context.Background(), 100, "CAD", "INR")

		assert.False(t, got.Converted)
		assert.Equal(t, int64(100), got.Amount)
	})
}

func TestHTTPRateProvider_GetRates(t *testing.T) {
	t.Run("parses rates", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/CAD", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"result":"success","base_code":"CAD","rates":{"INR":62.5,"usd":0.73}}`)) //nolint:errcheck // test server
		}))
		defer srv.Close()

		p := NewHTTPRateProvider(srv.URL+"/", time.Second)
		rates, err := p.GetRates(context.Background(), "cad")

		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("62.5").Equal(rates["INR"]))
		assert.True(t, decimal.RequireFromString("0.73").Equal(rates["USD"]))
	})

	t.Run("upstream error is conversion unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		p := NewHTTPRateProvider(srv.URL, time.Second)
		_, err := p.GetRates(context.Background(), "CAD")

		assert.ErrorIs(t, err, ErrConversionUnavailable)
	})

	t.Run("error result is conversion unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"result":"error","error-type":"unsupported-code"}`)) //nolint:errcheck // test server
		}))
		defer srv.Close()

		p := NewHTTPRateProvider(srv.URL, time.Second)
		_, err := p.GetRates(context.Background(), "XXX")

		assert.ErrorIs(t, err, ErrConversionUnavailable)
	})
}

func TestRateKey(t *testing.T) {
	assert.Equal(t, "fx:rates:CAD", rateKey("CAD"))
}
