// Package app wires configuration into the services shared by the API
// server and the admin CLI.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/tutorbase/backend/internal/config"
	"github.com/tutorbase/backend/internal/currency"
	"github.com/tutorbase/backend/internal/db"
	"github.com/tutorbase/backend/internal/events"
	"github.com/tutorbase/backend/internal/payments"
	"github.com/tutorbase/backend/internal/repository"
	"github.com/tutorbase/backend/internal/service"
)

// App holds the connected infrastructure and the services built on it
type App struct {
	DB          *db.DB
	Refunds     *service.RefundService
	Invoices    *service.InvoiceService
	Ledger      *service.LedgerService
	Webhooks    *service.WebhookService
	Idempotency repository.IdempotencyRepository
	// WebhookVerifier is nil when no webhook secret is configured
	WebhookVerifier *payments.WebhookVerifier

	redis     *redis.Client
	publisher *events.RabbitPublisher
	logger    *slog.Logger
}

// New connects to Postgres and the optional Redis and RabbitMQ backends,
// applies migrations and builds the services. Optional backends that cannot
// be reached are logged and skipped.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	database, err := db.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(ctx); err != nil {
		_ = database.Close() //nolint:errcheck // already failing
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	a := &App{DB: database, logger: logger}

	var cache currency.RateCache
	if cfg.Redis.Addr != "" {
		client, err := currency.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Warn("exchange rate cache unavailable, continuing without it", "addr", cfg.Redis.Addr, "error", err)
		} else {
			a.redis = client
			cache = currency.NewRedisRateCache(client)
		}
	}
	converter := currency.NewConverter(
		currency.NewHTTPRateProvider(cfg.Rates.URL, cfg.Rates.Timeout),
		cache,
		cfg.Rates.CacheTTL,
		logger,
	)

	var gateway service.PaymentGateway = payments.DisabledGateway{}
	if cfg.Stripe.SecretKey != "" {
		gateway = payments.NewStripeGateway(cfg.Stripe.SecretKey)
	} else {
		logger.Warn("STRIPE_SECRET_KEY not set, refunds will fail at the gateway step")
	}
	if cfg.Stripe.WebhookSecret != "" {
		a.WebhookVerifier = payments.NewWebhookVerifier(cfg.Stripe.WebhookSecret)
	}

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.RabbitMQ.URL != "" {
		p, err := events.NewRabbitPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.RefundQueue)
		if err != nil {
			logger.Warn("refund event publishing disabled", "error", err)
		} else {
			a.publisher = p
			publisher = p
		}
	}

	refundRepo := repository.NewRefundRepository(database)
	orderRepo := repository.NewOrderRepository(database)

	a.Invoices = service.NewInvoiceService(database, converter, cfg.App.BaseCurrency, logger)
	a.Ledger = service.NewLedgerService(repository.NewTransactionRepository(database), logger)
	a.Refunds = service.NewRefundService(service.RefundDeps{
		Refunds:   refundRepo,
		Orders:    orderRepo,
		Slots:     repository.NewSlotRepository(database),
		Invoices:  a.Invoices,
		Ledger:    a.Ledger,
		Gateway:   gateway,
		Converter: converter,
		Events:    publisher,
	}, cfg.App.BaseCurrency, logger)
	a.Webhooks = service.NewWebhookService(service.WebhookDeps{
		Refunds:   refundRepo,
		Orders:    orderRepo,
		Invoices:  a.Invoices,
		Capturer:  service.NewCaptureService(database, a.Invoices, a.Ledger, cfg.App.BaseCurrency, logger),
		Converter: converter,
		Events:    publisher,
	}, cfg.App.BaseCurrency, logger)
	a.Idempotency = repository.NewIdempotencyRepository(database)

	return a, nil
}

// Close releases every connection the App opened
func (a *App) Close() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Warn("failed to close event publisher", "error", err)
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("failed to close redis client", "error", err)
		}
	}
	if err := a.DB.Close(); err != nil {
		a.logger.Warn("failed to close database", "error", err)
	}
}
