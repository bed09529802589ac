package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Triaksa-Space/bootcamp-site/config"
	"github.com/Triaksa-Space/bootcamp-site/domain/contact"
	"github.com/Triaksa-Space/bootcamp-site/domain/content"
	"github.com/Triaksa-Space/bootcamp-site/domain/health"
	"github.com/Triaksa-Space/bootcamp-site/domain/notification"
	"github.com/Triaksa-Space/bootcamp-site/domain/pages"
	"github.com/Triaksa-Space/bootcamp-site/domain/payment"
	"github.com/Triaksa-Space/bootcamp-site/domain/upload"
	"github.com/Triaksa-Space/bootcamp-site/domain/webhook"
	"github.com/Triaksa-Space/bootcamp-site/middleware"
	"github.com/Triaksa-Space/bootcamp-site/pkg/logger"
	"github.com/Triaksa-Space/bootcamp-site/pkg/mailer"
	"github.com/Triaksa-Space/bootcamp-site/pkg/payments"
	"github.com/Triaksa-Space/bootcamp-site/pkg/secret"
	"github.com/Triaksa-Space/bootcamp-site/pkg/storage"
	"github.com/Triaksa-Space/bootcamp-site/routes"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func serverCmd() *cobra.Command {
	var (
		addr        string
		skipMigrate bool
	)

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), addr, skipMigrate)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to HTTP_ADDR)")
	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not apply SQL migrations on startup")

	return cmd
}

func runServer(ctx context.Context, addr string, skipMigrate bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	cfg, log := a.cfg, a.log
	if addr == "" {
		addr = cfg.HTTPAddr
	}

	if a.db != nil && !skipMigrate {
		if err := config.Migrate(a.db); err != nil {
			return err
		}
	}

	guard := secret.NewGuard(cfg.EditPassword)
	if !guard.Configured() {
		log.Warn("EDIT_PASSWORD is not set; content writes and uploads are rejected")
	}

	store := content.NewStore(a.backend, cfg.ContentKey, guard, log)
	cache := content.NewCache(store.Load, cfg.ContentCacheTTL)
	store.OnSave = cache.Invalidate

	renderer, err := pages.NewRenderer()
	if err != nil {
		return err
	}

	mail := newMailer(ctx, a)
	provider := newPaymentProvider(a)

	var (
		dedupe    webhook.Deduper
		rateStore middleware.RateStore
	)
	if a.redis != nil {
		dedupe = webhook.NewRedisDeduper(a.redis, webhook.DefaultDedupeTTL)
		rateStore = middleware.NewRedisRateStore(a.redis)
	}

	checks := map[string]health.Pinger{"content_store": nil}
	if a.backend != nil {
		checks["content_store"] = a.backend
	}

	e := routes.NewServer(routes.ServerOptions{
		Log:         log,
		CORSOrigins: cfg.CORSOrigins,
		Renderer:    renderer,
	})

	routes.RegisterRoutes(e, routes.Handlers{
		Content: content.NewHandler(store),
		Upload:  upload.NewHandler(upload.NewGateway(newBlobStore(ctx, a), guard, log)),
		Payment: payment.NewHandler(provider, cfg.SiteURL, log).WithDefaultCurrency(cfg.StripeDefaultCurrency),
		Webhook: webhook.NewHandler(provider, cache, mail, dedupe, webhook.Config{
			From:    cfg.EmailFrom,
			ReplyTo: cfg.EmailReplyTo,
			AdminTo: cfg.AdminEmails,
			Site:    notification.Site{Name: cfg.SiteName, URL: cfg.SiteURL},
		}, log),
		Contact: contact.NewHandler(cache, mail, contact.Config{
			From:    cfg.EmailFrom,
			AdminTo: cfg.AdminEmails,
		}, log),
		Pages:  pages.NewHandler(store),
		Health: health.NewHandler(Version, checks),
		ContactLimit: middleware.RateLimiterConfig{
			MaxRequests:   cfg.ContactRatePerMinute,
			Window:        time.Minute,
			BlockDuration: 5 * time.Minute,
			Store:         rateStore,
			Log:           log,
		},
	})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server starting", logger.String("addr", addr), logger.String("env", cfg.Environment))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// newBlobStore returns nil when no bucket is configured; uploads then fail
// with a store error.
func newBlobStore(ctx context.Context, a *app) storage.BlobStore {
	cfg := a.cfg
	if cfg.S3Bucket == "" {
		a.log.Warn("S3_BUCKET_NAME is not set; uploads are disabled")
		return nil
	}

	s, err := storage.NewS3Store(ctx, storage.S3Config{
		Bucket:        cfg.S3Bucket,
		Region:        cfg.AWSRegion,
		AccessKey:     cfg.AWSAccessKey,
		SecretKey:     cfg.AWSSecretKey,
		Endpoint:      cfg.S3Endpoint,
		PublicBaseURL: cfg.S3PublicBaseURL,
	})
	if err != nil {
		a.log.Error("Failed to configure S3; uploads are disabled", err)
		return nil
	}
	return s
}

// newMailer returns nil when the selected provider has no credentials.
func newMailer(ctx context.Context, a *app) mailer.Mailer {
	cfg := a.cfg
	switch cfg.EmailProvider {
	case "ses":
		m, err := mailer.NewSESMailer(ctx, cfg.AWSRegion, cfg.AWSAccessKey, cfg.AWSSecretKey)
		if err != nil {
			a.log.Error("Failed to configure SES; email is disabled", err)
			return nil
		}
		return m
	default:
		if cfg.ResendAPIKey == "" {
			a.log.Warn("RESEND_API is not set; email is disabled")
			return nil
		}
		return mailer.NewResendMailer(cfg.ResendAPIKey)
	}
}

func newPaymentProvider(a *app) payments.Provider {
	cfg := a.cfg
	if cfg.StripeSecretKey == "" {
		a.log.Warn("STRIPE_SECRET_KEY is not set; payments are disabled")
		return nil
	}
	if cfg.StripeWebhookSecret == "" {
		a.log.Warn("STRIPE_WEBHOOK_SECRET is not set; every webhook delivery will be rejected")
	}
	return payments.NewStripeProvider(cfg.StripeSecretKey, cfg.StripeWebhookSecret)
}
