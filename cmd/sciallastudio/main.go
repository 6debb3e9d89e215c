// Package main is the entry point for the Scialla Studio site API.
// It loads configuration, connects the content store, cache and email
// provider, sets up routing, and starts the HTTP server with graceful
// shutdown support.
package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sciallastudio/internal/cache"
	"sciallastudio/internal/config"
	"sciallastudio/internal/contact"
	"sciallastudio/internal/content"
	"sciallastudio/internal/database"
	"sciallastudio/internal/email"
	"sciallastudio/internal/handlers"
	"sciallastudio/internal/middleware"
	"sciallastudio/internal/router"
	"sciallastudio/internal/sanity"
	"sciallastudio/internal/store"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	// Load configuration from .env and the environment.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Structured logger: JSON in production, text elsewhere.
	level, _ := cfg.SlogLevel()
	opts := &slog.HandlerOptions{Level: level}
	if cfg.IsProduction() {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, opts)))
	} else {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, opts)))
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"content_backend", cfg.ContentBackend,
	)

	// Content store: the hosted CMS, or the Postgres mirror.
	source, db, err := openSource(cfg)
	if err != nil {
		slog.Error("failed to open content store", "backend", cfg.ContentBackend, "error", err)
		os.Exit(1)
	}
	if db != nil {
		defer db.Close()
	}

	// Content cache: Valkey when configured, otherwise in-process.
	var cacheStore cache.Store
	if cfg.ValkeyAddr() != "" {
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()
		cacheStore = cache.NewRedisStore(valkeyClient)
		slog.Info("valkey connected", "addr", cfg.ValkeyAddr())
	} else {
		memory := cache.NewMemoryStore()
		defer memory.Stop()
		cacheStore = memory
		slog.Warn("valkey not configured, caching content in process")
	}
	queryCache := cache.NewQueryCache(cacheStore, cfg.Revalidate)
	service := content.NewService(content.NewCachedSource(source, queryCache))

	// Lead intake. Without an API key the endpoint answers with a
	// configuration error instead of failing silently.
	templates, err := email.NewTemplates()
	if err != nil {
		slog.Error("failed to parse email templates", "error", err)
		os.Exit(1)
	}
	resendClient, err := email.NewResendClient(email.ResendConfig{APIKey: cfg.ResendAPIKey, BaseURL: cfg.ResendBaseURL})
	if err != nil {
		slog.Error("failed to configure resend", "error", err)
		os.Exit(1)
	}
	var mailer contact.Mailer
	if resendClient != nil {
		mailer = resendClient
	} else {
		slog.Warn("RESEND_API_KEY not set, contact form submissions will fail")
	}
	schema := contact.NewSchema()
	intake := contact.NewIntake(schema, templates, mailer, contact.IntakeConfig{
		ClientFrom: cfg.ContactFromClient,
		AdminFrom:  cfg.ContactFromAdmin,
		AdminTo:    cfg.ContactAdminEmail,
		CC:         cfg.ContactCC,
		AudienceID: cfg.ResendAudienceID,
	})

	limiter := middleware.NewRateLimiter(cfg.ContactRateLimit, cfg.ContactRateWindow)
	defer limiter.Stop()

	r := router.New(router.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		Production:     cfg.IsProduction(),
		TrustProxy:     cfg.TrustProxy,
		ContactLimiter: limiter,
	},
		handlers.NewContent(service, cfg.SiteURL),
		handlers.NewSite(service, cfg.SiteURL),
		handlers.NewContact(intake, schema),
	)

	// WriteTimeout covers a cold content fetch plus two email sends.
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      45 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

// openSource returns the configured content store. For the Postgres
// mirror it also returns the database handle, migrated and, in
// development, seeded.
func openSource(cfg *config.Config) (content.Source, *sql.DB, error) {
	if cfg.ContentBackend == config.BackendSanity {
		client, err := sanity.New(sanity.Config{
			ProjectID:  cfg.SanityProjectID,
			Dataset:    cfg.SanityDataset,
			APIVersion: cfg.SanityAPIVersion,
			Token:      cfg.SanityToken,
			UseCDN:     cfg.SanityUseCDN,
		})
		if err != nil {
			return nil, nil, err
		}
		return client, nil, nil
	}

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(db); err != nil {
		db.Close()
		return nil, nil, err
	}
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			db.Close()
			return nil, nil, err
		}
	}
	return store.NewSource(db), db, nil
}
