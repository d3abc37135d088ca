package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Arturstriker3/test-portdata/internal/config"
	"github.com/Arturstriker3/test-portdata/internal/http/health"
	"github.com/Arturstriker3/test-portdata/internal/http/v1/routes"
	"github.com/Arturstriker3/test-portdata/internal/platform/auth"
	"github.com/Arturstriker3/test-portdata/internal/platform/database"
	applog "github.com/Arturstriker3/test-portdata/internal/platform/logging"
	"github.com/Arturstriker3/test-portdata/internal/platform/metrics"
	appmiddleware "github.com/Arturstriker3/test-portdata/internal/platform/middleware"
	"github.com/Arturstriker3/test-portdata/internal/platform/respond"
	contactsvc "github.com/Arturstriker3/test-portdata/internal/service/contact"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		applog.LogFatal(context.Background(), "configuration error", err)
	}

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := database.Open(startupCtx, cfg.Database)
	cancelStartup()
	if err != nil {
		applog.LogFatal(context.Background(), "database connection error", err)
	}
	if err := contactsvc.Migrate(db); err != nil {
		applog.LogFatal(context.Background(), "database migration error", err)
	}

	// The error model override must land before routes are registered so
	// the generated docs describe the {message} payload.
	respond.Install()

	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Security("/api-docs"),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP extracts client IP from X-Real-IP or X-Forwarded-For headers.
		// SECURITY: Only use behind a trusted reverse proxy (e.g., Cloud Run, nginx).
		// Without a trusted proxy, clients can spoof their IP address.
		chimiddleware.RealIP,
		// RequestSize limits request body size to prevent memory exhaustion from large payloads.
		chimiddleware.RequestSize(1<<20), // 1 MB limit
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	apiCfg := huma.DefaultConfig("Contacts API", Version)
	apiCfg.DocsPath = "/api-docs"
	// Success bodies are exactly the documented shapes; drop the $schema
	// link injection DefaultConfig enables.
	apiCfg.Transformers = nil
	apiCfg.OpenAPI.OnAddOperation = nil
	// Allow JSON fallback for wildcard Accept headers (e.g., */*) since Huma's
	// negotiation uses exact matching and doesn't interpret wildcards per
	// RFC 9110 section 12.5.1. Clients sending unsupported types like text/plain
	// will still receive JSON rather than 406, which is acceptable per RFC 9110
	// section 12.4.1 (servers MAY disregard Accept and return a default).
	api := humachi.New(router, apiCfg)

	// Add CBOR content type to OpenAPI requests and responses
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation, addCBORContentType)

	recorder := metrics.NewRecorder()
	api.UseMiddleware(recorder.Middleware())

	verifier := auth.NewJWTVerifier(cfg.Auth.JWTSecret)
	repo := contactsvc.NewGormRepository(db)
	routes.Register(api, verifier, repo)

	router.Get("/health", health.New(pingDatabase(db)))
	router.Method(http.MethodGet, "/metrics", recorder.Handler())

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}

	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(context.Background(), "server listening",
			zap.String("addr", srv.Addr), zap.String("environment", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		applog.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		os.Exit(1)
	case <-stop:
		applog.LogInfo(context.Background(), "shutdown signal received")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		applog.LogError(ctx, "server shutdown error", err)
	}
	if err := database.Close(ctx, db); err != nil {
		applog.LogError(ctx, "database close error", err)
	}
	applog.LogInfo(context.Background(), "server exited")
}

// addCBORContentType advertises application/cbor alongside JSON on every
// operation's request and response bodies.
func addCBORContentType(_ *huma.OpenAPI, op *huma.Operation) {
	if op.RequestBody != nil && op.RequestBody.Content != nil {
		if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
			op.RequestBody.Content["application/cbor"] = jsonContent
		}
	}
	for _, resp := range op.Responses {
		if resp.Content == nil {
			continue
		}
		if jsonContent, ok := resp.Content["application/json"]; ok {
			resp.Content["application/cbor"] = jsonContent
		}
	}
}

// pingDatabase adapts the GORM handle into the health probe.
func pingDatabase(db *gorm.DB) health.PingFunc {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}
