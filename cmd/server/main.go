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

	"github.com/janisto/greeting-lambda/internal/greeting"
	"github.com/janisto/greeting-lambda/internal/http/health"
	"github.com/janisto/greeting-lambda/internal/http/invoke"
	"github.com/janisto/greeting-lambda/internal/http/v1/routes"
	"github.com/janisto/greeting-lambda/internal/platform/config"
	applog "github.com/janisto/greeting-lambda/internal/platform/logging"
	appmiddleware "github.com/janisto/greeting-lambda/internal/platform/middleware"
	"github.com/janisto/greeting-lambda/internal/platform/respond"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

const (
	docsPath        = "/api-docs"
	maxEventBytes   = 1 << 20
	shutdownTimeout = 10 * time.Second
)

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
		applog.LogFatal(context.Background(), "config load failed", err)
	}

	srv := newServer(cfg.Addr(), newRouter(greeting.New()))

	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(context.Background(), "server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		applog.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		os.Exit(1)
	case <-stop:
		applog.LogInfo(context.Background(), "shutdown signal received")
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		applog.LogError(ctx, "server shutdown error", err)
	}
	applog.LogInfo(context.Background(), "server exited")
}

func newServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}
}

// newRouter mounts every endpoint of the local server around fn.
func newRouter(fn *greeting.Handler) chi.Router {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	router.Use(
		appmiddleware.Security(docsPath),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP trusts X-Forwarded-For; only run behind a trusted proxy.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(maxEventBytes),
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	router.Get(health.Path, health.Handler)
	router.Post(invoke.Path, invoke.Handler(fn))

	cfg := huma.DefaultConfig("Greeting Lambda API", Version)
	cfg.DocsPath = docsPath
	api := humachi.New(router, cfg)
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation, addCBORContent)

	routes.Register(api, fn)
	return router
}

// addCBORContent advertises application/cbor next to every JSON body.
func addCBORContent(_ *huma.OpenAPI, op *huma.Operation) {
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
