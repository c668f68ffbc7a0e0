// Wiki Lookup MCP Server - A Model Context Protocol server for Wikipedia,
// Wikidata and Google Suggest lookups
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/olgasafonova/wikilookup-mcp-server/internal/app"
	"github.com/olgasafonova/wikilookup-mcp-server/tools"
	"github.com/olgasafonova/wikilookup-mcp-server/tracing"
)

// recoverPanic logs a panic instead of crashing
func recoverPanic(logger *slog.Logger, operation string) {
	if r := recover(); r != nil {
		logger.Error("Panic recovered",
			"operation", operation,
			"panic", r,
			"stack", string(debug.Stack()))
	}
}

const (
	ServerName    = "wikilookup-mcp-server"
	ServerVersion = "1.0.0"
)

const serverInstructions = `Wiki Lookup MCP Server answers questions about Wikipedia articles, Wikidata facts and search suggestions.

Articles are referenced as language:Title, e.g. "de:Berlin". Categories as language:Category:Title, e.g. "en:Category:Physics".

Available tools:
- wiki_synonyms: Alternative names (redirects) of an article
- wiki_translate: Article title in other language editions
- wiki_expand: Translations plus the synonyms of each translation
- wiki_category_members: Articles in a category
- wiki_subcategories: Subcategories of a category
- wiki_inbound_links: Articles linking to an article
- wiki_outbound_links: Articles an article links to
- wiki_mutual_links: Articles linked in both directions
- wiki_geocoordinates: Latitude and longitude of an article
- wikidata_facts: Single-valued Wikidata facts of an article
- google_suggest: Google autocomplete suggestions for a keyword

Every result has a status: "ok" (rows found), "empty" (nothing matched) or "failed" (see message).

Configure via WIKILOOKUP_CONFIG (YAML file) or WIKILOOKUP_* environment variables.`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Printf("%s: %v", ServerName, err)
		stop()
		os.Exit(1)
	}
}

// run serves MCP over transport until the client disconnects or ctx ends.
// Tracing and metrics are shut down before it returns.
func run(ctx context.Context, transport mcp.Transport) error {
	cfg, err := app.LoadConfig("")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := app.NewLogger(cfg, os.Stderr)

	tcfg := tracing.DefaultConfig()
	tcfg.ServiceName = ServerName
	tcfg.ServiceVersion = ServerVersion
	shutdownTracing, err := tracing.Setup(ctx, tcfg)
	if err != nil {
		logger.Warn("Tracing disabled", "error", err)
		shutdownTracing = func(context.Context) error { return nil }
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("Tracing shutdown failed", "error", err)
		}
	}()

	if cfg.MetricsAddr != "" {
		metricsServer := startMetricsServer(cfg.MetricsAddr, logger)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = metricsServer.Shutdown(shutdownCtx)
		}()
	}

	clients := app.NewClients(cfg, logger)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger:       logger,
		Instructions: serverInstructions,
	})

	registry := tools.NewHandlerRegistry(clients.Wikipedia, clients.Wikidata, clients.Suggest, logger)
	registry.RegisterAll(server)

	logger.Info("Starting Wiki Lookup MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"wikipedia_endpoint", cfg.Endpoints.Wikipedia,
		"geo_language", cfg.GeoLanguage,
		"metrics_addr", cfg.MetricsAddr,
	)

	if err := server.Run(ctx, transport); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Server error", "error", err)
		return err
	}
	return nil
}

// startMetricsServer serves Prometheus metrics on addr in the background.
func startMetricsServer(addr string, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		defer recoverPanic(logger, "metrics server")
		logger.Info("Serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics server failed", "error", err)
		}
	}()

	return srv
}
