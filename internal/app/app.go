// Package app wires configuration into loggers and lookup clients for the
// server and the CLI.
package app

import (
	"io"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/olgasafonova/wikilookup-mcp-server/internal/base"
	"github.com/olgasafonova/wikilookup-mcp-server/internal/config"
	"github.com/olgasafonova/wikilookup-mcp-server/internal/sheet"
	"github.com/olgasafonova/wikilookup-mcp-server/internal/suggest"
	"github.com/olgasafonova/wikilookup-mcp-server/internal/wikidata"
	"github.com/olgasafonova/wikilookup-mcp-server/internal/wikipedia"
)

// Clients bundles one client per upstream service
type Clients struct {
	Wikipedia *wikipedia.Client
	Wikidata  *wikidata.Client
	Suggest   *suggest.Client
}

// LoadConfig reads a .env file when present, then the configuration.
func LoadConfig(path string) (*config.Config, error) {
	// a missing .env is normal
	_ = godotenv.Load()
	return config.Load(path)
}

// NewLogger creates a text logger writing to w at the configured level.
func NewLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
}

// NewClients creates the lookup clients from cfg.
func NewClients(cfg *config.Config, logger *slog.Logger) Clients {
	opts := []base.ClientOption{
		base.WithTimeout(cfg.Timeout.Std()),
		base.WithUserAgent(cfg.UserAgent),
		base.WithLogger(logger),
	}

	return Clients{
		Wikipedia: wikipedia.NewClient(wikipedia.Config{
			Endpoint:              cfg.Endpoints.Wikipedia,
			GeoLanguage:           cfg.GeoLanguage,
			GeoUseArticleLanguage: cfg.GeoUseArticleLanguage,
		}, opts...),
		Wikidata: wikidata.NewClient(cfg.Endpoints.Wikidata, opts...),
		Suggest:  suggest.NewClient(cfg.Endpoints.Suggest, opts...),
	}
}

// Sheet returns the spreadsheet-style functions over these clients.
func (c Clients) Sheet(logger *slog.Logger) *sheet.Functions {
	return sheet.New(c.Wikipedia, c.Wikidata, c.Suggest, logger)
}
