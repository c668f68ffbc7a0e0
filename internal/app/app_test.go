package app

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olgasafonova/wikilookup-mcp-server/internal/config"
)

func TestNewClients(t *testing.T) {
	cfg := config.Default()
	cfg.Timeout = config.Duration(7 * time.Second)
	cfg.UserAgent = "AppTest/1.0"
	cfg.Endpoints.Wikipedia = "http://localhost/{lang}/api.php"

	clients := NewClients(cfg, NewLogger(cfg, &bytes.Buffer{}))

	require.NotNil(t, clients.Wikipedia)
	require.NotNil(t, clients.Wikidata)
	require.NotNil(t, clients.Suggest)

	assert.Equal(t, 7*time.Second, clients.Wikipedia.HTTPClient.Timeout)
	assert.Equal(t, "AppTest/1.0", clients.Suggest.UserAgent)
	assert.Equal(t, "http://localhost/sv/api.php", clients.Wikipedia.EndpointFor("sv"))

	f := clients.Sheet(nil)
	assert.Same(t, clients.Wikidata, f.Wikidata)
}

func TestNewLogger_Level(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "warn"
	var buf bytes.Buffer

	logger := NewLogger(cfg, &buf)
	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
