package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"

	"github.com/olgasafonova/wikilookup-mcp-server/internal/lookup"
	"github.com/olgasafonova/wikilookup-mcp-server/internal/suggest"
	"github.com/olgasafonova/wikilookup-mcp-server/internal/wikidata"
	"github.com/olgasafonova/wikilookup-mcp-server/internal/wikipedia"
	"github.com/olgasafonova/wikilookup-mcp-server/metrics"
	"github.com/olgasafonova/wikilookup-mcp-server/tracing"
)

// lookupResult is implemented by every tool Result type.
type lookupResult interface {
	LookupStatus() lookup.Status
	RowCount() int
}

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	wikipediaClient *wikipedia.Client
	wikidataClient  *wikidata.Client
	suggestClient   *suggest.Client
	logger          *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(wikipediaClient *wikipedia.Client, wikidataClient *wikidata.Client, suggestClient *suggest.Client, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		wikipediaClient: wikipediaClient,
		wikidataClient:  wikidataClient,
		suggestClient:   suggestClient,
		logger:          logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	registered := 0
	for _, spec := range AllTools {
		if h.registerByName(server, spec) {
			registered++
		}
	}
	h.logger.Info("Registered all tools", "count", registered)
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) bool {
	tool := h.buildTool(spec)

	switch spec.Method {
	// Wikipedia tools
	case "Synonyms":
		register(h, server, tool, spec, h.wikipediaClient.SynonymsMCP)
	case "Translations":
		register(h, server, tool, spec, h.wikipediaClient.TranslationsMCP)
	case "Expand":
		register(h, server, tool, spec, h.wikipediaClient.ExpandMCP)
	case "CategoryMembers":
		register(h, server, tool, spec, h.wikipediaClient.CategoryMembersMCP)
	case "Subcategories":
		register(h, server, tool, spec, h.wikipediaClient.SubcategoriesMCP)
	case "InboundLinks":
		register(h, server, tool, spec, h.wikipediaClient.InboundLinksMCP)
	case "OutboundLinks":
		register(h, server, tool, spec, h.wikipediaClient.OutboundLinksMCP)
	case "MutualLinks":
		register(h, server, tool, spec, h.wikipediaClient.MutualLinksMCP)
	case "Coordinates":
		register(h, server, tool, spec, h.wikipediaClient.CoordinatesMCP)

	// Wikidata tools
	case "Facts":
		register(h, server, tool, spec, h.wikidataClient.FactsMCP)

	// Suggest tools
	case "Suggest":
		register(h, server, tool, spec, h.suggestClient.SuggestMCP)

	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
		return false
	}
	return true
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.Destructive {
		annotations.DestructiveHint = ptr(true)
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
func register[Args any, Result lookupResult](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (*mcp.CallToolResult, Result, error) {
		result, err := invoke(h, ctx, spec, method, args)
		if err != nil {
			var zero Result
			return nil, zero, err
		}
		return nil, result, nil
	})
}

// invoke runs one tool call with panic recovery, metrics, tracing, and logging.
func invoke[Args any, Result lookupResult](
	h *HandlerRegistry,
	ctx context.Context,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
	args Args,
) (result Result, err error) {
	callID := uuid.NewString()
	defer h.recoverPanic(spec.Name, callID, &err)

	ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
	defer span.End()

	tracing.AddToolAttributes(span, spec.Name, spec.Category)
	span.SetAttributes(
		attribute.String("mcp.tool.call_id", callID),
		attribute.String("mcp.tool.service", spec.Service),
		attribute.Bool("mcp.tool.readonly", spec.ReadOnly),
	)

	metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
	defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

	start := time.Now()
	result, err = method(ctx, args)
	duration := time.Since(start).Seconds()

	span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

	if err != nil {
		tracing.RecordError(span, err)
		metrics.RecordRequest(spec.Name, duration, false)
		var zero Result
		return zero, fmt.Errorf("%s failed: %w", spec.Name, err)
	}

	status := result.LookupStatus()
	tracing.SetLookupResult(span, status, result.RowCount())

	metrics.RecordRequest(spec.Name, duration, status != lookup.StatusFailed)
	metrics.RecordLookup(spec.Name, string(status), result.RowCount())
	h.logExecution(spec, callID, args, result)
	return result, nil
}

// recoverPanic recovers from panics in tool handlers and turns them into errors.
func (h *HandlerRegistry) recoverPanic(toolName, callID string, errp *error) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"call_id", callID,
			"panic", rec,
			"stack", string(debug.Stack()))
		if errp != nil {
			*errp = fmt.Errorf("%s: internal error", toolName)
		}
	}
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, callID string, args any, result lookupResult) {
	attrs := []any{"tool", spec.Name, "call_id", callID, "service", spec.Service}

	// Add extractable fields from args using type assertions
	switch a := args.(type) {
	case wikipedia.ArticleArgs:
		attrs = append(attrs, "article", a.Article)
	case wikipedia.CategoryArgs:
		attrs = append(attrs, "category", a.Category)
	case wikipedia.TranslateArgs:
		attrs = append(attrs, "article", a.Article, "languages", a.Languages)
	case wikidata.FactsArgs:
		attrs = append(attrs, "article", a.Article)
	case suggest.SuggestArgs:
		attrs = append(attrs, "keyword", a.Keyword, "lang", a.Lang)
	}

	attrs = append(attrs, "status", result.LookupStatus(), "rows", result.RowCount())

	// Add extractable fields from result
	switch r := result.(type) {
	case wikipedia.TitlesResult:
		if r.Message != "" {
			attrs = append(attrs, "message", r.Message)
		}
	case wikipedia.CoordinatesResult:
		attrs = append(attrs, "edition", r.Edition)
	case wikidata.FactsResult:
		if r.Message != "" {
			attrs = append(attrs, "message", r.Message)
		}
	case suggest.SuggestResult:
		if r.Message != "" {
			attrs = append(attrs, "message", r.Message)
		}
	}

	h.logger.Info("Tool executed", attrs...)
}
