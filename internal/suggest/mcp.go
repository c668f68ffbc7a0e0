package suggest

import (
	"context"

	"github.com/olgasafonova/wikilookup-mcp-server/internal/lookup"
)

// SuggestMCP is the MCP wrapper for Suggestions
func (c *Client) SuggestMCP(ctx context.Context, args SuggestArgs) (SuggestResult, error) {
	suggestions, err := c.Suggestions(ctx, args.Keyword, args.Lang)

	res := lookup.NewResult(suggestions, len(suggestions), err)
	if res.Value == nil {
		res.Value = []string{}
	}
	return SuggestResult{
		Status:      res.Status,
		Suggestions: res.Value,
		Count:       len(res.Value),
		Message:     res.Message(),
	}, nil
}
