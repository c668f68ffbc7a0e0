package wikidata

import (
	"context"

	"github.com/olgasafonova/wikilookup-mcp-server/internal/lookup"
)

// FactsMCP is the MCP wrapper for Facts
func (c *Client) FactsMCP(ctx context.Context, args FactsArgs) (FactsResult, error) {
	var facts []Fact
	ref, err := lookup.ParseReference(args.Article)
	if err == nil {
		facts, err = c.Facts(ctx, ref)
	}

	res := lookup.NewResult(facts, len(facts), err)
	if res.Value == nil {
		res.Value = []Fact{}
	}
	return FactsResult{
		Status:  res.Status,
		Facts:   res.Value,
		Count:   len(res.Value),
		Message: res.Message(),
	}, nil
}
