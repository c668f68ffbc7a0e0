package wikidata

import "github.com/olgasafonova/wikilookup-mcp-server/internal/lookup"

// FactsArgs contains parameters for fact extraction
type FactsArgs struct {
	Article string `json:"article" jsonschema:"Wikipedia article reference as language:Title, e.g. en:Berlin"`
}

// FactsResult lists single-valued facts in claim order
type FactsResult struct {
	Status  lookup.Status `json:"status"`
	Facts   []Fact        `json:"facts"`
	Count   int           `json:"count"`
	Message string        `json:"message,omitempty"`
}

func (r FactsResult) LookupStatus() lookup.Status { return r.Status }
func (r FactsResult) RowCount() int               { return r.Count }
