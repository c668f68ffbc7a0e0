package suggest

import "github.com/olgasafonova/wikilookup-mcp-server/internal/lookup"

// SuggestArgs contains parameters for keyword suggestions
type SuggestArgs struct {
	Keyword string `json:"keyword" jsonschema:"Keyword to complete"`
	Lang    string `json:"lang,omitempty" jsonschema:"Interface language code (default en)"`
}

// SuggestResult lists completions in suggestion order
type SuggestResult struct {
	Status      lookup.Status `json:"status"`
	Suggestions []string      `json:"suggestions"`
	Count       int           `json:"count"`
	Message     string        `json:"message,omitempty"`
}

func (r SuggestResult) LookupStatus() lookup.Status { return r.Status }
func (r SuggestResult) RowCount() int               { return r.Count }
