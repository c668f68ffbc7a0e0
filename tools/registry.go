// Package tools provides a metadata-driven registry for MCP tool definitions.
// It reduces boilerplate in main.go by defining tools declaratively and
// using type-safe handlers to register them.
package tools

// ToolSpec defines a tool's metadata for declarative registration.
// Each spec maps to a lookup client method with matching Args/Result types.
type ToolSpec struct {
	// Name is the MCP tool name (e.g., "wiki_synonyms")
	Name string

	// Method is the client method name (e.g., "Synonyms")
	Method string

	// Description is the tool description shown to LLMs
	Description string

	// Title is the human-readable tool title for annotations
	Title string

	// Category groups tools logically (names, links, categories, facts)
	Category string

	// Service is the upstream API the tool queries
	Service string

	// ReadOnly indicates the tool doesn't modify upstream state
	ReadOnly bool

	// Destructive indicates the tool can delete or overwrite data
	Destructive bool

	// Idempotent indicates repeated calls have the same effect
	Idempotent bool

	// OpenWorld indicates the tool accesses external resources
	OpenWorld bool
}

// ToolsByService returns the specs querying one upstream service.
func ToolsByService(service string) []ToolSpec {
	var out []ToolSpec
	for _, spec := range AllTools {
		if spec.Service == service {
			out = append(out, spec)
		}
	}
	return out
}

// ToolsByCategory returns the specs in one category.
func ToolsByCategory(category string) []ToolSpec {
	var out []ToolSpec
	for _, spec := range AllTools {
		if spec.Category == category {
			out = append(out, spec)
		}
	}
	return out
}

// ptr is a helper to create a pointer to a value.
func ptr[T any](v T) *T {
	return &v
}
