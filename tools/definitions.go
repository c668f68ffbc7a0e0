package tools

// AllTools contains all tool specifications for the wiki lookup MCP server.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// NAME TOOLS
	// ==========================================================================
	{
		Name:     "wiki_synonyms",
		Method:   "Synonyms",
		Title:    "Wikipedia Synonyms",
		Category: "names",
		Service:  "wikipedia",
		Description: `List alternative names of a Wikipedia article (the redirects pointing at it).

USE WHEN: User asks "what else is X called", "aliases of X", "alternative spellings of X".

NOT FOR: Names in other languages (use wiki_translate).

PARAMETERS:
- article: language:Title, e.g. "de:Berlin" (required)

RETURNS: status (ok, empty, failed) and redirect titles in API order.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wiki_translate",
		Method:   "Translations",
		Title:    "Wikipedia Translations",
		Category: "names",
		Service:  "wikipedia",
		Description: `Translate an article title into other Wikipedia language editions via language links.

USE WHEN: User asks "what is X called in French", "X in other languages".

NOT FOR: Aliases within one language (use wiki_synonyms).

PARAMETERS:
- article: language:Title, e.g. "de:Berlin" (required)
- languages: language codes to keep, e.g. ["fr","it"] (optional, default all)

RETURNS: [language, title] pairs. Requested languages without a link keep the source title; the source language always maps to the source title.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wiki_expand",
		Method:   "Expand",
		Title:    "Wikipedia Expand",
		Category: "names",
		Service:  "wikipedia",
		Description: `Translate an article title and list the synonyms of each translation.

USE WHEN: User needs every known name of a concept across languages, e.g. for keyword research.

NOT FOR: A single language (use wiki_synonyms) or titles only (use wiki_translate).

PARAMETERS:
- article: language:Title (required)
- languages: language codes to keep (optional, default all)

RETURNS: per language, the translated title and its synonyms. Issues one extra request per language.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// CATEGORY TOOLS
	// ==========================================================================
	{
		Name:     "wiki_category_members",
		Method:   "CategoryMembers",
		Title:    "Category Members",
		Category: "categories",
		Service:  "wikipedia",
		Description: `List the articles in a Wikipedia category.

USE WHEN: User asks "which articles are in category X", "list pages under X".

NOT FOR: Nested categories (use wiki_subcategories).

PARAMETERS:
- category: language:Category:Title, e.g. "en:Category:Physics" (required)

RETURNS: article titles, one API page (up to 500).`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wiki_subcategories",
		Method:   "Subcategories",
		Title:    "Subcategories",
		Category: "categories",
		Service:  "wikipedia",
		Description: `List the subcategories of a Wikipedia category.

USE WHEN: User wants to browse a category tree.

NOT FOR: Articles in the category (use wiki_category_members).

PARAMETERS:
- category: language:Category:Title (required)

RETURNS: subcategory titles including the "Category:" prefix.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// LINK TOOLS
	// ==========================================================================
	{
		Name:     "wiki_inbound_links",
		Method:   "InboundLinks",
		Title:    "Inbound Links",
		Category: "links",
		Service:  "wikipedia",
		Description: `List the articles that link TO a Wikipedia article.

USE WHEN: User asks "what links to X", "backlinks of X".

NOT FOR: Links on the page itself (use wiki_outbound_links).

PARAMETERS:
- article: language:Title (required)

RETURNS: main-namespace titles linking to the article, redirects included.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wiki_outbound_links",
		Method:   "OutboundLinks",
		Title:    "Outbound Links",
		Category: "links",
		Service:  "wikipedia",
		Description: `List the articles a Wikipedia article links to.

USE WHEN: User asks "what does X link to", "related pages mentioned in X".

NOT FOR: Pages pointing at X (use wiki_inbound_links).

PARAMETERS:
- article: language:Title (required)

RETURNS: main-namespace titles linked from the article.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wiki_mutual_links",
		Method:   "MutualLinks",
		Title:    "Mutual Links",
		Category: "links",
		Service:  "wikipedia",
		Description: `List the articles that both link to a Wikipedia article and are linked from it.

USE WHEN: User wants the most closely related articles of X.

PARAMETERS:
- article: language:Title (required)

RETURNS: titles in inbound-link order without duplicates. Issues two requests.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// FACT TOOLS
	// ==========================================================================
	{
		Name:     "wiki_geocoordinates",
		Method:   "Coordinates",
		Title:    "Geocoordinates",
		Category: "facts",
		Service:  "wikipedia",
		Description: `Get the primary latitude and longitude of a Wikipedia article.

USE WHEN: User asks "where is X", "coordinates of X".

PARAMETERS:
- article: language:Title (required)

RETURNS: latitude, longitude and the edition queried. By default the English edition is queried, so the title should exist there.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikidata_facts",
		Method:   "Facts",
		Title:    "Wikidata Facts",
		Category: "facts",
		Service:  "wikidata",
		Description: `Get the single-valued structured facts of the Wikidata item linked to a Wikipedia article.

USE WHEN: User asks for properties of X such as country, inception date, population or website.

PARAMETERS:
- article: language:Title, e.g. "en:Berlin" (required)

RETURNS: [property, value] pairs, e.g. ["P17","Q183"]. Properties with several values are omitted.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// SUGGEST TOOLS
	// ==========================================================================
	{
		Name:     "google_suggest",
		Method:   "Suggest",
		Title:    "Google Suggest",
		Category: "suggest",
		Service:  "suggest",
		Description: `Get Google autocomplete suggestions for a keyword.

USE WHEN: User asks "what do people search for about X", "autocomplete X".

PARAMETERS:
- keyword: text to complete (required)
- lang: interface language (optional, default en)

RETURNS: suggestions in ranking order.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
}
