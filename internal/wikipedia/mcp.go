package wikipedia

import (
	"context"

	"github.com/paulmach/orb"

	"github.com/olgasafonova/wikilookup-mcp-server/internal/lookup"
)

// MCP Tool wrapper methods
// These methods wrap the client methods with Args/Result types for MCP integration.
// Lookup failures are reported through Status and Message, not the error return.

// SynonymsMCP is the MCP wrapper for Synonyms
func (c *Client) SynonymsMCP(ctx context.Context, args ArticleArgs) (TitlesResult, error) {
	return c.titlesMCP(ctx, args.Article, lookup.ParseReference, c.Synonyms), nil
}

// InboundLinksMCP is the MCP wrapper for InboundLinks
func (c *Client) InboundLinksMCP(ctx context.Context, args ArticleArgs) (TitlesResult, error) {
	return c.titlesMCP(ctx, args.Article, lookup.ParseReference, c.InboundLinks), nil
}

// OutboundLinksMCP is the MCP wrapper for OutboundLinks
func (c *Client) OutboundLinksMCP(ctx context.Context, args ArticleArgs) (TitlesResult, error) {
	return c.titlesMCP(ctx, args.Article, lookup.ParseReference, c.OutboundLinks), nil
}

// MutualLinksMCP is the MCP wrapper for MutualLinks
func (c *Client) MutualLinksMCP(ctx context.Context, args ArticleArgs) (TitlesResult, error) {
	return c.titlesMCP(ctx, args.Article, lookup.ParseReference, c.MutualLinks), nil
}

// CategoryMembersMCP is the MCP wrapper for CategoryMembers
func (c *Client) CategoryMembersMCP(ctx context.Context, args CategoryArgs) (TitlesResult, error) {
	return c.titlesMCP(ctx, args.Category, lookup.ParseCategoryReference, c.CategoryMembers), nil
}

// SubcategoriesMCP is the MCP wrapper for Subcategories
func (c *Client) SubcategoriesMCP(ctx context.Context, args CategoryArgs) (TitlesResult, error) {
	return c.titlesMCP(ctx, args.Category, lookup.ParseCategoryReference, c.Subcategories), nil
}

func (c *Client) titlesMCP(
	ctx context.Context,
	raw string,
	parse func(string) (lookup.Reference, error),
	fetch func(context.Context, lookup.Reference) ([]string, error),
) TitlesResult {
	var titles []string
	ref, err := parse(raw)
	if err == nil {
		titles, err = fetch(ctx, ref)
	}

	res := lookup.NewResult(titles, len(titles), err)
	if res.Value == nil {
		res.Value = []string{}
	}
	return TitlesResult{
		Status:  res.Status,
		Titles:  res.Value,
		Count:   len(res.Value),
		Message: res.Message(),
	}
}

// TranslationsMCP is the MCP wrapper for Translations
func (c *Client) TranslationsMCP(ctx context.Context, args TranslateArgs) (TranslationsResult, error) {
	var translations *lookup.OrderedMap[string]
	ref, err := lookup.ParseReference(args.Article)
	if err == nil {
		translations, err = c.Translations(ctx, ref, lookup.ParseLanguageSet(args.Languages...))
	}

	res := lookup.NewResult(translations, translations.Len(), err)
	out := TranslationsResult{
		Status:       res.Status,
		Translations: []Translation{},
		Message:      res.Message(),
	}
	if translations != nil {
		for lang, title := range translations.All() {
			out.Translations = append(out.Translations, Translation{Language: lang, Title: title})
		}
	}
	return out, nil
}

// ExpandMCP is the MCP wrapper for Expand
func (c *Client) ExpandMCP(ctx context.Context, args TranslateArgs) (ExpandResult, error) {
	var expanded *lookup.OrderedMap[[]string]
	ref, err := lookup.ParseReference(args.Article)
	if err == nil {
		expanded, err = c.Expand(ctx, ref, lookup.ParseLanguageSet(args.Languages...))
	}

	res := lookup.NewResult(expanded, expanded.Len(), err)
	out := ExpandResult{
		Status:    res.Status,
		Languages: []ExpandedLanguage{},
		Message:   res.Message(),
	}
	if expanded != nil {
		for lang, row := range expanded.All() {
			out.Languages = append(out.Languages, ExpandedLanguage{
				Language: lang,
				Title:    row[0],
				Synonyms: append([]string{}, row[1:]...),
			})
		}
	}
	return out, nil
}

// CoordinatesMCP is the MCP wrapper for Coordinates
func (c *Client) CoordinatesMCP(ctx context.Context, args ArticleArgs) (CoordinatesResult, error) {
	var point orb.Point
	var edition string
	ref, err := lookup.ParseReference(args.Article)
	if err == nil {
		edition = c.coordinatesEdition(ref)
		point, err = c.Coordinates(ctx, ref)
	}

	n := 0
	if err == nil {
		n = 1
	}
	res := lookup.NewResult(point, n, err)
	out := CoordinatesResult{
		Status:  res.Status,
		Edition: edition,
		Message: res.Message(),
	}
	if res.OK() {
		lat, lon := point.Lat(), point.Lon()
		out.Latitude, out.Longitude = &lat, &lon
	}
	return out, nil
}

func (c *Client) coordinatesEdition(ref lookup.Reference) string {
	if c.cfg.GeoUseArticleLanguage {
		return ref.Language
	}
	return c.cfg.GeoLanguage
}
