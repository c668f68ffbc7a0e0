// Package sheet exposes the lookups with spreadsheet formula semantics:
// primitive arguments in, and either "" or an array (possibly of arrays) out.
// Failures and empty answers both collapse to "".
package sheet

import (
	"context"
	"log/slog"

	"github.com/olgasafonova/wikilookup-mcp-server/internal/lookup"
	"github.com/olgasafonova/wikilookup-mcp-server/internal/suggest"
	"github.com/olgasafonova/wikilookup-mcp-server/internal/wikidata"
	"github.com/olgasafonova/wikilookup-mcp-server/internal/wikipedia"
	"github.com/olgasafonova/wikilookup-mcp-server/metrics"
)

// Empty is the "no result" sentinel.
const Empty = ""

// Functions holds the clients behind the formula functions
type Functions struct {
	Wikipedia *wikipedia.Client
	Wikidata  *wikidata.Client
	Suggest   *suggest.Client
	Logger    *slog.Logger

	// OnResult, when set, observes the classification of every lookup.
	OnResult func(op string, status lookup.Status, err error)
}

// New creates the formula functions. A nil logger uses slog.Default().
func New(wp *wikipedia.Client, wd *wikidata.Client, sg *suggest.Client, logger *slog.Logger) *Functions {
	if logger == nil {
		logger = slog.Default()
	}
	return &Functions{Wikipedia: wp, Wikidata: wd, Suggest: sg, Logger: logger}
}

// WikiSynonyms returns the redirect titles of article, e.g. "de:Berlin".
func (f *Functions) WikiSynonyms(ctx context.Context, article string) any {
	return f.titles(ctx, "synonyms", article, lookup.ParseReference, f.Wikipedia.Synonyms)
}

// WikiInbound returns the pages linking to article.
func (f *Functions) WikiInbound(ctx context.Context, article string) any {
	return f.titles(ctx, "inbound_links", article, lookup.ParseReference, f.Wikipedia.InboundLinks)
}

// WikiOutbound returns the pages article links to.
func (f *Functions) WikiOutbound(ctx context.Context, article string) any {
	return f.titles(ctx, "outbound_links", article, lookup.ParseReference, f.Wikipedia.OutboundLinks)
}

// WikiMutual returns the pages that both link to and are linked from article.
func (f *Functions) WikiMutual(ctx context.Context, article string) any {
	return f.titles(ctx, "mutual_links", article, lookup.ParseReference, f.Wikipedia.MutualLinks)
}

// WikiCategoryMembers returns the articles in category, e.g. "en:Category:Physics".
func (f *Functions) WikiCategoryMembers(ctx context.Context, category string) any {
	return f.titles(ctx, "category_members", category, lookup.ParseCategoryReference, f.Wikipedia.CategoryMembers)
}

// WikiSubcategories returns the subcategories of category.
func (f *Functions) WikiSubcategories(ctx context.Context, category string) any {
	return f.titles(ctx, "subcategories", category, lookup.ParseCategoryReference, f.Wikipedia.Subcategories)
}

func (f *Functions) titles(
	ctx context.Context,
	op, raw string,
	parse func(string) (lookup.Reference, error),
	fetch func(context.Context, lookup.Reference) ([]string, error),
) any {
	var titles []string
	ref, err := parse(raw)
	if err == nil {
		titles, err = fetch(ctx, ref)
	}

	titles, ok := settle(f, op, raw, titles, len(titles), err)
	if !ok {
		return Empty
	}
	return column(titles)
}

// WikiTranslate returns the article title per language. langs filters the
// languages and may hold single codes or comma separated lists.
//
// With asObject the result is a *lookup.OrderedMap[string]. Otherwise it is a
// list of [language, title] rows, or of bare titles with skipHeader.
func (f *Functions) WikiTranslate(ctx context.Context, article string, langs []string, asObject, skipHeader bool) any {
	var translations *lookup.OrderedMap[string]
	ref, err := lookup.ParseReference(article)
	if err == nil {
		translations, err = f.Wikipedia.Translations(ctx, ref, lookup.ParseLanguageSet(langs...))
	}

	translations, ok := settle(f, "translations", article, translations, translations.Len(), err)
	if !ok {
		return Empty
	}
	if asObject {
		return translations
	}

	rows := make([]any, 0, translations.Len())
	for lang, title := range translations.All() {
		if skipHeader {
			rows = append(rows, title)
		} else {
			rows = append(rows, []any{lang, title})
		}
	}
	return rows
}

// WikiExpand returns, per language, the translated title followed by its
// synonyms. With asObject the result is a *lookup.OrderedMap[[]string];
// otherwise a list of [language, title, synonym...] rows.
func (f *Functions) WikiExpand(ctx context.Context, article string, langs []string, asObject bool) any {
	var expanded *lookup.OrderedMap[[]string]
	ref, err := lookup.ParseReference(article)
	if err == nil {
		expanded, err = f.Wikipedia.Expand(ctx, ref, lookup.ParseLanguageSet(langs...))
	}

	expanded, ok := settle(f, "expand", article, expanded, expanded.Len(), err)
	if !ok {
		return Empty
	}
	if asObject {
		return expanded
	}

	rows := make([]any, 0, expanded.Len())
	for lang, titles := range expanded.All() {
		row := make([]any, 0, len(titles)+1)
		row = append(row, lang)
		for _, t := range titles {
			row = append(row, t)
		}
		rows = append(rows, row)
	}
	return rows
}

// WikiGeoCoordinates returns [latitude, longitude] of article.
func (f *Functions) WikiGeoCoordinates(ctx context.Context, article string) any {
	var lat, lon float64
	n := 0
	ref, err := lookup.ParseReference(article)
	if err == nil {
		point, perr := f.Wikipedia.Coordinates(ctx, ref)
		if err = perr; err == nil {
			lat, lon, n = point.Lat(), point.Lon(), 1
		}
	}

	if _, ok := settle(f, "coordinates", article, struct{}{}, n, err); !ok {
		return Empty
	}
	return []any{lat, lon}
}

// WikidataFacts returns [property, value] rows for the single-valued claims
// of the entity linked to article.
func (f *Functions) WikidataFacts(ctx context.Context, article string) any {
	var facts []wikidata.Fact
	ref, err := lookup.ParseReference(article)
	if err == nil {
		facts, err = f.Wikidata.Facts(ctx, ref)
	}

	facts, ok := settle(f, "facts", article, facts, len(facts), err)
	if !ok {
		return Empty
	}
	rows := make([]any, 0, len(facts))
	for _, fact := range facts {
		rows = append(rows, []any{fact.Property, fact.Value})
	}
	return rows
}

// GoogleSuggest returns the completions of keyword. lang defaults to "en".
func (f *Functions) GoogleSuggest(ctx context.Context, keyword, lang string) any {
	suggestions, err := f.Suggest.Suggestions(ctx, keyword, lang)

	suggestions, ok := settle(f, "suggest", keyword, suggestions, len(suggestions), err)
	if !ok {
		return Empty
	}
	return column(suggestions)
}

// settle classifies a lookup, records it and reports whether it has rows.
// Failed lookups are logged at debug level since the caller only sees "".
func settle[T any](f *Functions, op, input string, value T, n int, err error) (T, bool) {
	res := lookup.NewResult(value, n, err)
	metrics.RecordLookup(op, string(res.Status), n)
	if f.OnResult != nil {
		f.OnResult(op, res.Status, res.Err)
	}
	if res.Status == lookup.StatusFailed {
		f.Logger.Debug("Lookup failed",
			"operation", op,
			"input", input,
			"error", err)
	}
	return res.Value, res.OK()
}

func column(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
