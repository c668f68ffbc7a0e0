// Package wikipedia queries the MediaWiki action API of a Wikipedia language
// edition for redirects, language links, categories, links and coordinates.
package wikipedia

import (
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/paulmach/orb"

	"github.com/olgasafonova/wikilookup-mcp-server/internal/base"
	apierrors "github.com/olgasafonova/wikilookup-mcp-server/internal/errors"
	"github.com/olgasafonova/wikilookup-mcp-server/internal/lookup"
	"github.com/olgasafonova/wikilookup-mcp-server/tracing"
)

const (
	// EndpointTemplate is the action API URL; {lang} is the edition code
	EndpointTemplate = "https://{lang}.wikipedia.org/w/api.php"

	// DefaultGeoLanguage is the edition queried for coordinates
	DefaultGeoLanguage = "en"

	serviceName = "wikipedia"

	namespaceMain     = "0"
	namespaceCategory = "14"
)

// Config selects endpoints and coordinate behaviour
type Config struct {
	// Endpoint is a URL template containing {lang}
	Endpoint string

	// GeoLanguage is the edition queried by Coordinates
	GeoLanguage string

	// GeoUseArticleLanguage makes Coordinates query the reference's own edition
	GeoUseArticleLanguage bool
}

// Client provides access to the Wikipedia action API
type Client struct {
	*base.Client
	cfg Config
}

// ClientOption configures the Client (re-export base.ClientOption for compatibility)
type ClientOption = base.ClientOption

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(c *http.Client) ClientOption {
	return base.WithHTTPClient(c)
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) ClientOption {
	return base.WithLogger(l)
}

// NewClient creates a new Wikipedia client. Zero Config fields take defaults.
func NewClient(cfg Config, opts ...ClientOption) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = EndpointTemplate
	}
	if cfg.GeoLanguage == "" {
		cfg.GeoLanguage = DefaultGeoLanguage
	}
	return &Client{Client: base.NewClient(opts...), cfg: cfg}
}

// Synonyms returns the titles of redirects pointing at the article.
func (c *Client) Synonyms(ctx context.Context, ref lookup.Reference) ([]string, error) {
	return c.backlinks(ctx, ref, "synonyms", true)
}

// InboundLinks returns the main-namespace pages linking to the article,
// redirects included.
func (c *Client) InboundLinks(ctx context.Context, ref lookup.Reference) ([]string, error) {
	return c.backlinks(ctx, ref, "inbound_links", false)
}

func (c *Client) backlinks(ctx context.Context, ref lookup.Reference, action string, redirectsOnly bool) ([]string, error) {
	if err := ValidateReference(ref); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("list", "backlinks")
	params.Set("bllimit", "max")
	params.Set("blnamespace", namespaceMain)
	if redirectsOnly {
		params.Set("blfilterredir", "redirects")
	}
	params.Set("bltitle", ref.APITitle())

	resp, err := c.query(ctx, ref.Language, action, ref, params)
	if err != nil {
		return nil, err
	}
	return titles(resp.Query.Backlinks), nil
}

// Translations returns the article title per language edition, keyed by
// language code in first-seen order.
//
// Every language in langs is pre-seeded with the source title, so a requested
// language the API has no link for still appears. A non-empty langs drops
// links to other languages. The source language always maps to the source
// title with underscores replaced by spaces, whether or not langs contains it.
func (c *Client) Translations(ctx context.Context, ref lookup.Reference, langs lookup.LanguageSet) (*lookup.OrderedMap[string], error) {
	if err := ValidateReference(ref); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("prop", "langlinks")
	params.Set("lllimit", "max")
	params.Set("titles", ref.APITitle())

	resp, err := c.query(ctx, ref.Language, "translations", ref, params)
	if err != nil {
		return nil, err
	}

	source := ref.DisplayTitle()
	result := lookup.NewOrderedMap[string]()
	for _, lang := range langs.Codes() {
		result.Set(lang, source)
	}
	for _, p := range resp.Query.Pages {
		for _, ll := range p.LangLinks {
			if ll.Lang == "" || !langs.Allows(ll.Lang) {
				continue
			}
			result.Set(ll.Lang, ll.Title)
		}
	}
	result.Set(ref.Language, source)

	return result, nil
}

// Expand returns, per translated language, the translated title followed by
// that title's synonyms. Synonym lookups run one at a time in translation
// order; a failed synonym lookup leaves only the title for that language.
func (c *Client) Expand(ctx context.Context, ref lookup.Reference, langs lookup.LanguageSet) (*lookup.OrderedMap[[]string], error) {
	translations, err := c.Translations(ctx, ref, langs)
	if err != nil {
		return nil, err
	}

	result := lookup.NewOrderedMap[[]string]()
	for lang, title := range translations.All() {
		row := []string{title}

		target, err := lookup.ParseReference(lang + ":" + title)
		if err == nil {
			var synonyms []string
			synonyms, err = c.Synonyms(ctx, target)
			row = append(row, synonyms...)
		}
		if err != nil {
			c.Logger.Debug("Synonym lookup failed during expand",
				"article", ref.String(),
				"language", lang,
				"error", err)
		}

		result.Set(lang, row)
	}

	return result, nil
}

// CategoryMembers returns the articles in a category. ref must come from
// lookup.ParseCategoryReference.
func (c *Client) CategoryMembers(ctx context.Context, ref lookup.Reference) ([]string, error) {
	return c.categoryMembers(ctx, ref, "category_members", namespaceMain)
}

// Subcategories returns the categories inside a category.
func (c *Client) Subcategories(ctx context.Context, ref lookup.Reference) ([]string, error) {
	return c.categoryMembers(ctx, ref, "subcategories", namespaceCategory)
}

func (c *Client) categoryMembers(ctx context.Context, ref lookup.Reference, action, namespace string) ([]string, error) {
	if err := ValidateReference(ref); err != nil {
		return nil, err
	}

	// the whole title is percent-encoded as is, without underscore substitution
	params := url.Values{}
	params.Set("list", "categorymembers")
	params.Set("cmlimit", "max")
	params.Set("cmprop", "title")
	params.Set("cmtype", "subcat|page")
	params.Set("cmnamespace", namespace)
	params.Set("cmtitle", ref.Title)

	resp, err := c.query(ctx, ref.Language, action, ref, params)
	if err != nil {
		return nil, err
	}
	return titles(resp.Query.CategoryMembers), nil
}

// OutboundLinks returns the main-namespace pages the article links to.
func (c *Client) OutboundLinks(ctx context.Context, ref lookup.Reference) ([]string, error) {
	if err := ValidateReference(ref); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("prop", "links")
	params.Set("plnamespace", namespaceMain)
	params.Set("pllimit", "max")
	params.Set("titles", ref.APITitle())

	resp, err := c.query(ctx, ref.Language, "outbound_links", ref, params)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, p := range resp.Query.Pages {
		if !p.exists() {
			return nil, apierrors.NewNotFoundError(serviceName, ref.String())
		}
		out = append(out, titles(p.Links)...)
	}
	return out, nil
}

// MutualLinks returns the pages that both link to the article and are linked
// from it, in inbound order without duplicates. Inbound links are fetched
// first, then outbound links.
func (c *Client) MutualLinks(ctx context.Context, ref lookup.Reference) ([]string, error) {
	inbound, err := c.InboundLinks(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("inbound links: %w", err)
	}
	if len(inbound) == 0 {
		return nil, nil
	}

	outbound, err := c.OutboundLinks(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("outbound links: %w", err)
	}

	linked := make(map[string]struct{}, len(outbound))
	for _, t := range outbound {
		linked[t] = struct{}{}
	}

	seen := make(map[string]struct{}, len(inbound))
	var out []string
	for _, t := range inbound {
		if _, ok := linked[t]; !ok {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out, nil
}

// Coordinates returns the primary coordinates of the article as a point
// (longitude, latitude).
//
// The query goes to the GeoLanguage edition, "en" unless configured, and not
// to the reference's own edition unless GeoUseArticleLanguage is set. With
// the default, a title that exists only in another edition has no coordinates.
func (c *Client) Coordinates(ctx context.Context, ref lookup.Reference) (orb.Point, error) {
	if err := ValidateReference(ref); err != nil {
		return orb.Point{}, err
	}

	lang := c.coordinatesEdition(ref)

	params := url.Values{}
	params.Set("prop", "coordinates")
	params.Set("colimit", "max")
	params.Set("coprimary", "primary")
	params.Set("titles", ref.APITitle())

	resp, err := c.query(ctx, lang, "coordinates", ref, params)
	if err != nil {
		return orb.Point{}, err
	}

	for _, p := range resp.Query.Pages {
		if len(p.Coordinates) > 0 {
			co := p.Coordinates[0]
			return orb.Point{co.Lon, co.Lat}, nil
		}
	}
	return orb.Point{}, &apierrors.NotFoundError{
		Service:    serviceName,
		EntityType: "coordinates",
		Identifier: ref.String(),
	}
}

// EndpointFor returns the API URL of one language edition.
func (c *Client) EndpointFor(lang string) string {
	return strings.ReplaceAll(c.cfg.Endpoint, "{lang}", lang)
}

// query performs one format=xml action=query request and decodes the response.
func (c *Client) query(ctx context.Context, lang, action string, ref lookup.Reference, params url.Values) (*apiResponse, error) {
	if err := ValidateLanguage(lang); err != nil {
		return nil, err
	}

	ctx, span := tracing.StartSpan(ctx, "wikipedia."+action)
	defer span.End()
	tracing.AddLookupAttributes(span, serviceName, action, ref.Title)

	params.Set("action", "query")
	params.Set("format", "xml")

	resp, err := c.DoRequest(ctx, base.RequestConfig{
		URL:     c.EndpointFor(lang) + "?" + params.Encode(),
		Accept:  "application/xml, text/xml",
		Service: serviceName,
		Action:  action,
	})
	if err != nil {
		tracing.RecordError(span, err)
		return nil, fmt.Errorf("%s %s: %w", action, ref, err)
	}

	var result apiResponse
	if err := xml.Unmarshal(resp.Body, &result); err != nil {
		decodeErr := &apierrors.DecodeError{Service: serviceName, Format: "xml", Err: err}
		tracing.RecordError(span, decodeErr)
		return nil, decodeErr
	}
	if result.Error != nil {
		apiErr := &apierrors.APIError{Service: serviceName, Code: result.Error.Code, Info: result.Error.Info}
		tracing.RecordError(span, apiErr)
		return nil, apiErr
	}

	return &result, nil
}
