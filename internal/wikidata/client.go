// Package wikidata extracts single-valued facts about a Wikipedia article from
// the Wikidata entity API.
package wikidata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/olgasafonova/wikilookup-mcp-server/internal/base"
	apierrors "github.com/olgasafonova/wikilookup-mcp-server/internal/errors"
	"github.com/olgasafonova/wikilookup-mcp-server/internal/lookup"
	"github.com/olgasafonova/wikilookup-mcp-server/internal/wikipedia"
	"github.com/olgasafonova/wikilookup-mcp-server/tracing"
)

const (
	// BaseURL is the Wikidata action API endpoint
	BaseURL = "https://wikidata.org/w/api.php"

	serviceName = "wikidata"
)

// Client provides access to the Wikidata entity API
type Client struct {
	*base.Client
	endpoint string
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

// NewClient creates a new Wikidata client. An empty endpoint uses BaseURL.
func NewClient(endpoint string, opts ...ClientOption) *Client {
	if endpoint == "" {
		endpoint = BaseURL
	}
	return &Client{Client: base.NewClient(opts...), endpoint: endpoint}
}

// Facts returns the single-valued claims of the entity linked to a Wikipedia
// article, in claim order. A claim with several values, or with no value of a
// recognized datatype, is left out.
func (c *Client) Facts(ctx context.Context, ref lookup.Reference) ([]Fact, error) {
	if err := wikipedia.ValidateReference(ref); err != nil {
		return nil, err
	}

	ctx, span := tracing.StartSpan(ctx, "wikidata.facts")
	defer span.End()
	tracing.AddLookupAttributes(span, serviceName, "wbgetentities", ref.Title)

	params := url.Values{}
	params.Set("action", "wbgetentities")
	params.Set("sites", ref.Language+"wiki")
	params.Set("props", "claims")
	params.Set("titles", ref.APITitle())
	params.Set("format", "json")

	resp, err := c.DoRequest(ctx, base.RequestConfig{
		URL:     c.endpoint + "?" + params.Encode(),
		Accept:  "application/json",
		Service: serviceName,
		Action:  "wbgetentities",
	})
	if err != nil {
		tracing.RecordError(span, err)
		return nil, fmt.Errorf("facts %s: %w", ref, err)
	}

	var result entitiesResponse
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		decodeErr := &apierrors.DecodeError{Service: serviceName, Format: "json", Err: err}
		tracing.RecordError(span, decodeErr)
		return nil, decodeErr
	}
	if result.Error != nil {
		apiErr := &apierrors.APIError{Service: serviceName, Code: result.Error.Code, Info: result.Error.Info}
		tracing.RecordError(span, apiErr)
		return nil, apiErr
	}

	for _, e := range result.Entities.All() {
		if e.Missing != nil {
			return nil, &apierrors.NotFoundError{Service: serviceName, EntityType: "entity", Identifier: ref.String()}
		}
		return simplifyClaims(e.Claims), nil
	}
	return nil, &apierrors.NotFoundError{Service: serviceName, EntityType: "entity", Identifier: ref.String()}
}

// simplifyClaims keeps the claims that simplify to exactly one value.
func simplifyClaims(claims *lookup.OrderedMap[[]statement]) []Fact {
	var facts []Fact
	for property, statements := range claims.All() {
		var values []string
		for _, st := range statements {
			if v, ok := simplify(st); ok {
				values = append(values, v)
			}
		}
		if len(values) == 1 {
			facts = append(facts, Fact{Property: property, Value: values[0]})
		}
	}
	return facts
}

// simplify reduces a statement to a scalar according to its datatype.
func simplify(st statement) (string, bool) {
	if st.Mainsnak == nil || st.Mainsnak.DataValue == nil {
		return "", false
	}
	raw := st.Mainsnak.DataValue.Value

	switch st.Mainsnak.Datatype {
	case DatatypeString, DatatypeCommonsMedia, DatatypeURL:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true

	case DatatypeMonolingualText:
		var v monolingualText
		if err := json.Unmarshal(raw, &v); err != nil {
			return "", false
		}
		return v.Text, true

	case DatatypeItem:
		var v entityID
		if err := json.Unmarshal(raw, &v); err != nil {
			return "", false
		}
		if v.NumericID != "" {
			return "Q" + v.NumericID.String(), true
		}
		if v.ID != "" {
			return v.ID, true
		}
		return "", false

	case DatatypeTime:
		var v timeValue
		if err := json.Unmarshal(raw, &v); err != nil {
			return "", false
		}
		return v.Time, true

	case DatatypeQuantity:
		var v quantityValue
		if err := json.Unmarshal(raw, &v); err != nil {
			return "", false
		}
		return v.Amount, true

	default:
		return "", false
	}
}
