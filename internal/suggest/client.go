// Package suggest fetches keyword completions from the Google Suggest
// toolbar endpoint.
package suggest

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/olgasafonova/wikilookup-mcp-server/internal/base"
	apierrors "github.com/olgasafonova/wikilookup-mcp-server/internal/errors"
	"github.com/olgasafonova/wikilookup-mcp-server/tracing"
)

const (
	// BaseURL is the Google Suggest endpoint
	BaseURL = "https://suggestqueries.google.com/complete/search"

	// DefaultLanguage is used when no interface language is given
	DefaultLanguage = "en"

	// MaxKeywordLength bounds the q parameter
	MaxKeywordLength = 500

	serviceName = "suggest"
)

var languageRegex = regexp.MustCompile(`^[A-Za-z]{2,3}([-_][A-Za-z0-9]+)*$`)

// Client provides access to Google Suggest
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

// NewClient creates a new suggest client. An empty endpoint uses BaseURL.
func NewClient(endpoint string, opts ...ClientOption) *Client {
	if endpoint == "" {
		endpoint = BaseURL
	}
	return &Client{Client: base.NewClient(opts...), endpoint: endpoint}
}

// toplevel is <toplevel><CompleteSuggestion><suggestion data="..."/></CompleteSuggestion></toplevel>.
type toplevel struct {
	XMLName     xml.Name             `xml:"toplevel"`
	Completions []completeSuggestion `xml:"CompleteSuggestion"`
}

type completeSuggestion struct {
	Suggestion struct {
		Data string `xml:"data,attr"`
	} `xml:"suggestion"`
}

// ValidateKeyword validates a suggest keyword.
func ValidateKeyword(keyword string) error {
	if strings.TrimSpace(keyword) == "" {
		return apierrors.NewValidationError("keyword", keyword, "keyword is required")
	}
	if len(keyword) > MaxKeywordLength {
		return apierrors.NewValidationError("keyword", keyword[:32]+"...", "keyword is too long")
	}
	return nil
}

// ValidateLanguage validates an interface language such as "en" or "pt-BR".
func ValidateLanguage(lang string) error {
	if !languageRegex.MatchString(lang) {
		return apierrors.NewValidationError("lang", lang, "not a valid language code")
	}
	return nil
}

// Suggestions returns the completions for keyword in suggestion order.
// An empty lang means DefaultLanguage.
func (c *Client) Suggestions(ctx context.Context, keyword, lang string) ([]string, error) {
	if err := ValidateKeyword(keyword); err != nil {
		return nil, err
	}
	lang = strings.TrimSpace(lang)
	if lang == "" {
		lang = DefaultLanguage
	}
	if err := ValidateLanguage(lang); err != nil {
		return nil, err
	}

	ctx, span := tracing.StartSpan(ctx, "suggest.toolbar")
	defer span.End()
	tracing.AddLookupAttributes(span, serviceName, "toolbar", "")

	params := url.Values{}
	params.Set("output", "toolbar")
	params.Set("hl", lang)
	params.Set("q", keyword)

	resp, err := c.DoRequest(ctx, base.RequestConfig{
		URL:     c.endpoint + "?" + params.Encode(),
		Accept:  "text/xml, application/xml",
		Service: serviceName,
		Action:  "toolbar",
	})
	if err != nil {
		tracing.RecordError(span, err)
		return nil, fmt.Errorf("suggestions for %q: %w", keyword, err)
	}

	suggestions, err := decode(resp.Body, resp.ContentType)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}
	return suggestions, nil
}

// decode transcodes body to UTF-8 using the Content-Type charset, falling
// back to sniffing, and extracts the suggestion data attributes.
func decode(body []byte, contentType string) ([]string, error) {
	enc, name, _ := charset.DetermineEncoding(body, contentType)
	utf8Body, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return nil, &apierrors.DecodeError{Service: serviceName, Format: name, Err: err}
	}

	dec := xml.NewDecoder(bytes.NewReader(utf8Body))
	// the body is already UTF-8 whatever the XML declaration says
	dec.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	var doc toplevel
	if err := dec.Decode(&doc); err != nil {
		return nil, &apierrors.DecodeError{Service: serviceName, Format: "xml", Err: err}
	}

	out := make([]string, 0, len(doc.Completions))
	for _, cs := range doc.Completions {
		if cs.Suggestion.Data != "" {
			out = append(out, cs.Suggestion.Data)
		}
	}
	return out, nil
}
