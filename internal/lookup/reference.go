// Package lookup holds the transient data model shared by the lookup clients:
// article references, language filters, insertion-ordered maps and the
// success/empty/failure result wrapper.
package lookup

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	apierrors "github.com/olgasafonova/wikilookup-mcp-server/internal/errors"
)

// Reference identifies a MediaWiki page as language + title, written "de:Berlin"
// or "en:Category:Physics".
type Reference struct {
	Language string
	Title    string
}

// ParseReference parses "language:Title". Everything after the first colon is
// the title, so "en:Star Wars: Episode IV" keeps its subtitle.
func ParseReference(s string) (Reference, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) < 2 {
		return Reference{}, apierrors.NewValidationError("article", s, "expected language:Title")
	}
	return newReference(s, parts[0], parts[1])
}

// ParseCategoryReference parses "language:Category:Title". The namespace and
// the title are rejoined with ":" since category titles carry an internal colon.
func ParseCategoryReference(s string) (Reference, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) < 3 || strings.TrimSpace(parts[2]) == "" {
		return Reference{}, apierrors.NewValidationError("category", s, "expected language:Category:Title")
	}
	return newReference(s, parts[0], parts[1]+":"+parts[2])
}

func newReference(raw, language, title string) (Reference, error) {
	language = strings.ToLower(strings.TrimSpace(language))
	title = strings.TrimSpace(title)
	if language == "" {
		return Reference{}, apierrors.NewValidationError("article", raw, "language is required")
	}
	if title == "" {
		return Reference{}, apierrors.NewValidationError("article", raw, "title is required")
	}
	return Reference{Language: language, Title: norm.NFC.String(title)}, nil
}

// APITitle returns the title with whitespace replaced by underscores, the
// form inserted into MediaWiki query parameters.
func (r Reference) APITitle() string {
	return strings.Map(func(c rune) rune {
		if unicode.IsSpace(c) {
			return '_'
		}
		return c
	}, r.Title)
}

// DisplayTitle returns the title with underscores replaced by spaces.
func (r Reference) DisplayTitle() string {
	return strings.ReplaceAll(r.Title, "_", " ")
}

// String returns the "language:Title" form.
func (r Reference) String() string {
	return r.Language + ":" + r.Title
}
