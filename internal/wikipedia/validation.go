package wikipedia

import (
	"regexp"
	"strings"

	apierrors "github.com/olgasafonova/wikilookup-mcp-server/internal/errors"
	"github.com/olgasafonova/wikilookup-mcp-server/internal/lookup"
)

// MaxTitleBytes is MediaWiki's limit on page title length.
const MaxTitleBytes = 255

// Language codes become part of the API host name, so only subdomain-safe
// codes pass: "en", "simple", "zh-min-nan", "be-tarask".
var languageRegex = regexp.MustCompile(`^[a-z][a-z0-9]{1,11}(-[a-z0-9]+)*$`)

// ValidateLanguage validates a Wikipedia language edition code.
func ValidateLanguage(lang string) error {
	if lang == "" {
		return apierrors.NewValidationError("language", lang, "language is required")
	}
	if !languageRegex.MatchString(lang) {
		return apierrors.NewValidationError("language", lang, "not a valid Wikipedia language code")
	}
	return nil
}

// ValidateTitle validates a page title.
func ValidateTitle(title string) error {
	if title == "" {
		return apierrors.NewValidationError("title", title, "title is required")
	}
	if len(title) > MaxTitleBytes {
		return apierrors.NewValidationError("title", title[:32]+"...", "title exceeds 255 bytes")
	}
	if i := strings.IndexAny(title, "#<>[]{}|"); i >= 0 {
		return apierrors.NewValidationError("title", title, "title contains illegal character "+string(title[i]))
	}
	return nil
}

// ValidateReference validates both parts of a reference.
func ValidateReference(ref lookup.Reference) error {
	if err := ValidateLanguage(ref.Language); err != nil {
		return err
	}
	return ValidateTitle(ref.Title)
}
