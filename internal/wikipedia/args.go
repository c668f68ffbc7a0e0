package wikipedia

import "github.com/olgasafonova/wikilookup-mcp-server/internal/lookup"

// ArticleArgs identifies one article
type ArticleArgs struct {
	Article string `json:"article" jsonschema:"Article reference as language:Title, e.g. de:Berlin"`
}

// CategoryArgs identifies one category
type CategoryArgs struct {
	Category string `json:"category" jsonschema:"Category reference as language:Category:Title, e.g. en:Category:Physics"`
}

// TranslateArgs contains parameters for translation and expand lookups
type TranslateArgs struct {
	Article   string   `json:"article" jsonschema:"Article reference as language:Title, e.g. de:Berlin"`
	Languages []string `json:"languages,omitempty" jsonschema:"Language codes to keep, e.g. [\"fr\",\"it\"]; empty keeps all"`
}

// TitlesResult is a list of page titles
type TitlesResult struct {
	Status  lookup.Status `json:"status"`
	Titles  []string      `json:"titles"`
	Count   int           `json:"count"`
	Message string        `json:"message,omitempty"`
}

// Translation is one language edition's title
type Translation struct {
	Language string `json:"language"`
	Title    string `json:"title"`
}

// TranslationsResult lists titles per language in first-seen order
type TranslationsResult struct {
	Status       lookup.Status `json:"status"`
	Translations []Translation `json:"translations"`
	Message      string        `json:"message,omitempty"`
}

// ExpandedLanguage is a translated title with its synonyms
type ExpandedLanguage struct {
	Language string   `json:"language"`
	Title    string   `json:"title"`
	Synonyms []string `json:"synonyms"`
}

// ExpandResult lists expanded titles per language
type ExpandResult struct {
	Status    lookup.Status      `json:"status"`
	Languages []ExpandedLanguage `json:"languages"`
	Message   string             `json:"message,omitempty"`
}

// CoordinatesResult is the primary coordinate of an article
type CoordinatesResult struct {
	Status    lookup.Status `json:"status"`
	Latitude  *float64      `json:"latitude,omitempty"` // set iff Status is ok; 0 is a valid value
	Longitude *float64      `json:"longitude,omitempty"`
	Edition   string        `json:"edition,omitempty"` // language edition that was queried
	Message   string        `json:"message,omitempty"`
}

func (r TitlesResult) LookupStatus() lookup.Status       { return r.Status }
func (r TitlesResult) RowCount() int                     { return r.Count }
func (r TranslationsResult) LookupStatus() lookup.Status { return r.Status }
func (r TranslationsResult) RowCount() int               { return len(r.Translations) }
func (r ExpandResult) LookupStatus() lookup.Status       { return r.Status }
func (r ExpandResult) RowCount() int                     { return len(r.Languages) }
func (r CoordinatesResult) LookupStatus() lookup.Status  { return r.Status }

func (r CoordinatesResult) RowCount() int {
	if r.Status == lookup.StatusOK {
		return 1
	}
	return 0
}
