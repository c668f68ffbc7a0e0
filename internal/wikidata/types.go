package wikidata

import (
	"encoding/json"

	"github.com/olgasafonova/wikilookup-mcp-server/internal/lookup"
)

// Datatypes recognized by claim simplification
const (
	DatatypeString          = "string"
	DatatypeCommonsMedia    = "commonsMedia"
	DatatypeURL             = "url"
	DatatypeMonolingualText = "monolingualtext"
	DatatypeItem            = "wikibase-item"
	DatatypeTime            = "time"
	DatatypeQuantity        = "quantity"
)

// Fact is a property with exactly one simplified value
type Fact struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

// entitiesResponse is the wbgetentities JSON response. Entities and claims
// keep document order.
type entitiesResponse struct {
	Entities *lookup.OrderedMap[entity] `json:"entities"`
	Error    *apiError                  `json:"error"`
}

type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

type entity struct {
	ID      string                          `json:"id"`
	Missing *string                         `json:"missing"`
	Claims  *lookup.OrderedMap[[]statement] `json:"claims"`
}

type statement struct {
	Mainsnak *snak  `json:"mainsnak"`
	Rank     string `json:"rank"`
}

type snak struct {
	SnakType  string     `json:"snaktype"`
	Property  string     `json:"property"`
	Datatype  string     `json:"datatype"`
	DataValue *dataValue `json:"datavalue"`
}

type dataValue struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

type monolingualText struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type entityID struct {
	NumericID json.Number `json:"numeric-id"`
	ID        string      `json:"id"`
}

type timeValue struct {
	Time string `json:"time"`
}

type quantityValue struct {
	Amount string `json:"amount"`
}
