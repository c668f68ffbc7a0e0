package sheet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olgasafonova/wikilookup-mcp-server/internal/lookup"
	"github.com/olgasafonova/wikilookup-mcp-server/internal/suggest"
	"github.com/olgasafonova/wikilookup-mcp-server/internal/wikidata"
	"github.com/olgasafonova/wikilookup-mcp-server/internal/wikipedia"
)

// fakeUpstream serves canned Wikipedia, Wikidata and Suggest responses.
func fakeUpstream(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	switch {
	case strings.HasPrefix(r.URL.Path, "/suggest"):
		w.Header().Set("Content-Type", "text/xml; charset=UTF-8")
		_, _ = w.Write([]byte(`<?xml version="1.0"?><toplevel>` +
			`<CompleteSuggestion><suggestion data="wikipedia"/></CompleteSuggestion>` +
			`<CompleteSuggestion><suggestion data="wikipedia deutsch"/></CompleteSuggestion></toplevel>`))

	case strings.HasPrefix(r.URL.Path, "/wikidata"):
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"entities":{"Q64":{"id":"Q64","claims":{
			"P17":[{"mainsnak":{"datatype":"wikibase-item","datavalue":{"value":{"numeric-id":183}}}}],
			"P190":[{"mainsnak":{"datatype":"wikibase-item","datavalue":{"value":{"numeric-id":90}}}},
			        {"mainsnak":{"datatype":"wikibase-item","datavalue":{"value":{"numeric-id":1490}}}}]
		}}}}`))

	case q.Get("bltitle") == "Broken":
		w.WriteHeader(http.StatusInternalServerError)

	case q.Get("list") == "backlinks":
		w.Header().Set("Content-Type", "text/xml")
		if q.Get("bltitle") == "Berlino" {
			_, _ = w.Write([]byte(`<api><query><backlinks><bl title="Berlino Est"/></backlinks></query></api>`))
			return
		}
		_, _ = w.Write([]byte(`<api><query><backlinks><bl title="Spree-Athen"/><bl title="Germany"/></backlinks></query></api>`))

	case q.Get("prop") == "langlinks":
		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(`<api><query><pages><page title="Berlin"><langlinks>
			<ll lang="it">Berlino</ll><ll lang="fr">Berlin</ll>
		</langlinks></page></pages></query></api>`))

	case q.Get("prop") == "links":
		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(`<api><query><pages><page title="Berlin"><links>
			<pl title="Germany"/><pl title="Europe"/>
		</links></page></pages></query></api>`))

	case q.Get("prop") == "coordinates":
		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(`<api><query><pages><page title="Berlin"><coordinates>
			<co lat="52.52" lon="13.405" primary=""/>
		</coordinates></page></pages></query></api>`))

	case q.Get("list") == "categorymembers":
		w.Header().Set("Content-Type", "text/xml")
		if q.Get("cmnamespace") == "14" {
			_, _ = w.Write([]byte(`<api><query><categorymembers><cm ns="14" title="Category:Optics"/></categorymembers></query></api>`))
			return
		}
		_, _ = w.Write([]byte(`<api><query><categorymembers><cm ns="0" title="Physics"/></categorymembers></query></api>`))

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func newTestFunctions(t *testing.T) (*Functions, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fakeUpstream(w, r)
	}))
	t.Cleanup(server.Close)

	hc := server.Client()
	return New(
		wikipedia.NewClient(wikipedia.Config{Endpoint: server.URL + "/{lang}/w/api.php"}, wikipedia.WithHTTPClient(hc)),
		wikidata.NewClient(server.URL+"/wikidata/w/api.php", wikidata.WithHTTPClient(hc)),
		suggest.NewClient(server.URL+"/suggest", suggest.WithHTTPClient(hc)),
		nil,
	), &calls
}

func TestMalformedReferences_ReturnEmptyWithoutRequest(t *testing.T) {
	f, calls := newTestFunctions(t)
	ctx := context.Background()

	for _, article := range []string{"", "Berlin", "de:", "de:   ", ":Berlin"} {
		assert.Equal(t, Empty, f.WikiSynonyms(ctx, article), article)
		assert.Equal(t, Empty, f.WikiTranslate(ctx, article, nil, false, false), article)
		assert.Equal(t, Empty, f.WikiExpand(ctx, article, nil, false), article)
		assert.Equal(t, Empty, f.WikiInbound(ctx, article), article)
		assert.Equal(t, Empty, f.WikiOutbound(ctx, article), article)
		assert.Equal(t, Empty, f.WikiMutual(ctx, article), article)
		assert.Equal(t, Empty, f.WikiGeoCoordinates(ctx, article), article)
		assert.Equal(t, Empty, f.WikidataFacts(ctx, article), article)
	}
	for _, category := range []string{"en:Physics", "en:Category:", "en"} {
		assert.Equal(t, Empty, f.WikiCategoryMembers(ctx, category), category)
		assert.Equal(t, Empty, f.WikiSubcategories(ctx, category), category)
	}
	assert.Equal(t, Empty, f.GoogleSuggest(ctx, "", "en"))

	assert.Zero(t, calls.Load())
}

func TestWikiSynonyms(t *testing.T) {
	f, _ := newTestFunctions(t)

	assert.Equal(t, []any{"Spree-Athen", "Germany"}, f.WikiSynonyms(context.Background(), "de:Berlin"))
}

func TestUpstreamFailure_ReturnsEmpty(t *testing.T) {
	f, calls := newTestFunctions(t)

	assert.Equal(t, Empty, f.WikiSynonyms(context.Background(), "en:Broken"))
	assert.Equal(t, int32(1), calls.Load())
}

func TestOnResult_ReportsStatus(t *testing.T) {
	f, _ := newTestFunctions(t)
	var statuses []lookup.Status
	f.OnResult = func(op string, status lookup.Status, err error) {
		statuses = append(statuses, status)
		if status == lookup.StatusFailed {
			assert.Error(t, err, op)
		}
	}
	ctx := context.Background()

	f.WikiSynonyms(ctx, "de:Berlin")
	f.WikiSynonyms(ctx, "en:Broken")
	f.WikiSynonyms(ctx, "Berlin")

	require.Len(t, statuses, 3)
	assert.Equal(t, lookup.StatusOK, statuses[0])
	assert.Equal(t, lookup.StatusFailed, statuses[1])
	assert.Equal(t, lookup.StatusFailed, statuses[2])
}

func TestWikiTranslate_Shapes(t *testing.T) {
	f, _ := newTestFunctions(t)
	ctx := context.Background()

	rows := f.WikiTranslate(ctx, "de:Berlin", []string{"it", "sv"}, false, false)
	assert.Equal(t, []any{
		[]any{"it", "Berlino"},
		[]any{"sv", "Berlin"},
		[]any{"de", "Berlin"},
	}, rows)

	bare := f.WikiTranslate(ctx, "de:Berlin", []string{"it,fr"}, false, true)
	assert.Equal(t, []any{"Berlino", "Berlin", "Berlin"}, bare)

	obj := f.WikiTranslate(ctx, "de:Berlin", nil, true, false)
	m, ok := obj.(*lookup.OrderedMap[string])
	require.True(t, ok, "object mode returns an ordered map, got %T", obj)
	assert.Equal(t, []string{"it", "fr", "de"}, m.Keys())
}

func TestWikiExpand(t *testing.T) {
	f, _ := newTestFunctions(t)
	ctx := context.Background()

	rows := f.WikiExpand(ctx, "de:Berlin", []string{"it"}, false)
	assert.Equal(t, []any{
		[]any{"it", "Berlino", "Berlino Est"},
		[]any{"de", "Berlin", "Spree-Athen", "Germany"},
	}, rows)

	obj := f.WikiExpand(ctx, "de:Berlin", []string{"it"}, true)
	m, ok := obj.(*lookup.OrderedMap[[]string])
	require.True(t, ok)
	it, _ := m.Get("it")
	assert.Equal(t, []string{"Berlino", "Berlino Est"}, it)
}

func TestWikiLinks(t *testing.T) {
	f, _ := newTestFunctions(t)
	ctx := context.Background()

	assert.Equal(t, []any{"Spree-Athen", "Germany"}, f.WikiInbound(ctx, "en:Berlin"))
	assert.Equal(t, []any{"Germany", "Europe"}, f.WikiOutbound(ctx, "en:Berlin"))
	assert.Equal(t, []any{"Germany"}, f.WikiMutual(ctx, "en:Berlin"))
}

func TestWikiCategories(t *testing.T) {
	f, _ := newTestFunctions(t)
	ctx := context.Background()

	assert.Equal(t, []any{"Physics"}, f.WikiCategoryMembers(ctx, "en:Category:Physics"))
	assert.Equal(t, []any{"Category:Optics"}, f.WikiSubcategories(ctx, "en:Category:Physics"))
}

func TestWikiGeoCoordinates(t *testing.T) {
	f, _ := newTestFunctions(t)

	assert.Equal(t, []any{52.52, 13.405}, f.WikiGeoCoordinates(context.Background(), "de:Berlin"))
}

func TestWikidataFacts(t *testing.T) {
	f, _ := newTestFunctions(t)

	// P190 has two values and is dropped
	assert.Equal(t, []any{[]any{"P17", "Q183"}}, f.WikidataFacts(context.Background(), "en:Berlin"))
}

func TestGoogleSuggest(t *testing.T) {
	f, _ := newTestFunctions(t)

	assert.Equal(t, []any{"wikipedia", "wikipedia deutsch"}, f.GoogleSuggest(context.Background(), "wikipedia", "en"))
}
