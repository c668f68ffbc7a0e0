package wikipedia

import "encoding/xml"

// apiResponse is the root <api> element of a format=xml MediaWiki response.
type apiResponse struct {
	XMLName xml.Name  `xml:"api"`
	Error   *apiError `xml:"error"`
	Query   query     `xml:"query"`
}

type apiError struct {
	Code string `xml:"code,attr"`
	Info string `xml:"info,attr"`
}

type query struct {
	Backlinks       []pageRef `xml:"backlinks>bl"`
	CategoryMembers []pageRef `xml:"categorymembers>cm"`
	Pages           []page    `xml:"pages>page"`
}

// pageRef is a bl, cm or pl element.
type pageRef struct {
	NS    int    `xml:"ns,attr"`
	Title string `xml:"title,attr"`
}

type page struct {
	NS          int          `xml:"ns,attr"`
	Title       string       `xml:"title,attr"`
	Missing     *string      `xml:"missing,attr"`
	Invalid     *string      `xml:"invalid,attr"`
	LangLinks   []langLink   `xml:"langlinks>ll"`
	Links       []pageRef    `xml:"links>pl"`
	Coordinates []coordinate `xml:"coordinates>co"`
}

// langLink is <ll lang="de">Berlin</ll>.
type langLink struct {
	Lang  string `xml:"lang,attr"`
	Title string `xml:",chardata"`
}

type coordinate struct {
	Lat     float64 `xml:"lat,attr"`
	Lon     float64 `xml:"lon,attr"`
	Primary *string `xml:"primary,attr"`
	Globe   string  `xml:"globe,attr"`
}

func (p page) exists() bool {
	return p.Missing == nil && p.Invalid == nil
}

func titles(refs []pageRef) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, r.Title)
	}
	return out
}
