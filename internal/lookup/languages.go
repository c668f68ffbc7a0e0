package lookup

import "strings"

// LanguageSet is an insertion-ordered, de-duplicated set of language codes.
// The zero value is an empty set, which means "no filter".
type LanguageSet struct {
	codes []string
	seen  map[string]struct{}
}

// NewLanguageSet builds a set from codes, keeping first-seen order.
func NewLanguageSet(codes ...string) LanguageSet {
	var s LanguageSet
	for _, c := range codes {
		s.Add(c)
	}
	return s
}

// ParseLanguageSet accepts individual codes as well as comma, pipe or
// whitespace separated lists, e.g. ParseLanguageSet("de,fr", "en|de").
func ParseLanguageSet(values ...string) LanguageSet {
	var s LanguageSet
	for _, v := range values {
		for _, c := range strings.FieldsFunc(v, isLanguageSeparator) {
			s.Add(c)
		}
	}
	return s
}

func isLanguageSeparator(r rune) bool {
	return r == ',' || r == '|' || r == ';' || r == ' ' || r == '\t' || r == '\n'
}

// Add inserts code unless it is blank or already present.
func (s *LanguageSet) Add(code string) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return
	}
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[code]; ok {
		return
	}
	s.seen[code] = struct{}{}
	s.codes = append(s.codes, code)
}

// Contains reports whether code is in the set.
func (s LanguageSet) Contains(code string) bool {
	_, ok := s.seen[strings.ToLower(code)]
	return ok
}

// Allows reports whether a language passes the filter: an empty set allows everything.
func (s LanguageSet) Allows(code string) bool {
	return s.IsEmpty() || s.Contains(code)
}

// Codes returns the codes in insertion order.
func (s LanguageSet) Codes() []string {
	out := make([]string, len(s.codes))
	copy(out, s.codes)
	return out
}

func (s LanguageSet) IsEmpty() bool { return len(s.codes) == 0 }
