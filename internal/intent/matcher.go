package intent

import "strings"

// Matcher resolves query text to an intent name by scanning the catalog
// for trigger substrings. It is stateless and safe for concurrent use.
type Matcher struct {
	catalog []Intent
}

// NewMatcher creates a Matcher over the given catalog. Catalog order is
// the priority order.
func NewMatcher(catalog []Intent) *Matcher {
	return &Matcher{catalog: catalog}
}

// Catalog returns the matcher's catalog in priority order.
func (m *Matcher) Catalog() []Intent {
	return m.catalog
}

// Match lower-cases text and returns the name of the first intent whose
// trigger is a substring of it. The second return is false when no
// trigger matches.
func (m *Matcher) Match(text string) (string, bool) {
	query := strings.ToLower(text)
	for _, in := range m.catalog {
		for _, trigger := range in.Triggers {
			if strings.Contains(query, trigger) {
				return in.Name, true
			}
		}
	}
	return "", false
}
