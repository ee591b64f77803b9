// Package followup recommends the next questions to suggest after an
// intent has been answered.
package followup

import "github.com/pillaihoc/phoccy/internal/intent"

// Table maps intent names to their ordered suggestion lists.
type Table map[string][]string

// NewTable builds the recommendation table from an intent catalog.
func NewTable(catalog []intent.Intent) Table {
	t := make(Table, len(catalog))
	for _, in := range catalog {
		if len(in.FollowUps) > 0 {
			t[in.Name] = in.FollowUps
		}
	}
	return t
}

// SuggestionsFor returns the configured suggestions for the intent, in
// order. Unknown or empty intent names yield an empty slice. The
// returned slice is a copy, so callers cannot mutate the table.
func (t Table) SuggestionsFor(intentName string) []string {
	configured, ok := t[intentName]
	if !ok {
		return []string{}
	}
	out := make([]string, len(configured))
	copy(out, configured)
	return out
}
