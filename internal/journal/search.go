package journal

import (
	"sort"
	"strings"
)

// SearchHit is one matching day.
type SearchHit struct {
	DateKey string
	Entry   Entry
}

// Search returns entries whose text contains query, case-insensitively,
// newest day first. An empty query matches nothing.
func Search(entries Entries, query string) []SearchHit {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	var hits []SearchHit
	for k, e := range entries {
		if strings.Contains(strings.ToLower(e.Text), query) {
			hits = append(hits, SearchHit{DateKey: k, Entry: e})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].DateKey > hits[j].DateKey })
	return hits
}
