// Package search implements reverse lookup: free text in, matching
// catalog codes out.
package search

import (
	"strings"

	"modelnum/internal/catalog"
)

// Match is one reverse-search hit.
type Match struct {
	Category    string
	Code        string
	Position    string
	Name        string
	Description string
}

// Query scans every category's display name, code tokens, and code
// descriptions for a case-insensitive substring match, in catalog
// document order. No ranking; document order is the contract. An empty or
// whitespace-only query returns nothing rather than the whole catalog.
func Query(cat *catalog.Catalog, query string) []Match {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var out []Match
	for _, c := range cat.Categories() {
		nameHit := strings.Contains(strings.ToLower(c.Name), query)
		for _, ce := range c.Codes {
			if nameHit ||
				strings.Contains(strings.ToLower(ce.Code), query) ||
				strings.Contains(strings.ToLower(ce.Description), query) {
				out = append(out, Match{
					Category:    c.ID,
					Code:        ce.Code,
					Position:    c.Position,
					Name:        c.Name,
					Description: ce.Description,
				})
			}
		}
	}
	return out
}
