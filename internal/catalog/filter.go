package catalog

import (
	"strings"

	"github.com/cookpedia/pantry/internal/predicate"
	"github.com/cookpedia/pantry/pkg/types"
)

// Filter returns the records satisfying every criterion, in catalog order.
// Empty criteria is the identity and returns the full catalog. Each call
// rescans the collection; no inverted index is kept. That is linear in the
// catalog size times the number of selected facets, which is fine at the
// hundreds-to-low-thousands of records this catalog holds.
func (s *Store) Filter(c types.Criteria) []types.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.Recipe, 0, len(s.recipes))
	if c.Empty() {
		return append(out, s.recipes...)
	}
	for _, r := range s.recipes {
		if matches(r, c) {
			out = append(out, r)
		}
	}
	return out
}

// matches combines the three filters with AND.
func matches(r types.Recipe, c types.Criteria) bool {
	return matchesText(r, c.Text) &&
		matchesIngredients(r, c.Ingredients) &&
		matchesCategories(r, c.Categories)
}

// matchesText keeps records whose title or description contains the query
// as a case-insensitive substring. An empty query matches everything.
func matchesText(r types.Recipe, text string) bool {
	if text == "" {
		return true
	}
	q := strings.ToLower(text)
	return strings.Contains(strings.ToLower(r.Title), q) ||
		strings.Contains(strings.ToLower(r.Description), q)
}

// matchesIngredients requires every selected keyword to match at least one
// of the record's ingredient tags or free-text ingredient lines (AND across
// keywords, OR across the record's own representations).
func matchesIngredients(r types.Recipe, keywords []string) bool {
	for _, kw := range keywords {
		q := strings.ToLower(kw)
		found := false
		for _, tag := range r.IngredientTags {
			if strings.Contains(strings.ToLower(tag), q) {
				found = true
				break
			}
		}
		if !found {
			for _, line := range r.Ingredients {
				if strings.Contains(strings.ToLower(line), q) {
					found = true
					break
				}
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// matchesCategories requires every selected category's predicate to accept
// the record.
func matchesCategories(r types.Recipe, slugs []string) bool {
	for _, slug := range slugs {
		if !predicate.For(slug)(r) {
			return false
		}
	}
	return true
}
