// Package facet defines the closed category and ingredient facet
// enumerations and the mappings between numeric identifiers, canonical
// slugs, and display labels.
package facet

import (
	"regexp"
	"strings"
)

// Canonical category slugs. The set is closed: a recipe's categories are
// always a subset of these values.
const (
	OneDish    = "one-dish"
	Spicy      = "spicy"
	Quick      = "quick"
	Vegetarian = "vegetarian"
	Healthy    = "healthy"
	Drinks     = "drinks"
	Snacks     = "snacks"
	Dessert    = "dessert"
	Halal      = "halal"
	Seafood    = "seafood"
	Noodles    = "noodles"
	Rice       = "rice"
)

// Category is one entry of the closed category facet set.
type Category struct {
	ID    int    // stable numeric identifier used on the wire
	Slug  string // canonical kebab-case identifier
	Label string // display label
}

// categories lists every category facet in identifier order. The three
// derived maps below must stay mutually consistent: for any valid input,
// encoding after decoding returns the original value.
var categories = []Category{
	{1, OneDish, "One-dish"},
	{2, Spicy, "Spicy"},
	{3, Quick, "Quick (< 15 min)"},
	{4, Vegetarian, "Vegetarian"},
	{5, Healthy, "Healthy"},
	{6, Drinks, "Drinks"},
	{7, Snacks, "Snacks"},
	{8, Dessert, "Dessert"},
	{9, Halal, "Halal"},
	{10, Seafood, "Seafood"},
	{11, Noodles, "Noodles"},
	{12, Rice, "Rice"},
}

var (
	categoryByID   = make(map[int]Category, len(categories))
	categoryBySlug = make(map[string]Category, len(categories))
)

func init() {
	for _, c := range categories {
		categoryByID[c.ID] = c
		categoryBySlug[c.Slug] = c
	}
}

// Categories returns every category facet in identifier order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Slugs returns the canonical slugs in identifier order.
func Slugs() []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = c.Slug
	}
	return out
}

// IsSlug reports whether s is a member of the closed slug set.
func IsSlug(s string) bool {
	_, ok := categoryBySlug[s]
	return ok
}

// SlugForID returns the canonical slug for a numeric category identifier.
func SlugForID(id int) (string, bool) {
	c, ok := categoryByID[id]
	return c.Slug, ok
}

// IDForSlug returns the numeric identifier for a canonical slug.
func IDForSlug(slug string) (int, bool) {
	c, ok := categoryBySlug[slug]
	return c.ID, ok
}

// LabelForSlug returns the display label for a canonical slug.
func LabelForSlug(slug string) (string, bool) {
	c, ok := categoryBySlug[slug]
	return c.Label, ok
}

// LabelForID returns the display label for a numeric category identifier.
func LabelForID(id int) (string, bool) {
	c, ok := categoryByID[id]
	return c.Label, ok
}

// parenthetical matches qualifier suffixes such as "(< 15 min)" along with
// surrounding whitespace.
var parenthetical = regexp.MustCompile(`\s*\([^)]*\)\s*`)

var whitespace = regexp.MustCompile(`\s+`)

// NormalizeLabel reduces a display label or free-text category tag to slug
// form: lowercase, parenthetical qualifiers stripped, whitespace collapsed
// to hyphens. The result is a candidate slug, not necessarily a valid one.
func NormalizeLabel(label string) string {
	s := strings.ToLower(label)
	s = parenthetical.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	return whitespace.ReplaceAllString(s, "-")
}
