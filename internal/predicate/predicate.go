// Package predicate implements the per-category boolean tests used by the
// search executor. Each entry of the table is a small pure function over a
// Recipe. Explicit tags are authoritative: every heuristic is ORed with
// direct tag membership, so a heuristic can add a match but never suppress
// an explicit one.
package predicate

import (
	"strings"

	"github.com/cookpedia/pantry/internal/facet"
	"github.com/cookpedia/pantry/pkg/types"
)

// Func is a boolean test over a normalized recipe.
type Func func(types.Recipe) bool

// Keyword lists for the heuristic fallbacks. Matching is case-insensitive
// substring containment, any keyword wins. The Thai terms come from the
// upstream content, which mixes languages freely.
var (
	spicyWords = []string{"spicy", "เผ็ด", "chili", "พริก"}

	spicyIngredientWords = []string{"chili", "พริก"}

	// Any of these in an ingredient line disqualifies a recipe from the
	// vegetarian default.
	meatWords = []string{
		"หมู", "ไก่", "เนื้อ", "กุ้ง", "ปลา",
		"beef", "pork", "chicken", "shrimp", "fish",
	}

	healthyWords = []string{"healthy", "low fat", "low sugar", "คาลอรีต่ำ"}

	seafoodWords = []string{"shrimp", "fish", "กุ้ง", "ปลา", "ปลาหมึก"}

	noodleWords = []string{"noodle", "เส้น", "ผัด"}
)

// table maps each category slug to its predicate. Facets without a reliable
// heuristic substitute use direct membership only.
var table = map[string]Func{
	facet.OneDish: tagged(facet.OneDish),

	facet.Spicy: func(r types.Recipe) bool {
		return hasCategory(r, facet.Spicy) ||
			textIncludesAny(r.Title+" "+r.Description, spicyWords) ||
			linesIncludeAny(r.Ingredients, spicyIngredientWords)
	},

	facet.Quick: func(r types.Recipe) bool {
		return hasCategory(r, facet.Quick) || ParseLeadingMinutes(r.CookTime) <= 15
	},

	facet.Vegetarian: func(r types.Recipe) bool {
		return hasCategory(r, facet.Vegetarian) ||
			!linesIncludeAny(r.Ingredients, meatWords)
	},

	facet.Healthy: func(r types.Recipe) bool {
		return hasCategory(r, facet.Healthy) ||
			textIncludesAny(r.Description, healthyWords)
	},

	facet.Drinks:  tagged(facet.Drinks),
	facet.Snacks:  tagged(facet.Snacks),
	facet.Dessert: tagged(facet.Dessert),
	facet.Halal:   tagged(facet.Halal),

	facet.Seafood: func(r types.Recipe) bool {
		return hasCategory(r, facet.Seafood) ||
			linesIncludeAny(r.Ingredients, seafoodWords)
	},

	facet.Noodles: func(r types.Recipe) bool {
		return hasCategory(r, facet.Noodles) ||
			textIncludesAny(r.Title+" "+r.Description, noodleWords)
	},

	facet.Rice: tagged(facet.Rice),
}

// For returns the predicate for a category slug. Unknown slugs get a
// predicate that accepts everything, so a stray criterion never empties a
// result set on its own.
func For(slug string) Func {
	if p, ok := table[slug]; ok {
		return p
	}
	return func(types.Recipe) bool { return true }
}

// tagged builds a direct-membership predicate.
func tagged(slug string) Func {
	return func(r types.Recipe) bool { return hasCategory(r, slug) }
}

func hasCategory(r types.Recipe, slug string) bool {
	for _, c := range r.Categories {
		if c == slug {
			return true
		}
	}
	return false
}

// textIncludesAny reports whether text contains any of the words,
// case-insensitively.
func textIncludesAny(text string, words []string) bool {
	low := strings.ToLower(text)
	for _, w := range words {
		if strings.Contains(low, strings.ToLower(w)) {
			return true
		}
	}
	return false
}

// linesIncludeAny reports whether any line contains any of the words.
func linesIncludeAny(lines []string, words []string) bool {
	for _, line := range lines {
		if textIncludesAny(line, words) {
			return true
		}
	}
	return false
}
