package types

import "errors"

// Normalization errors. A record missing its identifier or title is dropped
// from a batch load; the rest of the batch is still processed.
var (
	ErrMissingID    = errors.New("record has no identifier")
	ErrMissingTitle = errors.New("record has no title")
	ErrNotFound     = errors.New("recipe not found")
)

// Author identifies the user who posted a recipe.
type Author struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// Recipe is the normalized record the catalog stores. Categories holds
// canonical category slugs only; IngredientTags holds resolved ingredient
// facet names or free-text tags, deduplicated in first-seen order;
// Ingredients holds the free-text ingredient lines as written.
//
// Recipes are never mutated inside the catalog. An edit produces a new
// normalized record that replaces the old one by ID.
type Recipe struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Image          string   `json:"image"`
	Author         Author   `json:"author"`
	Categories     []string `json:"categories"`
	IngredientTags []string `json:"ingredient_tags"`
	Ingredients    []string `json:"ingredients"`
	Instructions   []string `json:"instructions"`
	CookTime       string   `json:"cook_time"`
	Servings       int      `json:"servings"`
	CreatedAt      string   `json:"created_at"`
}
