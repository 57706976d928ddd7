package types

// Criteria is a multi-facet search request. An empty field imposes no
// constraint. Text matches title or description as a case-insensitive
// substring. Ingredients are ANDed across keywords; each keyword must match
// at least one of the record's ingredient tags or ingredient lines.
// Categories are ANDed across slugs, each evaluated by its predicate.
type Criteria struct {
	Text        string   `json:"text"`
	Ingredients []string `json:"ingredients"`
	Categories  []string `json:"categories"`
}

// Empty reports whether the criteria imposes no constraint at all.
func (c Criteria) Empty() bool {
	return c.Text == "" && len(c.Ingredients) == 0 && len(c.Categories) == 0
}
