package types

// RawPost is a post object as the content service returns it. Field types
// are deliberately loose: the service sends tags as numbers or strings
// depending on the write path, and any field may be absent. Absence defaults
// to the zero value; normalization never fails on a missing field alone.
type RawPost struct {
	PostID          any      `json:"post_id"`
	MenuName        string   `json:"menu_name"`
	Story           string   `json:"story"`
	ImageURL        string   `json:"image_url"`
	CategoriesTags  []any    `json:"categories_tags"`
	IngredientsTags []any    `json:"ingredients_tags"`
	IngredientNames []string `json:"ingredient_names"`
	Ingredients     []any    `json:"ingredients"`
	Instructions    []any    `json:"instructions"`
	CookTime        string   `json:"cook_time"`
	Servings        int      `json:"servings"`
}

// RawOwner carries the posting user and creation timestamps as returned
// alongside a post.
type RawOwner struct {
	UserID      any    `json:"user_id"`
	Username    string `json:"username"`
	CreatedDate string `json:"created_date"`
	CreatedTime string `json:"created_time"`
}

// RawEnvelope is the {owner_post, post} wrapper some endpoints use. Listing
// endpoints may also return bare RawPost objects; the content client wraps
// those in an envelope with a nil Owner.
type RawEnvelope struct {
	Owner *RawOwner `json:"owner_post"`
	Post  *RawPost  `json:"post"`
}
