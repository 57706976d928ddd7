package resolver

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cookpedia/pantry/pkg/types"
)

// Normalize converts a raw envelope into the fixed internal Recipe
// representation. Returns ErrMissingID when the post carries no usable
// identifier; every other absent field defaults to an empty value.
func Normalize(env types.RawEnvelope) (types.Recipe, error) {
	p := env.Post
	if p == nil {
		return types.Recipe{}, types.ErrMissingID
	}

	id, ok := stringID(p.PostID)
	if !ok {
		return types.Recipe{}, types.ErrMissingID
	}
	if strings.TrimSpace(p.MenuName) == "" {
		return types.Recipe{}, types.ErrMissingTitle
	}

	r := types.Recipe{
		ID:             id,
		Title:          p.MenuName,
		Description:    p.Story,
		Image:          p.ImageURL,
		Categories:     ResolveCategories(p.CategoriesTags),
		IngredientTags: ResolveIngredientTags(p.IngredientNames, p.IngredientsTags),
		Ingredients:    stringList(p.Ingredients),
		Instructions:   stringList(p.Instructions),
		CookTime:       p.CookTime,
		Servings:       p.Servings,
	}

	if u := env.Owner; u != nil {
		if uid, ok := stringID(u.UserID); ok {
			r.Author.ID = uid
		}
		r.Author.DisplayName = u.Username
		r.CreatedAt = strings.TrimSpace(u.CreatedDate + " " + u.CreatedTime)
	}
	return r, nil
}

// stringID renders a loosely typed identifier as a string. JSON numbers
// arrive as float64; integral values lose no precision at this domain's
// identifier sizes.
func stringID(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		if strings.TrimSpace(t) == "" {
			return "", false
		}
		return t, true
	case float64:
		return strconv.FormatInt(int64(t), 10), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	default:
		return "", false
	}
}

// stringList renders a loosely typed array as strings, skipping nulls.
func stringList(in []any) []string {
	var out []string
	for _, v := range in {
		switch t := v.(type) {
		case nil:
			continue
		case string:
			out = append(out, t)
		default:
			out = append(out, fmt.Sprint(t))
		}
	}
	return out
}
