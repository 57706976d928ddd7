package facet

// Ingredient is one entry of the closed ingredient facet set, used only to
// resolve numeric ingredient-tag identifiers to names. Free-text ingredient
// tags pass through unresolved.
type Ingredient struct {
	ID   int
	Name string
}

var ingredients = []Ingredient{
	{1, "Vegetable"},
	{2, "Fruit"},
	{3, "Meat"},
	{4, "Seafood"},
	{5, "Poultry"},
	{6, "Dairy"},
	{7, "Egg"},
	{8, "Grain"},
	{9, "Legume"},
	{10, "Nuts & Seeds"},
	{11, "Herbs"},
	{12, "Spice"},
	{13, "Oil & Fat"},
	{14, "Sugar & Sweetener"},
	{15, "Beverage"},
	{16, "Condiment"},
	{17, "Mushroom"},
	{18, "Fungus & Seaweed"},
	{19, "Baking Ingredient"},
	{20, "Alcohol"},
}

var ingredientByID = make(map[int]Ingredient, len(ingredients))

func init() {
	for _, ing := range ingredients {
		ingredientByID[ing.ID] = ing
	}
}

// Ingredients returns every ingredient facet in identifier order.
func Ingredients() []Ingredient {
	out := make([]Ingredient, len(ingredients))
	copy(out, ingredients)
	return out
}

// IngredientNameForID returns the canonical name for a numeric ingredient
// facet identifier.
func IngredientNameForID(id int) (string, bool) {
	ing, ok := ingredientByID[id]
	return ing.Name, ok
}
