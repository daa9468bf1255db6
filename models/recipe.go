package models

// Ingredient is one line of a recipe, optionally linked to a catalogue item.
type Ingredient struct {
	ItemID   string  `json:"itemId,omitempty"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit,omitempty"`
}

// Recipe is a shared household recipe.
type Recipe struct {
	Meta

	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	Portions     int          `json:"portions,omitempty"`
	Ingredients  []Ingredient `json:"ingredients,omitempty"`
	Instructions string       `json:"instructions,omitempty"`
	Tags         []string     `json:"tags,omitempty"`
}
