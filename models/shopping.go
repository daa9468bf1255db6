package models

// ShoppingEntry is one line of a group's shopping list. Completed entries stay
// in the list; display order (completed last) is derived by the UI, not stored.
type ShoppingEntry struct {
	Meta

	ItemID    string  `json:"itemId,omitempty"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit,omitempty"`
	Category  string  `json:"category,omitempty"`
	Completed bool    `json:"completed"`
}
