package models

import "time"

// PantryEntry is one stocked product in a group's pantry.
type PantryEntry struct {
	Meta

	ItemID    string     `json:"itemId,omitempty"`
	Name      string     `json:"name"`
	Quantity  float64    `json:"quantity"`
	Unit      string     `json:"unit,omitempty"`
	Category  string     `json:"category,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	Note      string     `json:"note,omitempty"`
}
