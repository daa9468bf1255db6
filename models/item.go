package models

// Item is a catalogue entry shared by a household group: the description of a
// product independent of any stock level or shopping intent.
type Item struct {
	Meta

	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Unit        string   `json:"unit,omitempty"`
	Barcode     string   `json:"barcode,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	GroupID     string   `json:"groupId,omitempty"`
}
