package models

// Group is a household sharing items, pantry stock, shopping lists and
// recipes. Membership management itself is server business; the client only
// carries the fields it displays.
type Group struct {
	Meta

	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	OwnerID     string   `json:"ownerId,omitempty"`
	MemberIDs   []string `json:"memberIds,omitempty"`
}
