package bkper

// Group organizes accounts of a book into a hierarchy.
type Group struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Parent string `json:"parent,omitempty"`
	Hidden bool   `json:"hidden,omitempty"`
}
