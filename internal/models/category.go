package models

// Category is a user-defined label for grouping items.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CategoryRelationship links an item to a category. A relationship against
// a recurring parent implicitly tags every occurrence generated from it.
type CategoryRelationship struct {
	ItemID     int `json:"itemId"`
	CategoryID int `json:"categoryId"`
}
