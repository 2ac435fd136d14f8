package models

// Book represents a single record on the shelf. Owner is fixed at creation
// and only the owner may mutate the record.
type Book struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	Year          int    `json:"year"`
	Available     bool   `json:"available"`
	OwnerUsername string `json:"owner_username"`
}
