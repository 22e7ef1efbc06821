package domain

// Category groups products on the terminal and in the catalog.
type Category struct {
	CategoryID string `json:"id"`
	Name       string `json:"name"`
	IsActive   bool   `json:"isActive"` // Inactive categories are hidden from product forms
	AuditFields
}

// Location is a shelf, store room or branch where stock is kept.
type Location struct {
	LocationID string `json:"id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	IsActive   bool   `json:"isActive"`
	AuditFields
}
