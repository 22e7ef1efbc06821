package models

// Category is a row of the categories table.
type Category struct {
	CategoryID string `db:"category_id"`
	Name       string `db:"name"`
	IsActive   bool   `db:"is_active"`
	AuditFields
}

// Location is a row of the locations table.
type Location struct {
	LocationID string `db:"location_id"`
	Name       string `db:"name"`
	Address    string `db:"address"`
	Phone      string `db:"phone"`
	IsActive   bool   `db:"is_active"`
	AuditFields
}
