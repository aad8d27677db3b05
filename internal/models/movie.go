package models

// Movie represents a single entry in the catalog.
// Titles are unique; the database enforces it through a unique index so a
// duplicate insert fails atomically instead of relying on a lookup first.
type Movie struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Title    string `json:"title" gorm:"uniqueIndex;type:varchar(255)" validate:"required"`
	Genre    string `json:"genre" gorm:"type:varchar(100)" validate:"required"`
	Sinopsis string `json:"sinopsis" validate:"required"`
	Language string `json:"language" gorm:"type:varchar(100)" validate:"required"`
}
