package models

// User represents a registered account. The email is the login credential
// and is unique per user. Password holds the bcrypt hash and is excluded
// from JSON so no response can ever echo it.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"type:varchar(100)"`
	Email    string `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	Password string `json:"-" gorm:"type:varchar(255)"`
}
