package models

import "time"

// Admin is one entry of the server-side allow-list. Passwords are stored
// as bcrypt hashes, never plaintext.
type Admin struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"type:varchar(255); unique;not null"`
	Password  string `gorm:"type:varchar(255); not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
