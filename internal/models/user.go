package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered account. The phone number is the login
// identifier and must be unique. Password holds a bcrypt hash, never the
// plaintext, and is excluded from JSON responses.
type User struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	Username      string    `gorm:"type:text;not null" json:"username"`
	Phone         string    `gorm:"uniqueIndex;not null" json:"phone"`
	Password      string    `gorm:"type:text;not null" json:"-"`
	ImageFilename string    `gorm:"type:text" json:"image"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// BeforeCreate is a GORM hook that assigns a fresh UUID when the ID
// has not been set by the caller.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}
