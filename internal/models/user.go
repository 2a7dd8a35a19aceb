package models

import (
	"github.com/recipe-share/pkg/crypto"
)

// User represents a registered user
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;size:50;not null" json:"username"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	// Relations
	Recipes []Recipe `gorm:"foreignKey:UserID" json:"recipes,omitempty"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// SetPassword hashes password and stores it, replacing any previous hash
func (u *User) SetPassword(password string) error {
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

// CheckPassword reports whether password is the one the hash was made from
func (u *User) CheckPassword(password string) bool {
	return crypto.CheckPassword(password, u.PasswordHash)
}
