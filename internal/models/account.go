package models

import "time"

// Account is the credential row behind a profile.
type Account struct {
	ID           string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"column:email;type:text;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:text" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	LastSignInAt time.Time `gorm:"column:last_sign_in_at;type:timestamptz" json:"last_sign_in_at"`
}

func (Account) TableName() string { return "accounts" }
