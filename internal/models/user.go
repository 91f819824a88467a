package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`

	// "password" for email/password accounts, "google" for federated
	// sign-ins, which are treated as already verified.
	Provider      string `gorm:"size:20;default:'password'" json:"provider"`
	EmailVerified bool   `gorm:"default:false" json:"email_verified"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) IsVerified() bool {
	return u.EmailVerified || u.Provider != "password"
}
