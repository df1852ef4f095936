package models

import "time"

// Token is the audit record of an issued session token. It is written once
// per login and never read back to decide whether a token is valid.
type Token struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	Token     string    `json:"token" gorm:"not null;uniqueIndex"`
	Username  string    `json:"username" gorm:"size:50;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
