package models

import "time"

type User struct {
	ID           int       `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:50;not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;size:100;not null"`
	Email        string    `json:"email" gorm:"size:100;not null;uniqueIndex"`
	CreatedAt    time.Time `json:"created_at"`
}
