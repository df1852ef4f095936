package models

import "time"

// Announcement is a short text notice published by a registered user.
// AuthorID references User.ID without ownership: deleting a user is not
// cascaded to its announcements.
type Announcement struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Content   string    `json:"content" gorm:"not null"`
	AuthorID  int       `json:"author_id" gorm:"not null;index"`
	Views     int       `json:"views" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AnnouncementViews struct {
	AnnouncementID int `json:"announcement_id"`
	Views          int `json:"views"`
}
