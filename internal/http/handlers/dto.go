package handlers

import "github.com/rogerio-castellano/noticeboard/internal/models"

type SignUpRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type MessageResult struct {
	Message string `json:"message"`
}

type SignUpResult struct {
	Message string `json:"message"`
	UserID  int    `json:"user_id"`
}

type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type ProfileResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type AnnouncementRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type AnnouncementResult struct {
	Message        string `json:"message"`
	AnnouncementID int    `json:"announcement_id"`
}

type AnnouncementResponse = models.Announcement

type ViewsResponse = models.AnnouncementViews
