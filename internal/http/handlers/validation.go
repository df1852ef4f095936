package handlers

import (
	"net/mail"
	"strings"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateSignUp(req SignUpRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(req.Username) == "" {
		errs = append(errs, ValidationError{Field: "Username", Description: "Username is required"})
	}
	if req.Password == "" {
		errs = append(errs, ValidationError{Field: "Password", Description: "Password is required"})
	}
	if strings.TrimSpace(req.Email) == "" {
		errs = append(errs, ValidationError{Field: "Email", Description: "Email is required"})
	} else if _, err := mail.ParseAddress(req.Email); err != nil {
		errs = append(errs, ValidationError{Field: "Email", Description: "Email is not a valid address"})
	}
	return errs
}

func validateAnnouncement(req AnnouncementRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, ValidationError{Field: "Title", Description: "Title is required"})
	}
	if strings.TrimSpace(req.Content) == "" {
		errs = append(errs, ValidationError{Field: "Content", Description: "Content is required"})
	}
	return errs
}
