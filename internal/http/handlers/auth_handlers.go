package handlers

import (
	"errors"
	"net/http"

	"github.com/rogerio-castellano/noticeboard/internal/auth"
	mw "github.com/rogerio-castellano/noticeboard/internal/http/middleware"
	"github.com/rogerio-castellano/noticeboard/internal/repo"
)

// HomeHandler godoc
// @Summary Welcome message
// @Produce json
// @Success 200 {object} MessageResult
// @Router / [get]
func (s *Server) HomeHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, MessageResult{Message: "Welcome to the homepage"})
}

// SignUpHandler godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param user body SignUpRequest true "username, password and email"
// @Success 201 {object} SignUpResult
// @Failure 400 {array} ValidationError
// @Failure 409 {string} string "User exists"
// @Router /api/sign-up [post]
func (s *Server) SignUpHandler(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if validationErrors := validateSignUp(req); len(validationErrors) > 0 {
		s.writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	user, err := s.auth.Register(r.Context(), req.Username, req.Password, req.Email)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "username or email already exists", http.StatusConflict)
			return
		}
		s.log.WithError(err).Error("register user")
		http.Error(w, "failed to register user", http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, http.StatusCreated, SignUpResult{
		Message: "User successfully registered",
		UserID:  user.ID,
	})
}

// LoginHandler godoc
// @Summary Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 200 {object} LoginResult
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Unauthorized"
// @Router /api/login [post]
func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var credentials CredentialsRequest
	if err := readJSON(w, r, &credentials); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	token, err := s.auth.Login(r.Context(), credentials.Username, credentials.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		s.log.WithError(err).Error("login")
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, http.StatusOK, LoginResult{AccessToken: token, TokenType: "bearer"})
}

// ProfileHandler godoc
// @Summary Profile of the authenticated user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} ProfileResponse
// @Failure 401 {string} string "Unauthorized"
// @Router /api/profile [get]
func (s *Server) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := mw.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	s.writeJSON(w, http.StatusOK, ProfileResponse{Username: user.Username, Email: user.Email})
}
