package handlers

import (
	"github.com/rogerio-castellano/noticeboard/internal/auth"
	repo "github.com/rogerio-castellano/noticeboard/internal/repo"
	"github.com/sirupsen/logrus"
)

// Server holds the dependencies shared by the HTTP handlers.
type Server struct {
	auth          *auth.Service
	announcements repo.AnnouncementRepository
	metrics       repo.MetricsRepository
	log           logrus.FieldLogger
}

func NewServer(authService *auth.Service, announcements repo.AnnouncementRepository, metrics repo.MetricsRepository, log logrus.FieldLogger) *Server {
	return &Server{
		auth:          authService,
		announcements: announcements,
		metrics:       metrics,
		log:           log,
	}
}
