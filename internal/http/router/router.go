package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rogerio-castellano/noticeboard/internal/http/handlers"
	mw "github.com/rogerio-castellano/noticeboard/internal/http/middleware"
	"github.com/sirupsen/logrus"
)

func NewRouter(s *handlers.Server, authenticator mw.Authenticator, log logrus.FieldLogger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(chimw.StripSlashes)

	r.Get("/", s.HomeHandler)
	r.Get("/metrics/dashboard", s.GetDashboardMetricsHandler)

	r.Route("/api", func(r chi.Router) {
		r.Post("/sign-up", s.SignUpHandler)
		r.Post("/login", s.LoginHandler)

		r.Get("/announcements", s.ListAnnouncementsHandler)
		r.Get("/announcements/search", s.SearchAnnouncementsHandler)
		r.Get("/announcements/{id}/views", s.GetAnnouncementViewsHandler)

		r.Group(func(r chi.Router) {
			r.Use(mw.Authenticate(authenticator, log))

			r.Get("/profile", s.ProfileHandler)
			r.Get("/my-announcements", s.MyAnnouncementsHandler)
			r.Post("/announcements", s.CreateAnnouncementHandler)
			r.Put("/announcements/{id}", s.UpdateAnnouncementHandler)
			r.Delete("/announcements/{id}", s.DeleteAnnouncementHandler)
		})
	})

	return r
}
