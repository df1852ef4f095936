package handlers

import (
	"errors"
	"net/http"

	mw "github.com/rogerio-castellano/noticeboard/internal/http/middleware"
	"github.com/rogerio-castellano/noticeboard/internal/models"
	"github.com/rogerio-castellano/noticeboard/internal/repo"
)

// CreateAnnouncementHandler godoc
// @Summary Create a new announcement
// @Description The authenticated user becomes the author
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param announcement body AnnouncementRequest true "Announcement to publish"
// @Success 201 {object} AnnouncementResult
// @Failure 400 {array} ValidationError
// @Failure 401 {string} string "Unauthorized"
// @Router /api/announcements [post]
func (s *Server) CreateAnnouncementHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := mw.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req AnnouncementRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if validationErrors := validateAnnouncement(req); len(validationErrors) > 0 {
		s.writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	created, err := s.announcements.Create(r.Context(), models.Announcement{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: user.ID,
	})
	if err != nil {
		s.log.WithError(err).Error("create announcement")
		http.Error(w, "could not create announcement", http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, http.StatusCreated, AnnouncementResult{
		Message:        "Announcement successfully created",
		AnnouncementID: created.ID,
	})
}

// UpdateAnnouncementHandler godoc
// @Summary Replace title and content of an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Param announcement body AnnouncementRequest true "New title and content"
// @Success 200 {object} AnnouncementResult
// @Failure 400 {array} ValidationError
// @Failure 404 {string} string "Not found"
// @Router /api/announcements/{id} [put]
func (s *Server) UpdateAnnouncementHandler(w http.ResponseWriter, r *http.Request) {
	id, err := announcementID(r)
	if err != nil {
		http.Error(w, "invalid announcement ID", http.StatusBadRequest)
		return
	}

	var req AnnouncementRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if validationErrors := validateAnnouncement(req); len(validationErrors) > 0 {
		s.writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	updated, err := s.announcements.Update(r.Context(), id, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, repo.ErrAnnouncementNotFound) {
			http.Error(w, "Announcement not found", http.StatusNotFound)
			return
		}
		s.log.WithError(err).WithField("announcement_id", id).Error("update announcement")
		http.Error(w, "could not update announcement", http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, http.StatusOK, AnnouncementResult{
		Message:        "Announcement successfully updated",
		AnnouncementID: updated.ID,
	})
}

// DeleteAnnouncementHandler godoc
// @Summary Delete an announcement
// @Tags announcements
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Success 200 {object} MessageResult
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /api/announcements/{id} [delete]
func (s *Server) DeleteAnnouncementHandler(w http.ResponseWriter, r *http.Request) {
	id, err := announcementID(r)
	if err != nil {
		http.Error(w, "invalid announcement ID", http.StatusBadRequest)
		return
	}

	if err := s.announcements.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrAnnouncementNotFound) {
			http.Error(w, "Announcement not found", http.StatusNotFound)
			return
		}
		s.log.WithError(err).WithField("announcement_id", id).Error("delete announcement")
		http.Error(w, "could not delete announcement", http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, http.StatusOK, MessageResult{Message: "Announcement successfully deleted"})
}

// ListAnnouncementsHandler godoc
// @Summary List all announcements
// @Tags announcements
// @Produce json
// @Success 200 {array} AnnouncementResponse
// @Failure 500 {string} string "Internal error"
// @Router /api/announcements [get]
func (s *Server) ListAnnouncementsHandler(w http.ResponseWriter, r *http.Request) {
	announcements, err := s.announcements.GetAll(r.Context())
	if err != nil {
		s.log.WithError(err).Error("list announcements")
		http.Error(w, "could not fetch announcements", http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, http.StatusOK, announcements)
}

// SearchAnnouncementsHandler godoc
// @Summary Search announcements by title or content
// @Description Case-sensitive substring match
// @Tags announcements
// @Produce json
// @Param query query string true "Text to look for"
// @Success 200 {array} AnnouncementResponse
// @Failure 400 {string} string "Missing query"
// @Router /api/announcements/search [get]
func (s *Server) SearchAnnouncementsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("query") {
		http.Error(w, "query parameter is required", http.StatusBadRequest)
		return
	}

	announcements, err := s.announcements.Search(r.Context(), q.Get("query"))
	if err != nil {
		s.log.WithError(err).Error("search announcements")
		http.Error(w, "could not search announcements", http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, http.StatusOK, announcements)
}

// GetAnnouncementViewsHandler godoc
// @Summary Number of views of an announcement
// @Tags announcements
// @Produce json
// @Param id path int true "Announcement ID"
// @Success 200 {object} ViewsResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /api/announcements/{id}/views [get]
func (s *Server) GetAnnouncementViewsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := announcementID(r)
	if err != nil {
		http.Error(w, "invalid announcement ID", http.StatusBadRequest)
		return
	}

	views, err := s.announcements.GetViews(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrAnnouncementNotFound) {
			http.Error(w, "Announcement not found", http.StatusNotFound)
			return
		}
		s.log.WithError(err).WithField("announcement_id", id).Error("get views")
		http.Error(w, "could not fetch views", http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, http.StatusOK, views)
}

// MyAnnouncementsHandler godoc
// @Summary Announcements written by the authenticated user
// @Tags announcements
// @Security BearerAuth
// @Produce json
// @Success 200 {array} AnnouncementResponse
// @Failure 401 {string} string "Unauthorized"
// @Router /api/my-announcements [get]
func (s *Server) MyAnnouncementsHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := mw.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	announcements, err := s.announcements.GetByAuthor(r.Context(), user.ID)
	if err != nil {
		s.log.WithError(err).WithField("author_id", user.ID).Error("list author announcements")
		http.Error(w, "could not fetch announcements", http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, http.StatusOK, announcements)
}
