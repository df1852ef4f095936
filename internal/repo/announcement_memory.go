package repo

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rogerio-castellano/noticeboard/internal/models"
)

// InMemoryAnnouncementRepository is an in-memory implementation of AnnouncementRepository.
type InMemoryAnnouncementRepository struct {
	mu            sync.RWMutex
	announcements []models.Announcement
	nextID        int
}

// NewInMemoryAnnouncementRepository creates a new instance of InMemoryAnnouncementRepository.
func NewInMemoryAnnouncementRepository() *InMemoryAnnouncementRepository {
	return &InMemoryAnnouncementRepository{
		announcements: []models.Announcement{},
		nextID:        1,
	}
}

// Create adds a new announcement with a zero view counter.
func (r *InMemoryAnnouncementRepository) Create(_ context.Context, a models.Announcement) (models.Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	a.ID = r.nextID
	a.Views = 0
	a.CreatedAt = now
	a.UpdatedAt = now
	r.nextID++
	r.announcements = append(r.announcements, a)
	return a, nil
}

// Update replaces title and content of an existing announcement.
func (r *InMemoryAnnouncementRepository) Update(_ context.Context, id int, title, content string) (models.Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, a := range r.announcements {
		if a.ID == id {
			a.Title = title
			a.Content = content
			a.UpdatedAt = time.Now().UTC()
			r.announcements[i] = a
			return a, nil
		}
	}
	return models.Announcement{}, ErrAnnouncementNotFound
}

// Delete removes an announcement by its ID.
func (r *InMemoryAnnouncementRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, a := range r.announcements {
		if a.ID == id {
			r.announcements = append(r.announcements[:i], r.announcements[i+1:]...)
			return nil
		}
	}
	return ErrAnnouncementNotFound
}

// GetAll retrieves all announcements in insertion order.
func (r *InMemoryAnnouncementRepository) GetAll(_ context.Context) ([]models.Announcement, error) {
	return r.filter(func(models.Announcement) bool { return true }), nil
}

func (r *InMemoryAnnouncementRepository) Search(_ context.Context, query string) ([]models.Announcement, error) {
	return r.filter(func(a models.Announcement) bool {
		return strings.Contains(a.Title, query) || strings.Contains(a.Content, query)
	}), nil
}

func (r *InMemoryAnnouncementRepository) GetViews(_ context.Context, id int) (models.AnnouncementViews, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.announcements {
		if a.ID == id {
			return models.AnnouncementViews{AnnouncementID: a.ID, Views: a.Views}, nil
		}
	}
	return models.AnnouncementViews{}, ErrAnnouncementNotFound
}

func (r *InMemoryAnnouncementRepository) GetByAuthor(_ context.Context, authorID int) ([]models.Announcement, error) {
	return r.filter(func(a models.Announcement) bool { return a.AuthorID == authorID }), nil
}

func (r *InMemoryAnnouncementRepository) filter(keep func(models.Announcement) bool) []models.Announcement {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := []models.Announcement{}
	for _, a := range r.announcements {
		if keep(a) {
			matched = append(matched, a)
		}
	}
	return matched
}
