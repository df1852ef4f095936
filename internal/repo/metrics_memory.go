package repo

import "context"

type InMemoryMetricsRepository struct {
	userRepo         *InMemoryUserRepository
	announcementRepo AnnouncementRepository
}

func NewInMemoryMetricsRepository(users *InMemoryUserRepository, announcements AnnouncementRepository) *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{
		userRepo:         users,
		announcementRepo: announcements,
	}
}

// GetDashboardMetrics implements MetricsRepository.
func (i *InMemoryMetricsRepository) GetDashboardMetrics(ctx context.Context) (Metrics, error) {
	m := Metrics{}

	users := i.userRepo.All()
	m.TotalUsers = len(users)

	announcements, err := i.announcementRepo.GetAll(ctx)
	if err != nil {
		return m, err
	}
	m.TotalAnnouncements = len(announcements)

	perAuthor := make(map[int]int)
	for _, a := range announcements {
		m.TotalViews += a.Views
		perAuthor[a.AuthorID]++
	}

	// Ties go to the earliest registered user.
	for _, u := range users {
		if count := perAuthor[u.ID]; count > m.TopAuthor.AnnouncementCount {
			m.TopAuthor = TopAuthor{Username: u.Username, AnnouncementCount: count}
		}
	}

	return m, nil
}
