package repo

import "context"

type TopAuthor struct {
	Username          string `json:"username"`
	AnnouncementCount int    `json:"announcement_count"`
}

type Metrics struct {
	TotalUsers         int       `json:"total_users"`
	TotalAnnouncements int       `json:"total_announcements"`
	TotalViews         int       `json:"total_views"`
	TopAuthor          TopAuthor `json:"top_author"`
}

type MetricsRepository interface {
	GetDashboardMetrics(ctx context.Context) (Metrics, error)
}
