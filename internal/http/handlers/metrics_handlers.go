package handlers

import (
	"net/http"
)

// GetDashboardMetricsHandler godoc
// @Summary Dashboard metrics for admin view
// @Tags metrics
// @Produce json
// @Success 200 {object} repo.Metrics
// @Failure 500 {string} string "Internal error"
// @Router /metrics/dashboard [get]
func (s *Server) GetDashboardMetricsHandler(w http.ResponseWriter, r *http.Request) {
	m, err := s.metrics.GetDashboardMetrics(r.Context())
	if err != nil {
		s.log.WithError(err).Error("dashboard metrics")
		http.Error(w, "failed to fetch metrics", http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, http.StatusOK, m)
}
