package httpadapter

import (
	"net/http"
)

type statsResponse struct {
	Campaigns       int    `json:"campaigns"`
	ActiveCampaigns int    `json:"active_campaigns"`
	TotalDonated    uint64 `json:"total_donated"`
	SuccessRate     int    `json:"success_rate"`
}

// handleStatsOverview returns figures aggregated over every campaign:
// total donated, the number of active campaigns and the percentage of
// campaigns that ended with their goal reached. Internal errors produce
// HTTP 500.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStats(r.Context())
	if err != nil {
		h.fail(w, "stats", err)
		return
	}
	writeJSON(w, http.StatusOK, statsResponse{
		Campaigns:       stats.Campaigns,
		ActiveCampaigns: stats.ActiveCampaigns,
		TotalDonated:    stats.TotalDonated,
		SuccessRate:     stats.SuccessRate,
	})
}
