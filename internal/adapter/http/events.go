package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleCampaignEvents upgrades to a websocket streaming the events of one
// campaign. Unknown campaigns produce HTTP 404 before the upgrade.
func (h *Handler) handleCampaignEvents(w http.ResponseWriter, r *http.Request) {
	if h.opts.Events == nil {
		http.NotFound(w, r)
		return
	}
	id := chi.URLParam(r, "id")
	if _, err := h.svc.GetCampaign(r.Context(), id); err != nil {
		h.fail(w, "campaign events", err)
		return
	}
	h.opts.Events.ServeWS(w, r, id)
}

// handleAllEvents streams the events of every campaign.
func (h *Handler) handleAllEvents(w http.ResponseWriter, r *http.Request) {
	if h.opts.Events == nil {
		http.NotFound(w, r)
		return
	}
	h.opts.Events.ServeWS(w, r, "")
}
