package httpadapter

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"crowdfund-escrow/internal/core/domain"
)

type amountRequest struct {
	Amount *uint64 `json:"amount" validate:"required"`
}

type releaseResponse struct {
	CampaignID string `json:"campaign_id"`
	Amount     uint64 `json:"amount"`
}

type contributionResponse struct {
	CampaignID    string `json:"campaign_id"`
	Contributor   string `json:"contributor"`
	AmountDonated uint64 `json:"amount_donated"`
	Withdrawn     bool   `json:"withdrawn"`
}

func toContributionResponse(rec *domain.ContributorRecord) contributionResponse {
	return contributionResponse{
		CampaignID:    rec.CampaignID,
		Contributor:   string(rec.Contributor),
		AmountDonated: rec.AmountDonated,
		Withdrawn:     rec.Withdrawn(),
	}
}

// handleDonate moves the requested amount from the caller's wallet into
// the campaign treasury and returns the caller's updated record.
func (h *Handler) handleDonate(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if !h.decode(w, r, &req) {
		return
	}
	rec, err := h.svc.Donate(r.Context(), caller(r), chi.URLParam(r, "id"), *req.Amount)
	if err != nil {
		h.fail(w, "donate", err)
		return
	}
	writeJSON(w, http.StatusOK, toContributionResponse(rec))
}

func (h *Handler) handleOwnerWithdraw(w http.ResponseWriter, r *http.Request) {
	h.release(w, r, "owner withdraw", h.svc.OwnerWithdraw)
}

func (h *Handler) handleRefundIfFailed(w http.ResponseWriter, r *http.Request) {
	h.release(w, r, "refund failed", h.svc.RefundIfFailed)
}

func (h *Handler) handleRefundIfCancelled(w http.ResponseWriter, r *http.Request) {
	h.release(w, r, "refund cancelled", h.svc.RefundIfCancelled)
}

type releaseFunc func(ctx context.Context, caller domain.Identity, campaignID string) (uint64, error)

func (h *Handler) release(w http.ResponseWriter, r *http.Request, op string, fn releaseFunc) {
	id := chi.URLParam(r, "id")
	amount, err := fn(r.Context(), caller(r), id)
	if err != nil {
		h.fail(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, releaseResponse{CampaignID: id, Amount: amount})
}

// handleGetContribution returns the record of a contributor. A contributor
// that never donated gets a zero record.
func (h *Handler) handleGetContribution(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.GetContribution(r.Context(), chi.URLParam(r, "id"), domain.Identity(chi.URLParam(r, "contributor")))
	if err != nil {
		h.fail(w, "get contribution", err)
		return
	}
	writeJSON(w, http.StatusOK, toContributionResponse(rec))
}
