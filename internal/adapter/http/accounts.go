package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"crowdfund-escrow/internal/core/domain"
)

type balanceResponse struct {
	Account string `json:"account"`
	Balance uint64 `json:"balance"`
}

func (h *Handler) handleGetBalance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	balance, err := h.svc.Balance(r.Context(), domain.Identity(id))
	if err != nil {
		h.fail(w, "get balance", err)
		return
	}
	writeJSON(w, http.StatusOK, balanceResponse{Account: id, Balance: balance})
}

// handleDeposit funds the caller's own wallet. It answers 403 unless
// deposits are enabled and the path names the caller.
func (h *Handler) handleDeposit(w http.ResponseWriter, r *http.Request) {
	if !h.opts.AllowDeposits {
		writeError(w, http.StatusForbidden, "deposits_disabled", "deposits are disabled")
		return
	}
	id := domain.Identity(chi.URLParam(r, "id"))
	if id != caller(r) {
		h.fail(w, "deposit", domain.ErrUnauthorized)
		return
	}
	var req amountRequest
	if !h.decode(w, r, &req) {
		return
	}
	balance, err := h.svc.Deposit(r.Context(), id, *req.Amount)
	if err != nil {
		h.fail(w, "deposit", err)
		return
	}
	writeJSON(w, http.StatusOK, balanceResponse{Account: string(id), Balance: balance})
}
