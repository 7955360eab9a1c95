package httpadapter

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"crowdfund-escrow/internal/core/domain"
	"crowdfund-escrow/internal/core/port"
)

type createCampaignRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Goal        *uint64    `json:"goal" validate:"required"`
	Deadline    *time.Time `json:"deadline"`
}

type listCampaignsQuery struct {
	Status      string `validate:"omitempty,oneof=All Active Past Cancelled"`
	Owner       string
	Contributor string
	Claimable   string
	Page        int `validate:"gte=0"`
	Limit       int `validate:"gte=0,lte=100"`
}

type campaignResponse struct {
	ID               string     `json:"id"`
	Owner            string     `json:"owner"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	Goal             uint64     `json:"goal"`
	Deadline         *time.Time `json:"deadline"`
	CreatedAt        time.Time  `json:"created_at"`
	TreasuryID       string     `json:"treasury_id"`
	TotalDonated     uint64     `json:"total_donated"`
	Cancelled        bool       `json:"cancelled"`
	WithdrawnByOwner bool       `json:"withdrawn_by_owner"`
	Status           string     `json:"status,omitempty"`
	GoalReached      bool       `json:"goal_reached"`
	TreasuryBalance  *uint64    `json:"treasury_balance,omitempty"`
}

type campaignPageResponse struct {
	Campaigns  []campaignResponse `json:"campaigns"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	Total      int                `json:"total"`
	TotalPages int                `json:"total_pages"`
}

func toCampaignResponse(c *domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:               c.ID,
		Owner:            string(c.Owner),
		Name:             c.Name,
		Description:      c.Description,
		Goal:             c.Goal,
		Deadline:         c.Deadline,
		CreatedAt:        c.CreatedAt,
		TreasuryID:       c.TreasuryID,
		TotalDonated:     c.TotalDonated,
		Cancelled:        c.IsCancelled(),
		WithdrawnByOwner: c.WithdrawnByOwner(),
		GoalReached:      c.GoalReached(),
	}
}

func toViewResponse(v *port.CampaignView, withBalance bool) campaignResponse {
	resp := toCampaignResponse(&v.Campaign)
	resp.Status = string(v.Status)
	if withBalance {
		balance := v.TreasuryBalance
		resp.TreasuryBalance = &balance
	}
	return resp
}

// handleCreateCampaign creates a campaign owned by the caller and returns
// it with HTTP 201.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if !h.decode(w, r, &req) {
		return
	}
	c, err := h.svc.CreateCampaign(r.Context(), caller(r), port.CreateCampaignReq{
		Name:        req.Name,
		Description: req.Description,
		Goal:        *req.Goal,
		Deadline:    req.Deadline,
	})
	if err != nil {
		h.fail(w, "create campaign", err)
		return
	}
	writeJSON(w, http.StatusCreated, toCampaignResponse(c))
}

// handleGetCampaign returns a campaign with its status and treasury
// balance. Unknown ids produce HTTP 404.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.GetCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, "get campaign", err)
		return
	}
	writeJSON(w, http.StatusOK, toViewResponse(view, true))
}

// handleListCampaigns accepts optional `status`, `owner`, `contributor`,
// `claimable`, `page` and `limit` query parameters. Invalid parameters
// result in HTTP 400.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := listCampaignsQuery{
		Status:      q.Get("status"),
		Owner:       q.Get("owner"),
		Contributor: q.Get("contributor"),
		Claimable:   q.Get("claimable"),
	}
	var err error
	if query.Page, err = intParam(q.Get("page")); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid 'page'")
		return
	}
	if query.Limit, err = intParam(q.Get("limit")); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid 'limit'")
		return
	}
	if err = h.validate.Struct(query); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	status, _ := domain.ParseStatus(query.Status)

	page, err := h.svc.ListCampaigns(r.Context(), port.ListCampaignsReq{
		Status:      status,
		Owner:       domain.Identity(query.Owner),
		Contributor: domain.Identity(query.Contributor),
		ClaimableBy: domain.Identity(query.Claimable),
		Page:        query.Page,
		Limit:       query.Limit,
	})
	if err != nil {
		h.fail(w, "list campaigns", err)
		return
	}
	resp := campaignPageResponse{
		Campaigns:  make([]campaignResponse, 0, len(page.Campaigns)),
		Page:       page.Page,
		Limit:      page.Limit,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}
	for i := range page.Campaigns {
		resp.Campaigns = append(resp.Campaigns, toViewResponse(&page.Campaigns[i], false))
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleCancel cancels the campaign. Only its owner may do so.
func (h *Handler) handleCancel(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Cancel(r.Context(), caller(r), chi.URLParam(r, "id")); err != nil {
		h.fail(w, "cancel campaign", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func intParam(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
