package port

import (
	"context"
	"time"

	"crowdfund-escrow/internal/core/domain"
)

// EscrowUseCase defines the business operations exposed by the escrow.
// This interface represents the primary port into the application domain.
// Every mutating operation is attributed to an authenticated caller and
// either commits fully or returns an error with no effect.
type EscrowUseCase interface {
	// CreateCampaign creates a campaign owned by caller.
	CreateCampaign(ctx context.Context, caller domain.Identity, req CreateCampaignReq) (*domain.Campaign, error)
	// GetCampaign returns a campaign with its derived status and treasury
	// balance. It returns domain.ErrCampaignNotFound for unknown ids.
	GetCampaign(ctx context.Context, id string) (*CampaignView, error)
	// ListCampaigns returns one page of campaigns matching req.
	ListCampaigns(ctx context.Context, req ListCampaignsReq) (*CampaignPage, error)

	// Donate moves amount from caller's wallet into the campaign treasury.
	Donate(ctx context.Context, caller domain.Identity, campaignID string, amount uint64) (*domain.ContributorRecord, error)
	// Cancel cancels an active campaign. Only the owner may cancel.
	Cancel(ctx context.Context, caller domain.Identity, campaignID string) error
	// OwnerWithdraw releases the pool of a successful campaign to its
	// owner and returns the amount released.
	OwnerWithdraw(ctx context.Context, caller domain.Identity, campaignID string) (uint64, error)
	// RefundIfFailed refunds caller's cumulative donation to a campaign
	// that ended below its goal.
	RefundIfFailed(ctx context.Context, caller domain.Identity, campaignID string) (uint64, error)
	// RefundIfCancelled refunds caller's cumulative donation to a
	// cancelled campaign.
	RefundIfCancelled(ctx context.Context, caller domain.Identity, campaignID string) (uint64, error)

	// GetContribution returns the record of contributor in a campaign. A
	// contributor that never donated yields a zero record.
	GetContribution(ctx context.Context, campaignID string, contributor domain.Identity) (*domain.ContributorRecord, error)
	// Balance returns the wallet balance of an account.
	Balance(ctx context.Context, account domain.Identity) (uint64, error)
	// Deposit funds a wallet from outside the escrow.
	Deposit(ctx context.Context, account domain.Identity, amount uint64) (uint64, error)

	// GetStats returns aggregated figures across all campaigns.
	GetStats(ctx context.Context) (*StatsResp, error)
}

// CreateCampaignReq carries caller supplied campaign configuration.
type CreateCampaignReq struct {
	Name        string
	Description string
	Goal        uint64
	Deadline    *time.Time
}

// CampaignView is a campaign as seen at a point in time. It is a DTO used
// by the HTTP layer and does not contain domain behaviour.
type CampaignView struct {
	Campaign        domain.Campaign
	Status          domain.Status
	GoalReached     bool
	TreasuryBalance uint64
}

// ListCampaignsReq selects campaigns. Status filters by derived status;
// Owner, Contributor and ClaimableBy restrict to campaigns the given party
// owns, has donated to, or could withdraw from now. Page is 1-based.
type ListCampaignsReq struct {
	Status      domain.Status
	Owner       domain.Identity
	Contributor domain.Identity
	ClaimableBy domain.Identity
	Page        int
	Limit       int
}

// CampaignPage is one page of a campaign listing.
type CampaignPage struct {
	Campaigns  []CampaignView
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// StatsResp contains aggregated campaign figures. SuccessRate is the
// percentage of campaigns that ended with their goal reached.
type StatsResp struct {
	Campaigns       int
	ActiveCampaigns int
	TotalDonated    uint64
	SuccessRate     int
}
