// Package escrow implements the fund-custody state machine of a
// crowdfunding campaign. Every function is deterministic: the current time
// is a parameter and accounts are supplied by the caller. A function that
// returns an error leaves its arguments unchanged.
package escrow

import (
	"encoding/binary"
	"time"

	"github.com/google/uuid"

	"crowdfund-escrow/internal/core/domain"
)

var (
	campaignNamespace = uuid.MustParse("5b0c8f0e-3c1d-4f55-9a57-3f3c1c6d2a10")
	treasuryNamespace = uuid.MustParse("a9d86b7e-61f2-4a0c-8f53-0e0f6f4b8c21")
)

// CampaignID derives the identity of a campaign from its owner and
// creation second. The same pair always yields the same id.
func CampaignID(owner domain.Identity, createdAt time.Time) string {
	seed := make([]byte, 0, len(owner)+8)
	seed = append(seed, owner...)
	seed = binary.LittleEndian.AppendUint64(seed, uint64(createdAt.Unix()))
	return uuid.NewSHA1(campaignNamespace, seed).String()
}

// TreasuryID derives the id of the treasury paired with a campaign. It
// always carries domain.TreasuryPrefix.
func TreasuryID(campaignID string) string {
	return domain.TreasuryPrefix + uuid.NewSHA1(treasuryNamespace, []byte(campaignID)).String()
}

// CreateParams holds caller supplied campaign configuration.
type CreateParams struct {
	Name        string
	Description string
	Goal        uint64
	Deadline    *time.Time
	CreatedAt   time.Time
}

// Create allocates a new campaign owned by owner. A deadline in the past
// is accepted; it is enforced when actions are attempted.
func Create(owner domain.Identity, p CreateParams) (*domain.Campaign, error) {
	if p.Goal == 0 {
		return nil, domain.ErrInvalidGoal
	}
	if len(p.Name) > domain.MaxNameLen {
		return nil, domain.ErrNameTooLong
	}
	if len(p.Description) > domain.MaxDescriptionLen {
		return nil, domain.ErrDescriptionTooLong
	}

	createdAt := p.CreatedAt.UTC().Truncate(time.Second)
	var deadline *time.Time
	if p.Deadline != nil {
		d := p.Deadline.UTC()
		deadline = &d
	}
	id := CampaignID(owner, createdAt)
	return &domain.Campaign{
		ID:          id,
		Owner:       owner,
		Name:        p.Name,
		Description: p.Description,
		Goal:        p.Goal,
		Deadline:    deadline,
		CreatedAt:   createdAt,
		TreasuryID:  TreasuryID(id),
		State:       domain.CampaignActive,
		Payout:      domain.PayoutOpen,
	}, nil
}

// Cancel moves an active campaign to the cancelled state. A campaign
// without a deadline may be cancelled at any time.
func Cancel(c *domain.Campaign, caller domain.Identity, now time.Time) error {
	if caller != c.Owner {
		return domain.ErrUnauthorized
	}
	if c.IsCancelled() {
		return domain.ErrAlreadyCancelled
	}
	if c.Ended(now) {
		return domain.ErrCampaignEnded
	}
	c.State = domain.CampaignCancelled
	return nil
}

// OwnerWithdraw releases the whole pool to the owner once the deadline has
// passed with the goal reached. It succeeds at most once per campaign.
func OwnerWithdraw(c *domain.Campaign, caller domain.Identity, treasury, owner domain.Account, now time.Time) (uint64, error) {
	if err := checkOwnerWithdraw(c, caller, now); err != nil {
		return 0, err
	}
	amount := c.TotalDonated
	if err := transfer(treasury, owner, amount); err != nil {
		return 0, err
	}
	c.Payout = domain.PayoutWithdrawn
	return amount, nil
}

func checkOwnerWithdraw(c *domain.Campaign, caller domain.Identity, now time.Time) error {
	if caller != c.Owner {
		return domain.ErrUnauthorized
	}
	if c.IsCancelled() {
		return domain.ErrCampaignCancelled
	}
	if !c.Ended(now) {
		return domain.ErrCampaignStillActive
	}
	if !c.GoalReached() {
		return domain.ErrCampaignGoalNotReached
	}
	if c.WithdrawnByOwner() {
		return domain.ErrAlreadyWithdrawnByOwner
	}
	return nil
}
