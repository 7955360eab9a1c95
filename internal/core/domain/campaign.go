package domain

import "time"

// Identity is an authenticated party: a campaign owner or a contributor.
// The host environment verifies it before any operation is invoked.
type Identity string

// CampaignState is the cancellation latch of a campaign. It only ever
// moves from CampaignActive to CampaignCancelled.
type CampaignState string

const (
	CampaignActive    CampaignState = "active"
	CampaignCancelled CampaignState = "cancelled"
)

// PayoutState is the owner withdrawal latch of a campaign. It only ever
// moves from PayoutOpen to PayoutWithdrawn.
type PayoutState string

const (
	PayoutOpen      PayoutState = "open"
	PayoutWithdrawn PayoutState = "withdrawn"
)

// Status is the derived, time-dependent view of a campaign shown to users.
type Status string

const (
	StatusActive    Status = "Active"
	StatusPast      Status = "Past"
	StatusCancelled Status = "Cancelled"
)

const (
	MaxNameLen        = 32
	MaxDescriptionLen = 256
)

// Campaign represents a crowdfunding campaign and its aggregate state.
// Amounts are stored in the smallest integer unit of the ledger currency.
type Campaign struct {
	ID          string
	Owner       Identity
	Name        string
	Description string
	Goal        uint64
	Deadline    *time.Time // nil: the campaign never expires
	CreatedAt   time.Time
	TreasuryID  string

	// TotalDonated is the historical sum of all donations. Refunds and
	// payouts drain the treasury, never this counter.
	TotalDonated uint64
	State        CampaignState
	Payout       PayoutState
}

// IsCancelled reports whether the owner has cancelled the campaign.
func (c *Campaign) IsCancelled() bool {
	return c.State == CampaignCancelled
}

// WithdrawnByOwner reports whether the owner has received the pool.
func (c *Campaign) WithdrawnByOwner() bool {
	return c.Payout == PayoutWithdrawn
}

// GoalReached reports whether total donations meet the goal.
func (c *Campaign) GoalReached() bool {
	return c.TotalDonated >= c.Goal
}

// Ended reports whether the deadline is set and now is at or past it.
func (c *Campaign) Ended(now time.Time) bool {
	return c.Deadline != nil && !now.Before(*c.Deadline)
}

// Status derives the user-facing status of the campaign at now.
func (c *Campaign) Status(now time.Time) Status {
	switch {
	case c.IsCancelled():
		return StatusCancelled
	case c.Ended(now):
		return StatusPast
	default:
		return StatusActive
	}
}

// ParseStatus converts a textual filter into a Status. The empty string
// and "All" map to the empty Status, which matches every campaign.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case "", "All":
		return "", true
	case StatusActive, StatusPast, StatusCancelled:
		return Status(s), true
	default:
		return "", false
	}
}
