package domain

import (
	"time"
)

// EventType names a committed escrow operation.
type EventType string

const (
	EventCampaignCreated   EventType = "campaign_created"
	EventDonation          EventType = "donation"
	EventCampaignCancelled EventType = "campaign_cancelled"
	EventOwnerWithdrawal   EventType = "owner_withdrawal"
	EventRefund            EventType = "refund"
)

// Event is a record of a committed operation, published after commit.
type Event struct {
	Type       EventType `json:"type"`
	CampaignID string    `json:"campaign_id"`
	Actor      Identity  `json:"actor"`
	Amount     uint64    `json:"amount,omitempty"`
	// TotalDonated is the campaign total after the operation.
	TotalDonated uint64    `json:"total_donated"`
	At           time.Time `json:"at"`
}
