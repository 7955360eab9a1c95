package port

import (
	"context"

	"crowdfund-escrow/internal/core/domain"
)

// Unit is the state one escrow operation may touch: a campaign, the
// acting party's contributor record in it, the campaign treasury and the
// party's wallet. Record is nil when the party has never donated; the
// operation sets it to persist a new one.
type Unit struct {
	Campaign *domain.Campaign
	Record   *domain.ContributorRecord
	Treasury *domain.Balance
	Wallet   *domain.Balance
}

// UnitFunc mutates a Unit. Returning an error discards every change.
type UnitFunc func(u *Unit) error

// EscrowRepository defines the persistence layer for campaigns,
// contributor records and account balances. It is an outbound port in
// hexagonal architecture. Implementations must be concurrency-safe.
type EscrowRepository interface {
	// CreateCampaign stores a new campaign and its zero-balance treasury.
	// It returns domain.ErrCampaignExists when the id is taken.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// GetCampaign returns a campaign by id, or nil when it does not exist.
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	// ListCampaigns returns campaigns matching the filter, newest first.
	ListCampaigns(ctx context.Context, filter CampaignFilter) ([]domain.Campaign, error)

	// GetContributorRecord returns the record of contributor in a
	// campaign, or nil when there is none.
	GetContributorRecord(ctx context.Context, campaignID string, contributor domain.Identity) (*domain.ContributorRecord, error)
	// ListContributorRecords returns every record held by contributor.
	ListContributorRecords(ctx context.Context, contributor domain.Identity) ([]domain.ContributorRecord, error)

	// Transact loads the Unit for (campaignID, party) under an exclusive
	// hold on the campaign, runs fn and persists the Unit only when fn
	// returns nil. Operations on different campaigns do not serialize on
	// each other. It returns domain.ErrCampaignNotFound for unknown ids.
	Transact(ctx context.Context, campaignID string, party domain.Identity, fn UnitFunc) error

	// GetBalance returns the balance of an account; unknown accounts hold 0.
	GetBalance(ctx context.Context, accountID string) (uint64, error)
	// Deposit credits an account from outside the escrow and returns the
	// new balance.
	Deposit(ctx context.Context, accountID string, amount uint64) (uint64, error)
}

// CampaignFilter narrows ListCampaigns. An empty Owner matches every
// owner; a nil IDs matches every campaign, a non-nil one only those listed.
type CampaignFilter struct {
	Owner domain.Identity
	IDs   []string
}
