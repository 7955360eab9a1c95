// Package memory provides an in-process implementation of
// port.EscrowRepository. It holds one lock per campaign and one per
// account, so transactions on different campaigns run in parallel.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"crowdfund-escrow/internal/core/domain"
	"crowdfund-escrow/internal/core/port"
)

type campaignEntry struct {
	mu       sync.Mutex
	campaign domain.Campaign
	records  map[domain.Identity]domain.ContributorRecord
}

type accountEntry struct {
	mu      sync.Mutex
	balance uint64
}

// EscrowRepository implements port.EscrowRepository in memory.
type EscrowRepository struct {
	mu        sync.RWMutex // guards the maps, not the entries
	campaigns map[string]*campaignEntry
	accounts  map[string]*accountEntry
}

// NewEscrowRepository returns an empty repository.
func NewEscrowRepository() *EscrowRepository {
	return &EscrowRepository{
		campaigns: make(map[string]*campaignEntry),
		accounts:  make(map[string]*accountEntry),
	}
}

// CreateCampaign stores c and opens its treasury.
func (r *EscrowRepository) CreateCampaign(_ context.Context, c *domain.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.campaigns[c.ID]; ok {
		return domain.ErrCampaignExists
	}
	r.campaigns[c.ID] = &campaignEntry{
		campaign: cloneCampaign(*c),
		records:  make(map[domain.Identity]domain.ContributorRecord),
	}
	if _, ok := r.accounts[c.TreasuryID]; !ok {
		r.accounts[c.TreasuryID] = &accountEntry{}
	}
	return nil
}

// GetCampaign returns a copy of the campaign, or nil.
func (r *EscrowRepository) GetCampaign(_ context.Context, id string) (*domain.Campaign, error) {
	e := r.campaign(id)
	if e == nil {
		return nil, nil
	}
	e.mu.Lock()
	c := cloneCampaign(e.campaign)
	e.mu.Unlock()
	return &c, nil
}

// ListCampaigns returns copies of the matching campaigns, newest first.
func (r *EscrowRepository) ListCampaigns(_ context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	r.mu.RLock()
	entries := make([]*campaignEntry, 0, len(r.campaigns))
	for _, e := range r.campaigns {
		entries = append(entries, e)
	}
	r.mu.RUnlock()

	out := make([]domain.Campaign, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		c := cloneCampaign(e.campaign)
		e.mu.Unlock()
		if filter.Owner != "" && c.Owner != filter.Owner {
			continue
		}
		if filter.IDs != nil && !slices.Contains(filter.IDs, c.ID) {
			continue
		}
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b domain.Campaign) int {
		if n := b.CreatedAt.Compare(a.CreatedAt); n != 0 {
			return n
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

// GetContributorRecord returns a copy of the record, or nil.
func (r *EscrowRepository) GetContributorRecord(_ context.Context, campaignID string, contributor domain.Identity) (*domain.ContributorRecord, error) {
	e := r.campaign(campaignID)
	if e == nil {
		return nil, nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	rec, ok := e.records[contributor]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// ListContributorRecords returns every record held by contributor.
func (r *EscrowRepository) ListContributorRecords(_ context.Context, contributor domain.Identity) ([]domain.ContributorRecord, error) {
	r.mu.RLock()
	entries := make([]*campaignEntry, 0, len(r.campaigns))
	for _, e := range r.campaigns {
		entries = append(entries, e)
	}
	r.mu.RUnlock()

	var out []domain.ContributorRecord
	for _, e := range entries {
		e.mu.Lock()
		if rec, ok := e.records[contributor]; ok {
			out = append(out, rec)
		}
		e.mu.Unlock()
	}
	return out, nil
}

// Transact refuses treasury ids as the party. It holds the campaign lock, then the treasury and wallet locks in
// id order, for the whole of fn. fn works on copies which are written
// back only when it succeeds. Account locks are never held while waiting
// for a campaign lock, so concurrent transactions cannot deadlock.
func (r *EscrowRepository) Transact(ctx context.Context, campaignID string, party domain.Identity, fn port.UnitFunc) error {
	if domain.IsTreasury(string(party)) {
		return domain.ErrUnauthorized
	}
	e := r.campaign(campaignID)
	if e == nil {
		return domain.ErrCampaignNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	treasuryID := e.campaign.TreasuryID
	treasury := r.account(treasuryID)
	wallet := r.account(string(party))
	first, second := treasury, wallet
	if string(party) < treasuryID {
		first, second = wallet, treasury
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	campaign := cloneCampaign(e.campaign)
	unit := &port.Unit{
		Campaign: &campaign,
		Treasury: &domain.Balance{ID: treasuryID, Amount: treasury.balance},
		Wallet:   &domain.Balance{ID: string(party), Amount: wallet.balance},
	}
	if rec, ok := e.records[party]; ok {
		unit.Record = &rec
	}
	if err := fn(unit); err != nil {
		return err
	}

	e.campaign = cloneCampaign(*unit.Campaign)
	if unit.Record != nil {
		e.records[party] = *unit.Record
	}
	treasury.balance = unit.Treasury.Amount
	wallet.balance = unit.Wallet.Amount
	return nil
}

// GetBalance returns the balance of accountID.
func (r *EscrowRepository) GetBalance(_ context.Context, accountID string) (uint64, error) {
	r.mu.RLock()
	a, ok := r.accounts[accountID]
	r.mu.RUnlock()
	if !ok {
		return 0, nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance, nil
}

// Deposit credits the wallet accountID. Treasuries are only funded by
// donations.
func (r *EscrowRepository) Deposit(_ context.Context, accountID string, amount uint64) (uint64, error) {
	if domain.IsTreasury(accountID) {
		return 0, domain.ErrUnauthorized
	}
	a := r.account(accountID)
	a.mu.Lock()
	defer a.mu.Unlock()
	b := domain.Balance{ID: accountID, Amount: a.balance}
	if err := b.Credit(amount); err != nil {
		return 0, err
	}
	a.balance = b.Amount
	return a.balance, nil
}

func (r *EscrowRepository) campaign(id string) *campaignEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.campaigns[id]
}

// account returns the entry for id, creating an empty one on first use.
func (r *EscrowRepository) account(id string) *accountEntry {
	r.mu.RLock()
	a, ok := r.accounts[id]
	r.mu.RUnlock()
	if ok {
		return a
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok = r.accounts[id]; !ok {
		a = &accountEntry{}
		r.accounts[id] = a
	}
	return a
}

func cloneCampaign(c domain.Campaign) domain.Campaign {
	if c.Deadline != nil {
		d := *c.Deadline
		c.Deadline = &d
	}
	return c
}
