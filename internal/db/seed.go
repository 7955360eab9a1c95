package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crowdfund-escrow/internal/core/domain"
	"crowdfund-escrow/internal/core/escrow"
	"crowdfund-escrow/internal/core/port"
)

// seedEpoch fixes creation times so seeded campaign ids are stable and
// reseeding is a no-op.
var seedEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// SeedWallets are the demo identities funded by Seed.
var SeedWallets = []domain.Identity{"alice", "bob", "carol", "dave"}

const seedWalletFunds = 10_000

type seedCampaign struct {
	owner    domain.Identity
	name     string
	desc     string
	goal     uint64
	deadline time.Duration // relative to now; 0 means none
	cancel   bool
	donors   map[domain.Identity]uint64
}

var seedCampaigns = []seedCampaign{
	{owner: "alice", name: "Community garden", desc: "Raised beds and tools for the block.", goal: 5_000, deadline: 30 * 24 * time.Hour,
		donors: map[domain.Identity]uint64{"bob": 1_200, "carol": 800}},
	{owner: "bob", name: "Open source audit", desc: "Independent review of a widely used parser.", goal: 2_000, deadline: -24 * time.Hour,
		donors: map[domain.Identity]uint64{"alice": 1_500, "dave": 900}},
	{owner: "carol", name: "Film festival", desc: "Screens and rent for a weekend festival.", goal: 9_000, deadline: -48 * time.Hour,
		donors: map[domain.Identity]uint64{"alice": 300, "bob": 250}},
	{owner: "dave", name: "Library shelves", desc: "Cancelled after the venue closed.", goal: 1_000, cancel: true,
		donors: map[domain.Identity]uint64{"carol": 400}},
	{owner: "alice", name: "Night shelter", goal: 3_000},
}

// Seed inserts demo wallets and campaigns into repo. It is resumable:
// campaigns that already exist are kept and only the donations and
// cancellations they are missing are applied, so a run interrupted after
// CreateCampaign is completed by the next one.
func Seed(ctx context.Context, repo port.EscrowRepository, now time.Time) error {
	for _, id := range SeedWallets {
		balance, err := repo.GetBalance(ctx, string(id))
		if err != nil {
			return err
		}
		if balance > 0 {
			continue
		}
		if _, err = repo.Deposit(ctx, string(id), seedWalletFunds); err != nil {
			return err
		}
	}

	for i, sc := range seedCampaigns {
		p := escrow.CreateParams{
			Name:        sc.name,
			Description: sc.desc,
			Goal:        sc.goal,
			CreatedAt:   seedEpoch.Add(time.Duration(i) * time.Minute),
		}
		if sc.deadline != 0 {
			dl := now.Add(sc.deadline).UTC().Truncate(time.Second)
			p.Deadline = &dl
		}
		c, err := escrow.Create(sc.owner, p)
		if err != nil {
			return fmt.Errorf("seed campaign %q: %w", sc.name, err)
		}
		if err = repo.CreateCampaign(ctx, c); err != nil && !errors.Is(err, domain.ErrCampaignExists) {
			return err
		}

		// Donations are backdated to before the deadline so past
		// campaigns still get funded.
		at := seedEpoch.Add(time.Hour)
		for _, donor := range SeedWallets {
			value, ok := sc.donors[donor]
			if !ok {
				continue
			}
			err = repo.Transact(ctx, c.ID, donor, func(u *port.Unit) error {
				if u.Record != nil || u.Campaign.IsCancelled() {
					return nil
				}
				rec, err := escrow.Donate(u.Campaign, u.Record, donor, u.Wallet, u.Treasury, value, at)
				u.Record = rec
				return err
			})
			if err != nil {
				return fmt.Errorf("seed donation to %q: %w", sc.name, err)
			}
		}
		if sc.cancel {
			err = repo.Transact(ctx, c.ID, sc.owner, func(u *port.Unit) error {
				if u.Campaign.IsCancelled() {
					return nil
				}
				return escrow.Cancel(u.Campaign, sc.owner, now)
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}
