package escrow

import (
	"time"

	"crowdfund-escrow/internal/core/domain"
)

// Donate moves amount from the contributor's wallet into the treasury and
// records it on both ledgers. rec may be nil on a first donation; the
// returned record is the one to persist. A donation always reopens refund
// eligibility for the full cumulative amount.
func Donate(
	c *domain.Campaign,
	rec *domain.ContributorRecord,
	contributor domain.Identity,
	wallet, treasury domain.Account,
	amount uint64,
	now time.Time,
) (*domain.ContributorRecord, error) {
	if amount == 0 {
		return nil, domain.ErrInvalidAmount
	}
	if c.IsCancelled() {
		return nil, domain.ErrCampaignCancelled
	}
	if c.Ended(now) {
		return nil, domain.ErrCampaignEnded
	}

	next := domain.ContributorRecord{CampaignID: c.ID, Contributor: contributor}
	if rec != nil {
		if rec.CampaignID != c.ID || rec.Contributor != contributor {
			return nil, domain.ErrUnauthorized
		}
		next = *rec
	}

	total, err := checkedAdd(c.TotalDonated, amount)
	if err != nil {
		return nil, err
	}
	donated, err := checkedAdd(next.AmountDonated, amount)
	if err != nil {
		return nil, err
	}
	if err = transfer(wallet, treasury, amount); err != nil {
		return nil, err
	}

	c.TotalDonated = total
	next.AmountDonated = donated
	next.Refund = domain.RefundOpen
	if rec != nil {
		*rec = next
		return rec, nil
	}
	return &next, nil
}
