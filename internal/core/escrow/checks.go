package escrow

import (
	"math"
	"time"

	"crowdfund-escrow/internal/core/domain"
)

func checkedAdd(a, b uint64) (uint64, error) {
	if b > math.MaxUint64-a {
		return 0, domain.ErrOverflow
	}
	return a + b, nil
}

// transfer debits from and credits to as one unit. When the credit fails
// the debit is reversed, so both accounts end where they started.
func transfer(from, to domain.Account, amount uint64) error {
	if err := from.Debit(amount); err != nil {
		return err
	}
	if err := to.Credit(amount); err != nil {
		// Re-crediting what was just debited cannot overflow.
		_ = from.Credit(amount)
		return err
	}
	return nil
}

func checkRecordOwner(c *domain.Campaign, rec *domain.ContributorRecord, contributor domain.Identity) error {
	if rec == nil {
		return nil
	}
	if rec.CampaignID != c.ID || rec.Contributor != contributor {
		return domain.ErrUnauthorized
	}
	return nil
}

func checkRecordRefundable(rec *domain.ContributorRecord) error {
	if rec == nil {
		return domain.ErrNothingToWithdraw
	}
	if rec.Withdrawn() {
		return domain.ErrAlreadyWithdrawn
	}
	if rec.AmountDonated == 0 {
		return domain.ErrNothingToWithdraw
	}
	return nil
}

// Claimable reports whether party could successfully withdraw from c at
// now: as the owner collecting the pool, or as a contributor taking a
// refund. rec is party's record in c and may be nil.
func Claimable(c *domain.Campaign, rec *domain.ContributorRecord, party domain.Identity, now time.Time) bool {
	if checkOwnerWithdraw(c, party, now) == nil {
		return true
	}
	if rec == nil {
		return false
	}
	return checkRefundIfFailed(c, rec, party, now) == nil ||
		checkRefundIfCancelled(c, rec, party) == nil
}
