package escrow

import (
	"time"

	"crowdfund-escrow/internal/core/domain"
)

// RefundIfFailed returns the contributor's cumulative donation after the
// deadline passed without the goal being reached. rec may be nil, which
// reports ErrNothingToWithdraw once the campaign checks pass.
func RefundIfFailed(
	c *domain.Campaign,
	rec *domain.ContributorRecord,
	contributor domain.Identity,
	treasury, wallet domain.Account,
	now time.Time,
) (uint64, error) {
	if err := checkRefundIfFailed(c, rec, contributor, now); err != nil {
		return 0, err
	}
	return refund(rec, treasury, wallet)
}

// RefundIfCancelled returns the contributor's cumulative donation from a
// cancelled campaign. It is not time gated.
func RefundIfCancelled(
	c *domain.Campaign,
	rec *domain.ContributorRecord,
	contributor domain.Identity,
	treasury, wallet domain.Account,
) (uint64, error) {
	if err := checkRefundIfCancelled(c, rec, contributor); err != nil {
		return 0, err
	}
	return refund(rec, treasury, wallet)
}

func checkRefundIfFailed(c *domain.Campaign, rec *domain.ContributorRecord, contributor domain.Identity, now time.Time) error {
	if err := checkRecordOwner(c, rec, contributor); err != nil {
		return err
	}
	if c.IsCancelled() {
		return domain.ErrCampaignCancelled
	}
	if !c.Ended(now) {
		return domain.ErrCampaignStillActive
	}
	if c.GoalReached() {
		return domain.ErrCampaignGoalReached
	}
	return checkRecordRefundable(rec)
}

func checkRefundIfCancelled(c *domain.Campaign, rec *domain.ContributorRecord, contributor domain.Identity) error {
	if err := checkRecordOwner(c, rec, contributor); err != nil {
		return err
	}
	if !c.IsCancelled() {
		return domain.ErrCampaignNotCancelled
	}
	return checkRecordRefundable(rec)
}

func refund(rec *domain.ContributorRecord, treasury, wallet domain.Account) (uint64, error) {
	amount := rec.AmountDonated
	if err := transfer(treasury, wallet, amount); err != nil {
		return 0, err
	}
	rec.Refund = domain.RefundRefunded
	return amount, nil
}
