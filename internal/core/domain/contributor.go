package domain

// RefundState tracks whether the contributor's current cumulative amount
// has been refunded. A new donation moves it back to RefundOpen.
type RefundState string

const (
	RefundOpen     RefundState = "open"
	RefundRefunded RefundState = "refunded"
)

// ContributorRecord is the per (campaign, contributor) ledger entry.
type ContributorRecord struct {
	CampaignID    string
	Contributor   Identity
	AmountDonated uint64
	Refund        RefundState
}

// Withdrawn reports whether the cumulative amount has been refunded.
func (r *ContributorRecord) Withdrawn() bool {
	return r.Refund == RefundRefunded
}
