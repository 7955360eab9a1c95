package usecase

import (
	"context"
	"io"
	"log/slog"
	"math"
	"slices"
	"time"

	"crowdfund-escrow/internal/core/domain"
	"crowdfund-escrow/internal/core/escrow"
	"crowdfund-escrow/internal/core/port"
)

const (
	DefaultPageSize = 9
	MaxPageSize     = 100
)

// EscrowUseCase provides the business logic of the escrow. It runs the
// state machine inside repository transactions and publishes an event
// for every committed operation.
type EscrowUseCase struct {
	repo   port.EscrowRepository
	events port.EventPublisher
	logger *slog.Logger

	// now is the clock injected into every time-gated transition.
	now func() time.Time
}

// Option configures an EscrowUseCase.
type Option func(*EscrowUseCase)

// WithClock replaces the wall clock used for deadline checks.
func WithClock(now func() time.Time) Option {
	return func(u *EscrowUseCase) { u.now = now }
}

// WithEvents sets the publisher for committed operations.
func WithEvents(p port.EventPublisher) Option {
	return func(u *EscrowUseCase) { u.events = p }
}

// WithLogger sets the logger used to audit fund movements.
func WithLogger(l *slog.Logger) Option {
	return func(u *EscrowUseCase) { u.logger = l }
}

// NewEscrowUseCase creates a new usecase with the provided repository.
func NewEscrowUseCase(repo port.EscrowRepository, opts ...Option) *EscrowUseCase {
	u := &EscrowUseCase{
		repo:   repo,
		events: nopPublisher{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

type nopPublisher struct{}

func (nopPublisher) Publish(domain.Event) {}

// CreateCampaign creates a campaign owned by caller. The creation time is
// taken from the clock and becomes part of the campaign identity.
func (u *EscrowUseCase) CreateCampaign(ctx context.Context, caller domain.Identity, req port.CreateCampaignReq) (*domain.Campaign, error) {
	if caller == "" || domain.IsTreasury(string(caller)) {
		return nil, domain.ErrUnauthorized
	}
	now := u.now()
	c, err := escrow.Create(caller, escrow.CreateParams{
		Name:        req.Name,
		Description: req.Description,
		Goal:        req.Goal,
		Deadline:    req.Deadline,
		CreatedAt:   now,
	})
	if err != nil {
		return nil, err
	}
	if err = u.repo.CreateCampaign(ctx, c); err != nil {
		return nil, err
	}
	u.logger.Info("campaign created",
		slog.String("campaign_id", c.ID),
		slog.String("owner", string(c.Owner)),
		slog.Uint64("goal", c.Goal))
	u.publish(domain.EventCampaignCreated, c, caller, 0, now)
	return c, nil
}

// GetCampaign returns the campaign view at the current time.
func (u *EscrowUseCase) GetCampaign(ctx context.Context, id string) (*port.CampaignView, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCampaignNotFound
	}
	balance, err := u.repo.GetBalance(ctx, c.TreasuryID)
	if err != nil {
		return nil, err
	}
	view := newView(*c, u.now())
	view.TreasuryBalance = balance
	return &view, nil
}

// ListCampaigns filters campaigns by owner, contribution, claimability and
// status, then returns the requested page.
func (u *EscrowUseCase) ListCampaigns(ctx context.Context, req port.ListCampaignsReq) (*port.CampaignPage, error) {
	filter := port.CampaignFilter{Owner: req.Owner}
	if req.Contributor != "" {
		records, err := u.repo.ListContributorRecords(ctx, req.Contributor)
		if err != nil {
			return nil, err
		}
		filter.IDs = make([]string, 0, len(records))
		for _, r := range records {
			filter.IDs = append(filter.IDs, r.CampaignID)
		}
	}
	campaigns, err := u.repo.ListCampaigns(ctx, filter)
	if err != nil {
		return nil, err
	}

	var claimRecords map[string]*domain.ContributorRecord
	if req.ClaimableBy != "" {
		records, err := u.repo.ListContributorRecords(ctx, req.ClaimableBy)
		if err != nil {
			return nil, err
		}
		claimRecords = make(map[string]*domain.ContributorRecord, len(records))
		for i := range records {
			claimRecords[records[i].CampaignID] = &records[i]
		}
	}

	now := u.now()
	views := make([]port.CampaignView, 0, len(campaigns))
	for i := range campaigns {
		c := &campaigns[i]
		if req.Status != "" && c.Status(now) != req.Status {
			continue
		}
		if req.ClaimableBy != "" && !escrow.Claimable(c, claimRecords[c.ID], req.ClaimableBy, now) {
			continue
		}
		views = append(views, newView(*c, now))
	}
	return paginate(views, req.Page, req.Limit), nil
}

func paginate(views []port.CampaignView, page, limit int) *port.CampaignPage {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	limit = min(limit, MaxPageSize)
	page = max(page, 1)

	total := len(views)
	start := total
	if page-1 < (total+limit-1)/limit {
		start = (page - 1) * limit
	}
	end := min(start+limit, total)
	return &port.CampaignPage{
		Campaigns:  slices.Clip(views[start:end]),
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}
}

func newView(c domain.Campaign, now time.Time) port.CampaignView {
	return port.CampaignView{
		Campaign:    c,
		Status:      c.Status(now),
		GoalReached: c.GoalReached(),
	}
}

// Donate records a donation from caller.
func (u *EscrowUseCase) Donate(ctx context.Context, caller domain.Identity, campaignID string, amount uint64) (*domain.ContributorRecord, error) {
	if caller == "" {
		return nil, domain.ErrUnauthorized
	}
	now := u.now()
	var (
		record   domain.ContributorRecord
		campaign domain.Campaign
	)
	err := u.repo.Transact(ctx, campaignID, caller, func(unit *port.Unit) error {
		rec, err := escrow.Donate(unit.Campaign, unit.Record, caller, unit.Wallet, unit.Treasury, amount, now)
		if err != nil {
			return err
		}
		unit.Record = rec
		record, campaign = *rec, *unit.Campaign
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.logger.Info("donation received",
		slog.String("campaign_id", campaignID),
		slog.String("contributor", string(caller)),
		slog.Uint64("amount", amount),
		slog.Uint64("total_donated", campaign.TotalDonated))
	u.publish(domain.EventDonation, &campaign, caller, amount, now)
	return &record, nil
}

// Cancel cancels a campaign on behalf of its owner.
func (u *EscrowUseCase) Cancel(ctx context.Context, caller domain.Identity, campaignID string) error {
	now := u.now()
	var campaign domain.Campaign
	err := u.repo.Transact(ctx, campaignID, caller, func(unit *port.Unit) error {
		if err := escrow.Cancel(unit.Campaign, caller, now); err != nil {
			return err
		}
		campaign = *unit.Campaign
		return nil
	})
	if err != nil {
		return err
	}
	u.logger.Info("campaign cancelled", slog.String("campaign_id", campaignID))
	u.publish(domain.EventCampaignCancelled, &campaign, caller, 0, now)
	return nil
}

// OwnerWithdraw releases the pool of a successful campaign to caller.
func (u *EscrowUseCase) OwnerWithdraw(ctx context.Context, caller domain.Identity, campaignID string) (uint64, error) {
	now := u.now()
	return u.release(ctx, domain.EventOwnerWithdrawal, caller, campaignID, now, func(unit *port.Unit) (uint64, error) {
		return escrow.OwnerWithdraw(unit.Campaign, caller, unit.Treasury, unit.Wallet, now)
	})
}

// RefundIfFailed refunds caller from a campaign that missed its goal.
func (u *EscrowUseCase) RefundIfFailed(ctx context.Context, caller domain.Identity, campaignID string) (uint64, error) {
	now := u.now()
	return u.release(ctx, domain.EventRefund, caller, campaignID, now, func(unit *port.Unit) (uint64, error) {
		return escrow.RefundIfFailed(unit.Campaign, unit.Record, caller, unit.Treasury, unit.Wallet, now)
	})
}

// RefundIfCancelled refunds caller from a cancelled campaign.
func (u *EscrowUseCase) RefundIfCancelled(ctx context.Context, caller domain.Identity, campaignID string) (uint64, error) {
	now := u.now()
	return u.release(ctx, domain.EventRefund, caller, campaignID, now, func(unit *port.Unit) (uint64, error) {
		return escrow.RefundIfCancelled(unit.Campaign, unit.Record, caller, unit.Treasury, unit.Wallet)
	})
}

// release runs an operation that moves funds out of a treasury.
func (u *EscrowUseCase) release(
	ctx context.Context,
	typ domain.EventType,
	caller domain.Identity,
	campaignID string,
	now time.Time,
	op func(unit *port.Unit) (uint64, error),
) (uint64, error) {
	if caller == "" {
		return 0, domain.ErrUnauthorized
	}
	var (
		amount   uint64
		campaign domain.Campaign
	)
	err := u.repo.Transact(ctx, campaignID, caller, func(unit *port.Unit) error {
		var err error
		if amount, err = op(unit); err != nil {
			return err
		}
		campaign = *unit.Campaign
		return nil
	})
	if err != nil {
		return 0, err
	}
	u.logger.Info("funds released",
		slog.String("type", string(typ)),
		slog.String("campaign_id", campaignID),
		slog.String("recipient", string(caller)),
		slog.Uint64("amount", amount))
	u.publish(typ, &campaign, caller, amount, now)
	return amount, nil
}

// GetContribution returns contributor's record, or a zero record when the
// contributor never donated to an existing campaign.
func (u *EscrowUseCase) GetContribution(ctx context.Context, campaignID string, contributor domain.Identity) (*domain.ContributorRecord, error) {
	c, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCampaignNotFound
	}
	rec, err := u.repo.GetContributorRecord(ctx, campaignID, contributor)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec = &domain.ContributorRecord{CampaignID: campaignID, Contributor: contributor, Refund: domain.RefundOpen}
	}
	return rec, nil
}

// Balance returns a wallet balance.
func (u *EscrowUseCase) Balance(ctx context.Context, account domain.Identity) (uint64, error) {
	return u.repo.GetBalance(ctx, string(account))
}

// Deposit funds a wallet.
func (u *EscrowUseCase) Deposit(ctx context.Context, account domain.Identity, amount uint64) (uint64, error) {
	if account == "" {
		return 0, domain.ErrUnauthorized
	}
	if amount == 0 {
		return 0, domain.ErrInvalidAmount
	}
	balance, err := u.repo.Deposit(ctx, string(account), amount)
	if err != nil {
		return 0, err
	}
	u.logger.Info("wallet funded",
		slog.String("account", string(account)),
		slog.Uint64("amount", amount))
	return balance, nil
}

// GetStats aggregates over every campaign. TotalDonated saturates at the
// maximum amount instead of wrapping.
func (u *EscrowUseCase) GetStats(ctx context.Context) (*port.StatsResp, error) {
	campaigns, err := u.repo.ListCampaigns(ctx, port.CampaignFilter{})
	if err != nil {
		return nil, err
	}
	now := u.now()
	stats := &port.StatsResp{Campaigns: len(campaigns)}
	succeeded := 0
	for i := range campaigns {
		c := &campaigns[i]
		if c.TotalDonated > math.MaxUint64-stats.TotalDonated {
			stats.TotalDonated = math.MaxUint64
		} else {
			stats.TotalDonated += c.TotalDonated
		}
		switch c.Status(now) {
		case domain.StatusActive:
			stats.ActiveCampaigns++
		case domain.StatusPast:
			if c.GoalReached() {
				succeeded++
			}
		}
	}
	if len(campaigns) > 0 {
		stats.SuccessRate = int(math.Round(float64(succeeded) * 100 / float64(len(campaigns))))
	}
	return stats, nil
}

func (u *EscrowUseCase) publish(typ domain.EventType, c *domain.Campaign, actor domain.Identity, amount uint64, now time.Time) {
	u.events.Publish(domain.Event{
		Type:         typ,
		CampaignID:   c.ID,
		Actor:        actor,
		Amount:       amount,
		TotalDonated: c.TotalDonated,
		At:           now,
	})
}
