package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crowdfund-escrow/internal/core/domain"
	"crowdfund-escrow/internal/core/escrow"
	"crowdfund-escrow/internal/core/port"
	"crowdfund-escrow/internal/core/port/mocks"
)

var (
	deadline = time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	duringT  = deadline.Add(-time.Hour)
	afterT   = deadline.Add(time.Hour)
)

func fixedClock(t time.Time) Option {
	return WithClock(func() time.Time { return t })
}

func newCampaign(t *testing.T, owner domain.Identity, goal uint64) *domain.Campaign {
	t.Helper()
	dl := deadline
	c, err := escrow.Create(owner, escrow.CreateParams{Name: "c", Goal: goal, Deadline: &dl, CreatedAt: deadline.Add(-48 * time.Hour)})
	require.NoError(t, err)
	return c
}

// runOn makes the mocked Transact apply fn to unit.
func runOn(unit *port.Unit) func(context.Context, string, domain.Identity, port.UnitFunc) error {
	return func(_ context.Context, _ string, _ domain.Identity, fn port.UnitFunc) error {
		return fn(unit)
	}
}

func eventOfType(typ domain.EventType) interface{} {
	return mock.MatchedBy(func(e domain.Event) bool { return e.Type == typ })
}

func TestCreateCampaign(t *testing.T) {
	repo := mocks.NewMockEscrowRepository(t)
	events := mocks.NewMockEventPublisher(t)

	repo.EXPECT().
		CreateCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Return(nil)
	events.EXPECT().Publish(eventOfType(domain.EventCampaignCreated)).Return()

	svc := NewEscrowUseCase(repo, WithEvents(events), fixedClock(duringT))
	dl := deadline
	c, err := svc.CreateCampaign(context.Background(), "owner", port.CreateCampaignReq{Name: "Roof", Goal: 500, Deadline: &dl})
	require.NoError(t, err)

	assert.Equal(t, escrow.CampaignID("owner", duringT), c.ID)
	assert.Equal(t, domain.Identity("owner"), c.Owner)
	assert.Equal(t, uint64(500), c.Goal)
	assert.Equal(t, duringT, c.CreatedAt)
}

func TestCreateCampaignRejected(t *testing.T) {
	repo := mocks.NewMockEscrowRepository(t)
	svc := NewEscrowUseCase(repo, fixedClock(duringT))

	_, err := svc.CreateCampaign(context.Background(), "owner", port.CreateCampaignReq{Name: "Roof"})
	require.ErrorIs(t, err, domain.ErrInvalidGoal)

	_, err = svc.CreateCampaign(context.Background(), "", port.CreateCampaignReq{Name: "Roof", Goal: 1})
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = svc.CreateCampaign(context.Background(), domain.TreasuryPrefix+"x", port.CreateCampaignReq{Name: "Roof", Goal: 1})
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	repo.EXPECT().
		CreateCampaign(mock.Anything, mock.Anything).
		Return(domain.ErrCampaignExists)
	_, err = svc.CreateCampaign(context.Background(), "owner", port.CreateCampaignReq{Name: "Roof", Goal: 1})
	require.ErrorIs(t, err, domain.ErrCampaignExists)
}

func TestDonate(t *testing.T) {
	repo := mocks.NewMockEscrowRepository(t)
	events := mocks.NewMockEventPublisher(t)

	c := newCampaign(t, "owner", 100)
	unit := &port.Unit{
		Campaign: c,
		Treasury: &domain.Balance{ID: c.TreasuryID},
		Wallet:   &domain.Balance{ID: "alice", Amount: 50},
	}
	repo.EXPECT().
		Transact(mock.Anything, c.ID, domain.Identity("alice"), mock.Anything).
		RunAndReturn(runOn(unit))
	events.EXPECT().
		Publish(mock.MatchedBy(func(e domain.Event) bool {
			return e.Type == domain.EventDonation && e.Amount == 30 && e.TotalDonated == 30 && e.Actor == "alice"
		})).
		Return()

	svc := NewEscrowUseCase(repo, WithEvents(events), fixedClock(duringT))
	rec, err := svc.Donate(context.Background(), "alice", c.ID, 30)
	require.NoError(t, err)

	assert.Equal(t, uint64(30), rec.AmountDonated)
	require.NotNil(t, unit.Record)
	assert.Equal(t, uint64(30), unit.Record.AmountDonated)
	assert.Equal(t, uint64(20), unit.Wallet.Amount)
	assert.Equal(t, uint64(30), unit.Treasury.Amount)
}

func TestDonateFailurePublishesNothing(t *testing.T) {
	repo := mocks.NewMockEscrowRepository(t)
	events := mocks.NewMockEventPublisher(t)

	c := newCampaign(t, "owner", 100)
	unit := &port.Unit{
		Campaign: c,
		Treasury: &domain.Balance{ID: c.TreasuryID},
		Wallet:   &domain.Balance{ID: "alice", Amount: 50},
	}
	repo.EXPECT().
		Transact(mock.Anything, c.ID, domain.Identity("alice"), mock.Anything).
		RunAndReturn(runOn(unit))

	svc := NewEscrowUseCase(repo, WithEvents(events), fixedClock(afterT))
	_, err := svc.Donate(context.Background(), "alice", c.ID, 30)
	require.ErrorIs(t, err, domain.ErrCampaignEnded)
	assert.Nil(t, unit.Record)
	assert.Equal(t, uint64(50), unit.Wallet.Amount)
}

func TestDonateUnknownCampaign(t *testing.T) {
	repo := mocks.NewMockEscrowRepository(t)
	repo.EXPECT().
		Transact(mock.Anything, "missing", domain.Identity("alice"), mock.Anything).
		Return(domain.ErrCampaignNotFound)

	svc := NewEscrowUseCase(repo)
	_, err := svc.Donate(context.Background(), "alice", "missing", 1)
	require.ErrorIs(t, err, domain.ErrCampaignNotFound)
}

func TestOwnerWithdraw(t *testing.T) {
	repo := mocks.NewMockEscrowRepository(t)
	events := mocks.NewMockEventPublisher(t)

	c := newCampaign(t, "owner", 100)
	c.TotalDonated = 120
	unit := &port.Unit{
		Campaign: c,
		Treasury: &domain.Balance{ID: c.TreasuryID, Amount: 120},
		Wallet:   &domain.Balance{ID: "owner"},
	}
	repo.EXPECT().
		Transact(mock.Anything, c.ID, domain.Identity("owner"), mock.Anything).
		RunAndReturn(runOn(unit))
	events.EXPECT().Publish(eventOfType(domain.EventOwnerWithdrawal)).Return().Once()

	svc := NewEscrowUseCase(repo, WithEvents(events), fixedClock(afterT))
	amount, err := svc.OwnerWithdraw(context.Background(), "owner", c.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(120), amount)
	assert.Equal(t, uint64(120), unit.Wallet.Amount)
	assert.True(t, unit.Campaign.WithdrawnByOwner())

	_, err = svc.OwnerWithdraw(context.Background(), "owner", c.ID)
	require.ErrorIs(t, err, domain.ErrAlreadyWithdrawnByOwner)
}

func TestRefunds(t *testing.T) {
	c := newCampaign(t, "owner", 100)
	c.TotalDonated = 40
	newUnit := func(camp *domain.Campaign) *port.Unit {
		return &port.Unit{
			Campaign: camp,
			Record:   &domain.ContributorRecord{CampaignID: c.ID, Contributor: "alice", AmountDonated: 40, Refund: domain.RefundOpen},
			Treasury: &domain.Balance{ID: c.TreasuryID, Amount: 40},
			Wallet:   &domain.Balance{ID: "alice"},
		}
	}

	t.Run("failed", func(t *testing.T) {
		repo := mocks.NewMockEscrowRepository(t)
		events := mocks.NewMockEventPublisher(t)
		camp := *c
		unit := newUnit(&camp)
		repo.EXPECT().Transact(mock.Anything, c.ID, domain.Identity("alice"), mock.Anything).RunAndReturn(runOn(unit))
		events.EXPECT().Publish(eventOfType(domain.EventRefund)).Return()

		svc := NewEscrowUseCase(repo, WithEvents(events), fixedClock(afterT))
		amount, err := svc.RefundIfFailed(context.Background(), "alice", c.ID)
		require.NoError(t, err)
		assert.Equal(t, uint64(40), amount)
		assert.True(t, unit.Record.Withdrawn())
		assert.Zero(t, unit.Treasury.Amount)
	})

	t.Run("cancelled", func(t *testing.T) {
		repo := mocks.NewMockEscrowRepository(t)
		events := mocks.NewMockEventPublisher(t)
		camp := *c
		camp.State = domain.CampaignCancelled
		unit := newUnit(&camp)
		repo.EXPECT().Transact(mock.Anything, c.ID, domain.Identity("alice"), mock.Anything).RunAndReturn(runOn(unit))
		events.EXPECT().Publish(eventOfType(domain.EventRefund)).Return()

		svc := NewEscrowUseCase(repo, WithEvents(events), fixedClock(duringT))
		amount, err := svc.RefundIfCancelled(context.Background(), "alice", c.ID)
		require.NoError(t, err)
		assert.Equal(t, uint64(40), amount)
		assert.Equal(t, uint64(40), unit.Wallet.Amount)
	})

	t.Run("still active", func(t *testing.T) {
		repo := mocks.NewMockEscrowRepository(t)
		camp := *c
		unit := newUnit(&camp)
		repo.EXPECT().Transact(mock.Anything, c.ID, domain.Identity("alice"), mock.Anything).RunAndReturn(runOn(unit))

		svc := NewEscrowUseCase(repo, fixedClock(duringT))
		_, err := svc.RefundIfFailed(context.Background(), "alice", c.ID)
		require.ErrorIs(t, err, domain.ErrCampaignStillActive)
		assert.False(t, unit.Record.Withdrawn())
	})
}

func TestCancel(t *testing.T) {
	repo := mocks.NewMockEscrowRepository(t)
	events := mocks.NewMockEventPublisher(t)

	c := newCampaign(t, "owner", 100)
	unit := &port.Unit{Campaign: c, Treasury: &domain.Balance{}, Wallet: &domain.Balance{}}
	repo.EXPECT().Transact(mock.Anything, c.ID, mock.Anything, mock.Anything).RunAndReturn(runOn(unit))
	events.EXPECT().Publish(eventOfType(domain.EventCampaignCancelled)).Return().Once()

	svc := NewEscrowUseCase(repo, WithEvents(events), fixedClock(duringT))
	require.ErrorIs(t, svc.Cancel(context.Background(), "mallory", c.ID), domain.ErrUnauthorized)
	require.NoError(t, svc.Cancel(context.Background(), "owner", c.ID))
	require.ErrorIs(t, svc.Cancel(context.Background(), "owner", c.ID), domain.ErrAlreadyCancelled)
}

func TestGetCampaign(t *testing.T) {
	repo := mocks.NewMockEscrowRepository(t)
	c := newCampaign(t, "owner", 100)
	c.TotalDonated = 100

	repo.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)
	repo.EXPECT().GetCampaign(mock.Anything, "missing").Return(nil, nil)
	repo.EXPECT().GetBalance(mock.Anything, c.TreasuryID).Return(uint64(100), nil)

	svc := NewEscrowUseCase(repo, fixedClock(afterT))
	view, err := svc.GetCampaign(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPast, view.Status)
	assert.True(t, view.GoalReached)
	assert.Equal(t, uint64(100), view.TreasuryBalance)

	_, err = svc.GetCampaign(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrCampaignNotFound)
}

func TestGetContribution(t *testing.T) {
	repo := mocks.NewMockEscrowRepository(t)
	c := newCampaign(t, "owner", 100)

	repo.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)
	repo.EXPECT().GetContributorRecord(mock.Anything, c.ID, domain.Identity("bob")).Return(nil, nil)

	svc := NewEscrowUseCase(repo)
	rec, err := svc.GetContribution(context.Background(), c.ID, "bob")
	require.NoError(t, err)
	assert.Zero(t, rec.AmountDonated)
	assert.False(t, rec.Withdrawn())
}

func TestListCampaigns(t *testing.T) {
	active := newCampaign(t, "owner", 100)

	failed := newCampaign(t, "other", 100)
	failed.ID = "failed"
	failed.TotalDonated = 10

	succeeded := newCampaign(t, "owner", 100)
	succeeded.ID = "succeeded"
	succeeded.TotalDonated = 100

	cancelled := newCampaign(t, "other", 100)
	cancelled.ID = "cancelled"
	cancelled.State = domain.CampaignCancelled

	now := deadline
	// Active campaigns have no deadline in this listing so they stay open.
	active.Deadline = nil
	all := []domain.Campaign{*active, *failed, *succeeded, *cancelled}

	t.Run("status", func(t *testing.T) {
		repo := mocks.NewMockEscrowRepository(t)
		repo.EXPECT().ListCampaigns(mock.Anything, port.CampaignFilter{}).Return(all, nil)

		svc := NewEscrowUseCase(repo, fixedClock(now))
		page, err := svc.ListCampaigns(context.Background(), port.ListCampaignsReq{Status: domain.StatusPast})
		require.NoError(t, err)
		require.Len(t, page.Campaigns, 2)
		assert.Equal(t, "failed", page.Campaigns[0].Campaign.ID)
		assert.Equal(t, "succeeded", page.Campaigns[1].Campaign.ID)
		assert.Equal(t, DefaultPageSize, page.Limit)
	})

	t.Run("contributor", func(t *testing.T) {
		repo := mocks.NewMockEscrowRepository(t)
		records := []domain.ContributorRecord{{CampaignID: "failed", Contributor: "alice", AmountDonated: 10}}
		repo.EXPECT().ListContributorRecords(mock.Anything, domain.Identity("alice")).Return(records, nil)
		repo.EXPECT().
			ListCampaigns(mock.Anything, port.CampaignFilter{IDs: []string{"failed"}}).
			Return([]domain.Campaign{*failed}, nil)

		svc := NewEscrowUseCase(repo, fixedClock(now))
		page, err := svc.ListCampaigns(context.Background(), port.ListCampaignsReq{Contributor: "alice"})
		require.NoError(t, err)
		require.Len(t, page.Campaigns, 1)
		assert.Equal(t, domain.StatusPast, page.Campaigns[0].Status)
	})

	t.Run("claimable", func(t *testing.T) {
		repo := mocks.NewMockEscrowRepository(t)
		repo.EXPECT().ListCampaigns(mock.Anything, port.CampaignFilter{}).Return(all, nil)
		repo.EXPECT().ListContributorRecords(mock.Anything, domain.Identity("owner")).Return(nil, nil)

		svc := NewEscrowUseCase(repo, fixedClock(now))
		page, err := svc.ListCampaigns(context.Background(), port.ListCampaignsReq{ClaimableBy: "owner"})
		require.NoError(t, err)
		require.Len(t, page.Campaigns, 1)
		assert.Equal(t, "succeeded", page.Campaigns[0].Campaign.ID)
	})

	t.Run("pagination", func(t *testing.T) {
		repo := mocks.NewMockEscrowRepository(t)
		repo.EXPECT().ListCampaigns(mock.Anything, port.CampaignFilter{}).Return(all, nil)

		svc := NewEscrowUseCase(repo, fixedClock(now))
		page, err := svc.ListCampaigns(context.Background(), port.ListCampaignsReq{Page: 2, Limit: 3})
		require.NoError(t, err)
		assert.Equal(t, 4, page.Total)
		assert.Equal(t, 2, page.TotalPages)
		require.Len(t, page.Campaigns, 1)
		assert.Equal(t, "cancelled", page.Campaigns[0].Campaign.ID)

		page, err = svc.ListCampaigns(context.Background(), port.ListCampaignsReq{Page: 9, Limit: 3})
		require.NoError(t, err)
		assert.Empty(t, page.Campaigns)
	})

	t.Run("page far beyond the end", func(t *testing.T) {
		repo := mocks.NewMockEscrowRepository(t)
		repo.EXPECT().ListCampaigns(mock.Anything, port.CampaignFilter{}).Return(all, nil)

		svc := NewEscrowUseCase(repo, fixedClock(now))
		page, err := svc.ListCampaigns(context.Background(), port.ListCampaignsReq{Page: 100_000_000_000_000_000, Limit: MaxPageSize})
		require.NoError(t, err)
		assert.Empty(t, page.Campaigns)
		assert.Equal(t, 4, page.Total)
		assert.Equal(t, 1, page.TotalPages)
	})
}

func TestGetStats(t *testing.T) {
	repo := mocks.NewMockEscrowRepository(t)

	active := newCampaign(t, "a", 100)
	active.Deadline = nil
	active.TotalDonated = 5
	succeeded := newCampaign(t, "b", 100)
	succeeded.TotalDonated = 150
	failed := newCampaign(t, "c", 100)
	failed.TotalDonated = 20

	repo.EXPECT().
		ListCampaigns(mock.Anything, port.CampaignFilter{}).
		Return([]domain.Campaign{*active, *succeeded, *failed}, nil)

	svc := NewEscrowUseCase(repo, fixedClock(afterT))
	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Campaigns)
	assert.Equal(t, 1, stats.ActiveCampaigns)
	assert.Equal(t, uint64(175), stats.TotalDonated)
	assert.Equal(t, 33, stats.SuccessRate)
}

func TestDeposit(t *testing.T) {
	repo := mocks.NewMockEscrowRepository(t)
	repo.EXPECT().Deposit(mock.Anything, "alice", uint64(25)).Return(uint64(75), nil)

	svc := NewEscrowUseCase(repo)
	balance, err := svc.Deposit(context.Background(), "alice", 25)
	require.NoError(t, err)
	assert.Equal(t, uint64(75), balance)

	_, err = svc.Deposit(context.Background(), "alice", 0)
	require.ErrorIs(t, err, domain.ErrInvalidAmount)
}

// TestConcurrentDonations ensures serialized transactions keep the campaign
// total equal to the sum of contributor records.
func TestConcurrentDonations(t *testing.T) {
	repo := mocks.NewMockEscrowRepository(t)

	c := newCampaign(t, "owner", 1_000)
	var (
		mu       sync.Mutex
		treasury = domain.Balance{ID: c.TreasuryID}
		records  = map[domain.Identity]*domain.ContributorRecord{}
		wallets  = map[domain.Identity]*domain.Balance{}
	)
	contributors := []domain.Identity{"a", "b", "c", "d", "e"}
	for _, id := range contributors {
		wallets[id] = &domain.Balance{ID: string(id), Amount: 100}
	}

	// Emulates the host's per-campaign serialization.
	repo.EXPECT().
		Transact(mock.Anything, c.ID, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, party domain.Identity, fn port.UnitFunc) error {
			mu.Lock()
			defer mu.Unlock()

			camp := *c
			tr := treasury
			w := *wallets[party]
			var rec *domain.ContributorRecord
			if r, ok := records[party]; ok {
				cp := *r
				rec = &cp
			}
			unit := &port.Unit{Campaign: &camp, Record: rec, Treasury: &tr, Wallet: &w}
			if err := fn(unit); err != nil {
				return err
			}
			*c, treasury, *wallets[party] = camp, tr, w
			records[party] = unit.Record
			return nil
		})

	svc := NewEscrowUseCase(repo, fixedClock(duringT))

	var wg sync.WaitGroup
	for _, id := range contributors {
		id := id
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = svc.Donate(context.Background(), id, c.ID, 3)
			}()
		}
	}
	wg.Wait()

	var sum uint64
	for _, r := range records {
		sum += r.AmountDonated
	}
	assert.Equal(t, uint64(150), c.TotalDonated)
	assert.Equal(t, c.TotalDonated, sum)
	assert.Equal(t, c.TotalDonated, treasury.Amount)
	for _, id := range contributors {
		assert.Equal(t, uint64(70), wallets[id].Amount)
	}
}
