// Package postgres implements port.EscrowRepository on PostgreSQL using
// pgx. Amounts live in NUMERIC(20, 0) columns; wallets and treasuries
// share the accounts table.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"crowdfund-escrow/internal/core/domain"
	"crowdfund-escrow/internal/core/port"
)

const (
	codeUniqueViolation = "23505"
	codeCheckViolation  = "23514"
)

const campaignColumns = `id, owner, name, description, goal, deadline, created_at, treasury_id, total_donated, state, payout`

// EscrowRepository implements port.EscrowRepository using pgxpool.
type EscrowRepository struct {
	pool *pgxpool.Pool
}

// NewEscrowRepository returns a new repository instance.
func NewEscrowRepository(pool *pgxpool.Pool) *EscrowRepository {
	return &EscrowRepository{pool: pool}
}

// CreateCampaign inserts the campaign and its treasury account.
func (r *EscrowRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	defer finish(ctx, tx, &err)

	_, err = tx.Exec(ctx, `INSERT INTO accounts (id) VALUES ($1) ON CONFLICT (id) DO NOTHING`, c.TreasuryID)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `INSERT INTO campaigns (`+campaignColumns+`)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		c.ID, string(c.Owner), c.Name, c.Description, numeric(c.Goal), c.Deadline, c.CreatedAt,
		c.TreasuryID, numeric(c.TotalDonated), string(c.State), string(c.Payout))
	if isViolation(err, codeUniqueViolation) {
		return domain.ErrCampaignExists
	}
	return err
}

// GetCampaign returns a campaign by id, or nil.
func (r *EscrowRepository) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListCampaigns returns campaigns matching filter, newest first.
func (r *EscrowRepository) ListCampaigns(ctx context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	if filter.IDs != nil && len(filter.IDs) == 0 {
		return []domain.Campaign{}, nil
	}
	var (
		where []string
		args  []any
	)
	if filter.Owner != "" {
		args = append(args, string(filter.Owner))
		where = append(where, fmt.Sprintf("owner = $%d", len(args)))
	}
	if filter.IDs != nil {
		args = append(args, filter.IDs)
		where = append(where, fmt.Sprintf("id = ANY($%d)", len(args)))
	}
	query := `SELECT ` + campaignColumns + ` FROM campaigns`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at DESC, id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
}

// GetContributorRecord returns the record of contributor, or nil.
func (r *EscrowRepository) GetContributorRecord(ctx context.Context, campaignID string, contributor domain.Identity) (*domain.ContributorRecord, error) {
	rec, err := scanRecord(r.pool.QueryRow(ctx, `SELECT campaign_id, contributor, amount_donated, refund
FROM contributor_records WHERE campaign_id = $1 AND contributor = $2`, campaignID, string(contributor)))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// ListContributorRecords returns every record held by contributor.
func (r *EscrowRepository) ListContributorRecords(ctx context.Context, contributor domain.Identity) ([]domain.ContributorRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT campaign_id, contributor, amount_donated, refund
FROM contributor_records WHERE contributor = $1`, string(contributor))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ContributorRecord, error) {
		rec, err := scanRecord(row)
		if err != nil {
			return domain.ContributorRecord{}, err
		}
		return *rec, nil
	})
}

// Transact refuses treasury ids as the party. It locks the campaign row, the contributor record and both
// account rows for the duration of fn. Account rows are locked in id
// order after the campaign row, matching every other transaction.
func (r *EscrowRepository) Transact(ctx context.Context, campaignID string, party domain.Identity, fn port.UnitFunc) (err error) {
	if domain.IsTreasury(string(party)) {
		return domain.ErrUnauthorized
	}
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	defer finish(ctx, tx, &err)

	// lock campaign
	c, err := scanCampaign(tx.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, campaignID))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrCampaignNotFound
	}
	if err != nil {
		return err
	}

	unit := &port.Unit{Campaign: c}
	unit.Record, err = scanRecord(tx.QueryRow(ctx, `SELECT campaign_id, contributor, amount_donated, refund
FROM contributor_records WHERE campaign_id = $1 AND contributor = $2 FOR UPDATE`, campaignID, string(party)))
	if errors.Is(err, pgx.ErrNoRows) {
		unit.Record, err = nil, nil
	}
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `INSERT INTO accounts (id) VALUES ($1) ON CONFLICT (id) DO NOTHING`, string(party))
	if err != nil {
		return err
	}
	ids := []string{c.TreasuryID, string(party)}
	slices.Sort(ids)
	rows, err := tx.Query(ctx, `SELECT id, balance FROM accounts WHERE id = ANY($1) ORDER BY id FOR UPDATE`, ids)
	if err != nil {
		return err
	}
	balances, err := pgx.CollectRows(rows, scanBalance)
	if err != nil {
		return err
	}
	for i := range balances {
		b := balances[i]
		switch b.ID {
		case c.TreasuryID:
			unit.Treasury = &b
		case string(party):
			unit.Wallet = &b
		}
	}
	if unit.Treasury == nil || unit.Wallet == nil {
		return fmt.Errorf("postgres: accounts of campaign %s not found", campaignID)
	}

	if err = fn(unit); err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `UPDATE campaigns SET total_donated = $2, state = $3, payout = $4 WHERE id = $1`,
		c.ID, numeric(unit.Campaign.TotalDonated), string(unit.Campaign.State), string(unit.Campaign.Payout))
	if err != nil {
		return err
	}
	if rec := unit.Record; rec != nil {
		_, err = tx.Exec(ctx, `INSERT INTO contributor_records (campaign_id, contributor, amount_donated, refund)
VALUES ($1,$2,$3,$4)
ON CONFLICT (campaign_id, contributor) DO UPDATE SET amount_donated = EXCLUDED.amount_donated, refund = EXCLUDED.refund`,
			campaignID, string(party), numeric(rec.AmountDonated), string(rec.Refund))
		if err != nil {
			return err
		}
	}
	for _, b := range []*domain.Balance{unit.Treasury, unit.Wallet} {
		_, err = tx.Exec(ctx, `UPDATE accounts SET balance = $2, updated_at = now() WHERE id = $1`, b.ID, numeric(b.Amount))
		if err != nil {
			return err
		}
	}
	return nil
}

// GetBalance returns the balance of accountID; unknown accounts hold 0.
func (r *EscrowRepository) GetBalance(ctx context.Context, accountID string) (uint64, error) {
	var n pgtype.Numeric
	err := r.pool.QueryRow(ctx, `SELECT balance FROM accounts WHERE id = $1`, accountID).Scan(&n)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return amount(n)
}

// Deposit credits the wallet accountID, creating it on first use. The
// balance check constraint rejects results beyond the uint64 range.
func (r *EscrowRepository) Deposit(ctx context.Context, accountID string, value uint64) (uint64, error) {
	if domain.IsTreasury(accountID) {
		return 0, domain.ErrUnauthorized
	}
	var n pgtype.Numeric
	err := r.pool.QueryRow(ctx, `INSERT INTO accounts (id, balance) VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE SET balance = accounts.balance + EXCLUDED.balance, updated_at = now()
RETURNING balance`, accountID, numeric(value)).Scan(&n)
	if isViolation(err, codeCheckViolation) {
		return 0, domain.ErrOverflow
	}
	if err != nil {
		return 0, err
	}
	return amount(n)
}

// finish commits tx when *err is nil and rolls it back otherwise.
func finish(ctx context.Context, tx pgx.Tx, err *error) {
	if *err != nil {
		_ = tx.Rollback(ctx)
		return
	}
	*err = tx.Commit(ctx)
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c                  domain.Campaign
		owner, state, paid string
		goal, total        pgtype.Numeric
	)
	err := row.Scan(&c.ID, &owner, &c.Name, &c.Description, &goal, &c.Deadline, &c.CreatedAt,
		&c.TreasuryID, &total, &state, &paid)
	if err != nil {
		return nil, err
	}
	if c.Goal, err = amount(goal); err != nil {
		return nil, err
	}
	if c.TotalDonated, err = amount(total); err != nil {
		return nil, err
	}
	c.Owner = domain.Identity(owner)
	c.State = domain.CampaignState(state)
	c.Payout = domain.PayoutState(paid)
	c.CreatedAt = c.CreatedAt.UTC()
	if c.Deadline != nil {
		d := c.Deadline.UTC()
		c.Deadline = &d
	}
	return &c, nil
}

func scanRecord(row pgx.Row) (*domain.ContributorRecord, error) {
	var (
		rec                 domain.ContributorRecord
		contributor, refund string
		donated             pgtype.Numeric
	)
	if err := row.Scan(&rec.CampaignID, &contributor, &donated, &refund); err != nil {
		return nil, err
	}
	v, err := amount(donated)
	if err != nil {
		return nil, err
	}
	rec.AmountDonated = v
	rec.Contributor = domain.Identity(contributor)
	rec.Refund = domain.RefundState(refund)
	return &rec, nil
}

func scanBalance(row pgx.CollectableRow) (domain.Balance, error) {
	var (
		b domain.Balance
		n pgtype.Numeric
	)
	if err := row.Scan(&b.ID, &n); err != nil {
		return b, err
	}
	v, err := amount(n)
	b.Amount = v
	return b, err
}

func isViolation(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
