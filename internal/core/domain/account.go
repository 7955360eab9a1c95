package domain

import (
	"math"
	"strings"
)

// TreasuryPrefix starts every treasury account id. Wallet identities
// carrying it are refused, so a wallet can never address a treasury.
const TreasuryPrefix = "treasury:"

// IsTreasury reports whether accountID names a campaign treasury.
func IsTreasury(accountID string) bool {
	return strings.HasPrefix(accountID, TreasuryPrefix)
}

// Account is a value-holding account. Treasuries and wallets both expose
// it. Implementations must apply each call atomically and leave the
// balance unchanged when they return an error.
type Account interface {
	Credit(amount uint64) error
	Debit(amount uint64) error
}

// Balance is an in-memory Account snapshot. Repositories load balances
// into it for the duration of a transaction and persist the result on
// commit.
type Balance struct {
	ID     string
	Amount uint64
}

// Credit adds amount, failing with ErrOverflow instead of wrapping.
func (b *Balance) Credit(amount uint64) error {
	if amount > math.MaxUint64-b.Amount {
		return ErrOverflow
	}
	b.Amount += amount
	return nil
}

// Debit subtracts amount, failing with ErrInsufficientFunds when the
// balance cannot cover it.
func (b *Balance) Debit(amount uint64) error {
	if amount > b.Amount {
		return ErrInsufficientFunds
	}
	b.Amount -= amount
	return nil
}
