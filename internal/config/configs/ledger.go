package configs

// Ledger configures the external wallet ledger. AllowDeposits exposes the
// deposit endpoint that credits wallets from outside the escrow; keep it
// off outside development.
type Ledger struct {
	AllowDeposits bool `env:"ALLOW_DEPOSITS" envDefault:"false"`
}
