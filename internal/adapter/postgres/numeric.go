package postgres

import (
	"errors"
	"math/big"

	"github.com/jackc/pgx/v5/pgtype"
)

var errAmountRange = errors.New("postgres: amount out of uint64 range")

var bigTen = big.NewInt(10)

// numeric encodes an unsigned amount for a NUMERIC(20, 0) column. pgx
// cannot encode uint64 values above math.MaxInt64 directly.
func numeric(v uint64) pgtype.Numeric {
	return pgtype.Numeric{Int: new(big.Int).SetUint64(v), Valid: true}
}

// amount decodes a NUMERIC value into an unsigned amount. The decoded
// value may carry a positive exponent for trailing zeros.
func amount(n pgtype.Numeric) (uint64, error) {
	if !n.Valid || n.NaN || n.InfinityModifier != pgtype.Finite {
		return 0, errAmountRange
	}
	i := new(big.Int)
	if n.Int != nil {
		i.Set(n.Int)
	}
	switch {
	case n.Exp > 0:
		i.Mul(i, new(big.Int).Exp(bigTen, big.NewInt(int64(n.Exp)), nil))
	case n.Exp < 0:
		var rem big.Int
		i.QuoRem(i, new(big.Int).Exp(bigTen, big.NewInt(int64(-n.Exp)), nil), &rem)
		if rem.Sign() != 0 {
			return 0, errAmountRange
		}
	}
	if i.Sign() < 0 || !i.IsUint64() {
		return 0, errAmountRange
	}
	return i.Uint64(), nil
}
