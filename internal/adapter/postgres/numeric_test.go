package postgres

import (
	"math"
	"math/big"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 10_000, math.MaxInt64, math.MaxInt64 + 1, math.MaxUint64} {
		got, err := amount(numeric(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestAmountExponent(t *testing.T) {
	got, err := amount(pgtype.Numeric{Int: big.NewInt(12), Exp: 4, Valid: true})
	require.NoError(t, err)
	assert.Equal(t, uint64(120_000), got)

	got, err = amount(pgtype.Numeric{Int: big.NewInt(1500), Exp: -2, Valid: true})
	require.NoError(t, err)
	assert.Equal(t, uint64(15), got)
}

func TestAmountRejects(t *testing.T) {
	tooBig := new(big.Int).Add(new(big.Int).SetUint64(math.MaxUint64), big.NewInt(1))
	for name, n := range map[string]pgtype.Numeric{
		"null":     {},
		"nan":      {NaN: true, Valid: true},
		"negative": {Int: big.NewInt(-1), Valid: true},
		"fraction": {Int: big.NewInt(15), Exp: -1, Valid: true},
		"too big":  {Int: tooBig, Valid: true},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := amount(n)
			assert.ErrorIs(t, err, errAmountRange)
		})
	}
}
