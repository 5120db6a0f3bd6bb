package converters

import (
	"testing"

	boilertypes "github.com/aarondl/sqlboiler/v4/types"
	"github.com/ericlagergren/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/migimunz/v8serialize"
)

func big(t *testing.T, s string) *decimal.Big {
	t.Helper()
	d := new(decimal.Big)
	_, ok := d.SetString(s)
	require.True(t, ok)
	return d
}

func TestDecimal_ReadFromString(t *testing.T) {
	eng := newEngine(t)

	got, err := v8serialize.FromDynamic(eng, mustEval(t, eng, `"14.074"`), Decimal())
	require.NoError(t, err)
	require.NotNil(t, got.Big)
	assert.Zero(t, got.Big.Cmp(big(t, "14.074")))
}

func TestDecimal_ReadFromNumber(t *testing.T) {
	eng := newEngine(t)

	got, err := v8serialize.FromDynamic(eng, mustEval(t, eng, `7.5`), Decimal())
	require.NoError(t, err)
	require.NotNil(t, got.Big)
	assert.Zero(t, got.Big.Cmp(big(t, "7.5")))
}

func TestDecimal_WritePreservesPrecision(t *testing.T) {
	eng := newEngine(t)

	// A value like 3.573000 would lose trailing digits through a double;
	// the string rendition keeps it exact.
	want := boilertypes.NewDecimal(big(t, "0.10000000000000000001"))
	dv, err := v8serialize.ToDynamic(eng, want, Decimal())
	require.NoError(t, err)
	assert.True(t, eng.IsString(dv))

	got, err := v8serialize.FromDynamic(eng, dv, Decimal())
	require.NoError(t, err)
	assert.Zero(t, got.Big.Cmp(want.Big))
}

func TestDecimal_RejectsBadInput(t *testing.T) {
	eng := newEngine(t)

	for _, src := range []string{`"not-a-number"`, `true`, `({})`} {
		_, err := v8serialize.FromDynamic(eng, mustEval(t, eng, src), Decimal())
		require.Error(t, err, "source %s", src)
		assert.ErrorIs(t, err, v8serialize.ErrConversion)
	}
}

func TestDecimal_NilBigWriteFails(t *testing.T) {
	eng := newEngine(t)

	_, err := v8serialize.ToDynamic(eng, boilertypes.Decimal{}, Decimal())
	require.Error(t, err)
	assert.ErrorIs(t, err, v8serialize.ErrConversion)
}
