package v8serialize_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/migimunz/v8serialize"
)

func roundTrip[T comparable](t *testing.T, conv v8serialize.Converter[T], vals []T) {
	t.Helper()
	eng := newEngine(t)
	for _, want := range vals {
		t.Run(fmt.Sprintf("%v", want), func(t *testing.T) {
			dv, err := v8serialize.ToDynamic(eng, want, conv)
			require.NoError(t, err)
			got, err := v8serialize.FromDynamic(eng, dv, conv)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestPrimitiveRoundTrips(t *testing.T) {
	roundTrip(t, v8serialize.Int16, []int16{0, 1, -1, 32767, -32768})
	roundTrip(t, v8serialize.Uint16, []uint16{0, 1, 65535})
	roundTrip(t, v8serialize.Int32, []int32{0, 42, -42, 2147483647, -2147483648})
	roundTrip(t, v8serialize.Uint32, []uint32{0, 1, 4294967295})
	roundTrip(t, v8serialize.Float32, []float32{0, 3.5, -1.25})
	roundTrip(t, v8serialize.Float64, []float64{0, 3.141592653589793, -1e100})
	roundTrip(t, v8serialize.Bool, []bool{true, false})
	roundTrip(t, v8serialize.String, []string{"", "hello", "héllo wörld", "日本語"})
}

func TestInt64RoundTrip_WithinDoubleRange(t *testing.T) {
	// Integer-valued doubles are exact up to 2^53.
	exact := []int64{0, 1, -1, 12345678901234, 1 << 53, -(1 << 53), (1 << 53) - 1}
	roundTrip(t, v8serialize.Int64, exact)
	roundTrip(t, v8serialize.Uint64, []uint64{0, 1, 1 << 53})
}

func TestInt16Read_TruncatesThrough32BitAccessor(t *testing.T) {
	eng := newEngine(t)
	got, err := v8serialize.FromDynamic(eng, mustEval(t, eng, `70000`), v8serialize.Int16)
	require.NoError(t, err)
	assert.Equal(t, int16(70000-65536), got)
}

func TestPrimitiveKindMismatch(t *testing.T) {
	eng := newEngine(t)

	cases := []struct {
		name string
		src  string
		read func(v v8serialize.Value) error
	}{
		{"string to int32", `"12"`, func(v v8serialize.Value) error {
			_, err := v8serialize.FromDynamic(eng, v, v8serialize.Int32)
			return err
		}},
		{"number to bool", `1`, func(v v8serialize.Value) error {
			_, err := v8serialize.FromDynamic(eng, v, v8serialize.Bool)
			return err
		}},
		{"bool to string", `true`, func(v v8serialize.Value) error {
			_, err := v8serialize.FromDynamic(eng, v, v8serialize.String)
			return err
		}},
		{"object to number", `({})`, func(v v8serialize.Value) error {
			_, err := v8serialize.FromDynamic(eng, v, v8serialize.Float64)
			return err
		}},
		{"undefined to int64", `undefined`, func(v v8serialize.Value) error {
			_, err := v8serialize.FromDynamic(eng, v, v8serialize.Int64)
			return err
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.read(mustEval(t, eng, tc.src))
			require.Error(t, err)
			assert.ErrorIs(t, err, v8serialize.ErrConversion)
		})
	}
}
