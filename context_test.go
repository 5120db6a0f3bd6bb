package v8serialize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/migimunz/v8serialize"
)

func TestGet_RequiredField(t *testing.T) {
	eng := newEngine(t)
	r := v8serialize.NewReadContext(eng, mustEval(t, eng, `({x: 7})`))

	var got int32
	require.NoError(t, v8serialize.Get(r, "x", &got, v8serialize.Int32))
	assert.Equal(t, int32(7), got)
}

func TestGet_MissingFieldFails(t *testing.T) {
	eng := newEngine(t)
	r := v8serialize.NewReadContext(eng, mustEval(t, eng, `({})`))

	var got int32 = 99
	err := v8serialize.Get(r, "x", &got, v8serialize.Int32)
	require.Error(t, err)
	assert.ErrorIs(t, err, v8serialize.ErrConversion)
	assert.Equal(t, int32(99), got, "dst is untouched on failure")
}

func TestGet_UndefinedFieldFails(t *testing.T) {
	eng := newEngine(t)
	r := v8serialize.NewReadContext(eng, mustEval(t, eng, `({x: undefined})`))

	var got int32
	err := v8serialize.Get(r, "x", &got, v8serialize.Int32)
	require.Error(t, err)
	assert.ErrorIs(t, err, v8serialize.ErrConversion)
}

func TestGet_WrongKindFails(t *testing.T) {
	eng := newEngine(t)
	r := v8serialize.NewReadContext(eng, mustEval(t, eng, `({x: "seven"})`))

	var got int32
	err := v8serialize.Get(r, "x", &got, v8serialize.Int32)
	require.Error(t, err)
	assert.ErrorIs(t, err, v8serialize.ErrConversion)
}

func TestGet_OnNonObjectFails(t *testing.T) {
	eng := newEngine(t)
	r := v8serialize.NewReadContext(eng, mustEval(t, eng, `42`))

	var got int32
	err := v8serialize.Get(r, "x", &got, v8serialize.Int32)
	require.Error(t, err)
	assert.ErrorIs(t, err, v8serialize.ErrConversion)
}

func TestGetOr_SubstitutesDefault(t *testing.T) {
	eng := newEngine(t)
	r := v8serialize.NewReadContext(eng, mustEval(t, eng, `({})`))

	var got int32
	v8serialize.GetOr(r, "x", &got, v8serialize.Int32, 123)
	assert.Equal(t, int32(123), got)
}

func TestGetOr_SubstitutesOnWrongKind(t *testing.T) {
	eng := newEngine(t)
	r := v8serialize.NewReadContext(eng, mustEval(t, eng, `({x: "nope"})`))

	var got int32
	v8serialize.GetOr(r, "x", &got, v8serialize.Int32, -1)
	assert.Equal(t, int32(-1), got)
}

func TestGetOr_UsesPresentValue(t *testing.T) {
	eng := newEngine(t)
	r := v8serialize.NewReadContext(eng, mustEval(t, eng, `({x: 5})`))

	var got int32
	v8serialize.GetOr(r, "x", &got, v8serialize.Int32, 123)
	assert.Equal(t, int32(5), got)
}

func TestSet_WritesField(t *testing.T) {
	eng := newEngine(t)
	w := v8serialize.NewWriteContext(eng, eng.NewObject())

	require.NoError(t, v8serialize.Set(w, "name", "Alice", v8serialize.String))
	require.NoError(t, v8serialize.Set(w, "count", int32(3), v8serialize.Int32))

	r := v8serialize.NewReadContext(eng, w.Object())
	var name string
	var count int32
	require.NoError(t, v8serialize.Get(r, "name", &name, v8serialize.String))
	require.NoError(t, v8serialize.Get(r, "count", &count, v8serialize.Int32))
	assert.Equal(t, "Alice", name)
	assert.Equal(t, int32(3), count)
}

func TestSet_UnboundTargetFails(t *testing.T) {
	eng := newEngine(t)
	w := v8serialize.NewWriteContext(eng, nil)

	err := v8serialize.Set(w, "name", "Alice", v8serialize.String)
	require.Error(t, err)
	assert.ErrorIs(t, err, v8serialize.ErrConversion)
}

func TestSet_NestedFailurePropagates(t *testing.T) {
	eng := newEngine(t)
	w := v8serialize.NewWriteContext(eng, eng.NewObject())

	err := v8serialize.Set(w, "p", (*int32)(nil), v8serialize.Shared(v8serialize.Int32))
	require.Error(t, err)
	assert.ErrorIs(t, err, v8serialize.ErrConversion)
}
