package converters

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/migimunz/v8serialize"
	"github.com/migimunz/v8serialize/gojaengine"
)

func newEngine(t *testing.T) *gojaengine.Engine {
	t.Helper()
	return gojaengine.New()
}

func mustEval(t *testing.T, eng *gojaengine.Engine, src string) v8serialize.Value {
	t.Helper()
	v, err := eng.Eval(src)
	require.NoError(t, err)
	return v
}
