// Package converters provides ready-made conversion rules for common
// database-facing Go types: nullable wrappers, raw JSON, decimals, and
// date/time strings.
package converters

import (
	"github.com/migimunz/v8serialize"
)

const (
	ErrMsgBadDateFormat = "bad date format"
	ErrMsgBadTimeFormat = "bad time format"
	ErrMsgNilDecimal    = "decimal has no value"
)

// isAbsent reports whether v reads as a missing value (nil handle,
// undefined, or null).
func isAbsent(eng v8serialize.Engine, v v8serialize.Value) bool {
	return v == nil || eng.IsUndefined(v)
}
