package converters

import (
	"github.com/Station-Manager/errors"
	boilertypes "github.com/aarondl/sqlboiler/v4/types"
	"github.com/ericlagergren/decimal"

	"github.com/migimunz/v8serialize"
)

// Decimal converts between a dynamic value and types.Decimal. Read
// accepts a dynamic number or a numeric string; write always emits a
// string so the decimal's full precision survives the double-backed
// dynamic numeric model.
func Decimal() v8serialize.Converter[boilertypes.Decimal] {
	return v8serialize.NewConverter(
		func(eng v8serialize.Engine, v v8serialize.Value) (boilertypes.Decimal, error) {
			const op errors.Op = "converters.Decimal"
			switch {
			case eng.IsNumber(v):
				d := new(decimal.Big)
				d.SetFloat64(eng.NumberValue(v))
				return boilertypes.NewDecimal(d), nil
			case eng.IsString(v):
				s := eng.StringValue(v)
				d := new(decimal.Big)
				if _, ok := d.SetString(s); !ok {
					return boilertypes.Decimal{}, errors.New(op).Errorf("not a decimal: %q", s)
				}
				return boilertypes.NewDecimal(d), nil
			}
			return boilertypes.Decimal{}, errors.New(op).Errorf("expected number or string")
		},
		func(eng v8serialize.Engine, val boilertypes.Decimal) (v8serialize.Value, error) {
			const op errors.Op = "converters.Decimal"
			if val.Big == nil {
				return nil, errors.New(op).Msg(ErrMsgNilDecimal)
			}
			return eng.NewString(val.String()), nil
		},
	)
}
