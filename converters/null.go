package converters

import (
	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"

	"github.com/migimunz/v8serialize"
)

// The null converters map JavaScript undefined/null to the invalid null
// value and back: an absent property reads as null, and a null value
// writes back as undefined so the property is simply not meaningful on
// the dynamic side. Pair them with GetOr and a zero default for fields
// that may be missing; Get treats an absent property as an error before
// any rule runs.

// NullString converts between a dynamic string and null.String.
func NullString() v8serialize.Converter[null.String] {
	return v8serialize.NewConverter(
		func(eng v8serialize.Engine, v v8serialize.Value) (null.String, error) {
			const op errors.Op = "converters.NullString"
			if isAbsent(eng, v) {
				return null.String{}, nil
			}
			s, err := v8serialize.String.Read(eng, v)
			if err != nil {
				return null.String{}, errors.New(op).Err(err)
			}
			return null.StringFrom(s), nil
		},
		func(eng v8serialize.Engine, val null.String) (v8serialize.Value, error) {
			if !val.Valid {
				return eng.Undefined(), nil
			}
			return v8serialize.String.Write(eng, val.String)
		},
	)
}

// NullInt32 converts between a dynamic number and null.Int32.
func NullInt32() v8serialize.Converter[null.Int32] {
	return v8serialize.NewConverter(
		func(eng v8serialize.Engine, v v8serialize.Value) (null.Int32, error) {
			const op errors.Op = "converters.NullInt32"
			if isAbsent(eng, v) {
				return null.Int32{}, nil
			}
			n, err := v8serialize.Int32.Read(eng, v)
			if err != nil {
				return null.Int32{}, errors.New(op).Err(err)
			}
			return null.Int32From(n), nil
		},
		func(eng v8serialize.Engine, val null.Int32) (v8serialize.Value, error) {
			if !val.Valid {
				return eng.Undefined(), nil
			}
			return v8serialize.Int32.Write(eng, val.Int32)
		},
	)
}

// NullInt64 converts between a dynamic number and null.Int64, with the
// same 2^53 fidelity boundary as the Int64 rule.
func NullInt64() v8serialize.Converter[null.Int64] {
	return v8serialize.NewConverter(
		func(eng v8serialize.Engine, v v8serialize.Value) (null.Int64, error) {
			const op errors.Op = "converters.NullInt64"
			if isAbsent(eng, v) {
				return null.Int64{}, nil
			}
			n, err := v8serialize.Int64.Read(eng, v)
			if err != nil {
				return null.Int64{}, errors.New(op).Err(err)
			}
			return null.Int64From(n), nil
		},
		func(eng v8serialize.Engine, val null.Int64) (v8serialize.Value, error) {
			if !val.Valid {
				return eng.Undefined(), nil
			}
			return v8serialize.Int64.Write(eng, val.Int64)
		},
	)
}

// NullFloat64 converts between a dynamic number and null.Float64.
func NullFloat64() v8serialize.Converter[null.Float64] {
	return v8serialize.NewConverter(
		func(eng v8serialize.Engine, v v8serialize.Value) (null.Float64, error) {
			const op errors.Op = "converters.NullFloat64"
			if isAbsent(eng, v) {
				return null.Float64{}, nil
			}
			f, err := v8serialize.Float64.Read(eng, v)
			if err != nil {
				return null.Float64{}, errors.New(op).Err(err)
			}
			return null.Float64From(f), nil
		},
		func(eng v8serialize.Engine, val null.Float64) (v8serialize.Value, error) {
			if !val.Valid {
				return eng.Undefined(), nil
			}
			return v8serialize.Float64.Write(eng, val.Float64)
		},
	)
}

// NullBool converts between a dynamic boolean and null.Bool.
func NullBool() v8serialize.Converter[null.Bool] {
	return v8serialize.NewConverter(
		func(eng v8serialize.Engine, v v8serialize.Value) (null.Bool, error) {
			const op errors.Op = "converters.NullBool"
			if isAbsent(eng, v) {
				return null.Bool{}, nil
			}
			b, err := v8serialize.Bool.Read(eng, v)
			if err != nil {
				return null.Bool{}, errors.New(op).Err(err)
			}
			return null.BoolFrom(b), nil
		},
		func(eng v8serialize.Engine, val null.Bool) (v8serialize.Value, error) {
			if !val.Valid {
				return eng.Undefined(), nil
			}
			return v8serialize.Bool.Write(eng, val.Bool)
		},
	)
}
