package converters

import (
	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"
	boilertypes "github.com/aarondl/sqlboiler/v4/types"
	"github.com/goccy/go-json"

	"github.com/migimunz/v8serialize"
)

// ParseJSON builds a dynamic value from JSON text.
func ParseJSON(eng v8serialize.Engine, data []byte) (v8serialize.Value, error) {
	const op errors.Op = "converters.ParseJSON"
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, errors.New(op).Err(err)
	}
	v, err := v8serialize.Any.Write(eng, decoded)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	return v, nil
}

// MarshalJSON renders a dynamic value as JSON text.
func MarshalJSON(eng v8serialize.Engine, v v8serialize.Value) ([]byte, error) {
	const op errors.Op = "converters.MarshalJSON"
	native, err := v8serialize.Any.Read(eng, v)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	data, err := json.Marshal(native)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	return data, nil
}

// JSON converts between an arbitrary dynamic value and raw JSON bytes.
// Read serializes whatever shape the dynamic value has; write parses the
// bytes back into a dynamic value. Empty bytes write as undefined.
func JSON() v8serialize.Converter[boilertypes.JSON] {
	return v8serialize.NewConverter(
		func(eng v8serialize.Engine, v v8serialize.Value) (boilertypes.JSON, error) {
			data, err := MarshalJSON(eng, v)
			if err != nil {
				return nil, err
			}
			return boilertypes.JSON(data), nil
		},
		func(eng v8serialize.Engine, val boilertypes.JSON) (v8serialize.Value, error) {
			if len(val) == 0 {
				return eng.Undefined(), nil
			}
			return ParseJSON(eng, val)
		},
	)
}

// NullJSON is JSON through null.JSON: an absent dynamic value reads as
// the invalid null, and an invalid value writes as undefined.
func NullJSON() v8serialize.Converter[null.JSON] {
	return v8serialize.NewConverter(
		func(eng v8serialize.Engine, v v8serialize.Value) (null.JSON, error) {
			if isAbsent(eng, v) {
				return null.JSON{}, nil
			}
			data, err := MarshalJSON(eng, v)
			if err != nil {
				return null.JSON{}, err
			}
			return null.JSONFrom(data), nil
		},
		func(eng v8serialize.Engine, val null.JSON) (v8serialize.Value, error) {
			if !val.Valid || len(val.JSON) == 0 {
				return eng.Undefined(), nil
			}
			return ParseJSON(eng, val.JSON)
		},
	)
}
