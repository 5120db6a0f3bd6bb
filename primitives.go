package v8serialize

// Built-in rules for the primitive types. Reads verify the dynamic kind
// and extract through the narrowest accessor the engine offers: 16/32-bit
// integers go through the 32-bit accessors and truncate, 64-bit integers
// through the integer-valued-double accessor (exact up to 2^53). Writes
// construct the dynamic representation directly.

// Int16 converts between a dynamic number and int16.
var Int16 = Converter[int16]{
	read: func(eng Engine, v Value) (int16, error) {
		if !eng.IsNumber(v) {
			return 0, conversionErrorf("v8serialize.Int16", "expected number, got %s", kindOf(eng, v))
		}
		return int16(eng.Int32Value(v)), nil
	},
	write: func(eng Engine, val int16) (Value, error) {
		return eng.NewInt32(int32(val)), nil
	},
}

// Uint16 converts between a dynamic number and uint16.
var Uint16 = Converter[uint16]{
	read: func(eng Engine, v Value) (uint16, error) {
		if !eng.IsNumber(v) {
			return 0, conversionErrorf("v8serialize.Uint16", "expected number, got %s", kindOf(eng, v))
		}
		return uint16(eng.Uint32Value(v)), nil
	},
	write: func(eng Engine, val uint16) (Value, error) {
		return eng.NewUint32(uint32(val)), nil
	},
}

// Int32 converts between a dynamic number and int32.
var Int32 = Converter[int32]{
	read: func(eng Engine, v Value) (int32, error) {
		if !eng.IsNumber(v) {
			return 0, conversionErrorf("v8serialize.Int32", "expected number, got %s", kindOf(eng, v))
		}
		return eng.Int32Value(v), nil
	},
	write: func(eng Engine, val int32) (Value, error) {
		return eng.NewInt32(val), nil
	},
}

// Uint32 converts between a dynamic number and uint32.
var Uint32 = Converter[uint32]{
	read: func(eng Engine, v Value) (uint32, error) {
		if !eng.IsNumber(v) {
			return 0, conversionErrorf("v8serialize.Uint32", "expected number, got %s", kindOf(eng, v))
		}
		return eng.Uint32Value(v), nil
	},
	write: func(eng Engine, val uint32) (Value, error) {
		return eng.NewUint32(val), nil
	},
}

// Int64 converts between a dynamic number and int64. The dynamic side is
// double-backed: magnitudes beyond 2^53 round-trip lossily.
var Int64 = Converter[int64]{
	read: func(eng Engine, v Value) (int64, error) {
		if !eng.IsNumber(v) {
			return 0, conversionErrorf("v8serialize.Int64", "expected number, got %s", kindOf(eng, v))
		}
		return eng.IntegerValue(v), nil
	},
	write: func(eng Engine, val int64) (Value, error) {
		return eng.NewNumber(float64(val)), nil
	},
}

// Uint64 converts between a dynamic number and uint64, with the same
// 2^53 fidelity boundary as Int64.
var Uint64 = Converter[uint64]{
	read: func(eng Engine, v Value) (uint64, error) {
		if !eng.IsNumber(v) {
			return 0, conversionErrorf("v8serialize.Uint64", "expected number, got %s", kindOf(eng, v))
		}
		return uint64(eng.IntegerValue(v)), nil
	},
	write: func(eng Engine, val uint64) (Value, error) {
		return eng.NewNumber(float64(val)), nil
	},
}

// Float32 converts between a dynamic number and float32.
var Float32 = Converter[float32]{
	read: func(eng Engine, v Value) (float32, error) {
		if !eng.IsNumber(v) {
			return 0, conversionErrorf("v8serialize.Float32", "expected number, got %s", kindOf(eng, v))
		}
		return float32(eng.NumberValue(v)), nil
	},
	write: func(eng Engine, val float32) (Value, error) {
		return eng.NewNumber(float64(val)), nil
	},
}

// Float64 converts between a dynamic number and float64.
var Float64 = Converter[float64]{
	read: func(eng Engine, v Value) (float64, error) {
		if !eng.IsNumber(v) {
			return 0, conversionErrorf("v8serialize.Float64", "expected number, got %s", kindOf(eng, v))
		}
		return eng.NumberValue(v), nil
	},
	write: func(eng Engine, val float64) (Value, error) {
		return eng.NewNumber(val), nil
	},
}

// Bool converts between a dynamic boolean and bool. Numbers are not
// coerced; a dynamic number read as Bool is a conversion error.
var Bool = Converter[bool]{
	read: func(eng Engine, v Value) (bool, error) {
		if !eng.IsBoolean(v) {
			return false, conversionErrorf("v8serialize.Bool", "expected boolean, got %s", kindOf(eng, v))
		}
		return eng.BooleanValue(v), nil
	},
	write: func(eng Engine, val bool) (Value, error) {
		return eng.NewBoolean(val), nil
	},
}

// String converts between a dynamic string and a Go string (UTF-8).
var String = Converter[string]{
	read: func(eng Engine, v Value) (string, error) {
		if !eng.IsString(v) {
			return "", conversionErrorf("v8serialize.String", "expected string, got %s", kindOf(eng, v))
		}
		return eng.StringValue(v), nil
	},
	write: func(eng Engine, val string) (Value, error) {
		return eng.NewString(val), nil
	},
}
