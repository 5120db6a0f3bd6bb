package v8serialize

import "sort"

// Any converts between a dynamic value and plain Go values, picking the
// shape from the dynamic kind on read and from the Go type on write:
// number <-> float64 (and the other Go numeric types on write), boolean
// <-> bool, string <-> string, array <-> []any, object <-> map[string]any,
// undefined <-> nil. It is the escape hatch for values whose shape is not
// known at compile time; the JSON bridge in the converters subpackage is
// built on it.
var Any = Converter[any]{read: readAny, write: writeAny}

func readAny(eng Engine, v Value) (any, error) {
	const op = "v8serialize.Any"
	switch {
	case v == nil || eng.IsUndefined(v):
		return nil, nil
	case eng.IsBoolean(v):
		return eng.BooleanValue(v), nil
	case eng.IsNumber(v):
		return eng.NumberValue(v), nil
	case eng.IsString(v):
		return eng.StringValue(v), nil
	case eng.IsArray(v):
		scope := eng.Enter()
		defer scope.Exit()
		n := eng.Length(v)
		out := make([]any, 0, n)
		for i := 0; i < n; i++ {
			item, err := readAny(eng, eng.Index(v, i))
			if err != nil {
				return nil, err
			}
			out = append(out, item)
		}
		if err := scope.Err(); err != nil {
			return nil, wrapConversion(op, err)
		}
		return out, nil
	case eng.IsObject(v):
		scope := eng.Enter()
		defer scope.Exit()
		names := eng.PropertyNames(v)
		out := make(map[string]any, len(names))
		for _, name := range names {
			item, err := readAny(eng, eng.Get(v, name))
			if err != nil {
				return nil, err
			}
			out[name] = item
		}
		if err := scope.Err(); err != nil {
			return nil, wrapConversion(op, err)
		}
		return out, nil
	}
	return nil, conversionErrorf(op, "unsupported dynamic kind")
}

func writeAny(eng Engine, val any) (Value, error) {
	const op = "v8serialize.Any"
	switch t := val.(type) {
	case nil:
		return eng.Undefined(), nil
	case bool:
		return eng.NewBoolean(t), nil
	case float64:
		return eng.NewNumber(t), nil
	case float32:
		return eng.NewNumber(float64(t)), nil
	case int:
		return eng.NewNumber(float64(t)), nil
	case int16:
		return eng.NewInt32(int32(t)), nil
	case int32:
		return eng.NewInt32(t), nil
	case int64:
		return eng.NewNumber(float64(t)), nil
	case uint16:
		return eng.NewUint32(uint32(t)), nil
	case uint32:
		return eng.NewUint32(t), nil
	case uint64:
		return eng.NewNumber(float64(t)), nil
	case string:
		return eng.NewString(t), nil
	case []any:
		scope := eng.Enter()
		defer scope.Exit()
		arr := eng.NewArray(len(t))
		for i, item := range t {
			dv, err := writeAny(eng, item)
			if err != nil {
				return nil, err
			}
			if err := eng.SetIndex(arr, i, dv); err != nil {
				return nil, wrapConversion(op, err)
			}
		}
		if err := scope.Err(); err != nil {
			return nil, wrapConversion(op, err)
		}
		return arr, nil
	case map[string]any:
		scope := eng.Enter()
		defer scope.Exit()
		obj := eng.NewObject()
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			dv, err := writeAny(eng, t[k])
			if err != nil {
				return nil, err
			}
			if err := eng.Set(obj, k, dv); err != nil {
				return nil, wrapConversion(op, err)
			}
		}
		if err := scope.Err(); err != nil {
			return nil, wrapConversion(op, err)
		}
		return obj, nil
	}
	return nil, conversionErrorf(op, "unsupported native type %T", val)
}
