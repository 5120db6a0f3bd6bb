package v8serialize

import "sort"

// Slice builds the rule converting between a dynamic array and a Go slice
// of T, recursing through elem for each element. Order is preserved in
// both directions and the empty slice round-trips as an empty array. A
// failing element aborts the whole conversion; no partial slice is ever
// returned.
func Slice[T any](elem Converter[T]) Converter[[]T] {
	const op = "v8serialize.Slice"
	return Converter[[]T]{
		read: func(eng Engine, v Value) ([]T, error) {
			scope := eng.Enter()
			defer scope.Exit()
			if !eng.IsArray(v) {
				return nil, conversionErrorf(op, "expected array, got %s", kindOf(eng, v))
			}
			n := eng.Length(v)
			if err := scope.Err(); err != nil {
				return nil, wrapConversion(op, err)
			}
			out := make([]T, 0, n)
			for i := 0; i < n; i++ {
				ev := eng.Index(v, i)
				if err := scope.Err(); err != nil {
					return nil, wrapConversion(op, err)
				}
				item, err := elem.Read(eng, ev)
				if err != nil {
					return nil, wrapConversion(op, err)
				}
				out = append(out, item)
			}
			return out, nil
		},
		write: func(eng Engine, val []T) (Value, error) {
			scope := eng.Enter()
			defer scope.Exit()
			arr := eng.NewArray(len(val))
			for i, item := range val {
				dv, err := elem.Write(eng, item)
				if err != nil {
					return nil, wrapConversion(op, err)
				}
				if err := eng.SetIndex(arr, i, dv); err != nil {
					return nil, wrapConversion(op, err)
				}
			}
			if err := scope.Err(); err != nil {
				return nil, wrapConversion(op, err)
			}
			return arr, nil
		},
	}
}

// Map builds the rule converting between a dynamic object and a Go
// map[string]T, recursing through elem for each property value. Read
// enumerates the object's own property names in engine order; write
// iterates keys sorted so the produced object is deterministic. Key order
// is not part of the round-trip contract.
func Map[T any](elem Converter[T]) Converter[map[string]T] {
	const op = "v8serialize.Map"
	return Converter[map[string]T]{
		read: func(eng Engine, v Value) (map[string]T, error) {
			scope := eng.Enter()
			defer scope.Exit()
			if !eng.IsObject(v) {
				return nil, conversionErrorf(op, "expected object, got %s", kindOf(eng, v))
			}
			names := eng.PropertyNames(v)
			if err := scope.Err(); err != nil {
				return nil, wrapConversion(op, err)
			}
			out := make(map[string]T, len(names))
			for _, name := range names {
				pv := eng.Get(v, name)
				if err := scope.Err(); err != nil {
					return nil, wrapConversion(op, err)
				}
				item, err := elem.Read(eng, pv)
				if err != nil {
					return nil, wrapConversion(op, err)
				}
				out[name] = item
			}
			return out, nil
		},
		write: func(eng Engine, val map[string]T) (Value, error) {
			scope := eng.Enter()
			defer scope.Exit()
			obj := eng.NewObject()
			keys := make([]string, 0, len(val))
			for k := range val {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				dv, err := elem.Write(eng, val[k])
				if err != nil {
					return nil, wrapConversion(op, err)
				}
				if err := eng.Set(obj, k, dv); err != nil {
					return nil, wrapConversion(op, err)
				}
			}
			if err := scope.Err(); err != nil {
				return nil, wrapConversion(op, err)
			}
			return obj, nil
		},
	}
}
