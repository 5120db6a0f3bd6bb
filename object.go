package v8serialize

// Loadable is implemented by user-defined types that populate themselves
// from a dynamic value. LoadDynamic declares the type's dynamic shape
// explicitly by pulling each field through the context.
type Loadable interface {
	LoadDynamic(r *ReadContext) error
}

// Savable is implemented by user-defined types that write themselves into
// a dynamic object. SaveDynamic must not mutate the receiver's logical
// state; it runs on a copy when invoked through the Object rule.
type Savable interface {
	SaveDynamic(w *WriteContext) error
}

// Object builds the rule for a user-defined type T whose pointer type
// implements Loadable and Savable. Read wraps the dynamic value in a
// ReadContext and invokes LoadDynamic on a zero T; write creates a fresh
// dynamic object, wraps it in a WriteContext, invokes SaveDynamic, and
// returns the populated object.
//
// Instantiate with both parameters: Object[Person, *Person]().
func Object[T any, P interface {
	*T
	Loadable
	Savable
}]() Converter[T] {
	const op = "v8serialize.Object"
	return Converter[T]{
		read: func(eng Engine, v Value) (T, error) {
			var out T
			r := &ReadContext{eng: eng, val: v}
			if err := P(&out).LoadDynamic(r); err != nil {
				var zero T
				return zero, wrapConversion(op, err)
			}
			return out, nil
		},
		write: func(eng Engine, val T) (Value, error) {
			scope := eng.Enter()
			defer scope.Exit()
			obj := eng.NewObject()
			if err := scope.Err(); err != nil {
				return nil, wrapConversion(op, err)
			}
			w := &WriteContext{eng: eng, obj: obj}
			if err := P(&val).SaveDynamic(w); err != nil {
				return nil, wrapConversion(op, err)
			}
			if err := scope.Err(); err != nil {
				return nil, wrapConversion(op, err)
			}
			return obj, nil
		},
	}
}

// Shared builds the rule converting through a shared-ownership pointer to
// T. Read allocates a fresh T, converts into it via elem, and returns the
// sole pointer to it; sharing after that point follows normal Go pointer
// semantics. Write dereferences and converts the pointee; the pointer
// itself contributes nothing to the dynamic form, so aliasing among
// native values is deliberately lost on a round trip. A nil pointer on
// write is a conversion error.
func Shared[T any](elem Converter[T]) Converter[*T] {
	const op = "v8serialize.Shared"
	return Converter[*T]{
		read: func(eng Engine, v Value) (*T, error) {
			item, err := elem.Read(eng, v)
			if err != nil {
				return nil, wrapConversion(op, err)
			}
			out := new(T)
			*out = item
			return out, nil
		},
		write: func(eng Engine, val *T) (Value, error) {
			if val == nil {
				return nil, conversionErrorf(op, "nil pointer")
			}
			return elem.Write(eng, *val)
		},
	}
}
