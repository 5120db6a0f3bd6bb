package v8serialize

// Converter is the conversion rule bound to a native type T: one read
// operation (dynamic value to T) and one write operation (T to dynamic
// value). Exactly one rule applies per type in a conversion graph, chosen
// at the call site at compile time. Container rules hold their element's
// rule and recurse through it.
type Converter[T any] struct {
	read  func(eng Engine, v Value) (T, error)
	write func(eng Engine, val T) (Value, error)
}

// NewConverter builds a custom conversion rule from a read and a write
// function. Most callers use the built-in rules or the Object bridge
// instead; NewConverter is for types whose dynamic shape is not an object
// of named fields.
func NewConverter[T any](read func(Engine, Value) (T, error), write func(Engine, T) (Value, error)) Converter[T] {
	return Converter[T]{read: read, write: write}
}

// Read converts a dynamic value into a native T.
func (c Converter[T]) Read(eng Engine, v Value) (T, error) {
	if c.read == nil {
		var zero T
		return zero, conversionErrorf("v8serialize.Converter.Read", "no read rule bound for %T", zero)
	}
	return c.read(eng, v)
}

// Write converts a native T into a dynamic value.
func (c Converter[T]) Write(eng Engine, val T) (Value, error) {
	if c.write == nil {
		return nil, conversionErrorf("v8serialize.Converter.Write", "no write rule bound for %T", val)
	}
	return c.write(eng, val)
}

// FromDynamic converts a dynamic value into a native T using conv. Any
// failure, whether raised by a rule or reported by the engine during the
// call, surfaces as a *ConversionError; on error the returned T is the
// zero value and must not be used.
func FromDynamic[T any](eng Engine, v Value, conv Converter[T]) (T, error) {
	const op = "v8serialize.FromDynamic"
	var zero T
	scope := eng.Enter()
	defer scope.Exit()
	out, err := conv.Read(eng, v)
	if err != nil {
		return zero, wrapConversion(op, err)
	}
	if err := scope.Err(); err != nil {
		return zero, wrapConversion(op, err)
	}
	return out, nil
}

// ToDynamic converts a native T into a dynamic value using conv, with the
// same error normalization as FromDynamic.
func ToDynamic[T any](eng Engine, val T, conv Converter[T]) (Value, error) {
	const op = "v8serialize.ToDynamic"
	scope := eng.Enter()
	defer scope.Exit()
	out, err := conv.Write(eng, val)
	if err != nil {
		return nil, wrapConversion(op, err)
	}
	if err := scope.Err(); err != nil {
		return nil, wrapConversion(op, err)
	}
	return out, nil
}
