package v8serialize

// ReadContext wraps one dynamic value for the duration of a user type's
// LoadDynamic call. It is created per load and discarded after; do not
// retain one.
type ReadContext struct {
	eng Engine
	val Value
}

// NewReadContext wraps a dynamic value for field access. LoadDynamic
// implementations receive a ready-made context and normally never call
// this themselves.
func NewReadContext(eng Engine, v Value) *ReadContext {
	return &ReadContext{eng: eng, val: v}
}

// Engine returns the engine the wrapped value belongs to.
func (r *ReadContext) Engine() Engine { return r.eng }

// Value returns the wrapped dynamic value.
func (r *ReadContext) Value() Value { return r.val }

// WriteContext wraps one freshly created dynamic object for the duration
// of a user type's SaveDynamic call.
type WriteContext struct {
	eng Engine
	obj Value
}

// NewWriteContext wraps a dynamic object as a write target. SaveDynamic
// implementations receive a ready-made context and normally never call
// this themselves.
func NewWriteContext(eng Engine, obj Value) *WriteContext {
	return &WriteContext{eng: eng, obj: obj}
}

// Engine returns the engine the target object belongs to.
func (w *WriteContext) Engine() Engine { return w.eng }

// Object returns the dynamic object being populated.
func (w *WriteContext) Object() Value { return w.obj }

// Generic accessors are top-level functions (methods cannot have type
// parameters yet).

// Get converts the named property of the wrapped value into *dst using
// conv. It fails with a *ConversionError when the wrapped value is not
// object-like, the property is absent or undefined, or the nested
// conversion fails; *dst is left untouched on failure.
func Get[T any](r *ReadContext, name string, dst *T, conv Converter[T]) error {
	const op = "v8serialize.Get"
	scope := r.eng.Enter()
	defer scope.Exit()
	if !eitherObject(r.eng, r.val) {
		return conversionErrorf(op, "field %q: expected object, got %s", name, kindOf(r.eng, r.val))
	}
	child := r.eng.Get(r.val, name)
	if err := scope.Err(); err != nil {
		return wrapConversion(op, err)
	}
	if r.eng.IsUndefined(child) {
		return conversionErrorf(op, "missing required field %q", name)
	}
	out, err := conv.Read(r.eng, child)
	if err != nil {
		return wrapConversion(op, err)
	}
	if err := scope.Err(); err != nil {
		return wrapConversion(op, err)
	}
	*dst = out
	return nil
}

// GetOr is Get with a default: any failure on the required path is
// swallowed and def is assigned instead. This is the only place in the
// package where a conversion failure does not propagate.
func GetOr[T any](r *ReadContext, name string, dst *T, conv Converter[T], def T) {
	if err := Get(r, name, dst, conv); err != nil {
		*dst = def
	}
}

// Set converts val using conv and assigns it to the named property of the
// target object. It fails with a *ConversionError when the target handle
// is not bound, the nested conversion fails, or the engine flags a
// failure while materializing the value.
func Set[T any](w *WriteContext, name string, val T, conv Converter[T]) error {
	const op = "v8serialize.Set"
	if w == nil || w.obj == nil {
		return conversionErrorf(op, "field %q: write target not bound", name)
	}
	scope := w.eng.Enter()
	defer scope.Exit()
	dv, err := conv.Write(w.eng, val)
	if err != nil {
		return wrapConversion(op, err)
	}
	if err := w.eng.Set(w.obj, name, dv); err != nil {
		return wrapConversion(op, err)
	}
	if err := scope.Err(); err != nil {
		return wrapConversion(op, err)
	}
	return nil
}

func eitherObject(eng Engine, v Value) bool {
	return eng.IsObject(v) || eng.IsArray(v)
}
