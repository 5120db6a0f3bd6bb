package v8serialize

// Value is an opaque handle to a dynamic value owned by an Engine. A
// handle is only meaningful to the engine that produced it.
type Value any

// Engine is the narrow surface the conversion rules need from a dynamic
// value engine. Implementations adapt a real JavaScript runtime (see the
// gojaengine subpackage); the conversion layer never manipulates engine
// internals directly.
//
// All operations are synchronous and follow the engine's own threading
// model. Extraction and construction calls must not fail by returning;
// engine-level failures are recorded in the current Scope's error flag
// instead, mirroring how a JavaScript engine reports thrown errors.
type Engine interface {
	// Kind tests.
	IsNumber(v Value) bool
	IsBoolean(v Value) bool
	IsString(v Value) bool
	IsArray(v Value) bool
	IsObject(v Value) bool
	// IsUndefined reports whether v is undefined, null, or an absent
	// property.
	IsUndefined(v Value) bool

	// Scalar extraction. Numeric accessors coerce through the engine's
	// numeric model; IntegerValue goes through the engine's
	// integer-valued-double accessor and is exact only up to 2^53.
	Int32Value(v Value) int32
	Uint32Value(v Value) uint32
	NumberValue(v Value) float64
	IntegerValue(v Value) int64
	BooleanValue(v Value) bool
	StringValue(v Value) string

	// Scalar construction.
	NewInt32(n int32) Value
	NewUint32(n uint32) Value
	NewNumber(f float64) Value
	NewBoolean(b bool) Value
	NewString(s string) Value
	Undefined() Value

	// Object operations.
	NewObject() Value
	// PropertyNames returns the object's own property names in the order
	// the engine reports them. The order is engine-defined and not
	// guaranteed stable.
	PropertyNames(obj Value) []string
	Get(obj Value, name string) Value
	Set(obj Value, name string, val Value) error

	// Array operations.
	NewArray(length int) Value
	Length(arr Value) int
	Index(arr Value, i int) Value
	SetIndex(arr Value, i int, val Value) error

	// Enter opens an execution scope around a group of engine operations.
	// Every sequence of engine calls made by a conversion rule runs inside
	// a scope; the rule checks Err before acting on results and guarantees
	// Exit on every path.
	Enter() Scope
}

// Scope is one unit of engine operations with an error flag.
type Scope interface {
	// Err reports any engine-level failure raised since the scope was
	// entered.
	Err() error
	// Exit closes the scope. Call it on every path, typically via defer.
	Exit()
}

// kindOf names the dynamic kind of v for diagnostics.
func kindOf(eng Engine, v Value) string {
	switch {
	case v == nil:
		return "nil"
	case eng.IsUndefined(v):
		return "undefined"
	case eng.IsBoolean(v):
		return "boolean"
	case eng.IsNumber(v):
		return "number"
	case eng.IsString(v):
		return "string"
	case eng.IsArray(v):
		return "array"
	case eng.IsObject(v):
		return "object"
	}
	return "unknown"
}
