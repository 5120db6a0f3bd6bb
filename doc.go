// Package v8serialize converts values between a JavaScript engine's dynamic
// representation and statically typed Go values.
//
// A conversion rule for a type T is a Converter[T] value. Rules for the
// primitive types are package variables (Int32, Float64, String, ...),
// rules for containers are built from their element rule (Slice, Map), and
// user-defined struct types join in by implementing Loadable and Savable
// and using the Object rule. Selecting a rule happens at compile time: a
// type without a rule is a type error at the call site, never a runtime
// lookup failure.
//
// # Basic Usage
//
//	eng := gojaengine.New()
//	val, _ := eng.Eval(`({name: "Alice", age: 30, tags: ["a", "b"]})`)
//
//	person, err := v8serialize.FromDynamic(eng, val, v8serialize.Object[Person, *Person]())
//	out, err := v8serialize.ToDynamic(eng, person, v8serialize.Object[Person, *Person]())
//
// # User Types
//
// A user type declares its dynamic shape explicitly in LoadDynamic and
// SaveDynamic; there is no reflection and no automatic field enumeration:
//
//	type Person struct {
//	    Name string
//	    Age  int32
//	    Tags []string
//	}
//
//	func (p *Person) LoadDynamic(r *v8serialize.ReadContext) error {
//	    if err := v8serialize.Get(r, "name", &p.Name, v8serialize.String); err != nil {
//	        return err
//	    }
//	    v8serialize.GetOr(r, "age", &p.Age, v8serialize.Int32, 0)
//	    return v8serialize.Get(r, "tags", &p.Tags, v8serialize.Slice(v8serialize.String))
//	}
//
//	func (p *Person) SaveDynamic(w *v8serialize.WriteContext) error {
//	    if err := v8serialize.Set(w, "name", p.Name, v8serialize.String); err != nil {
//	        return err
//	    }
//	    if err := v8serialize.Set(w, "age", p.Age, v8serialize.Int32); err != nil {
//	        return err
//	    }
//	    return v8serialize.Set(w, "tags", p.Tags, v8serialize.Slice(v8serialize.String))
//	}
//
// # Errors
//
// Every failure surfaces as *ConversionError and matches ErrConversion with
// errors.Is. A failed conversion yields no partial result. The only place a
// failure is swallowed is GetOr, which substitutes the caller's default.
//
// # Numeric Fidelity
//
// The dynamic representation backs all numbers with float64. 64-bit
// integers therefore round-trip exactly only up to 2^53; larger magnitudes
// lose precision. This mirrors the engine's own numeric model and is not
// papered over.
//
// # Engines
//
// The package talks to the JavaScript engine through the narrow Engine
// interface. The gojaengine subpackage adapts github.com/dop251/goja.
// Everything is synchronous and single-threaded per the engine's own
// threading model; values and contexts must not be shared across
// goroutines.
package v8serialize
