// Package gojaengine adapts a goja JavaScript runtime to the
// v8serialize.Engine interface.
package gojaengine

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/dop251/goja"

	"github.com/migimunz/v8serialize"
)

// Engine wraps a *goja.Runtime as a v8serialize.Engine. Value handles are
// goja.Value; handles from a different runtime are an engine-level
// failure reported through the scope error flag.
//
// goja reports runtime failures by panicking with the thrown JavaScript
// error. Every operation that enters the runtime recovers such panics and
// records the first one in the current scope's error flag, so conversion
// rules observe engine failures the same way they would a v8 TryCatch.
//
// The engine follows goja's threading model: use it only from the
// goroutine driving the runtime.
type Engine struct {
	rt   *goja.Runtime
	flag error
}

var _ v8serialize.Engine = (*Engine)(nil)

// New creates an engine with a fresh goja runtime.
func New() *Engine { return &Engine{rt: goja.New()} }

// Wrap adapts an existing runtime.
func Wrap(rt *goja.Runtime) *Engine { return &Engine{rt: rt} }

// Runtime exposes the underlying goja runtime.
func (e *Engine) Runtime() *goja.Runtime { return e.rt }

// Eval runs a JavaScript expression and returns its result as a value
// handle. Wrap object literals in parentheses: `({a: 1})`.
func (e *Engine) Eval(src string) (v8serialize.Value, error) {
	v, err := e.rt.RunString(src)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (e *Engine) fail(err error) {
	if e.flag == nil {
		e.flag = err
	}
}

// guard runs fn, converting a goja panic into the scope error flag.
func (e *Engine) guard(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok {
				e.fail(err)
				return
			}
			e.fail(fmt.Errorf("gojaengine: %v", r))
		}
	}()
	fn()
}

func (e *Engine) value(v v8serialize.Value) goja.Value {
	if v == nil {
		return goja.Undefined()
	}
	if gv, ok := v.(goja.Value); ok {
		return gv
	}
	e.fail(fmt.Errorf("gojaengine: foreign value handle %T", v))
	return goja.Undefined()
}

func (e *Engine) object(v v8serialize.Value) *goja.Object {
	if obj, ok := v.(*goja.Object); ok {
		return obj
	}
	e.fail(fmt.Errorf("gojaengine: value handle is not an object (%T)", v))
	return nil
}

// --- kind tests ---

var (
	int64Type   = reflect.TypeOf(int64(0))
	float64Type = reflect.TypeOf(float64(0))
	boolType    = reflect.TypeOf(true)
	stringType  = reflect.TypeOf("")
)

func (e *Engine) IsNumber(v v8serialize.Value) bool {
	gv, ok := v.(goja.Value)
	if !ok || gv == nil {
		return false
	}
	if _, isObj := gv.(*goja.Object); isObj {
		return false
	}
	t := gv.ExportType()
	return t == int64Type || t == float64Type
}

func (e *Engine) IsBoolean(v v8serialize.Value) bool {
	gv, ok := v.(goja.Value)
	if !ok || gv == nil {
		return false
	}
	if _, isObj := gv.(*goja.Object); isObj {
		return false
	}
	return gv.ExportType() == boolType
}

func (e *Engine) IsString(v v8serialize.Value) bool {
	gv, ok := v.(goja.Value)
	if !ok || gv == nil {
		return false
	}
	if _, isObj := gv.(*goja.Object); isObj {
		return false
	}
	return gv.ExportType() == stringType
}

func (e *Engine) IsArray(v v8serialize.Value) bool {
	obj, ok := v.(*goja.Object)
	return ok && obj.ClassName() == "Array"
}

// IsObject reports any object, arrays included; JavaScript arrays are
// object-like and enumerable by property name.
func (e *Engine) IsObject(v v8serialize.Value) bool {
	_, ok := v.(*goja.Object)
	return ok
}

// IsUndefined reports undefined, null, and nil handles: all three read as
// an absent value.
func (e *Engine) IsUndefined(v v8serialize.Value) bool {
	if v == nil {
		return true
	}
	gv, ok := v.(goja.Value)
	if !ok {
		return false
	}
	return goja.IsUndefined(gv) || goja.IsNull(gv)
}

// --- scalar extraction ---

func (e *Engine) Int32Value(v v8serialize.Value) int32 {
	var n int64
	e.guard(func() { n = e.value(v).ToInteger() })
	return int32(n)
}

func (e *Engine) Uint32Value(v v8serialize.Value) uint32 {
	var n int64
	e.guard(func() { n = e.value(v).ToInteger() })
	return uint32(n)
}

func (e *Engine) NumberValue(v v8serialize.Value) float64 {
	var f float64
	e.guard(func() { f = e.value(v).ToFloat() })
	return f
}

func (e *Engine) IntegerValue(v v8serialize.Value) int64 {
	var n int64
	e.guard(func() { n = e.value(v).ToInteger() })
	return n
}

func (e *Engine) BooleanValue(v v8serialize.Value) bool {
	var b bool
	e.guard(func() { b = e.value(v).ToBoolean() })
	return b
}

func (e *Engine) StringValue(v v8serialize.Value) string {
	var s string
	e.guard(func() { s = e.value(v).String() })
	return s
}

// --- scalar construction ---

func (e *Engine) NewInt32(n int32) v8serialize.Value   { return e.rt.ToValue(n) }
func (e *Engine) NewUint32(n uint32) v8serialize.Value { return e.rt.ToValue(n) }
func (e *Engine) NewNumber(f float64) v8serialize.Value {
	return e.rt.ToValue(f)
}
func (e *Engine) NewBoolean(b bool) v8serialize.Value  { return e.rt.ToValue(b) }
func (e *Engine) NewString(s string) v8serialize.Value { return e.rt.ToValue(s) }
func (e *Engine) Undefined() v8serialize.Value         { return goja.Undefined() }

// --- object operations ---

func (e *Engine) NewObject() v8serialize.Value { return e.rt.NewObject() }

func (e *Engine) PropertyNames(obj v8serialize.Value) []string {
	var names []string
	e.guard(func() {
		if o := e.object(obj); o != nil {
			names = o.Keys()
		}
	})
	return names
}

func (e *Engine) Get(obj v8serialize.Value, name string) v8serialize.Value {
	var out goja.Value = goja.Undefined()
	e.guard(func() {
		o := e.object(obj)
		if o == nil {
			return
		}
		if v := o.Get(name); v != nil {
			out = v
		}
	})
	return out
}

func (e *Engine) Set(obj v8serialize.Value, name string, val v8serialize.Value) error {
	var err error
	e.guard(func() {
		o := e.object(obj)
		if o == nil {
			err = fmt.Errorf("gojaengine: set %q on non-object", name)
			return
		}
		err = o.Set(name, e.value(val))
	})
	return err
}

// --- array operations ---

func (e *Engine) NewArray(length int) v8serialize.Value {
	var arr *goja.Object
	e.guard(func() {
		arr = e.rt.NewArray()
		if length > 0 {
			_ = arr.Set("length", length)
		}
	})
	return arr
}

func (e *Engine) Length(arr v8serialize.Value) int {
	var n int64
	e.guard(func() {
		o := e.object(arr)
		if o == nil {
			return
		}
		if lv := o.Get("length"); lv != nil {
			n = lv.ToInteger()
		}
	})
	return int(n)
}

func (e *Engine) Index(arr v8serialize.Value, i int) v8serialize.Value {
	return e.Get(arr, strconv.Itoa(i))
}

func (e *Engine) SetIndex(arr v8serialize.Value, i int, val v8serialize.Value) error {
	return e.Set(arr, strconv.Itoa(i), val)
}

// --- scope ---

type scope struct {
	eng  *Engine
	prev error
}

// Enter opens an error-flag unit. Exit restores the enclosing unit's
// flag, discarding anything raised inside; callers check Err before
// exiting, as the conversion rules do.
func (e *Engine) Enter() v8serialize.Scope {
	s := &scope{eng: e, prev: e.flag}
	e.flag = nil
	return s
}

func (s *scope) Err() error { return s.eng.flag }

func (s *scope) Exit() { s.eng.flag = s.prev }
