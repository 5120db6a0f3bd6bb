package v8serialize

import (
	"errors"
	"fmt"
)

// ErrConversion is the sentinel every conversion failure unwraps to.
// Use errors.Is(err, ErrConversion) to detect a failed conversion.
var ErrConversion = errors.New("conversion failed")

// ConversionError is the single failure kind raised at the conversion
// boundary: dynamic kind mismatch, missing required field, nested rule
// failure, engine-reported failure, or an unbound write target.
type ConversionError struct {
	Op    string // call site that raised the error, e.g. "v8serialize.Slice"
	Msg   string // optional diagnostic
	Cause error  // underlying failure, if any
}

func (e *ConversionError) Error() string {
	switch {
	case e.Msg != "" && e.Cause != nil:
		return fmt.Sprintf("%s: %s: %s: %v", e.Op, ErrConversion.Error(), e.Msg, e.Cause)
	case e.Msg != "":
		return fmt.Sprintf("%s: %s: %s", e.Op, ErrConversion.Error(), e.Msg)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, ErrConversion.Error(), e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Op, ErrConversion.Error())
}

func (e *ConversionError) Unwrap() error { return ErrConversion }

func conversionErrorf(op, format string, args ...any) error {
	return &ConversionError{Op: op, Msg: fmt.Sprintf(format, args...)}
}

// wrapConversion normalizes err into a *ConversionError. Errors that are
// already conversion errors pass through unchanged so the innermost Op is
// preserved.
func wrapConversion(op string, err error) error {
	if err == nil {
		return nil
	}
	var ce *ConversionError
	if errors.As(err, &ce) {
		return err
	}
	return &ConversionError{Op: op, Cause: err}
}
