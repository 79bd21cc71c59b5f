package coerce

import (
	"errors"
	"strconv"
)

// Representations reported on SignalFieldCoerced.
const (
	reprString = "string"
	reprInt    = "int"
	reprFloat  = "float"
	reprBool   = "bool"
)

// Int decodes key as an int.
//
// A string value is parsed with strconv.Atoi first; if the value is not a
// string or does not parse, a native integer decode is attempted.
func Int[K Key](c Container[K], key K, opts ...Option) (int, bool) {
	o := buildOptions(opts)
	return decodeInt(c, key, &o)
}

// Float64 decodes key as a float64.
//
// A string value is parsed with strconv.ParseFloat first; if the value is not
// a string or does not parse, a native number decode is attempted.
func Float64[K Key](c Container[K], key K, opts ...Option) (float64, bool) {
	o := buildOptions(opts)
	return decodeFloat(c, key, &o)
}

// Bool decodes key as a bool.
//
// A string value of exactly "true" or "false" is accepted first; otherwise a
// native boolean decode is attempted.
func Bool[K Key](c Container[K], key K, opts ...Option) (bool, bool) {
	o := buildOptions(opts)
	return decodeBool(c, key, &o)
}

// String decodes key as a string.
//
// A native string wins. Otherwise an int, float or bool value is converted to
// its canonical text: decimal digits, the shortest 'g' representation, or
// "true"/"false". Integral floats carry no fraction, so JSON 3.0 reads as "3"
// and 1e21 as "1e+21".
func String[K Key](c Container[K], key K, opts ...Option) (string, bool) {
	o := buildOptions(opts)
	return decodeString(c, key, &o)
}

// Value decodes key into a T without any coercion.
//
// Failures are reported as a *FieldError whose Cause is the decoder's own
// error. Unless Caller is set, the handler receives T's name as typeName.
func Value[T any, K Key](c Container[K], key K, opts ...Option) (T, bool) {
	o := buildOptions(opts)
	var v T
	if !decodeValue(c, key, &v, o.typeName(typeNameOf[T]()), &o) {
		var zero T
		return zero, false
	}
	return v, true
}

func present[K Key](c Container[K], key K) bool {
	return c != nil && c.Contains(key)
}

func decodeInt[K Key](c Container[K], key K, o *options) (int, bool) {
	if !present(c, key) {
		return 0, false
	}
	var s string
	if c.Decode(key, &s) == nil {
		if n, err := strconv.Atoi(s); err == nil {
			o.coerced(string(key), reprString)
			return n, true
		}
	}
	var n int
	if err := c.Decode(key, &n); err != nil {
		o.fail(newFieldError(KindTypeMismatch, key, o.caller, err), string(key))
		return 0, false
	}
	return n, true
}

func decodeFloat[K Key](c Container[K], key K, o *options) (float64, bool) {
	if !present(c, key) {
		return 0, false
	}
	var s string
	if c.Decode(key, &s) == nil {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			o.coerced(string(key), reprString)
			return f, true
		}
	}
	var f float64
	if err := c.Decode(key, &f); err != nil {
		o.fail(newFieldError(KindTypeMismatch, key, o.caller, err), string(key))
		return 0, false
	}
	return f, true
}

func decodeBool[K Key](c Container[K], key K, o *options) (bool, bool) {
	if !present(c, key) {
		return false, false
	}
	var s string
	if c.Decode(key, &s) == nil {
		if b, ok := parseBool(s); ok {
			o.coerced(string(key), reprString)
			return b, true
		}
	}
	var b bool
	if err := c.Decode(key, &b); err != nil {
		o.fail(newFieldError(KindTypeMismatch, key, o.caller, err), string(key))
		return false, false
	}
	return b, true
}

func decodeString[K Key](c Container[K], key K, o *options) (string, bool) {
	if !present(c, key) {
		return "", false
	}
	var s string
	if c.Decode(key, &s) == nil {
		return s, true
	}
	var n int
	if c.Decode(key, &n) == nil {
		o.coerced(string(key), reprInt)
		return strconv.Itoa(n), true
	}
	var f float64
	if c.Decode(key, &f) == nil {
		o.coerced(string(key), reprFloat)
		return strconv.FormatFloat(f, 'g', -1, 64), true
	}
	var b bool
	if c.Decode(key, &b) == nil {
		o.coerced(string(key), reprBool)
		return strconv.FormatBool(b), true
	}
	o.fail(newFieldError(KindTypeMismatch, key, o.caller, nil), string(key))
	return "", false
}

// decodeValue decodes key into target, a non-nil pointer.
func decodeValue[K Key](c Container[K], key K, target any, typeName string, o *options) bool {
	if !present(c, key) {
		return false
	}
	err := c.Decode(key, target)
	if err == nil {
		return true
	}
	kind := KindUnknown
	if errors.Is(err, ErrNull) {
		kind = KindTypeMismatch
	}
	o.failAs(newFieldError(kind, key, typeName, err), typeName, string(key))
	return false
}

// parseBool accepts only the JSON literals; strconv.ParseBool would also
// take "1", "t" and "TRUE".
func parseBool(s string) (bool, bool) {
	switch s {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

func (o *options) coerced(key, representation string) {
	emitFieldCoerced(o.ctx, o.caller, key, representation)
}

func (o *options) fail(err error, key string) {
	o.failAs(err, o.caller, key)
}

func (o *options) failAs(err error, typeName, key string) {
	emitFieldFailed(o.ctx, typeName, key, err)
	o.report(err, typeName, key)
}
