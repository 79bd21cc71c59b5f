package coerce

import (
	"reflect"
	"time"
	"unicode/utf8"
)

// Decode unmarshals data into a T using the configured codec.
//
// On failure the handler is called once with a *CodecError wrapping
// ErrUnmarshal, and Decode returns the zero value and false.
func Decode[T any](data []byte, opts ...Option) (T, bool) {
	o := buildOptions(opts)
	typeName := o.typeName(typeNameOf[T]())

	start := time.Now()
	var v T
	err := o.codec.Unmarshal(data, &v)
	if err != nil {
		err = newCodecError(ErrUnmarshal, err)
	}
	emitDecodeComplete(o.ctx, o.codec.ContentType(), typeName, len(data), time.Since(start), err)

	if err != nil {
		o.report(err, typeName, "")
		var zero T
		return zero, false
	}
	return v, true
}

// Encode marshals v with the configured codec and returns the result as
// UTF-8 text.
//
// Marshal failures are reported as *CodecError wrapping ErrMarshal. Output
// that is not valid UTF-8, as produced by binary codecs, is reported as
// ErrInvalidText; use EncodeBytes for those.
func Encode[T any](v T, opts ...Option) (string, bool) {
	o := buildOptions(opts)
	data, ok := encode(&o, v)
	if !ok {
		return "", false
	}
	if !utf8.Valid(data) {
		o.report(newCodecError(ErrInvalidText, nil), o.typeName(typeNameOf[T]()), "")
		return "", false
	}
	return string(data), true
}

// EncodeBytes marshals v with the configured codec.
// Marshal failures are reported as *CodecError wrapping ErrMarshal.
func EncodeBytes[T any](v T, opts ...Option) ([]byte, bool) {
	o := buildOptions(opts)
	return encode(&o, v)
}

func encode[T any](o *options, v T) ([]byte, bool) {
	typeName := o.typeName(typeNameOf[T]())

	start := time.Now()
	data, err := o.codec.Marshal(v)
	if err != nil {
		err = newCodecError(ErrMarshal, err)
	}
	emitEncodeComplete(o.ctx, o.codec.ContentType(), typeName, len(data), time.Since(start), err)

	if err != nil {
		o.report(err, typeName, "")
		return nil, false
	}
	return data, true
}

// typeName prefers the Caller option over the given fallback.
func (o *options) typeName(fallback string) string {
	if o.caller != "" {
		return o.caller
	}
	return fallback
}

// typeNameOf returns a readable name for T, e.g. "coerce.User" or "[]int".
func typeNameOf[T any]() string {
	return reflect.TypeFor[T]().String()
}
