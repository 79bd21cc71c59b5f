package coerce

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrKeyNotFound indicates the requested key is not present.
	ErrKeyNotFound = errors.New("key not found")

	// ErrTypeMismatch indicates a present value could not be converted to the
	// expected type by any attempted coercion.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrUnknown indicates a field failure the decoder could not classify.
	ErrUnknown = errors.New("unknown field error")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")

	// ErrInvalidText indicates encoded output is not valid UTF-8 text.
	ErrInvalidText = errors.New("output is not valid utf-8")

	// ErrNotObject indicates a document parsed by Parse is not an object.
	ErrNotObject = errors.New("not an object")

	// ErrNotObjectCodec indicates the configured codec cannot split objects.
	ErrNotObjectCodec = errors.New("codec does not support field access")

	// ErrNull indicates a present value is null where a value was required.
	ErrNull = errors.New("null value")

	// ErrOverflow indicates a number does not fit the destination field.
	ErrOverflow = errors.New("value overflows destination")

	// ErrNotRecord indicates DecodeRecord was called with a non-struct type.
	ErrNotRecord = errors.New("not a struct type")
)

// FieldKind classifies a field decode failure.
type FieldKind int

const (
	KindUnknown FieldKind = iota
	KindKeyNotFound
	KindTypeMismatch
)

func (k FieldKind) String() string {
	switch k {
	case KindKeyNotFound:
		return "key not found"
	case KindTypeMismatch:
		return "type mismatch"
	default:
		return "unknown"
	}
}

func (k FieldKind) sentinel() error {
	switch k {
	case KindKeyNotFound:
		return ErrKeyNotFound
	case KindTypeMismatch:
		return ErrTypeMismatch
	default:
		return ErrUnknown
	}
}

// KindOf returns the FieldKind of the first field error in err's chain.
// Errors that are not field errors report KindUnknown.
func KindOf(err error) FieldKind {
	switch {
	case errors.Is(err, ErrKeyNotFound):
		return KindKeyNotFound
	case errors.Is(err, ErrTypeMismatch):
		return KindTypeMismatch
	default:
		return KindUnknown
	}
}

// FieldError describes a failed field decode. It carries the offending key
// and, when known, the name of the type being decoded.
//
// errors.Is matches both the kind's sentinel (ErrTypeMismatch, ...) and
// anything in Cause's chain.
type FieldError[K Key] struct {
	Kind     FieldKind // Failure classification
	Key      K         // Key that failed
	TypeName string    // Type being decoded, empty when not supplied
	Cause    error     // Decoder error from the last attempt, may be nil
}

func (e *FieldError[K]) Error() string {
	msg := fmt.Sprintf("%s for key %q", e.Kind, string(e.Key))
	if e.TypeName != "" {
		msg += " in " + e.TypeName
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *FieldError[K]) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind.sentinel()}
	}
	return []error{e.Kind.sentinel(), e.Cause}
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal, ErrInvalidText)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newFieldError creates a FieldError for a failed field.
func newFieldError[K Key](kind FieldKind, key K, typeName string, cause error) error {
	return &FieldError[K]{
		Kind:     kind,
		Key:      key,
		TypeName: typeName,
		Cause:    cause,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
