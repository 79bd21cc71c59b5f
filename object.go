package coerce

import (
	"fmt"
	"reflect"
)

// Object is a Container over one decoded object. Member values stay encoded
// until a helper asks for them, so each attempt decodes with the codec's own
// strict rules.
type Object[K Key] struct {
	codec  ObjectCodec
	fields map[string][]byte
}

var _ Container[string] = (*Object[string])(nil)

// Parse splits data into an Object using the configured codec, which must
// implement ObjectCodec. A top-level null fails with ErrNotObject. Any other
// document the codec cannot split, including arrays and scalars, fails with a
// *CodecError wrapping ErrUnmarshal.
//
// Parse returns its error rather than reporting it; it is the setup step
// before field helpers run, and a caller that cannot parse has nothing to
// decode leniently.
func Parse[K Key](data []byte, opts ...Option) (*Object[K], error) {
	o := buildOptions(opts)
	oc, ok := o.codec.(ObjectCodec)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotObjectCodec, o.codec.ContentType())
	}
	fields, err := oc.Fields(data)
	if err != nil {
		return nil, newCodecError(ErrUnmarshal, err)
	}
	if fields == nil {
		return nil, ErrNotObject
	}
	return &Object[K]{codec: oc, fields: fields}, nil
}

// NewObject builds an Object from members that are already split.
// Each value must be a complete encoding accepted by codec.
func NewObject[K Key](codec ObjectCodec, fields map[string][]byte) *Object[K] {
	if fields == nil {
		fields = map[string][]byte{}
	}
	return &Object[K]{codec: codec, fields: fields}
}

// Contains reports whether key is present, including keys holding null.
func (o *Object[K]) Contains(key K) bool {
	if o == nil {
		return false
	}
	_, ok := o.fields[string(key)]
	return ok
}

// Decode decodes the member at key into v.
//
// A null member decodes to the zero value when v points to a pointer, map,
// slice or interface. For any other target it fails with ErrNull, so a null
// never silently becomes 0, "" or false.
func (o *Object[K]) Decode(key K, v any) error {
	if o == nil {
		return ErrKeyNotFound
	}
	raw, ok := o.fields[string(key)]
	if !ok {
		return ErrKeyNotFound
	}
	if o.codec.IsNull(raw) {
		return decodeNull(v)
	}
	return o.codec.Unmarshal(raw, v)
}

// Keys returns the member keys in no particular order.
func (o *Object[K]) Keys() []K {
	if o == nil {
		return nil
	}
	keys := make([]K, 0, len(o.fields))
	for k := range o.fields {
		keys = append(keys, K(k))
	}
	return keys
}

// Len returns the number of members.
func (o *Object[K]) Len() int {
	if o == nil {
		return 0
	}
	return len(o.fields)
}

func decodeNull(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return ErrNull
	}
	elem := rv.Elem()
	switch elem.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		elem.SetZero()
		return nil
	default:
		return ErrNull
	}
}
