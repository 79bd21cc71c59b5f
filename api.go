// Package coerce provides lenient field decoding and callback-based
// envelope encoding on top of existing decoders.
//
// Upstream producers are rarely consistent about whether a number or boolean
// is emitted as a native scalar or as a quoted string. The field helpers in
// this package accept either representation and coerce it to the type the
// caller expects, while the envelope helpers wrap whole-document decoding and
// encoding so that failures are reported through a handler instead of being
// returned.
//
// # Envelope
//
//	user, ok := coerce.Decode[User](body, coerce.OnError(h))
//	text, ok := coerce.Encode(user)
//
// Decode and Encode use the JSON codec unless another is supplied with
// WithCodec.
//
// # Fields
//
// Field helpers operate against a keyed Container, usually an Object parsed
// from a document:
//
//	obj, err := coerce.Parse[string](body)
//	id, ok := coerce.Int(obj, "id", coerce.Caller("User"), coerce.OnError(h))
//
// Each helper follows the same contract:
//
//   - absent key: zero value, false, handler not called
//   - present key: attempts in a fixed order, first success wins
//   - every attempt failed: *FieldError passed to the handler, zero value, false
//
// Attempt order per helper:
//
//	Int      string then strconv.Atoi, then native int
//	Float64  string then strconv.ParseFloat, then native float
//	Bool     string "true"/"false", then native bool
//	String   native string, then int, float, bool in canonical text form
//	Value    native decode only
//
// # Records
//
// Record binds a container with options so hand-written decoders stay short:
//
//	r := coerce.NewRecord(obj, coerce.Caller("User"), coerce.OnError(h))
//	u.ID, _ = r.Int("id")
//	u.Name, _ = r.String("name")
//
// DecodeRecord does the same for flat structs by reading their json tags.
//
// # Codec Providers
//
// The following codecs are available as subpackages:
//
//   - json - JSON via json-iterator (application/json), the default
//   - gojson - JSON via goccy/go-json (application/json)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - cbor - CBOR encoding (application/cbor)
//   - bson - BSON encoding (application/bson), envelope only
//   - xml - XML encoding (application/xml), envelope only
//
// # Signals
//
// Envelope operations and field fallbacks emit capitan events so that
// producer drift can be observed without wiring a handler everywhere.
package coerce

// Key is a field identifier within one record. String-typed enumerations
// satisfy it, so record types can declare their keys as constants:
//
//	type userKey string
//
//	const (
//	    userID   userKey = "id"
//	    userName userKey = "name"
//	)
type Key interface {
	~string
}

// Container is a keyed decoding context over one parsed object.
//
// Implementations must be safe to query repeatedly; helpers probe the same key
// several times with different targets.
type Container[K Key] interface {
	// Contains reports whether key is present in the object.
	Contains(key K) bool

	// Decode decodes the value at key into v, which must be a non-nil pointer.
	// Decode does not coerce: a quoted number fails to decode into an int.
	Decode(key K, v any) error
}
