// Package cbor provides a CBOR codec implementation backed by fxamacker/cbor.
package cbor

import (
	"github.com/fxamacker/cbor/v2"
)

// CBOR simple values for null and undefined.
const (
	cborNull      = 0xf6
	cborUndefined = 0xf7
)

// Codec implements coerce.ObjectCodec for CBOR.
// The zero value is NOT ready to use. Construct with New or Must.
//
// Time values are encoded as RFC3339Nano for stable, human-readable timestamps.
type Codec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

// New constructs a CBOR codec.
//   - Deterministic is true, uses CoreDetEncOptions (RFC 8949).
//   - Otherwise uses PreferredUnsortedEncOptions (smaller/faster defaults).
func New(deterministic bool) (*Codec, error) {
	var eo cbor.EncOptions
	if deterministic {
		eo = cbor.CoreDetEncOptions()
	} else {
		eo = cbor.PreferredUnsortedEncOptions()
	}
	eo.Time = cbor.TimeRFC3339Nano

	em, err := eo.EncMode()
	if err != nil {
		return nil, err
	}
	dm, err := (cbor.DecOptions{}).DecMode()
	if err != nil {
		return nil, err
	}
	return &Codec{enc: em, dec: dm}, nil
}

// Must is like New but panics on error.
func Must(deterministic bool) *Codec {
	c, err := New(deterministic)
	if err != nil {
		panic(err)
	}
	return c
}

// ContentType returns the MIME type for CBOR.
func (c *Codec) ContentType() string {
	return "application/cbor"
}

// Marshal encodes v as CBOR using the configured EncMode.
func (c *Codec) Marshal(v any) ([]byte, error) {
	return c.enc.Marshal(v)
}

// Unmarshal decodes CBOR data into v using the configured DecMode.
func (c *Codec) Unmarshal(data []byte, v any) error {
	return c.dec.Unmarshal(data, v)
}

// Fields splits a CBOR map with text keys into its raw members.
func (c *Codec) Fields(data []byte) (map[string][]byte, error) {
	var members map[string]cbor.RawMessage
	if err := c.dec.Unmarshal(data, &members); err != nil {
		return nil, err
	}
	if members == nil {
		return nil, nil
	}
	out := make(map[string][]byte, len(members))
	for k, v := range members {
		out[k] = v
	}
	return out, nil
}

// IsNull reports whether raw is CBOR null or undefined.
func (c *Codec) IsNull(raw []byte) bool {
	return len(raw) == 1 && (raw[0] == cborNull || raw[0] == cborUndefined)
}
