// Package gojson provides a JSON codec backed by goccy/go-json.
//
// It decodes the same documents as the default json codec and can be
// swapped in with coerce.WithCodec where its throughput matters.
package gojson

import (
	"bytes"

	"github.com/goccy/go-json"
)

// Codec implements coerce.ObjectCodec for JSON.
type Codec struct{}

// New returns a go-json codec.
func New() *Codec {
	return &Codec{}
}

// ContentType returns the MIME type for JSON.
func (c *Codec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (c *Codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (c *Codec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Fields splits a JSON object into its raw members.
func (c *Codec) Fields(data []byte) (map[string][]byte, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
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

// IsNull reports whether raw is the JSON null literal.
func (c *Codec) IsNull(raw []byte) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
