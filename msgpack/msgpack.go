// Package msgpack provides a MessagePack codec implementation.
package msgpack

import (
	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// Codec implements coerce.ObjectCodec for MessagePack.
//
// MessagePack is compact and fast; be mindful of struct tag differences vs
// JSON. Use `msgpack:"fieldName"` tags if you need explicit control.
type Codec struct{}

// New returns a MessagePack codec.
func New() *Codec {
	return &Codec{}
}

// ContentType returns the MIME type for MessagePack.
func (c *Codec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack.
func (c *Codec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal decodes MessagePack data into v.
func (c *Codec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}

// Fields splits a MessagePack map with string keys into its raw members.
func (c *Codec) Fields(data []byte) (map[string][]byte, error) {
	var members map[string]msgpack.RawMessage
	if err := msgpack.Unmarshal(data, &members); err != nil {
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

// IsNull reports whether raw is the MessagePack nil value.
func (c *Codec) IsNull(raw []byte) bool {
	return len(raw) == 1 && raw[0] == msgpcode.Nil
}
