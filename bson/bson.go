// Package bson provides a BSON codec implementation.
//
// BSON values are not standalone documents, so this codec does not split
// objects and cannot back coerce.Parse. Use it with the envelope helpers.
package bson

import (
	"go.mongodb.org/mongo-driver/bson"
)

// Codec implements coerce.Codec for BSON.
type Codec struct{}

// New returns a BSON codec.
func New() *Codec {
	return &Codec{}
}

// ContentType returns the MIME type for BSON.
func (c *Codec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as BSON. v must be a document (struct or map).
func (c *Codec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes BSON data into v.
func (c *Codec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}
