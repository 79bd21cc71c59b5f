// Package xml provides an XML codec implementation.
//
// XML elements have no object/scalar distinction to split on, so this
// codec is envelope only.
package xml

import (
	"encoding/xml"
)

// Codec implements coerce.Codec for XML.
type Codec struct{}

// New returns an XML codec.
func New() *Codec {
	return &Codec{}
}

// ContentType returns the MIME type for XML.
func (c *Codec) ContentType() string {
	return "application/xml"
}

// Marshal encodes v as XML.
func (c *Codec) Marshal(v any) ([]byte, error) {
	return xml.Marshal(v)
}

// Unmarshal decodes XML data into v.
func (c *Codec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}
