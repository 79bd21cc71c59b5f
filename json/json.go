// Package json provides the default JSON codec, backed by json-iterator in
// its standard-library compatible configuration.
package json

import (
	"bytes"
	"errors"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var api = jsoniter.ConfigCompatibleWithStandardLibrary

// Codec implements coerce.ObjectCodec for JSON.
type Codec struct{}

// New returns a JSON codec.
func New() *Codec {
	return &Codec{}
}

// ContentType returns the MIME type for JSON.
func (c *Codec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (c *Codec) Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (c *Codec) Unmarshal(data []byte, v any) error {
	return api.Unmarshal(data, v)
}

// Fields splits a JSON object into its members. A top-level null yields a
// nil map.
//
// Members are re-encoded one by one with numbers carried as written, so a
// well-formed number the decoder cannot represent (1e400) fails only when a
// helper decodes that member.
func (c *Codec) Fields(data []byte) (map[string][]byte, error) {
	iter := jsoniter.ParseBytes(api, data)
	switch iter.WhatIsNext() {
	case jsoniter.ObjectValue:
	case jsoniter.NilValue:
		iter.ReadNil()
		return nil, end(iter)
	default:
		if iter.Error != nil && iter.Error != io.EOF {
			return nil, iter.Error
		}
		return nil, errNotObject
	}

	stream := api.BorrowStream(nil)
	defer api.ReturnStream(stream)

	members := make(map[string][]byte)
	iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
		stream.Reset(nil)
		copyValue(it, stream)
		members[key] = append([]byte(nil), stream.Buffer()...)
		return it.Error == nil
	})
	if err := end(iter); err != nil {
		return nil, err
	}
	return members, nil
}

var (
	errNotObject = errors.New("json: value is not an object")
	errTrailing  = errors.New("json: unexpected data after top-level value")
)

// end checks that iter consumed the whole input without error.
func end(iter *jsoniter.Iterator) error {
	if iter.Error != nil {
		if iter.Error == io.EOF {
			return io.ErrUnexpectedEOF
		}
		return iter.Error
	}
	iter.WhatIsNext()
	switch iter.Error {
	case io.EOF:
		return nil
	case nil:
		return errTrailing
	default:
		return iter.Error
	}
}

// copyValue reads one value from it and writes it to s. Numbers are copied
// as text without range checks.
func copyValue(it *jsoniter.Iterator, s *jsoniter.Stream) {
	switch it.WhatIsNext() {
	case jsoniter.StringValue:
		s.WriteString(it.ReadString())
	case jsoniter.NumberValue:
		s.WriteRaw(string(it.ReadNumber()))
	case jsoniter.BoolValue:
		s.WriteBool(it.ReadBool())
	case jsoniter.NilValue:
		it.ReadNil()
		s.WriteNil()
	case jsoniter.ArrayValue:
		s.WriteArrayStart()
		first := true
		it.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			if !first {
				s.WriteMore()
			}
			first = false
			copyValue(it, s)
			return it.Error == nil
		})
		s.WriteArrayEnd()
	case jsoniter.ObjectValue:
		s.WriteObjectStart()
		first := true
		it.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
			if !first {
				s.WriteMore()
			}
			first = false
			s.WriteObjectField(key)
			copyValue(it, s)
			return it.Error == nil
		})
		s.WriteObjectEnd()
	default:
		it.ReportError("copyValue", "unexpected character")
	}
}

var null = []byte("null")

// IsNull reports whether raw is the JSON null literal.
func (c *Codec) IsNull(raw []byte) bool {
	return bytes.Equal(bytes.TrimSpace(raw), null)
}
