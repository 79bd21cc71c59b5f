// Package yaml provides a YAML codec implementation.
package yaml

import (
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"
)

// Codec implements coerce.ObjectCodec for YAML.
type Codec struct{}

// New returns a YAML codec.
func New() *Codec {
	return &Codec{}
}

// ContentType returns the MIME type for YAML.
func (c *Codec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML.
func (c *Codec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Unmarshal decodes YAML data into v.
//
// When v points to a string, bool or number, a scalar document must carry a
// matching tag: !!str (or !!timestamp) for strings, !!bool for bools, !!int
// for integers, !!int or !!float for floats. yaml.v3 on its own would
// truncate 3.5 into an int or take True as the string "True".
func (c *Codec) Unmarshal(data []byte, v any) error {
	kind, ok := scalarTarget(v)
	if !ok {
		return yaml.Unmarshal(data, v)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc.Kind == 0 {
		return yaml.Unmarshal(data, v)
	}
	n := &doc
	if n.Kind == yaml.DocumentNode && len(n.Content) == 1 {
		n = n.Content[0]
	}
	if n.Kind == yaml.ScalarNode {
		if tag := n.ShortTag(); tag != nullTag && !accepts(kind, tag) {
			return &yaml.TypeError{Errors: []string{
				fmt.Sprintf("line %d: cannot unmarshal %s `%s` into %s", n.Line, tag, n.Value, kind),
			}}
		}
	}
	return doc.Decode(v)
}

const nullTag = "!!null"

// scalarTarget reports the kind v points to when it is a string, bool or
// number.
func scalarTarget(v any) (reflect.Kind, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return reflect.Invalid, false
	}
	switch k := rv.Elem().Kind(); k {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return k, true
	default:
		return reflect.Invalid, false
	}
}

func accepts(kind reflect.Kind, tag string) bool {
	switch kind {
	case reflect.String:
		return tag == "!!str" || tag == "!!timestamp"
	case reflect.Bool:
		return tag == "!!bool"
	case reflect.Float32, reflect.Float64:
		return tag == "!!int" || tag == "!!float"
	default:
		return tag == "!!int"
	}
}

// Fields splits a YAML mapping into its members, re-encoding each member
// node as a standalone document. Scalar styles survive, so a quoted "42"
// stays a string.
//
// Aliases are resolved only within a member; a member that refers to an
// anchor defined elsewhere fails to decode.
func (c *Codec) Fields(data []byte) (map[string][]byte, error) {
	var members map[string]yaml.Node
	if err := yaml.Unmarshal(data, &members); err != nil {
		return nil, err
	}
	if members == nil {
		return nil, nil
	}
	out := make(map[string][]byte, len(members))
	for k, node := range members {
		raw, err := yaml.Marshal(&node)
		if err != nil {
			return nil, err
		}
		out[k] = raw
	}
	return out, nil
}

// IsNull reports whether raw is an empty document or a null scalar
// (null, ~ or an empty value).
func (c *Codec) IsNull(raw []byte) bool {
	var n yaml.Node
	if err := yaml.Unmarshal(raw, &n); err != nil {
		return false
	}
	if n.Kind == 0 {
		return true
	}
	if n.Kind == yaml.DocumentNode && len(n.Content) == 1 {
		n = *n.Content[0]
	}
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}
