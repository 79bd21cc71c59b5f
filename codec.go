package coerce

// Codec provides content-type aware marshaling.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// ObjectCodec is a Codec whose format has objects that can be split into
// individually encoded members. Parse requires one.
type ObjectCodec interface {
	Codec

	// Fields splits an encoded object into its members. Each member value is
	// itself a complete encoding that Unmarshal accepts.
	Fields(data []byte) (map[string][]byte, error)

	// IsNull reports whether an encoded member is the format's null value.
	IsNull(raw []byte) bool
}
