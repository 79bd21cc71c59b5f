package coerce

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/zoobzio/sentinel"
)

func init() {
	sentinel.Tag("json")
}

// Record binds a container to one set of options, for hand-written decoders
// that read many fields of the same type.
//
// A Record holds no decoding state; it is safe for concurrent use when its
// container is.
type Record[K Key] struct {
	c Container[K]
	o options
}

// NewRecord returns a Record reading from c. Options apply to every field.
func NewRecord[K Key](c Container[K], opts ...Option) *Record[K] {
	return &Record[K]{c: c, o: buildOptions(opts)}
}

// Has reports whether key is present.
func (r *Record[K]) Has(key K) bool { return present(r.c, key) }

// Int decodes key leniently as an int. See the package-level Int.
func (r *Record[K]) Int(key K) (int, bool) { return decodeInt(r.c, key, &r.o) }

// Float64 decodes key leniently as a float64. See the package-level Float64.
func (r *Record[K]) Float64(key K) (float64, bool) { return decodeFloat(r.c, key, &r.o) }

// Bool decodes key leniently as a bool. See the package-level Bool.
func (r *Record[K]) Bool(key K) (bool, bool) { return decodeBool(r.c, key, &r.o) }

// String decodes key leniently as a string. See the package-level String.
func (r *Record[K]) String(key K) (string, bool) { return decodeString(r.c, key, &r.o) }

// Field decodes key from r into a T without coercion. See Value.
func Field[T any, K Key](r *Record[K], key K) (T, bool) {
	var v T
	if !decodeValue(r.c, key, &v, r.o.typeName(typeNameOf[T]()), &r.o) {
		var zero T
		return zero, false
	}
	return v, true
}

// DecodeRecord decodes data into a flat struct T, applying the lenient
// helpers field by field.
//
// Each exported field is keyed by its json tag name (or its Go name when
// untagged; "-" skips the field). Integer, float, bool and string fields use
// Int, Float64, Bool and String; every other field uses Value. Fields that are
// absent keep their zero value. Failed fields are reported to the handler
// with T's name and also keep their zero value.
//
// DecodeRecord returns false only when data cannot be parsed as an object or
// T is not a struct; per-field failures do not fail the record.
func DecodeRecord[T any](data []byte, opts ...Option) (T, bool) {
	var v T
	o := buildOptions(opts)
	o.caller = o.typeName(typeNameOf[T]())

	plan, err := planFor[T]()
	if err != nil {
		o.report(err, o.caller, "")
		return v, false
	}
	obj, err := Parse[string](data, opts...)
	if err != nil {
		o.report(err, o.caller, "")
		return v, false
	}

	rv := reflect.ValueOf(&v).Elem()
	for _, f := range plan.fields {
		f.apply(obj, rv.FieldByIndex(f.index), &o)
	}
	return v, true
}

// recordPlan lists the fields DecodeRecord fills for one struct type.
type recordPlan struct {
	fields []recordField
}

type fieldKind int

const (
	fieldInt fieldKind = iota
	fieldUint
	fieldFloat
	fieldBool
	fieldString
	fieldValue
)

// recordField describes how to fill a single struct field.
type recordField struct {
	index []int  // reflect.Value.FieldByIndex access path
	name  string // Go field name
	key   string // object key
	kind  fieldKind
}

// buildRecordPlan scans T with sentinel and maps each field to a helper.
func buildRecordPlan[T any]() (*recordPlan, error) {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotRecord, rt)
	}

	meta := sentinel.Scan[T]()
	plan := &recordPlan{}

	for _, field := range meta.Fields {
		sf := rt.FieldByIndex(field.Index)
		if !sf.IsExported() {
			continue
		}
		tag, ok := field.Tags["json"]
		if !ok {
			tag = sf.Tag.Get("json")
		}
		key, skip := jsonKey(tag, field.Name)
		if skip {
			continue
		}
		plan.fields = append(plan.fields, recordField{
			index: field.Index,
			name:  field.Name,
			key:   key,
			kind:  kindOf(field.ReflectType),
		})
	}
	return plan, nil
}

// jsonKey extracts the key from a json tag value.
func jsonKey(tag, name string) (string, bool) {
	if tag == "-" {
		return "", true
	}
	key, _, _ := strings.Cut(tag, ",")
	if key == "" {
		key = name
	}
	return key, false
}

func kindOf(t reflect.Type) fieldKind {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fieldInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fieldUint
	case reflect.Float32, reflect.Float64:
		return fieldFloat
	case reflect.Bool:
		return fieldBool
	case reflect.String:
		return fieldString
	default:
		return fieldValue
	}
}

func (f recordField) apply(obj *Object[string], dst reflect.Value, o *options) {
	switch f.kind {
	case fieldInt:
		n, ok := decodeInt(obj, f.key, o)
		if !ok {
			return
		}
		if dst.OverflowInt(int64(n)) {
			f.overflow(o, n)
			return
		}
		dst.SetInt(int64(n))
	case fieldUint:
		n, ok := decodeInt(obj, f.key, o)
		if !ok {
			return
		}
		if n < 0 || dst.OverflowUint(uint64(n)) {
			f.overflow(o, n)
			return
		}
		dst.SetUint(uint64(n))
	case fieldFloat:
		x, ok := decodeFloat(obj, f.key, o)
		if !ok {
			return
		}
		if dst.Kind() == reflect.Float32 && math.Abs(x) > math.MaxFloat32 && !math.IsInf(x, 0) {
			f.overflow(o, x)
			return
		}
		dst.SetFloat(x)
	case fieldBool:
		if b, ok := decodeBool(obj, f.key, o); ok {
			dst.SetBool(b)
		}
	case fieldString:
		if s, ok := decodeString(obj, f.key, o); ok {
			dst.SetString(s)
		}
	default:
		target := reflect.New(dst.Type())
		if decodeValue(obj, f.key, target.Interface(), o.caller, o) {
			dst.Set(target.Elem())
		}
	}
}

func (f recordField) overflow(o *options, v any) {
	cause := fmt.Errorf("%w: %v into %s", ErrOverflow, v, f.name)
	o.fail(newFieldError(KindTypeMismatch, f.key, o.caller, cause), f.key)
}
