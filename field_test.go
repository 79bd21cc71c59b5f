package coerce_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/zoobzio/coerce"
	"github.com/zoobzio/coerce/gojson"
	coercetest "github.com/zoobzio/coerce/testing"
)

const fieldDoc = `{
	"int_native": 42,
	"int_string": "42",
	"int_negative": "-17",
	"int_bad": "abc",
	"int_space": " 42",
	"int_float": 3.5,
	"float_native": 3.14,
	"float_string": "2.5",
	"float_int": 7,
	"bool_native": true,
	"bool_string": "false",
	"bool_bad": "yes",
	"bool_upper": "TRUE",
	"str_native": "hello",
	"str_int": 42,
	"str_float": 3.14,
	"str_integral": 3.0,
	"str_bool": true,
	"str_obj": {"a": 1},
	"arr": [1, 2],
	"nothing": null
}`

func parseFieldDoc(t *testing.T) *coerce.Object[string] {
	t.Helper()
	obj, err := coerce.Parse[string]([]byte(fieldDoc))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return obj
}

// assertMismatch checks that exactly one handler call carried a type
// mismatch for key.
func assertMismatch(t *testing.T, rec *coercetest.Recorder, key string) {
	t.Helper()
	if rec.Len() != 1 {
		t.Fatalf("handler called %d times, want 1", rec.Len())
	}
	call, _ := rec.Last()
	if call.Key != key {
		t.Errorf("handler key = %q, want %q", call.Key, key)
	}
	if !errors.Is(call.Err, coerce.ErrTypeMismatch) {
		t.Errorf("handler error = %v, want ErrTypeMismatch", call.Err)
	}
	var fe *coerce.FieldError[string]
	if !errors.As(call.Err, &fe) {
		t.Fatalf("handler error should be *FieldError[string], got %T", call.Err)
	}
	if fe.Key != key || fe.Kind != coerce.KindTypeMismatch {
		t.Errorf("FieldError = %+v", fe)
	}
}

func TestInt(t *testing.T) {
	obj := parseFieldDoc(t)

	tests := []struct {
		key      string
		want     int
		wantOK   bool
		mismatch bool
	}{
		{key: "int_native", want: 42, wantOK: true},
		{key: "int_string", want: 42, wantOK: true},
		{key: "int_negative", want: -17, wantOK: true},
		{key: "int_bad", mismatch: true},
		{key: "int_space", mismatch: true},
		{key: "int_float", mismatch: true},
		{key: "bool_native", mismatch: true},
		{key: "str_obj", mismatch: true},
		{key: "nothing", mismatch: true},
		{key: "missing"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			rec := coercetest.NewRecorder()
			got, ok := coerce.Int(obj, tt.key, rec.Option())
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Int(%q) = %d, %v; want %d, %v", tt.key, got, ok, tt.want, tt.wantOK)
			}
			if tt.mismatch {
				assertMismatch(t, rec, tt.key)
			} else if rec.Len() != 0 {
				t.Errorf("handler called %d times, want 0", rec.Len())
			}
		})
	}
}

func TestFloat64(t *testing.T) {
	obj := parseFieldDoc(t)

	tests := []struct {
		key      string
		want     float64
		wantOK   bool
		mismatch bool
	}{
		{key: "float_native", want: 3.14, wantOK: true},
		{key: "float_string", want: 2.5, wantOK: true},
		{key: "float_int", want: 7, wantOK: true},
		{key: "int_string", want: 42, wantOK: true},
		{key: "int_bad", mismatch: true},
		{key: "bool_native", mismatch: true},
		{key: "arr", mismatch: true},
		{key: "nothing", mismatch: true},
		{key: "missing"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			rec := coercetest.NewRecorder()
			got, ok := coerce.Float64(obj, tt.key, rec.Option())
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Float64(%q) = %v, %v; want %v, %v", tt.key, got, ok, tt.want, tt.wantOK)
			}
			if tt.mismatch {
				assertMismatch(t, rec, tt.key)
			} else if rec.Len() != 0 {
				t.Errorf("handler called %d times, want 0", rec.Len())
			}
		})
	}
}

func TestBool(t *testing.T) {
	obj := parseFieldDoc(t)

	tests := []struct {
		key      string
		want     bool
		wantOK   bool
		mismatch bool
	}{
		{key: "bool_native", want: true, wantOK: true},
		{key: "bool_string", want: false, wantOK: true},
		{key: "bool_bad", mismatch: true},
		{key: "bool_upper", mismatch: true},
		{key: "int_native", mismatch: true},
		{key: "nothing", mismatch: true},
		{key: "missing"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			rec := coercetest.NewRecorder()
			got, ok := coerce.Bool(obj, tt.key, rec.Option())
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Bool(%q) = %v, %v; want %v, %v", tt.key, got, ok, tt.want, tt.wantOK)
			}
			if tt.mismatch {
				assertMismatch(t, rec, tt.key)
			} else if rec.Len() != 0 {
				t.Errorf("handler called %d times, want 0", rec.Len())
			}
		})
	}
}

func TestString(t *testing.T) {
	obj := parseFieldDoc(t)

	tests := []struct {
		key      string
		want     string
		wantOK   bool
		mismatch bool
	}{
		{key: "str_native", want: "hello", wantOK: true},
		{key: "int_string", want: "42", wantOK: true},
		{key: "str_int", want: "42", wantOK: true},
		{key: "str_float", want: "3.14", wantOK: true},
		{key: "str_integral", want: "3", wantOK: true},
		{key: "str_bool", want: "true", wantOK: true},
		{key: "str_obj", mismatch: true},
		{key: "arr", mismatch: true},
		{key: "nothing", mismatch: true},
		{key: "missing"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			rec := coercetest.NewRecorder()
			got, ok := coerce.String(obj, tt.key, rec.Option())
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("String(%q) = %q, %v; want %q, %v", tt.key, got, ok, tt.want, tt.wantOK)
			}
			if tt.mismatch {
				assertMismatch(t, rec, tt.key)
			} else if rec.Len() != 0 {
				t.Errorf("handler called %d times, want 0", rec.Len())
			}
		})
	}
}

func TestString_MismatchHasNoCause(t *testing.T) {
	obj := parseFieldDoc(t)
	rec := coercetest.NewRecorder()

	coerce.String(obj, "str_obj", rec.Option())

	call, ok := rec.Last()
	if !ok {
		t.Fatal("handler not called")
	}
	var fe *coerce.FieldError[string]
	if !errors.As(call.Err, &fe) {
		t.Fatalf("expected *FieldError, got %T", call.Err)
	}
	if fe.Cause != nil {
		t.Errorf("Cause = %v, want nil", fe.Cause)
	}
}

func TestValue(t *testing.T) {
	obj := parseFieldDoc(t)
	rec := coercetest.NewRecorder()

	m, ok := coerce.Value[map[string]int](obj, "str_obj", rec.Option())
	if !ok || m["a"] != 1 {
		t.Errorf("Value[map](str_obj) = %v, %v", m, ok)
	}

	arr, ok := coerce.Value[[]int](obj, "arr", rec.Option())
	if !ok || len(arr) != 2 || arr[0] != 1 || arr[1] != 2 {
		t.Errorf("Value[[]int](arr) = %v, %v", arr, ok)
	}

	ptr, ok := coerce.Value[*int](obj, "nothing", rec.Option())
	if !ok || ptr != nil {
		t.Errorf("Value[*int](nothing) = %v, %v; want nil, true", ptr, ok)
	}

	if _, ok := coerce.Value[int](obj, "missing", rec.Option()); ok {
		t.Error("Value(missing) should report false")
	}

	if rec.Len() != 0 {
		t.Errorf("handler called %d times, want 0", rec.Len())
	}
}

func TestValue_NoCoercion(t *testing.T) {
	obj := parseFieldDoc(t)
	rec := coercetest.NewRecorder()

	n, ok := coerce.Value[int](obj, "int_string", rec.Option())
	if ok || n != 0 {
		t.Errorf("Value[int](int_string) = %d, %v; want 0, false", n, ok)
	}

	call, found := rec.Last()
	if !found {
		t.Fatal("handler not called")
	}
	if call.TypeName != "int" {
		t.Errorf("TypeName = %q, want %q", call.TypeName, "int")
	}
	if call.Key != "int_string" {
		t.Errorf("Key = %q, want %q", call.Key, "int_string")
	}
	var fe *coerce.FieldError[string]
	if !errors.As(call.Err, &fe) {
		t.Fatalf("expected *FieldError, got %T", call.Err)
	}
	if fe.Kind != coerce.KindUnknown || fe.Cause == nil {
		t.Errorf("FieldError = %+v; want KindUnknown with decoder cause", fe)
	}
}

func TestValue_NullIntoScalar(t *testing.T) {
	obj := parseFieldDoc(t)
	rec := coercetest.NewRecorder()

	if _, ok := coerce.Value[int](obj, "nothing", rec.Option(), coerce.Caller("Payload")); ok {
		t.Error("Value[int](null) should report false")
	}

	call, _ := rec.Last()
	if !errors.Is(call.Err, coerce.ErrNull) || !errors.Is(call.Err, coerce.ErrTypeMismatch) {
		t.Errorf("error = %v; want ErrNull and ErrTypeMismatch", call.Err)
	}
	if call.TypeName != "Payload" {
		t.Errorf("TypeName = %q, want %q", call.TypeName, "Payload")
	}
}

func TestCallerName(t *testing.T) {
	obj := parseFieldDoc(t)
	rec := coercetest.NewRecorder()

	coerce.Int(obj, "int_bad", rec.Option(), coerce.Caller("User"))
	coerce.Int(obj, "int_bad", rec.Option())

	calls := rec.Calls()
	if len(calls) != 2 {
		t.Fatalf("handler called %d times, want 2", len(calls))
	}
	if calls[0].TypeName != "User" {
		t.Errorf("TypeName = %q, want %q", calls[0].TypeName, "User")
	}
	var fe *coerce.FieldError[string]
	if errors.As(calls[0].Err, &fe) && fe.TypeName != "User" {
		t.Errorf("FieldError.TypeName = %q, want %q", fe.TypeName, "User")
	}
	if calls[1].TypeName != "" {
		t.Errorf("TypeName without Caller = %q, want empty", calls[1].TypeName)
	}
}

func TestAbsentKeyNeverReports(t *testing.T) {
	obj := parseFieldDoc(t)
	rec := coercetest.NewRecorder()
	opt := rec.Option()

	if _, ok := coerce.Int(obj, "missing", opt); ok {
		t.Error("Int(missing) ok")
	}
	if _, ok := coerce.Float64(obj, "missing", opt); ok {
		t.Error("Float64(missing) ok")
	}
	if _, ok := coerce.Bool(obj, "missing", opt); ok {
		t.Error("Bool(missing) ok")
	}
	if _, ok := coerce.String(obj, "missing", opt); ok {
		t.Error("String(missing) ok")
	}
	if _, ok := coerce.Value[map[string]any](obj, "missing", opt); ok {
		t.Error("Value(missing) ok")
	}

	if rec.Len() != 0 {
		t.Errorf("handler called %d times for absent keys, want 0", rec.Len())
	}
}

func TestNilContainer(t *testing.T) {
	rec := coercetest.NewRecorder()

	var nilObj *coerce.Object[string]
	if _, ok := coerce.Int(nilObj, "id", rec.Option()); ok {
		t.Error("Int(nil object) ok")
	}
	if _, ok := coerce.String[string](nil, "id", rec.Option()); ok {
		t.Error("String(nil container) ok")
	}
	if rec.Len() != 0 {
		t.Errorf("handler called %d times, want 0", rec.Len())
	}
}

func TestNoHandler(t *testing.T) {
	obj := parseFieldDoc(t)

	if _, ok := coerce.Int(obj, "int_bad"); ok {
		t.Error("Int(int_bad) ok without handler")
	}
	if _, ok := coerce.String(obj, "str_obj", coerce.OnError(nil)); ok {
		t.Error("String(str_obj) ok with nil handler")
	}
}

func TestConcurrentFieldDecoding(t *testing.T) {
	obj := parseFieldDoc(t)
	rec := coercetest.NewRecorder()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if n, ok := coerce.Int(obj, "int_string", rec.Option()); !ok || n != 42 {
				t.Errorf("Int(int_string) = %d, %v", n, ok)
			}
			if s, ok := coerce.String(obj, "str_bool", rec.Option()); !ok || s != "true" {
				t.Errorf("String(str_bool) = %q, %v", s, ok)
			}
			coerce.Bool(obj, "bool_bad", rec.Option())
		}()
	}
	wg.Wait()

	if rec.Len() != 32 {
		t.Errorf("handler called %d times, want 32", rec.Len())
	}
}

func TestUnrepresentableNumberStaysLocal(t *testing.T) {
	data := []byte(`{"id":"7","n":1e400,"nested":{"big":1e400}}`)

	codecs := map[string]coerce.Option{
		"jsoniter": nil,
		"gojson":   coerce.WithCodec(gojson.New()),
	}

	for name, codecOpt := range codecs {
		t.Run(name, func(t *testing.T) {
			obj, err := coerce.Parse[string](data, codecOpt)
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			rec := coercetest.NewRecorder()

			if n, ok := coerce.Int(obj, "id", rec.Option()); !ok || n != 7 {
				t.Errorf("Int(id) = %d, %v; want 7, true", n, ok)
			}
			if rec.Len() != 0 {
				t.Fatalf("unexpected handler calls: %+v", rec.Calls())
			}

			if _, ok := coerce.Int(obj, "n", rec.Option()); ok {
				t.Error("Int(n) should fail")
			}
			assertMismatch(t, rec, "n")

			rec.Reset()
			if _, ok := coerce.Float64(obj, "n", rec.Option()); ok {
				t.Error("Float64(n) should fail")
			}
			assertMismatch(t, rec, "n")
		})
	}
}
