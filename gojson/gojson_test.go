package gojson

import (
	"testing"
)

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/json" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/json")
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	c := New()

	type TestStruct struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}

	original := TestStruct{Name: "test", Value: 42}

	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored TestStruct
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if restored != original {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, original)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	c := New()

	var v struct{}
	if err := c.Unmarshal([]byte("invalid json"), &v); err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}

func TestFields(t *testing.T) {
	c := New()

	fields, err := c.Fields([]byte(`{"id":"42","active":true,"gone":null}`))
	if err != nil {
		t.Fatalf("Fields() error: %v", err)
	}

	var id string
	if err := c.Unmarshal(fields["id"], &id); err != nil || id != "42" {
		t.Errorf("id = %q (err %v), want %q", id, err, "42")
	}
	var active bool
	if err := c.Unmarshal(fields["active"], &active); err != nil || !active {
		t.Errorf("active = %v (err %v), want true", active, err)
	}
	if !c.IsNull(fields["gone"]) {
		t.Error("IsNull(gone) = false, want true")
	}
}

func TestFieldsNotObject(t *testing.T) {
	c := New()

	if _, err := c.Fields([]byte(`"text"`)); err == nil {
		t.Error("Fields(string) should return error")
	}
}
