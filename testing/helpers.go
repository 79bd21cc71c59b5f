// Package testing provides test utilities for coerce.
package testing

import (
	"sync"

	"github.com/zoobzio/coerce"
)

// Call is one recorded handler invocation.
type Call struct {
	Err      error
	TypeName string
	Key      string
}

// Recorder collects handler invocations. It is safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Handler returns an ErrorHandler that records into r.
func (r *Recorder) Handler() coerce.ErrorHandler {
	return func(err error, typeName, key string) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.calls = append(r.calls, Call{Err: err, TypeName: typeName, Key: key})
	}
}

// Option is shorthand for coerce.OnError(r.Handler()).
func (r *Recorder) Option() coerce.Option {
	return coerce.OnError(r.Handler())
}

// Calls returns a copy of the recorded invocations.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Len returns the number of recorded invocations.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// Last returns the most recent invocation.
func (r *Recorder) Last() (Call, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return Call{}, false
	}
	return r.calls[len(r.calls)-1], true
}

// Reset discards recorded invocations.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

// SimpleUser is a flat test record with loss-free field types.
type SimpleUser struct {
	ID     int     `json:"id" yaml:"id" msgpack:"id" cbor:"id"`
	Name   string  `json:"name" yaml:"name" msgpack:"name" cbor:"name"`
	Score  float64 `json:"score" yaml:"score" msgpack:"score" cbor:"score"`
	Active bool    `json:"active" yaml:"active" msgpack:"active" cbor:"active"`
}

// Order is a test record mixing scalar and structured fields.
type Order struct {
	ID       uint64            `json:"id"`
	Quantity int8              `json:"quantity"`
	Price    float32           `json:"price"`
	Paid     bool              `json:"paid"`
	Note     string            `json:"note,omitempty"`
	Tags     []string          `json:"tags"`
	Meta     map[string]string `json:"meta"`
	Coupon   *string           `json:"coupon"`
	Internal string            `json:"-"`
	Ref      string
	secret   string
}

// Secret exposes the unexported field so tests can assert it stays empty.
func (o Order) Secret() string { return o.secret }
