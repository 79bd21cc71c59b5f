package coerce

import (
	"context"

	"github.com/zoobzio/coerce/json"
)

// ErrorHandler receives failures that the helpers swallow.
//
// typeName is the Caller option (or the decoded type's name where one is
// known) and may be empty. key is the failing field key, empty for envelope
// operations.
type ErrorHandler func(err error, typeName, key string)

// Catch adapts a single-argument error callback to an ErrorHandler.
// The type name and key are dropped.
func Catch(fn func(error)) ErrorHandler {
	if fn == nil {
		return nil
	}
	return func(err error, _, _ string) {
		fn(err)
	}
}

// Option configures a single helper call.
type Option func(*options)

type options struct {
	ctx     context.Context
	codec   Codec
	handler ErrorHandler
	caller  string
}

// defaultCodec is used when no WithCodec option is given.
var defaultCodec Codec = json.New()

func buildOptions(opts []Option) options {
	o := options{
		ctx:   context.Background(),
		codec: defaultCodec,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithCodec selects the codec used by Decode, Encode, Parse and DecodeRecord.
// Field helpers ignore it; they use the container's own decoding.
func WithCodec(c Codec) Option {
	return func(o *options) {
		if c != nil {
			o.codec = c
		}
	}
}

// OnError installs the handler that receives swallowed failures.
func OnError(h ErrorHandler) Option {
	return func(o *options) {
		o.handler = h
	}
}

// Caller names the type being decoded. It is passed to the handler and
// recorded on FieldError.TypeName.
func Caller(name string) Option {
	return func(o *options) {
		o.caller = name
	}
}

// WithContext sets the context carried by emitted signals.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// report passes err to the configured handler, if any.
func (o *options) report(err error, typeName, key string) {
	if o.handler != nil {
		o.handler(err, typeName, key)
	}
}
