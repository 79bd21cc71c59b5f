package coerce

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for coerce events.
var (
	SignalDecodeComplete = capitan.NewSignal("coerce.decode.complete", "Envelope decode finished")
	SignalEncodeComplete = capitan.NewSignal("coerce.encode.complete", "Envelope encode finished")
	SignalFieldCoerced   = capitan.NewSignal("coerce.field.coerced", "Field decoded from a non-native representation")
	SignalFieldFailed    = capitan.NewSignal("coerce.field.failed", "Field could not be decoded")
)

// Keys for typed event data.
var (
	KeyContentType    = capitan.NewStringKey("content_type")
	KeyTypeName       = capitan.NewStringKey("type_name")
	KeyFieldKey       = capitan.NewStringKey("field_key")
	KeyRepresentation = capitan.NewStringKey("representation")
	KeySize           = capitan.NewIntKey("size")
	KeyDuration       = capitan.NewDurationKey("duration")
	KeyError          = capitan.NewErrorKey("error")
)

// emitDecodeComplete emits an event when an envelope decode finishes.
func emitDecodeComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}

// emitEncodeComplete emits an event when an envelope encode finishes.
func emitEncodeComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}

// emitFieldCoerced emits an event when a field matched a fallback representation.
func emitFieldCoerced(ctx context.Context, typeName, key, representation string) {
	capitan.Emit(ctx, SignalFieldCoerced,
		KeyTypeName.Field(typeName),
		KeyFieldKey.Field(key),
		KeyRepresentation.Field(representation),
	)
}

// emitFieldFailed emits an event when every attempt for a field failed.
func emitFieldFailed(ctx context.Context, typeName, key string, err error) {
	capitan.Error(ctx, SignalFieldFailed,
		KeyTypeName.Field(typeName),
		KeyFieldKey.Field(key),
		KeyError.Field(err),
	)
}
