package tracing

import (
	"context"

	"github.com/GriffinCanCode/playapi/internal/shared/id"
)

// TraceID identifies one API request across log lines and upstream calls.
type TraceID string

// Header carries the trace id in requests and responses.
const Header = "X-Trace-ID"

// maxInboundLength bounds caller-supplied trace ids.
const maxInboundLength = 64

type contextKey int

const traceIDKey contextKey = iota

// WithTraceID stores a trace id in the context.
func WithTraceID(ctx context.Context, traceID TraceID) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// FromContext returns the trace id stored in ctx, or "".
func FromContext(ctx context.Context) TraceID {
	if ctx == nil {
		return ""
	}
	traceID, _ := ctx.Value(traceIDKey).(TraceID)
	return traceID
}

// NewTraceID generates a fresh trace id.
func NewTraceID() TraceID {
	return TraceID(id.NewRequestID())
}

// Sanitize returns the inbound id when it is usable, otherwise a new one.
func Sanitize(inbound string) TraceID {
	if inbound == "" || len(inbound) > maxInboundLength {
		return NewTraceID()
	}
	for _, r := range inbound {
		if r < 0x21 || r > 0x7e {
			return NewTraceID()
		}
	}
	return TraceID(inbound)
}
