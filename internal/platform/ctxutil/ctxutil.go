package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

// RequestData carries the authenticated caller through a request's context.
type RequestData struct {
	UserID uuid.UUID
	Role   string
}

// TraceData carries the per-request correlation ids set by the trace
// middleware.
type TraceData struct {
	TraceID   string
	RequestID string
}

type requestDataKey struct{}
type traceDataKey struct{}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey{}, rd)
}

// GetRequestData returns the caller attached to the context, or nil for an
// unauthenticated request.
func GetRequestData(ctx context.Context) *RequestData {
	rd, _ := ctx.Value(requestDataKey{}).(*RequestData)
	return rd
}

func WithTraceData(ctx context.Context, td *TraceData) context.Context {
	return context.WithValue(ctx, traceDataKey{}, td)
}

func GetTraceData(ctx context.Context) *TraceData {
	td, _ := ctx.Value(traceDataKey{}).(*TraceData)
	return td
}
