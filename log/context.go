package log

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type correlationIDType int

const flowIDKey correlationIDType = iota

// WithFlowID returns a context which knows its flow id.
// A flow tracks a single multi step operation, such as wallet creation, across the actor
// queue and the asynchronous tasks it spawns.
func WithFlowID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, flowIDKey, id)
}

// WithNewFlowID does the same thing as WithFlowID but generates a new, random id.
func WithNewFlowID(ctx context.Context) context.Context {
	return WithFlowID(ctx, uuid.NewString())
}

// ExtractFlowID extracts the flow id from a context object.
func ExtractFlowID(ctx context.Context) (string, bool) {
	if id, ok := ctx.Value(flowIDKey).(string); ok {
		return id, true
	}
	return "", false
}

// ZContext returns a field with the flow id of ctx, or a skipped field if there is none.
func ZContext(ctx context.Context) zap.Field {
	if id, ok := ExtractFlowID(ctx); ok {
		return zap.String("flow_id", id)
	}
	return zap.Skip()
}
