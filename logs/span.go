package logs

import (
	"context"
	"crypto/rand"
)

type Span string

type spanKey struct{}

var SpanKey spanKey

func SpanOf(ctx context.Context) Span {
	span, _ := ctx.Value(SpanKey).(Span)
	return span
}

// NewSpan starts a span for one unit of work, such as parsing one source.
type NewSpan func(ctx context.Context, what string, args ...any) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, what string, args ...any) (context.Context, Span) {
		parent := SpanOf(ctx)
		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)
		if parent != "" {
			args = append(args, "parent", parent)
		}
		logger.DebugContext(ctx, "span: "+what, args...)
		return ctx, span
	}
}
