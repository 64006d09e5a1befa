package logs

import (
	"context"
	"log/slog"
)

// Handler tags records with the span of their context.
type Handler struct {
	slog.Handler
}

var _ slog.Handler = new(Handler)

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if span := SpanOf(ctx); span != "" {
		record.AddAttrs(slog.String("span", string(span)))
	}
	return h.Handler.Handle(ctx, record)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{
		Handler: h.Handler.WithAttrs(attrs),
	}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{
		Handler: h.Handler.WithGroup(name),
	}
}
