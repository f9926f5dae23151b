package cmd

import (
	"context"
	"log/slog"
)

// fanoutHandler sends each record to the file handler and the console
// handler, each applying its own level. Either handler may be nil.
type fanoutHandler struct {
	fileHandler    slog.Handler
	consoleHandler slog.Handler
}

func (h *fanoutHandler) handlers() []slog.Handler {
	handlers := make([]slog.Handler, 0, 2)

	if h.fileHandler != nil {
		handlers = append(handlers, h.fileHandler)
	}

	if h.consoleHandler != nil {
		handlers = append(handlers, h.consoleHandler)
	}

	return handlers
}

func (h *fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers() {
		if handler.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

func (h *fanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, handler := range h.handlers() {
		if !handler.Enabled(ctx, r.Level) {
			continue
		}

		if err := handler.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}

	return nil
}

func (h *fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.derive(func(handler slog.Handler) slog.Handler { return handler.WithAttrs(attrs) })
}

func (h *fanoutHandler) WithGroup(name string) slog.Handler {
	return h.derive(func(handler slog.Handler) slog.Handler { return handler.WithGroup(name) })
}

func (h *fanoutHandler) derive(apply func(slog.Handler) slog.Handler) *fanoutHandler {
	newHandler := &fanoutHandler{}

	if h.fileHandler != nil {
		newHandler.fileHandler = apply(h.fileHandler)
	}

	if h.consoleHandler != nil {
		newHandler.consoleHandler = apply(h.consoleHandler)
	}

	return newHandler
}
