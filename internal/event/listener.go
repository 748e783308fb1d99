package event

import (
	"context"
	"log/slog"
	"sync"
)

type Handler func(ctx context.Context, e Event) error

// Listener fans session events out to registered handlers. Emit never
// blocks the emitting session; events overflow-drop rather than stall the
// decision loop.
type Listener struct {
	logger   *slog.Logger
	mu       sync.Mutex
	handlers []Handler
	queue    chan Event
}

func NewListener(logger *slog.Logger) *Listener {
	return &Listener{
		logger: logger,
		queue:  make(chan Event, 256),
	}
}

func (l *Listener) Register(h Handler) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handlers = append(l.handlers, h)
}

func (l *Listener) Emit(e Event) {
	select {
	case l.queue <- e:
	default:
		l.logger.Warn("Event queue full, dropping event", slog.String("type", string(e.Type)))
	}
}

// Listen dispatches queued events until the context is cancelled.
func (l *Listener) Listen(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case e := <-l.queue:
			l.mu.Lock()
			handlers := make([]Handler, len(l.handlers))
			copy(handlers, l.handlers)
			l.mu.Unlock()

			for _, h := range handlers {
				if err := h(ctx, e); err != nil {
					l.logger.Error("Error running event handler", slog.Any("error", err))
				}
			}
		}
	}
}
