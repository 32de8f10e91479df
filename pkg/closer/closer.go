package closer

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type namedCloser struct {
	name string
	fn   func(ctx context.Context) error
}

var global = &closer{}

type closer struct {
	mu      sync.Mutex
	closers []namedCloser
	logger  Logger
}

func SetLogger(l Logger) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.logger = l
}

// AddNamed registers a shutdown hook. Hooks run in reverse registration
// order, so dependencies registered first are closed last.
func AddNamed(name string, fn func(ctx context.Context) error) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.closers = append(global.closers, namedCloser{name: name, fn: fn})
}

// CloseAll runs every registered hook and returns the first error seen.
// Every hook runs regardless of earlier failures.
func CloseAll(ctx context.Context) error {
	global.mu.Lock()
	closers := make([]namedCloser, len(global.closers))
	copy(closers, global.closers)
	global.closers = nil
	log := global.logger
	global.mu.Unlock()

	var firstErr error
	for i := len(closers) - 1; i >= 0; i-- {
		c := closers[i]
		if err := c.fn(ctx); err != nil {
			if log != nil {
				log.Error(ctx, "failed to close resource",
					zap.String("name", c.name),
					zap.Error(err),
				)
			}
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		if log != nil {
			log.Info(ctx, "resource closed", zap.String("name", c.name))
		}
	}

	return firstErr
}
