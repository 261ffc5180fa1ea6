package closer

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Closer collects shutdown callbacks and runs them in reverse registration
// order, so dependencies are released after their dependents.

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...zap.Field)  {}
func (nopLogger) Error(context.Context, string, ...zap.Field) {}

type namedFunc struct {
	name string
	fn   func(ctx context.Context) error
}

var global = &closer{log: nopLogger{}}

type closer struct {
	mu     sync.Mutex
	funcs  []namedFunc
	closed bool
	log    Logger
}

func SetLogger(log Logger) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.log = log
}

// Add registers an anonymous shutdown callback.
func Add(fn func(ctx context.Context) error) {
	AddNamed("", fn)
}

// AddNamed registers a shutdown callback under a human-readable name.
func AddNamed(name string, fn func(ctx context.Context) error) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.funcs = append(global.funcs, namedFunc{name: name, fn: fn})
}

// CloseAll runs all registered callbacks in LIFO order. Every callback runs
// even if an earlier one fails; the first error is returned.
func CloseAll(ctx context.Context) error {
	global.mu.Lock()
	if global.closed {
		global.mu.Unlock()
		return nil
	}
	global.closed = true
	funcs := global.funcs
	global.funcs = nil
	log := global.log
	global.mu.Unlock()

	var firstErr error
	for i := len(funcs) - 1; i >= 0; i-- {
		nf := funcs[i]
		if err := nf.fn(ctx); err != nil {
			log.Error(ctx, "closer: shutdown callback failed",
				zap.String("name", nf.name),
				zap.Error(err),
			)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if nf.name != "" {
			log.Info(ctx, "closer: closed", zap.String("name", nf.name))
		}
	}

	return firstErr
}
