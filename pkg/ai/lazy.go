package ai

import (
	"context"
	"fmt"
	"sync"
)

// Factory constructs a Generator. It is invoked at most once by Lazy.
type Factory func(ctx context.Context) (Generator, error)

// Lazy is a load-once handle to a Generator. The underlying generator is
// built on first use and shared for the lifetime of the handle; a failed
// build is remembered and reported on every call.
type Lazy struct {
	factory Factory

	once      sync.Once
	generator Generator
	err       error
}

// NewLazy wraps factory in a load-once handle.
func NewLazy(factory Factory) *Lazy {
	return &Lazy{factory: factory}
}

// Generate builds the generator if needed and delegates to it.
func (l *Lazy) Generate(ctx context.Context, prompt string, params Params) (string, error) {
	generator, err := l.load(ctx)
	if err != nil {
		return "", err
	}
	return generator.Generate(ctx, prompt, params)
}

func (l *Lazy) load(ctx context.Context) (Generator, error) {
	l.once.Do(func() {
		if l.factory == nil {
			l.err = fmt.Errorf("generator factory is nil")
			return
		}
		// the generator outlives the request that triggered its construction
		l.generator, l.err = l.factory(context.WithoutCancel(ctx))
		if l.err == nil && l.generator == nil {
			l.err = fmt.Errorf("generator factory returned nil")
		}
	})
	if l.err != nil {
		return nil, fmt.Errorf("load generator: %w", l.err)
	}
	return l.generator, nil
}
