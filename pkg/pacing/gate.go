package pacing

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Gate controla a frequência de chamadas a serviços externos
type Gate interface {
	Wait(ctx context.Context, caller string) error
}

// IntervalGate garante um intervalo mínimo global entre chamadas e,
// opcionalmente, um intervalo mínimo por chamador
type IntervalGate struct {
	global         *rate.Limiter
	callerInterval time.Duration

	mu      sync.Mutex
	callers map[string]*rate.Limiter
}

func NewIntervalGate(globalInterval, callerInterval time.Duration) *IntervalGate {
	return &IntervalGate{
		global:         newLimiter(globalInterval),
		callerInterval: callerInterval,
		callers:        make(map[string]*rate.Limiter),
	}
}

func newLimiter(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}

func (g *IntervalGate) Wait(ctx context.Context, caller string) error {
	if err := g.callerLimiter(caller).Wait(ctx); err != nil {
		return err
	}
	return g.global.Wait(ctx)
}

func (g *IntervalGate) callerLimiter(caller string) *rate.Limiter {
	g.mu.Lock()
	defer g.mu.Unlock()

	limiter, ok := g.callers[caller]
	if !ok {
		limiter = newLimiter(g.callerInterval)
		g.callers[caller] = limiter
	}
	return limiter
}

// NoopGate libera todas as chamadas imediatamente
type NoopGate struct{}

func (NoopGate) Wait(ctx context.Context, _ string) error {
	return ctx.Err()
}
