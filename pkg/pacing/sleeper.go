package pacing

import (
	"context"
	"time"
)

// Sleeper abstrai a espera entre tentativas e entre itens de um lote
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

type RealSleeper struct{}

// Sleep retorna ctx.Err() se o contexto terminar antes do intervalo
func (RealSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
