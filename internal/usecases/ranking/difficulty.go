package ranking

import "context"

// DifficultyEstimator estima a dificuldade (0 a 100) de uma palavra-chave.
// Falhas nunca impedem o registro da observação.
type DifficultyEstimator interface {
	Estimate(ctx context.Context, keyword string) (int, error)
}

func clampDifficulty(value int) int {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}
