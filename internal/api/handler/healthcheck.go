package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/rank-tracker-api/internal/metrics"
)

// Pinger verifica a conexão com o banco
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.Ping(r.Context()); err != nil {
				logrus.WithError(err).Warn("healthcheck: banco indisponível")
				writeJSON(w, r, http.StatusServiceUnavailable, map[string]string{
					"status": "unavailable",
					"time":   time.Now().UTC().Format(time.RFC3339),
				})
				return
			}
		}

		writeJSON(w, r, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})
}

func MetricsHandler() http.Handler {
	return metrics.Handler()
}
