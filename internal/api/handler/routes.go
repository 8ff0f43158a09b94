package handler

import (
	"net/http"

	"github.com/vfg2006/rank-tracker-api/internal/api/handler/router"
	"github.com/vfg2006/rank-tracker-api/internal/usecases/ranking"
	"github.com/vfg2006/rank-tracker-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: MetricsHandler(),
		},
	}
}

func Rankings(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/rankings/check",
			Method:      http.MethodPost,
			Handler:     CheckKeyword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/rankings/batch",
			Method:      http.MethodPost,
			Handler:     RunBatch(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/rankings/history",
			Method:      http.MethodGet,
			Handler:     GetHistory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/rankings/report/monthly",
			Method:      http.MethodGet,
			Handler:     GetMonthlyReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/rankings/report/weekly",
			Method:      http.MethodGet,
			Handler:     GetWeeklyReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
	}
}
