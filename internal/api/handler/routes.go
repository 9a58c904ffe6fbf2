package handler

import (
	"net/http"

	"github.com/vfg2006/sales-comparison-api/internal/api/handler/router"
	"github.com/vfg2006/sales-comparison-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-comparison-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-comparison-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/logout",
			Method:      http.MethodPost,
			Handler:     Logout(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
	}
}

func Sales(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sales/comparisons",
			Method:      http.MethodGet,
			Handler:     GetComparisons(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
		{
			Path:        "/v1/sales/yearly",
			Method:      http.MethodGet,
			Handler:     GetYearlySeries(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
		{
			Path:        "/v1/sales/monthly",
			Method:      http.MethodGet,
			Handler:     GetMonthlyComparison(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
		{
			Path:        "/v1/sales/snapshot",
			Method:      http.MethodGet,
			Handler:     GetSnapshotInfo(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
		{
			Path:        "/v1/sales/reload",
			Method:      http.MethodPost,
			Handler:     ReloadSnapshot(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
		{
			Path:        "/v1/sales/reset",
			Method:      http.MethodPost,
			Handler:     ResetSnapshot(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
		{
			Path:        "/v1/sales/history",
			Method:      http.MethodGet,
			Handler:     GetSalesHistory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
	}
}
