package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vfg2006/furniture-manager-api/internal/api/handler/router"
	"github.com/vfg2006/furniture-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/furniture-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/furniture-manager-api/pkg/middleware"
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

func Metrics(gatherer prometheus.Gatherer) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: MetricsHandler(gatherer),
		},
	}
}

func Analytics(service reporting.Reporter, lookbackDays int) []router.Route {
	return []router.Route{
		{
			Path:        "/analytics/summary",
			Method:      http.MethodGet,
			Handler:     AnalyticsSummary(service, lookbackDays),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/analytics/compare",
			Method:      http.MethodGet,
			Handler:     AnalyticsCompare(service, lookbackDays),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/analytics/export/pdf",
			Method:      http.MethodGet,
			Handler:     AnalyticsExportPDF(service, lookbackDays),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}

func AI(service reporting.Reporter, lookbackDays int) []router.Route {
	return []router.Route{
		{
			Path:        "/ai/ask",
			Method:      http.MethodPost,
			Handler:     AIAsk(service, lookbackDays),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/ai/chat",
			Method:      http.MethodPost,
			Handler:     AIChat(service, lookbackDays),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
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
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
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
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
