package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vfg2006/furniture-manager-api/internal/api/handler/router"
	"github.com/vfg2006/furniture-manager-api/internal/domain"
	"github.com/vfg2006/furniture-manager-api/pkg/log"
	"github.com/vfg2006/furniture-manager-api/pkg/middleware"
)

const testLookbackDays = 180

func init() {
	log.SetupTestLogger()
}

func fixedClock(t *testing.T, now time.Time) {
	t.Helper()

	previous := clock
	clock = func() time.Time { return now }
	t.Cleanup(func() { clock = previous })
}

func dateRange(from, to string) domain.DateRange {
	f, _ := time.Parse(time.DateOnly, from)
	tt, _ := time.Parse(time.DateOnly, to)
	return domain.DateRange{From: domain.DateOf(f), To: domain.DateOf(tt)}
}

// serve monta as rotas atrás do middleware de autenticação desligado (admin anônimo)
func serve(routes []router.Route, method, target, body string) *httptest.ResponseRecorder {
	rt := router.New(router.WithRoutes(routes...))
	h := middleware.AuthMiddleware(nil, false)(rt)

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
