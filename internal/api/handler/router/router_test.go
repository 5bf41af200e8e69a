package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/furniture-manager-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func tag(name string, calls *[]string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*calls = append(*calls, name)
			next.ServeHTTP(w, r)
		})
	}
}

func TestRouter_MiddlewareOrder(t *testing.T) {
	var calls []string
	r := New(WithRoutes(Route{
		Path:   "/v1/cron/:type/run",
		Method: http.MethodPost,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls = append(calls, "handler")
			w.WriteHeader(http.StatusAccepted)
		}),
		Middlewares: []func(http.Handler) http.Handler{tag("auth", &calls), tag("role", &calls)},
	}))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/weekly-report/run", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, []string{"auth", "role", "handler"}, calls)
}

func TestRouter_UnknownRoutes(t *testing.T) {
	r := New(WithRoutes(Route{
		Path:    "/analytics/summary",
		Method:  http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}),
	}))

	tests := []struct {
		name           string
		method         string
		target         string
		expectedStatus int
		expectedCode   string
	}{
		{"rota inexistente", http.MethodGet, "/analytics/nada", http.StatusNotFound, apiErrors.ErrRouteNotFound},
		{"método errado", http.MethodPost, "/analytics/summary", http.StatusMethodNotAllowed, apiErrors.ErrMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, strings.NewReader("")))

			assert.Equal(t, tt.expectedStatus, rec.Code)

			var body apiErrors.APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedCode, body.Code)
		})
	}
}
