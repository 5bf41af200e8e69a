package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/furniture-manager-api/pkg/apiErrors"
)

type questionBody struct {
	Question    string   `json:"question" validate:"required"`
	Temperature *float64 `json:"temperature" validate:"omitempty,gte=0,lte=2"`
}

func TestDecodeJSONBody(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		expectedCode string
		expectedKey  string
	}{
		{name: "valid body", body: `{"question":"¿Qué se vende más?","temperature":0.5}`},
		{name: "malformed json", body: `{"question":`, expectedCode: apiErrors.ErrInvalidRequest, expectedKey: "error"},
		{name: "missing question", body: `{}`, expectedCode: apiErrors.ErrMissingRequiredData, expectedKey: "questionBody.question"},
		{name: "temperature out of range", body: `{"question":"x","temperature":3}`, expectedCode: apiErrors.ErrMissingRequiredData, expectedKey: "questionBody.temperature"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/ai/ask", strings.NewReader(tt.body))

			var dest questionBody
			err := DecodeJSONBody(req, &dest)

			if tt.expectedCode == "" {
				require.NoError(t, err)
				assert.Equal(t, "¿Qué se vende más?", dest.Question)
				require.NotNil(t, dest.Temperature)
				assert.Equal(t, 0.5, *dest.Temperature)
				return
			}

			var apiErr apiErrors.APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.expectedCode, apiErr.Code)
			assert.Contains(t, apiErr.Details, tt.expectedKey)
		})
	}
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	require.NoError(t, WriteJSON(rec, http.StatusCreated, map[string]string{"status": "ok"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, date)

	date, err = ParseDate("2025-02-28")
	require.NoError(t, err)
	require.NotNil(t, date)
	assert.Equal(t, "2025-02-28", date.Format("2006-01-02"))

	_, err = ParseDate("28/02/2025")
	assert.Error(t, err)
}
