package quote

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	quoteservice "github.com/magabrotheeeer/payment-service/internal/services/quote"
)

func TestQuoteHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	h := New(logger, quoteservice.New(nil))

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{"три позиции", `{"numberOfItems": 3}`, http.StatusOK, "26.7"},
		{"ноль позиций", `{"numberOfItems": 0}`, http.StatusOK, "0"},
		{"поле отсутствует", `{}`, http.StatusOK, "0"},
		{"отрицательное количество", `{"numberOfItems": -1}`, http.StatusUnprocessableEntity,
			`{"status":"Error","code":"invalid_request","error":"field NumberOfItems must be at least 0"}`},
		{"некорректный JSON", `{"numberOfItems": "many"}`, http.StatusBadRequest,
			`{"status":"Error","code":"invalid_request","error":"invalid request body"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/getquote", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			h.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
