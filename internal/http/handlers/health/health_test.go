package health

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealth(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		cache          Pinger
		handler        func(*Handler) http.HandlerFunc
		expectedStatus int
		expectedBody   string
	}{
		{"live", nil, func(h *Handler) http.HandlerFunc { return h.Live }, http.StatusOK, `{"status":"OK","data":{"status":"ok"}}`},
		{"ready без redis", nil, func(h *Handler) http.HandlerFunc { return h.Ready }, http.StatusOK, `{"status":"OK","data":{"status":"ok"}}`},
		{"ready redis доступен", pingerFunc(func(context.Context) error { return nil }),
			func(h *Handler) http.HandlerFunc { return h.Ready }, http.StatusOK, `{"status":"OK","data":{"status":"ok"}}`},
		{"ready redis недоступен", pingerFunc(func(context.Context) error { return errors.New("dial tcp") }),
			func(h *Handler) http.HandlerFunc { return h.Ready }, http.StatusServiceUnavailable, `{"status":"Error","error":"redis unavailable"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(logger, tt.cache)
			rr := httptest.NewRecorder()
			tt.handler(h)(rr, httptest.NewRequest(http.MethodGet, "/-/ready", nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
